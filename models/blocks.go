package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type BlockType string

const (
	BlockImageText   BlockType = "imageText"
	BlockCTA         BlockType = "cta"
	BlockRichContent BlockType = "richContent"
)

// Block is one entry of a page layout. The set of kinds is closed; decoding
// an unknown blockType is an error, not a passthrough.
type Block interface {
	Kind() BlockType
}

type ImageTextBlock struct {
	Heading       string   `json:"heading"`
	Content       RichText `json:"content"`
	ImageID       uint     `json:"image_id"`
	ImagePosition string   `json:"image_position"` // "left" or "right"
}

func (b *ImageTextBlock) Kind() BlockType { return BlockImageText }

type CTABlock struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
	ButtonLink  string `json:"button_link"`
}

func (b *CTABlock) Kind() BlockType { return BlockCTA }

type RichContentBlock struct {
	Content RichText `json:"content"`
}

func (b *RichContentBlock) Kind() BlockType { return BlockRichContent }

var blockFactories = map[BlockType]func() Block{
	BlockImageText:   func() Block { return &ImageTextBlock{} },
	BlockCTA:         func() Block { return &CTABlock{} },
	BlockRichContent: func() Block { return &RichContentBlock{} },
}

// BlockList is the ordered page layout, persisted as a jsonb array where each
// element carries a "blockType" discriminator alongside its own fields.
type BlockList []Block

func (l BlockList) MarshalJSON() ([]byte, error) {
	out := make([]map[string]interface{}, 0, len(l))
	for _, block := range l {
		raw, err := json.Marshal(block)
		if err != nil {
			return nil, err
		}
		entry := map[string]interface{}{}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, err
		}
		entry["blockType"] = block.Kind()
		out = append(out, entry)
	}
	return json.Marshal(out)
}

func (l *BlockList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	blocks := make(BlockList, 0, len(raws))
	for _, raw := range raws {
		var probe struct {
			BlockType BlockType `json:"blockType"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return err
		}
		factory, ok := blockFactories[probe.BlockType]
		if !ok {
			return fmt.Errorf("unknown block type %q", probe.BlockType)
		}
		block := factory()
		if err := json.Unmarshal(raw, block); err != nil {
			return err
		}
		blocks = append(blocks, block)
	}
	*l = blocks
	return nil
}

func (l BlockList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *BlockList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into BlockList", value)
	}
}
