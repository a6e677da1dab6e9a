package utils

import (
	"strings"

	"headless-cms/models"
)

// DefaultExcerptLength is the excerpt cap used for post listings.
const DefaultExcerptLength = 160

// GenerateExcerpt flattens a rich-text tree into plain text and bounds it to
// maxLength runes, never splitting a multibyte character. When truncating,
// the cut backtracks to the last space if that space lies past 80% of
// maxLength; either way an ellipsis marker is appended. Empty input yields "".
func GenerateExcerpt(nodes []models.RichTextNode, maxLength int) string {
	if len(nodes) == 0 || maxLength <= 0 {
		return ""
	}

	plain := extractText(nodes)
	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}

	truncated := runes[:maxLength]
	lastSpace := -1
	for i, r := range truncated {
		if r == ' ' {
			lastSpace = i
		}
	}
	if float64(lastSpace) > float64(maxLength)*0.8 {
		return string(truncated[:lastSpace]) + "..."
	}
	return string(truncated) + "..."
}

func extractText(nodes []models.RichTextNode) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		switch {
		case node.Text != "":
			parts = append(parts, node.Text)
		case len(node.Children) > 0:
			parts = append(parts, extractText(node.Children))
		default:
			parts = append(parts, "")
		}
	}
	return strings.Join(parts, " ")
}
