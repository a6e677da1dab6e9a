// Package validators holds the field-level checks layered onto write
// operations. Each check returns nil for valid input or an error carrying a
// locale-resolved, user-facing message; none of them panic on malformed
// input. Slug uniqueness is the one persistence-backed check and lives in the
// repository layer.
package validators

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"headless-cms/i18n"
	"headless-cms/models"
)

const (
	minPasswordLength = 8
	minTitleLength    = 5
	maxTitleLength    = 200
	maxImageSize      = 5 << 20 // 5 MiB
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	httpPattern        = regexp.MustCompile(`^https?://.+`)
	youtubeHostPattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/.+$`)
	vimeoHostPattern   = regexp.MustCompile(`^https?://(www\.)?vimeo\.com/.+$`)
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// FileInfo is what the image validator needs to know about an upload.
type FileInfo struct {
	MimeType string
	Size     int64
}

type Validator struct {
	locale i18n.Locale
}

func New(locale i18n.Locale) *Validator {
	return &Validator{locale: locale}
}

func (v *Validator) msg(key string) error {
	return errors.New(i18n.T(v.locale, key))
}

func (v *Validator) Email(value string) error {
	if value == "" {
		return v.msg("email.required")
	}
	if !emailPattern.MatchString(value) {
		return v.msg("email.invalid")
	}
	return nil
}

// Password accepts an empty value on update, meaning "leave unchanged".
func (v *Validator) Password(value string, op models.Operation) error {
	if op == models.OperationUpdate && value == "" {
		return nil
	}
	if value == "" {
		return v.msg("password.required")
	}
	if utf8.RuneCountInString(value) < minPasswordLength {
		return v.msg("password.too_short")
	}
	return nil
}

func (v *Validator) PostTitle(value string) error {
	if strings.TrimSpace(value) == "" {
		return v.msg("title.required")
	}
	length := utf8.RuneCountInString(value)
	if length < minTitleLength {
		return v.msg("title.too_short")
	}
	if length > maxTitleLength {
		return v.msg("title.too_long")
	}
	return nil
}

// PostContent requires a structurally valid rich-text root with at least one
// descendant carrying non-whitespace text.
func (v *Validator) PostContent(content *models.RichText) error {
	if content == nil || content.Root.Children == nil {
		return v.msg("content.required")
	}
	if !hasText(content.Root.Children) {
		return v.msg("content.empty")
	}
	return nil
}

func hasText(nodes []models.RichTextNode) bool {
	for _, node := range nodes {
		if strings.TrimSpace(node.Text) != "" {
			return true
		}
		if node.Type == "paragraph" && hasText(node.Children) {
			return true
		}
	}
	return false
}

// VideoURL is an optional-field check: empty passes, anything present must be
// an http(s) URL on a YouTube or Vimeo host.
func (v *Validator) VideoURL(value string) error {
	if value == "" {
		return nil
	}
	if !httpPattern.MatchString(value) {
		return v.msg("video.invalid_url")
	}
	if !youtubeHostPattern.MatchString(value) && !vimeoHostPattern.MatchString(value) {
		return v.msg("video.wrong_platform")
	}
	return nil
}

// ImageFile checks MIME type and size; a nil file passes (optional-field
// semantics).
func (v *Validator) ImageFile(file *FileInfo) error {
	if file == nil {
		return nil
	}
	if !allowedImageTypes[file.MimeType] {
		return v.msg("image.type")
	}
	if file.Size > maxImageSize {
		return v.msg("image.too_large")
	}
	return nil
}

// SlugTaken is the conflict message returned when the persistence-backed
// uniqueness check finds another document with the same slug.
func (v *Validator) SlugTaken() error {
	return v.msg("slug.taken")
}
