package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a", "ã", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o", "õ", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"ñ", "n", "ç", "c",
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a URL-safe slug: lowercase ASCII letters,
// digits and single hyphens, with no hyphen at either end. It never fails;
// input with no usable characters yields the empty string.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = accentReplacer.Replace(slug)
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// maxSlugAttempts bounds the suffix walk so a predicate that always reports
// a collision cannot loop forever.
const maxSlugAttempts = 10000

// SlugExistsFunc reports whether a candidate slug is already taken. Errors
// from the underlying store propagate to the caller of GenerateUniqueSlug.
type SlugExistsFunc func(slug string) (bool, error)

// GenerateUniqueSlug walks base, base-1, base-2, ... until exists reports a
// free candidate.
func GenerateUniqueSlug(base string, exists SlugExistsFunc) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		if counter > maxSlugAttempts {
			return "", fmt.Errorf("no free slug found for %q after %d attempts", base, maxSlugAttempts)
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
