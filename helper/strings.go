package helper

import (
	"regexp"
	"strings"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Underscore converts a StructField name like "FeaturedPostIDs" into the
// snake_case key clients see in validation responses.
func Underscore(s string) string {
	snake := camelBoundary.ReplaceAllString(s, `${1}_${2}`)
	return strings.ToLower(snake)
}
