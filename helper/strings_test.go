package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	cases := map[string]string{
		"MetaTitle":       "meta_title",
		"FeaturedPostIDs": "featured_post_ids",
		"Email":           "email",
		"already_snake":   "already_snake",
		"":                "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, Underscore(input))
	}
}
