//go:build property
// +build property

package utils

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var slugAlphabet = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

func TestSlugifyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("slugify is idempotent", prop.ForAll(
		func(s string) bool {
			once := Slugify(s)
			return Slugify(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("slugs use lowercase ascii words and single hyphens", prop.ForAll(
		func(s string) bool {
			slug := Slugify(s)
			return slug == "" || slugAlphabet.MatchString(slug)
		},
		gen.AnyString(),
	))

	properties.Property("non-empty slugs are valid path segments", prop.ForAll(
		func(s string) bool {
			slug := Slugify(s)
			return slug == "" || ValidSlug(slug)
		},
		gen.RegexMatch(`^[A-Za-z0-9 ,.!?'/-]{1,40}$`),
	))

	properties.TestingRun(t)
}
