package utils

import (
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameCaser = cases.Title(language.English)

// TitleCaseName normalizes a user-supplied entity name: trims surrounding
// whitespace, lower-cases, then upper-cases the first letter of each word.
// "  uNiTeD kingdom " becomes "United Kingdom".
func TitleCaseName(name string) string {
	return nameCaser.String(strings.ToLower(strings.TrimSpace(name)))
}

// Slugify derives a URL-safe token from a raw name: lower-cased, with
// non-alphanumeric runs collapsed to single hyphens.
func Slugify(name string) string {
	return slug.Make(name)
}
