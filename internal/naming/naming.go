// Package naming derives stable identifiers and display titles from
// source file paths.
//
// Two identifier forms exist: one that preserves leading ordering
// prefixes (e.g. "02-intro") so files stay orderable on disk, and one
// that strips them (e.g. "intro") for human-facing keys such as
// layout, data and doc ids.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespace     = regexp.MustCompile(`\s+`)
	orderingPrefix = regexp.MustCompile(`^[0-9.\-]+`)
	separators     = regexp.MustCompile(`[-_]`)

	titleCaser = cases.Title(language.English)
)

// Name derives an identifier from the basename of path: the extension
// is stripped and internal whitespace becomes dashes. When
// preserveNumbers is false a leading run of digits, dots and dashes
// (an ordering prefix such as "02-") is removed as well.
func Name(path string, preserveNumbers bool) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = whitespace.ReplaceAllString(base, "-")
	if !preserveNumbers {
		base = orderingPrefix.ReplaceAllString(base, "")
	}
	return base
}

// TitleCase turns an identifier into a display title: dashes and
// underscores become spaces and each word is title-cased.
func TitleCase(id string) string {
	return titleCaser.String(separators.ReplaceAllString(id, " "))
}

// Slug replaces whitespace with dashes. Identifiers from Name are
// already dash-joined; Slug exists for values that may still carry
// spaces, such as module names echoed back from front matter.
func Slug(s string) string {
	return whitespace.ReplaceAllString(s, "-")
}
