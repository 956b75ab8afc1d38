// Package casing provides key transforms for propmods.WithTransformKeys.
//
// Every transform is a pure func(string) string, so a single value can be
// shared by any number of blocks.
package casing

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Identity returns s unchanged. It is the default transform.
func Identity(s string) string {
	return s
}

// Kebab converts CamelCase and camelCase to kebab-case.
//
// A hyphen is inserted where a lower-case letter or digit is followed by an
// upper-case one, and before the last capital of an acronym that starts a new
// word. Existing separators are kept as they are.
//
//   - "ElEment" -> "el-ement"
//   - "fooBar" -> "foo-bar"
//   - "HTMLParser" -> "html-parser"
//   - "baz-quux" -> "baz-quux"
func Kebab(s string) string {
	return delimit(s, '-')
}

// Snake is Kebab with underscores: "fooBar" -> "foo_bar".
func Snake(s string) string {
	return delimit(s, '_')
}

// Lower lower-cases s.
func Lower(s string) string {
	return strings.ToLower(s)
}

func delimit(s string, sep rune) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				b.WriteRune(sep)
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// "HTMLParser": split before the P
				b.WriteRune(sep)
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

var transforms = map[string]func(string) string{
	"":         Identity,
	"identity": Identity,
	"none":     Identity,
	"kebab":    Kebab,
	"snake":    Snake,
	"lower":    Lower,
}

// Lookup resolves a transform by name, as written in configuration files.
// Known names are identity (or none), kebab, snake and lower.
func Lookup(name string) (func(string) string, error) {
	fn, ok := transforms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("casing: unknown transform %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// Names returns the transform names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
