// Package survey turns raw questionnaire answers into fixed sets of derived
// features: ordinal codes, categorical labels, and binary indicator flags.
// Every extractor is a pure function over one raw cell.
package survey

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Mode selects the normalization strictness. Each extractor declares the
// mode it needs; there is no process-wide toggle.
type Mode int

const (
	// ModeStrict keeps only lowercase ASCII letters and single spaces.
	ModeStrict Mode = iota
	// ModeSoft keeps digits and punctuation, folds accents, collapses whitespace.
	ModeSoft
)

// foldASCII decomposes, drops combining marks, then drops anything still
// outside ASCII (characters with no base-letter transliteration are lost).
var foldASCII = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize canonicalizes s according to the mode. Pure and total: any input
// yields some string, possibly empty.
func (m Mode) Normalize(s string) string {
	if m == ModeStrict {
		return NormalizeStrict(s)
	}
	return NormalizeSoft(s)
}

// NormalizeStrict trims, folds accents to base Latin letters, replaces every
// character that is not a letter or space, collapses whitespace, lowercases.
// Output contains only lowercase ASCII letters and single internal spaces.
func NormalizeStrict(s string) string {
	s, _, _ = transform.String(foldASCII, strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.ToLower(collapse(b.String()))
}

// NormalizeSoft folds accents, collapses whitespace, trims, lowercases.
// Digits and punctuation are preserved.
func NormalizeSoft(s string) string {
	s, _, _ = transform.String(foldASCII, s)
	return strings.ToLower(collapse(s))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slug folds a free-form name to ascii snake_case, for use as a SQL column
// or feature identifier.
func Slug(s string) string {
	s, _, _ = transform.String(foldASCII, s)
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			prev = false
		} else if !prev {
			b.WriteByte('_')
			prev = true
		}
	}
	return strings.ToLower(strings.Trim(b.String(), "_"))
}
