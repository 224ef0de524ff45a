package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CharFilter restricts what a TextInput accepts. Filters apply to typed and pasted text
// alike.
type CharFilter struct {
	NumbersOnly  bool
	AlphaOnly    bool
	UpperCase    bool // Convert letters to upper case
	LowerCase    bool // Convert letters to lower case
	NoLineBreaks bool
	MaxLength    int // In runes; zero means unlimited
}

// Apply returns current with the accepted runes of insert appended.
func (f CharFilter) Apply(current, insert string) string {
	n := utf8.RuneCountInString(current)
	var b strings.Builder
	b.WriteString(current)
	for _, r := range insert {
		if f.MaxLength > 0 && n >= f.MaxLength {
			break
		}
		if !f.accepts(r) {
			continue
		}
		switch {
		case f.UpperCase:
			r = unicode.ToUpper(r)
		case f.LowerCase:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func (f CharFilter) accepts(r rune) bool {
	if r == '\n' || r == '\r' {
		return !f.NoLineBreaks
	}
	if unicode.IsControl(r) || r == utf8.RuneError {
		return false
	}
	if f.NumbersOnly && !unicode.IsDigit(r) {
		return false
	}
	if f.AlphaOnly && !unicode.IsLetter(r) {
		return false
	}
	return true
}
