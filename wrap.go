package ui

import (
	"strings"
	"unicode"
)

// MeasureFunc returns the advance width of a single line of text.
// Renderer backends build one from their font metrics.
type MeasureFunc func(line string) float32

// WrapMode specifies how text should be wrapped.
type WrapMode int

const (
	// WrapWord wraps at word boundaries (default for Latin text).
	WrapWord WrapMode = iota
	// WrapChar wraps at character boundaries (for CJK or dense text).
	WrapChar
	// WrapAuto picks WrapChar when the paragraph contains CJK characters.
	WrapAuto
)

// WrapText splits text into lines no wider than maxWidth. Explicit line breaks are kept.
// A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth float32, measure MeasureFunc, mode WrapMode) []string {
	paragraphs := strings.Split(text, "\n")
	if maxWidth <= 0 || measure == nil {
		return paragraphs
	}

	var lines []string
	for _, p := range paragraphs {
		m := mode
		if m == WrapAuto {
			m = WrapWord
			if containsCJK(p) {
				m = WrapChar
			}
		}
		var wrapped []string
		if m == WrapChar {
			wrapped = wrapByChar(p, maxWidth, measure)
		} else {
			wrapped = wrapByWord(p, maxWidth, measure)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func wrapByWord(text string, maxWidth float32, measure MeasureFunc) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if measure(test) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func wrapByChar(text string, maxWidth float32, measure MeasureFunc) []string {
	var lines []string
	var current []rune

	for _, r := range text {
		test := append(current, r)
		if measure(string(test)) > maxWidth && len(current) > 0 {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = test
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

// TruncateText shortens text to fit within maxWidth, ending it with suffix when cut.
func TruncateText(text string, maxWidth float32, measure MeasureFunc, suffix string) string {
	if measure == nil || measure(text) <= maxWidth {
		return text
	}
	target := maxWidth - measure(suffix)
	runes := []rune(text)
	for len(runes) > 0 {
		if measure(string(runes)) <= target {
			return string(runes) + suffix
		}
		runes = runes[:len(runes)-1]
	}
	return suffix
}

func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}
