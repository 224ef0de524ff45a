package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// runeWidth measures one unit per rune.
func runeWidth(s string) float32 { return float32(utf8.RuneCountInString(s)) }

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		mode  WrapMode
		want  []string
	}{
		{"fits", "aa bb", 10, WrapWord, []string{"aa bb"}},
		{"words", "aa bb cc", 5, WrapWord, []string{"aa bb", "cc"}},
		{"long word alone", "a verylongword b", 5, WrapWord, []string{"a", "verylongword", "b"}},
		{"explicit breaks", "aa\n\nbb", 10, WrapWord, []string{"aa", "", "bb"}},
		{"chars", "abcdefg", 3, WrapChar, []string{"abc", "def", "g"}},
		{"auto cjk", "日本語のテキスト", 3, WrapAuto, []string{"日本語", "のテキ", "スト"}},
		{"auto latin", "aa bb cc", 5, WrapAuto, []string{"aa bb", "cc"}},
		{"no width", "aa bb", 0, WrapWord, []string{"aa bb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.text, tt.width, runeWidth, tt.mode))
		})
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10, runeWidth, "..."))
	assert.Equal(t, "hello...", TruncateText("hello world", 8, runeWidth, "..."))
	assert.Equal(t, "...", TruncateText("hello", 2, runeWidth, "..."))
}

func TestListClipper(t *testing.T) {
	c := NewListClipper(10, 20, 100, 0)
	assert.Equal(t, 5, c.Capacity)
	assert.Equal(t, 0, c.StartIdx)
	assert.Equal(t, 5, c.EndIdx)
	assert.Equal(t, 5, c.MaxScroll())
	assert.Equal(t, 40, c.ItemY(2))
	assert.True(t, c.ShouldRender(4))
	assert.False(t, c.ShouldRender(5))

	c = NewListClipper(10, 20, 110, 99)
	assert.Equal(t, 5, c.StartIdx, "first is clamped to the last page")
	assert.Equal(t, 10, c.EndIdx)
	assert.Equal(t, 5, c.VisibleCount())

	c = NewListClipper(3, 20, 100, 2)
	assert.Equal(t, 0, c.StartIdx, "short lists never scroll")
	assert.Equal(t, 3, c.VisibleCount())

	c = NewListClipper(10, 20, 100, 3)
	assert.Equal(t, 1, c.ScrollToItem(1))
	assert.Equal(t, 3, c.ScrollToItem(7))
	assert.Equal(t, 4, c.ScrollToItem(8))
	assert.Equal(t, 3, c.ScrollToItem(-1))

	assert.Zero(t, NewListClipper(0, 20, 100, 0).VisibleCount())
	assert.Zero(t, NewListClipper(10, 20, 0, 0).Capacity)
}

func TestCharFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  CharFilter
		current string
		insert  string
		want    string
	}{
		{"plain", CharFilter{}, "ab", "cd", "abcd"},
		{"control runes dropped", CharFilter{}, "", "a\x08b\x7f", "ab"},
		{"max length in runes", CharFilter{MaxLength: 3}, "é", "èêë", "éèê"},
		{"numbers", CharFilter{NumbersOnly: true}, "", "a1b2", "12"},
		{"alpha", CharFilter{AlphaOnly: true}, "", "a1b2 ", "ab"},
		{"upper", CharFilter{UpperCase: true}, "", "abc", "ABC"},
		{"lower", CharFilter{LowerCase: true}, "", "ABC", "abc"},
		{"line breaks kept", CharFilter{}, "", "a\nb", "a\nb"},
		{"line breaks dropped", CharFilter{NoLineBreaks: true}, "", "a\r\nb", "ab"},
		{"full", CharFilter{MaxLength: 2}, "ab", "c", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Apply(tt.current, tt.insert))
		})
	}
}
