package table

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// wideRanges are the characters a table cell counts as two columns wide:
// CJK symbols and punctuation, Hiragana, Katakana, CJK Unified Ideographs
// (with Extension A and the compatibility block) and the full-width forms.
var wideRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x303F, Stride: 1},
		{Lo: 0x3040, Hi: 0x309F, Stride: 1},
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1},
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1},
		{Lo: 0xFF01, Hi: 0xFF60, Stride: 1},
		{Lo: 0xFFE0, Hi: 0xFFE6, Stride: 1},
	},
}

// widthCondition is fixed so that terminal widths do not depend on the
// locale of the process (runewidth.NewCondition reads RUNEWIDTH_EASTASIAN
// and LANG).
var widthCondition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// DisplayWidth returns the number of columns s occupies in an aligned table.
// Each grapheme cluster counts as 2 when its first rune is in wideRanges and
// 1 otherwise, so emoji and Hangul count as 1.
func DisplayWidth(s string) int {
	width := 0

	g := graphemes.FromString(s)
	for g.Next() {
		width += clusterWidth(g.Value())
	}

	return width
}

func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	if unicode.Is(wideRanges, r) {
		return 2
	}

	return 1
}

// TerminalWidth returns the number of columns a terminal renders s in,
// following the East Asian Width tables. It differs from DisplayWidth for
// emoji, Hangul and supplementary-plane ideographs, among others.
func TerminalWidth(s string) int {
	return widthCondition.StringWidth(s)
}
