package stats

import (
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/rivo/uniseg"
)

// emojiRanges covers the pictographic blocks. Keycap sequences that start
// with a digit are not counted.
var emojiRanges = [][2]rune{
	{0x1F000, 0x1FAFF}, // mahjong through symbols & pictographs ext-A, includes flags
	{0x2600, 0x27BF},   // misc symbols, dingbats
	{0x2300, 0x23FF},   // misc technical (watch, hourglass, ...)
	{0x2B00, 0x2BFF},   // arrows, stars
	{0x2194, 0x2199},
	{0x21A9, 0x21AA},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x00A9, 0x00A9},
	{0x00AE, 0x00AE},
	{0x203C, 0x203C},
	{0x2049, 0x2049},
	{0x2122, 0x2122},
	{0x2139, 0x2139},
}

func IsEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// EmojiOf returns the emoji in text, one entry per grapheme cluster so that
// skin tones, flags and ZWJ sequences count once.
func EmojiOf(text string) []string {
	var out []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if len(runes) > 0 && IsEmoji(runes[0]) {
			out = append(out, g.Str())
		}
	}
	return out
}

func messageEmoji(m parse.Message) []string { return EmojiOf(m.Body) }
