package textsplitter

import (
	"unicode/utf8"

	"github.com/sevigo/chunkfit/schema"
)

// runesPerToken is the character-to-token estimation ratio. Four characters
// per token is a deliberate upper-bound heuristic, never exact.
const runesPerToken = 4

// ByteLength returns the UTF-8 encoded size of text. Go strings are UTF-8,
// so a 4-byte code point contributes 4, not 1.
func ByteLength(text string) int {
	return len(text)
}

// RuneLength returns the number of Unicode code points in text.
func RuneLength(text string) int {
	return utf8.RuneCountInString(text)
}

// EstimateTokens approximates the token count of text as
// ceil(characters / 4). Downstream logic must never treat the result as
// authoritative.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return estimateRuneTokens(utf8.RuneCountInString(text))
}

func estimateRuneTokens(runeCount int) int {
	if runeCount <= 0 {
		return 0
	}
	return (runeCount + runesPerToken - 1) / runesPerToken
}

// TotalImageBytes sums the payload sizes of all attached images.
func TotalImageBytes(images []schema.Image) int {
	total := 0
	for _, img := range images {
		total += img.SizeBytes
	}
	return total
}

func runesByteLen(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	return n
}
