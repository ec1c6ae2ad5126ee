package textsplitter

import "unicode"

// Backward scan windows for the boundary preference, in characters.
const (
	sentenceScanWindow   = 200
	whitespaceScanWindow = 100
)

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// adjustToBoundary moves the cut at runes[:length] backward to a natural
// break. It first scans up to 200 characters for a sentence terminator
// immediately followed by whitespace and cuts just after the terminator;
// failing that, it scans up to 100 characters for any whitespace and cuts
// just after it. When neither is found the original length stands, which
// may cut mid-word: the preference is best-effort, never guaranteed.
func adjustToBoundary(runes []rune, length int) int {
	lo := length - sentenceScanWindow
	if lo < 0 {
		lo = 0
	}
	for i := length - 1; i >= lo; i-- {
		// The whitespace may sit at the candidate offset itself, so the
		// probe is allowed to look one rune past the cut.
		if isSentenceTerminator(runes[i]) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			return i + 1
		}
	}

	lo = length - whitespaceScanWindow
	if lo < 0 {
		lo = 0
	}
	for i := length - 1; i >= lo; i-- {
		if unicode.IsSpace(runes[i]) {
			return i + 1
		}
	}

	return length
}
