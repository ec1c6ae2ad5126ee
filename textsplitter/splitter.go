package textsplitter

import (
	"context"
	"fmt"

	"github.com/sevigo/chunkfit/schema"
)

// minChunkBytes is the byte headroom required for a chunk to hold at least
// one character: the candidate-length heuristic divides the byte budget by
// two, so anything below two bytes can never admit a character.
const minChunkBytes = 2

// LimitSplitter partitions text into chunks that each satisfy a byte,
// character and estimated-token budget. Images are attached to the first
// chunk only and are never split or duplicated.
type LimitSplitter struct {
	opts options
}

// NewLimitSplitter creates a splitter. Word-boundary preference is on by
// default; overlap defaults to zero.
func NewLimitSplitter(opts ...Option) *LimitSplitter {
	o := options{
		respectWordBoundaries: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &LimitSplitter{opts: o}
}

// Split partitions text into limit-compliant chunks with 0-based,
// contiguous indices. Concatenating the chunk texts in order, minus any
// configured overlap repetition, reconstructs text exactly. If no chunk of
// at least one character can ever satisfy lim, Split fails without
// returning a partial sequence.
func (s *LimitSplitter) Split(_ context.Context, text string, images []schema.Image, lim schema.Limits) ([]schema.Chunk, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text must not be empty", schema.ErrInvalidInput)
	}
	if lim.MaxTokens < 0 || lim.MaxChars < 0 || lim.MaxBytes < 0 || lim.MaxImages < 0 || lim.ImageByteLimit < 0 {
		return nil, fmt.Errorf("%w: limits must be non-negative", schema.ErrInvalidInput)
	}

	imageBytes := TotalImageBytes(images)

	// The first chunk carries every image, so it has the tightest budgets.
	// Verify a single character can fit them before looping; later chunks
	// use the full limits and can only be roomier.
	firstByteBudget := lim.MaxBytes - imageBytes
	if firstByteBudget < minChunkBytes {
		return nil, &schema.CapacityError{
			Dimension: schema.DimensionBytes,
			Actual:    imageBytes + minChunkBytes,
			Allowed:   lim.MaxBytes,
		}
	}
	if charBudget := min(lim.MaxChars, firstByteBudget/2); charBudget < 1 {
		return nil, &schema.CapacityError{
			Dimension: schema.DimensionChars,
			Actual:    1,
			Allowed:   lim.MaxChars,
		}
	}
	if lim.MaxTokens < 1 {
		// A single character already estimates to one token.
		return nil, &schema.CapacityError{
			Dimension: schema.DimensionTokens,
			Actual:    1,
			Allowed:   lim.MaxTokens,
		}
	}

	runes := []rune(text)
	total := len(runes)

	var chunks []schema.Chunk
	cursor := 0
	for cursor < total {
		index := len(chunks)

		byteBudget := lim.MaxBytes
		charBudget := lim.MaxChars
		if index == 0 {
			byteBudget -= imageBytes
			charBudget = min(charBudget, byteBudget/2)
		}

		// Candidate length assumes an average of two bytes per character;
		// the exact encoding is verified below.
		length := min(charBudget, byteBudget/2)
		remaining := total - cursor
		if length >= remaining {
			length = remaining
		} else if s.opts.respectWordBoundaries {
			length = adjustToBoundary(runes[cursor:], length)
		}

		// The /2 heuristic undercounts single-byte text and overcounts
		// multi-byte text, so measure the real UTF-8 size regardless of
		// which split point was chosen and shrink to the largest prefix
		// that fits.
		if runesByteLen(runes[cursor:cursor+length]) > byteBudget {
			length = largestBytePrefix(runes[cursor:cursor+length], byteBudget)
		}

		if estimateRuneTokens(length) > lim.MaxTokens {
			length = lim.MaxTokens * runesPerToken
		}

		if length < 1 {
			return nil, fmt.Errorf("%w: chunk %d consumed no characters", schema.ErrNoProgress, index)
		}

		chunk := schema.Chunk{
			Text:  string(runes[cursor : cursor+length]),
			Index: index,
		}
		if index == 0 {
			chunk.Images = images
		}
		chunks = append(chunks, chunk)

		next := cursor + length
		if s.opts.chunkOverlap > 0 && next < total {
			// The next chunk restates a verbatim trailing window of this
			// one. The step back must leave net forward progress.
			next -= min(s.opts.chunkOverlap, length)
			if next <= cursor {
				return nil, fmt.Errorf("%w: overlap %d cancels the advance of chunk %d",
					schema.ErrNoProgress, s.opts.chunkOverlap, index)
			}
		}
		cursor = next
	}

	return chunks, nil
}

// largestBytePrefix binary-searches the longest character-count prefix of
// runes whose exact UTF-8 length still fits budget.
func largestBytePrefix(runes []rune, budget int) int {
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if runesByteLen(runes[:mid]) <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
