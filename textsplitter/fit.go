package textsplitter

import "github.com/sevigo/chunkfit/schema"

// Fits reports whether text plus its attached images satisfies lim without
// splitting. Dimensions are checked in fixed priority order: total bytes
// first, then characters, then estimated tokens. The first violation wins,
// so a byte overflow is reported even when the character and token checks
// would pass.
func Fits(text string, images []schema.Image, lim schema.Limits) error {
	if total := ByteLength(text) + TotalImageBytes(images); total > lim.MaxBytes {
		return &schema.CapacityError{Dimension: schema.DimensionBytes, Actual: total, Allowed: lim.MaxBytes}
	}
	if chars := RuneLength(text); chars > lim.MaxChars {
		return &schema.CapacityError{Dimension: schema.DimensionChars, Actual: chars, Allowed: lim.MaxChars}
	}
	if tokens := EstimateTokens(text); tokens > lim.MaxTokens {
		return &schema.CapacityError{Dimension: schema.DimensionTokens, Actual: tokens, Allowed: lim.MaxTokens}
	}
	return nil
}
