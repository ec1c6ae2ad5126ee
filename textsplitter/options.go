package textsplitter

// options holds configuration settings for the splitter.
type options struct {
	chunkOverlap          int
	respectWordBoundaries bool
}

// Option is a function type for configuring the splitter.
type Option func(*options)

// WithChunkOverlap sets how many characters consecutive chunks repeat at
// their boundary.
func WithChunkOverlap(overlap int) Option {
	return func(o *options) {
		if overlap >= 0 {
			o.chunkOverlap = overlap
		}
	}
}

// WithWordBoundaries toggles the sentence/whitespace boundary preference
// when choosing split points. Enabled by default.
func WithWordBoundaries(enabled bool) Option {
	return func(o *options) {
		o.respectWordBoundaries = enabled
	}
}
