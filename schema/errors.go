package schema

import (
	"errors"
	"fmt"
)

// Dimension names the capacity axis a violation was measured on.
type Dimension string

const (
	DimensionBytes  Dimension = "bytes"
	DimensionChars  Dimension = "chars"
	DimensionTokens Dimension = "tokens"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrProviderNotSupported = errors.New("provider not supported")
	ErrImageLimitExceeded   = errors.New("image limit exceeded")
	ErrCapacityExceeded     = errors.New("capacity exceeded")

	// ErrNoProgress signals that the partition loop could not consume any
	// characters. The unsplittable-input guard should make this
	// unreachable, so it is kept distinct from ErrCapacityExceeded to flag
	// an internal invariant break rather than an ordinary limit failure.
	ErrNoProgress = errors.New("chunking made no progress")
)

// CapacityError reports the first violated capacity dimension together with
// the measured and permitted values. It matches ErrCapacityExceeded under
// errors.Is.
type CapacityError struct {
	Dimension Dimension
	Actual    int
	Allowed   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded on %s: %d > %d", e.Dimension, e.Actual, e.Allowed)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ImageLimitError reports an image-count or per-image-size violation. Index
// identifies the offending image, or is -1 when the total count is the
// problem. It matches ErrImageLimitExceeded under errors.Is.
type ImageLimitError struct {
	Index   int
	Actual  int
	Allowed int
}

func (e *ImageLimitError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("too many images: %d > %d", e.Actual, e.Allowed)
	}
	return fmt.Sprintf("image %d exceeds size limit: %d bytes > %d bytes", e.Index, e.Actual, e.Allowed)
}

func (e *ImageLimitError) Unwrap() error { return ErrImageLimitExceeded }
