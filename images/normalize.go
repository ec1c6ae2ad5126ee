// Package images normalizes heterogeneous raw image representations into
// schema.Image values and validates them against capacity limits. The core
// partitioner only ever consumes the normalized form.
package images

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/sevigo/chunkfit/schema"
)

// Pair is an explicit byte buffer with a declared MIME type.
type Pair struct {
	Data     []byte
	MimeType string
}

const (
	dataURLPrefix = "data:"
	base64Marker  = ";base64"
)

// Normalize converts one raw representation into a schema.Image. Accepted
// forms: []byte (MIME type sniffed from content), base64 string (optionally
// a data URL carrying its own MIME type), Pair, or an already normalized
// schema.Image.
func Normalize(src any) (schema.Image, error) {
	switch v := src.(type) {
	case schema.Image:
		return v, nil
	case []byte:
		return fromBytes(v, "")
	case Pair:
		return fromBytes(v.Data, v.MimeType)
	case string:
		return fromBase64(v)
	default:
		return schema.Image{}, fmt.Errorf("%w: unsupported image representation %T", schema.ErrInvalidInput, src)
	}
}

// NormalizeAll converts every raw source in order, identifying the index of
// the first source that fails.
func NormalizeAll(sources []any) ([]schema.Image, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	imgs := make([]schema.Image, 0, len(sources))
	for i, src := range sources {
		img, err := Normalize(src)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// Validate checks the image count and each image's size against lim.
func Validate(imgs []schema.Image, lim schema.Limits) error {
	if len(imgs) > lim.MaxImages {
		return &schema.ImageLimitError{Index: -1, Actual: len(imgs), Allowed: lim.MaxImages}
	}
	for i, img := range imgs {
		if img.SizeBytes > lim.ImageByteLimit {
			return &schema.ImageLimitError{Index: i, Actual: img.SizeBytes, Allowed: lim.ImageByteLimit}
		}
	}
	return nil
}

func fromBytes(data []byte, mimeType string) (schema.Image, error) {
	if len(data) == 0 {
		return schema.Image{}, fmt.Errorf("%w: image buffer is empty", schema.ErrInvalidInput)
	}
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	return schema.NewImage(data, mimeType), nil
}

func fromBase64(s string) (schema.Image, error) {
	mimeType := ""
	if strings.HasPrefix(s, dataURLPrefix) {
		meta, payload, ok := strings.Cut(s[len(dataURLPrefix):], ",")
		if !ok {
			return schema.Image{}, fmt.Errorf("%w: malformed data URL", schema.ErrInvalidInput)
		}
		mimeType = strings.TrimSuffix(meta, base64Marker)
		s = payload
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return schema.Image{}, fmt.Errorf("%w: decoding base64 image: %v", schema.ErrInvalidInput, err)
	}
	return fromBytes(data, mimeType)
}
