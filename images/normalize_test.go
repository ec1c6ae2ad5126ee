package images_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/chunkfit/images"
	"github.com/sevigo/chunkfit/schema"
)

// pngHeader is the 8-byte PNG signature plus minimal chunk bytes, enough
// for content sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestNormalize(t *testing.T) {
	t.Run("raw bytes with sniffed mime type", func(t *testing.T) {
		img, err := images.Normalize(pngHeader)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MimeType)
		assert.Equal(t, len(pngHeader), img.SizeBytes)
		assert.Equal(t, pngHeader, img.Data)
	})

	t.Run("explicit pair keeps declared mime type", func(t *testing.T) {
		img, err := images.Normalize(images.Pair{Data: []byte{1, 2, 3}, MimeType: "image/webp"})
		require.NoError(t, err)
		assert.Equal(t, "image/webp", img.MimeType)
		assert.Equal(t, 3, img.SizeBytes)
	})

	t.Run("plain base64 string", func(t *testing.T) {
		img, err := images.Normalize(base64.StdEncoding.EncodeToString(pngHeader))
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MimeType)
		assert.Equal(t, pngHeader, img.Data)
	})

	t.Run("data URL carries its mime type", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte{1, 2, 3, 4})
		img, err := images.Normalize("data:image/jpeg;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", img.MimeType)
		assert.Equal(t, 4, img.SizeBytes)
	})

	t.Run("already normalized image passes through", func(t *testing.T) {
		in := schema.NewImage([]byte{9, 9}, "image/gif")
		img, err := images.Normalize(in)
		require.NoError(t, err)
		assert.Equal(t, in, img)
	})

	t.Run("malformed data URL", func(t *testing.T) {
		_, err := images.Normalize("data:image/png;base64")
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := images.Normalize("!!not-base64!!")
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := images.Normalize([]byte{})
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})

	t.Run("unsupported representation", func(t *testing.T) {
		_, err := images.Normalize(42)
		assert.ErrorIs(t, err, schema.ErrInvalidInput)
	})
}

func TestNormalizeAll(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		imgs, err := images.NormalizeAll(nil)
		require.NoError(t, err)
		assert.Nil(t, imgs)
	})

	t.Run("order preserved", func(t *testing.T) {
		imgs, err := images.NormalizeAll([]any{
			images.Pair{Data: []byte{1}, MimeType: "image/png"},
			images.Pair{Data: []byte{2, 2}, MimeType: "image/jpeg"},
		})
		require.NoError(t, err)
		require.Len(t, imgs, 2)
		assert.Equal(t, 1, imgs[0].SizeBytes)
		assert.Equal(t, 2, imgs[1].SizeBytes)
	})

	t.Run("failure names the offending index", func(t *testing.T) {
		_, err := images.NormalizeAll([]any{
			images.Pair{Data: []byte{1}, MimeType: "image/png"},
			"!!not-base64!!",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "image 1")
	})
}

func TestValidate(t *testing.T) {
	lim := schema.Limits{MaxImages: 10, ImageByteLimit: 100}

	t.Run("within limits", func(t *testing.T) {
		imgs := []schema.Image{schema.NewImage(make([]byte, 100), "image/png")}
		assert.NoError(t, images.Validate(imgs, lim))
	})

	t.Run("too many images", func(t *testing.T) {
		imgs := make([]schema.Image, 20)
		for i := range imgs {
			imgs[i] = schema.NewImage([]byte{1}, "image/png")
		}

		err := images.Validate(imgs, lim)
		require.Error(t, err)

		var imgErr *schema.ImageLimitError
		require.ErrorAs(t, err, &imgErr)
		assert.Equal(t, -1, imgErr.Index)
		assert.Equal(t, 20, imgErr.Actual)
		assert.Equal(t, 10, imgErr.Allowed)
	})

	t.Run("oversized image identified by index", func(t *testing.T) {
		imgs := []schema.Image{
			schema.NewImage(make([]byte, 50), "image/png"),
			schema.NewImage(make([]byte, 101), "image/jpeg"),
		}

		err := images.Validate(imgs, lim)
		require.Error(t, err)

		var imgErr *schema.ImageLimitError
		require.ErrorAs(t, err, &imgErr)
		assert.Equal(t, 1, imgErr.Index)
		assert.Equal(t, 101, imgErr.Actual)
		assert.Equal(t, 100, imgErr.Allowed)
	})
}
