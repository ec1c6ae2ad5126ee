package textsplitter

import (
	"context"

	"github.com/sevigo/chunkfit/schema"
)

type Splitter interface {
	Split(ctx context.Context, text string, images []schema.Image, lim schema.Limits) ([]schema.Chunk, error)
}
