package chunker

import (
	"github.com/sevigo/chunkfit/schema"
	"github.com/sevigo/chunkfit/textsplitter"
)

// Aggregate sums the estimated token and byte footprint across chunks.
// Overlap regions count once per chunk they appear in: the totals describe
// what will actually be transmitted, not the logical input size.
func Aggregate(chunks []schema.Chunk, provider, model string) schema.Metadata {
	meta := schema.Metadata{
		Provider:    provider,
		Model:       model,
		TotalChunks: len(chunks),
	}
	for _, chunk := range chunks {
		meta.EstimatedTokens += textsplitter.EstimateTokens(chunk.Text)
		meta.EstimatedBytes += textsplitter.ByteLength(chunk.Text) + textsplitter.TotalImageBytes(chunk.Images)
	}
	return meta
}
