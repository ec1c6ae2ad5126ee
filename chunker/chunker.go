// Package chunker wires limit resolution, image normalization and the text
// partitioner into a single pre-flight operation: given a provider, a model
// and an input payload, it returns chunks that each fit the provider's
// capacity limits, or fails without producing any.
package chunker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/chunkfit/images"
	"github.com/sevigo/chunkfit/limits"
	"github.com/sevigo/chunkfit/schema"
	"github.com/sevigo/chunkfit/textsplitter"
)

type Chunker struct {
	registry *limits.Registry
	logger   *slog.Logger
}

// New creates a Chunker. A nil registry falls back to the built-in preset
// table; a nil logger falls back to slog.Default().
func New(registry *limits.Registry, logger *slog.Logger) *Chunker {
	if registry == nil {
		registry = limits.DefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chunker{
		registry: registry,
		logger:   logger,
	}
}

// Chunk resolves the capacity limits for the request, normalizes any
// attached images, and returns the input either untouched as a single chunk
// or partitioned into limit-compliant chunks. Identical requests always
// yield identical results; on failure no chunks are returned.
func (c *Chunker) Chunk(ctx context.Context, req schema.Request) (*schema.Result, error) {
	if req.Input == "" {
		return nil, fmt.Errorf("%w: input text is required", schema.ErrInvalidInput)
	}
	if req.Provider == "" || req.Model == "" {
		return nil, fmt.Errorf("%w: provider and model are required", schema.ErrInvalidInput)
	}

	opts := schema.ChunkOptions{RespectWordBoundaries: true}
	if req.Options != nil {
		opts = *req.Options
	}
	if opts.ChunkOverlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap cannot be negative: %d", schema.ErrInvalidInput, opts.ChunkOverlap)
	}

	lim, err := c.registry.Resolve(req.Provider, req.Model)
	if err != nil {
		return nil, err
	}
	lim, err = limits.Merge(lim, opts.CustomLimits)
	if err != nil {
		return nil, err
	}

	imgs, err := images.NormalizeAll(req.Images)
	if err != nil {
		return nil, err
	}
	if err := images.Validate(imgs, lim); err != nil {
		return nil, err
	}

	c.logger.Debug("chunking input",
		"provider", req.Provider,
		"model", req.Model,
		"input_chars", textsplitter.RuneLength(req.Input),
		"input_bytes", textsplitter.ByteLength(req.Input),
		"images", len(imgs),
	)

	var chunks []schema.Chunk
	if err := textsplitter.Fits(req.Input, imgs, lim); err == nil {
		chunks = []schema.Chunk{{Text: req.Input, Images: imgs, Index: 0}}
	} else {
		splitter := textsplitter.NewLimitSplitter(
			textsplitter.WithChunkOverlap(opts.ChunkOverlap),
			textsplitter.WithWordBoundaries(opts.RespectWordBoundaries),
		)
		chunks, err = splitter.Split(ctx, req.Input, imgs, lim)
		if err != nil {
			return nil, err
		}
	}

	meta := Aggregate(chunks, req.Provider, req.Model)
	c.logger.Debug("chunking complete",
		"chunks", meta.TotalChunks,
		"estimated_tokens", meta.EstimatedTokens,
		"estimated_bytes", meta.EstimatedBytes,
	)

	return &schema.Result{Chunks: chunks, Metadata: meta}, nil
}
