package limits

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/chunkfit/schema"
)

// Load reads a provider → model → limits table in YAML form:
//
//	openai:
//	  gpt-4o:
//	    max_tokens: 128000
//	    max_chars: 512000
//	    max_bytes: 33554432
//	    max_images: 10
//	    image_byte_limit: 20971520
//
// Unknown fields are rejected so typos in operator-supplied tables surface
// immediately instead of silently resolving to zero limits.
func Load(r io.Reader) (*Registry, error) {
	var table map[string]map[string]schema.Limits

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("decoding limits table: %w", err)
	}

	for provider, models := range table {
		for model, lim := range models {
			if lim.MaxTokens < 0 || lim.MaxChars < 0 || lim.MaxBytes < 0 || lim.MaxImages < 0 || lim.ImageByteLimit < 0 {
				return nil, fmt.Errorf("%w: negative limit for %s/%s", schema.ErrInvalidInput, provider, model)
			}
		}
	}

	return NewRegistry(table), nil
}
