// Package limits resolves provider/model capacity presets. A Registry is an
// immutable table loaded once at process start and passed by reference into
// whatever needs to resolve limits; nothing in this package holds global
// state.
package limits

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/sevigo/chunkfit/schema"
)

// DefaultModelKey is the per-provider fallback entry consulted when the
// exact model key is absent.
const DefaultModelKey = "default"

// Registry maps provider → model → Limits. Keys are matched
// case-insensitively.
type Registry struct {
	providers map[string]map[string]schema.Limits
}

// NewRegistry copies table into an immutable registry.
func NewRegistry(table map[string]map[string]schema.Limits) *Registry {
	providers := make(map[string]map[string]schema.Limits, len(table))
	for provider, models := range table {
		entry := make(map[string]schema.Limits, len(models))
		for model, lim := range models {
			entry[strings.ToLower(model)] = lim
		}
		providers[strings.ToLower(provider)] = entry
	}
	return &Registry{providers: providers}
}

// Resolve returns the limits for provider and model, falling back to the
// provider's "default" entry when the model has no preset of its own.
func (r *Registry) Resolve(provider, model string) (schema.Limits, error) {
	models, ok := r.providers[strings.ToLower(provider)]
	if !ok {
		return schema.Limits{}, fmt.Errorf("%w: %q", schema.ErrProviderNotSupported, provider)
	}
	if lim, ok := models[strings.ToLower(model)]; ok {
		return lim, nil
	}
	if lim, ok := models[DefaultModelKey]; ok {
		return lim, nil
	}
	return schema.Limits{}, fmt.Errorf("%w: %s/%s has no preset and no provider default", schema.ErrProviderNotSupported, provider, model)
}

// Merge overlays the non-zero fields of override onto base, leaving base
// untouched. A nil override returns base as-is.
func Merge(base schema.Limits, override *schema.Limits) (schema.Limits, error) {
	if override == nil {
		return base, nil
	}
	merged := base
	if err := mergo.Merge(&merged, *override, mergo.WithOverride); err != nil {
		return schema.Limits{}, fmt.Errorf("merging custom limits: %w", err)
	}
	return merged, nil
}
