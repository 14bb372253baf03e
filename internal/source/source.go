package source

import (
	"fmt"

	"ChecklistMapper/internal/ports"
)

// Registry keeps a mapping from source kinds to their implementations.
type Registry struct {
	sources map[string]ports.ChecklistSource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.ChecklistSource{}}
}

// Register adds or replaces a source implementation under a kind name.
func (r *Registry) Register(kind string, src ports.ChecklistSource) {
	if r.sources == nil {
		r.sources = map[string]ports.ChecklistSource{}
	}
	r.sources[kind] = src
}

// Resolve returns a source by kind or an error if it is absent.
func (r *Registry) Resolve(kind string) (ports.ChecklistSource, error) {
	if src, ok := r.sources[kind]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source kind %s is not registered", kind)
}
