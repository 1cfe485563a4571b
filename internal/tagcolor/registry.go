package tagcolor

import (
	"context"
	"maps"
	"sync"

	"github.com/Mikeoo31/cloud-atlas/internal/logger"
)

// Registry memoizes tag colors for the lifetime of a process and, when it
// was opened with a path, between runs.
type Registry struct {
	mu     sync.Mutex
	path   string
	colors map[string]string
	dirty  bool
}

// NewRegistry creates an in-memory registry seeded with a copy of initial.
func NewRegistry(initial map[string]string) *Registry {
	return &Registry{colors: maps.Clone(initial)}
}

// OpenRegistry loads the registry from a YAML file. A missing file starts empty.
func OpenRegistry(ctx context.Context, path string) (*Registry, error) {
	colors, err := LoadColors(path)
	if err != nil {
		return nil, err
	}

	for tag, color := range colors {
		if !IsPaletteColor(color) {
			logger.Warnf(ctx, "Tag '%s' has color '%s' outside the palette, keeping it", tag, color)
		}
	}

	logger.Debugf(ctx, "Loaded %d tag colors from '%s'", len(colors), path)

	return &Registry{path: path, colors: colors}, nil
}

// Colors returns the color of every requested tag, assigning colors to
// tags seen for the first time. added lists those tags in request order.
func (r *Registry) Colors(tags []string) (colors map[string]string, added []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := InitializeTagColors(tags, r.colors)

	colors = make(map[string]string, len(tags))

	for _, tag := range tags {
		if _, known := r.colors[tag]; !known {
			if _, listed := colors[tag]; !listed {
				added = append(added, tag)
			}
		}

		colors[tag] = updated[tag]
	}

	if len(added) > 0 {
		r.colors = updated
		r.dirty = true
	}

	return colors, added
}

// Snapshot returns a copy of every assignment.
func (r *Registry) Snapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.colors)
}

// Save writes the assignments back to the file the registry was opened from.
// It does nothing for in-memory registries or when nothing changed.
func (r *Registry) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path == "" || !r.dirty {
		return nil
	}

	if err := SaveColors(r.path, r.colors); err != nil {
		return err
	}

	r.dirty = false

	return nil
}
