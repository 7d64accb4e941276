// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// Built-in backend names.
const (
	BackendGG       = "gg"
	BackendVector   = "vector"
	BackendFogleman = "fogleman"
	BackendRecord   = "record"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered surface implementation.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Built-in priorities:
	//   - 30: "gg"
	//   - 20: "vector"
	//   - 10: "fogleman"
	//   - 0: "record"
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// Registry maps backend names to factories.
//
// Example:
//
//	r := surface.NewRegistry()
//	r.Register("skia", 40, skiaFactory, nil)
//	s, err := r.New(surface.Options{Width: 105, Height: 17})
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry.
// Most code should use the package-level functions backed by the default
// registry, which has the built-in backends registered.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

var defaultRegistry = NewRegistry()

// Register adds a backend to the default registry.
// If available is nil, the backend is assumed always available.
// Registering an existing name replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the default registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// Names returns the available backends of the default registry, highest
// priority first.
func Names() []string {
	return defaultRegistry.Names()
}

// NewSurface creates a surface with the best available backend.
func NewSurface(width, height int) (Surface, error) {
	return defaultRegistry.New(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface with the named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return defaultRegistry.NewByName(name, Options{Width: width, Height: height})
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister removes a backend from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Lookup returns the named backend.
func (r *Registry) Lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// Names returns the available backend names, highest priority first.
// Backends of equal priority are ordered by name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, 0, len(list))
	for _, b := range list {
		if b.Available() {
			names = append(names, b.Name)
		}
	}
	return names
}

// New creates a surface with the best available backend, falling back to
// the next one when a factory fails.
func (r *Registry) New(opts Options) (Surface, error) {
	names := r.Names()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range names {
		s, err := r.NewByName(name, opts)
		if err == nil {
			slogger().Debug("surface: backend selected", "name", name, "width", opts.Width, "height", opts.Height)
			return s, nil
		}
		slogger().Warn("surface: backend failed", "name", name, "err", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewByName creates a surface with the named backend.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts.normalize())
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no backend is registered or
	// available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register(BackendGG, 30, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
	Register(BackendVector, 20, func(opts Options) (Surface, error) {
		return NewVectorSurface(opts.Width, opts.Height), nil
	}, nil)
	Register(BackendFogleman, 10, func(opts Options) (Surface, error) {
		return NewFoglemanSurface(opts.Width, opts.Height), nil
	}, nil)
	Register(BackendRecord, 0, func(opts Options) (Surface, error) {
		return NewRecordSurface(opts.Width, opts.Height), nil
	}, nil)
}
