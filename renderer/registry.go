// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Well-known backend names.
const (
	// BackendOpenGL is the OpenGL 4.1 core backend. It needs a current
	// GL context on the calling thread.
	BackendOpenGL = "opengl"

	// BackendHeadless is the CPU-only backend used by tests and tools
	// that run without a GPU.
	BackendHeadless = "headless"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered or cannot be constructed in this environment.
var ErrBackendNotAvailable = errors.New("renderer: backend not available")

// Factory creates a new renderer instance for a backend.
type Factory func(cfg Config) (Renderer, error)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)

	// Priority order for backend selection (first constructible wins).
	// A GPU backend beats the headless fallback.
	backendPriority = []string{BackendOpenGL, BackendHeadless}
)

// Register registers a backend factory with the given name, typically from
// an init function in the backend package. A factory registered under an
// existing name replaces it.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get constructs a renderer from the named backend.
func Get(name string, cfg Config) (Renderer, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrBackendNotAvailable, name)
	}
	return factory(cfg)
}

// Default constructs a renderer from the best available backend: a GPU
// backend when one can be created in this environment, the headless
// fallback otherwise.
func Default(cfg Config) (Renderer, error) {
	registryMu.RLock()
	ordered := make([]Factory, 0, len(backends))
	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			ordered = append(ordered, factory)
		}
	}
	for name, factory := range backends {
		if !slices.Contains(backendPriority, name) {
			ordered = append(ordered, factory)
		}
	}
	registryMu.RUnlock()

	var firstErr error
	for _, factory := range ordered {
		r, err := factory(cfg)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrBackendNotAvailable
}
