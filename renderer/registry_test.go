// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"errors"
	"slices"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	const name = "test-backend"
	var built bool
	Register(name, func(cfg Config) (Renderer, error) {
		built = true
		return nil, nil
	})
	t.Cleanup(func() { Unregister(name) })

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false after Register", name)
	}
	if !slices.Contains(Available(), name) {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}

	if _, err := Get(name, Config{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	if !built {
		t.Error("Get did not invoke the registered factory")
	}
}

func TestGetUnknownBackend(t *testing.T) {
	_, err := Get("no-such-backend", Config{})
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Get(unknown) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestUnregister(t *testing.T) {
	const name = "test-unregister"
	Register(name, func(cfg Config) (Renderer, error) { return nil, nil })
	Unregister(name)

	if IsRegistered(name) {
		t.Errorf("IsRegistered(%q) = true after Unregister", name)
	}
}
