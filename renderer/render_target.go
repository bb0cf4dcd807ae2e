// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

// RenderTarget is a destination for draw calls: either the display surface
// or an off-screen set of textures.
//
// A target's identity is immutable after construction; resizing the
// display target replaces its backing storage, not the logical handle held
// by passes. A texture target shares ownership of its textures with
// whoever else holds those handles.
type RenderTarget interface {
	// Size returns the current target dimensions in pixels.
	Size() (width, height int)

	// Textures returns the color textures of a texture target in
	// attachment order. The display target returns nil.
	Textures() []Texture2d
}
