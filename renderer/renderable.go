// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

// Renderable is a single draw-call descriptor: what to draw, which uniform
// values to bind, and the per-call state flags to apply.
//
// Renderables are plain values; callers build them and push them into a
// [RenderPass]. They carry shared references: the same Geometry or
// UniformInput may appear in many renderables.
type Renderable struct {
	// Geometry is what to draw. A nil geometry is valid and means a
	// state-only draw: uniforms are bound and the program activated, but
	// no draw call is issued. Full-screen passes driven purely by shader
	// logic use [Renderer.AddBufferlessQuad] geometry instead.
	Geometry Geometry

	// Uniforms binds the renderable to a shader program and carries the
	// uniform values applied before drawing. It must reference a valid
	// input created by this renderer; a nil Uniforms on a rendered or
	// optimised renderable is a programming error and panics.
	Uniforms UniformInput

	// AlphaBlending enables alpha blending for this draw.
	AlphaBlending bool

	// DepthTest enables depth testing for this draw.
	DepthTest bool
}
