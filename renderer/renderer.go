// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import "github.com/Kirann1973/openage/renderer/resources"

// Config carries the construction parameters common to all backends.
type Config struct {
	// Width is the initial display target width in pixels.
	Width int

	// Height is the initial display target height in pixels.
	Height int
}

// Renderer is the factory for all GPU resources and the executor that
// realizes render passes. One implementation exists per backend; see the
// renderer/opengl and renderer/headless packages.
//
// All factory methods validate their inputs structurally and return an
// independently owned resource. Resources are bound to the renderer that
// created them: passing a resource created by a different renderer
// instance is a programming error and panics.
//
// A Renderer is single-threaded: Render must run on the thread owning the
// graphics context, and no internal locking is provided.
type Renderer interface {
	// AddTexture creates a texture initialised with the given pixel data.
	AddTexture(data *resources.Texture2dData) (Texture2d, error)

	// AddTextureFor creates a texture with uninitialised storage of the
	// given size and format, e.g. for use as a render target attachment.
	AddTextureFor(info resources.Texture2dInfo) (Texture2d, error)

	// AddShader compiles and links a shader program from one source per
	// stage.
	AddShader(srcs ...resources.ShaderSource) (ShaderProgram, error)

	// AddMeshGeometry uploads mesh data into drawable geometry.
	AddMeshGeometry(mesh *resources.MeshData) (Geometry, error)

	// AddBufferlessQuad creates a four-vertex triangle-strip geometry
	// without a vertex buffer; the vertex shader derives positions from
	// the vertex index. Used for full-screen passes.
	AddBufferlessQuad() Geometry

	// AddRenderPass creates a pass over the given renderables, drawing
	// into target.
	AddRenderPass(renderables []Renderable, target RenderTarget) *RenderPass

	// CreateTextureTarget creates an off-screen target writing into the
	// given textures. Color textures attach in list order; at most one
	// depth-format texture may be included and becomes the depth
	// attachment. All textures must have been created by this renderer.
	CreateTextureTarget(textures []Texture2d) (RenderTarget, error)

	// DisplayTarget returns the on-screen target.
	DisplayTarget() RenderTarget

	// AddUniformBuffer creates a uniform buffer with the layout computed
	// from an explicit block description.
	AddUniformBuffer(info *resources.UniformBufferInfo) (UniformBuffer, error)

	// AddUniformBufferFromShader creates a uniform buffer whose layout is
	// derived by reflecting the named uniform block of a compiled shader.
	// An unknown block name is a construction-time failure.
	AddUniformBufferFromShader(prog ShaderProgram, blockName string) (UniformBuffer, error)

	// DisplayData reads the current display contents back into an RGBA8
	// pixel buffer, flipped to top-left origin. Diagnostics and
	// screenshots, not the hot path.
	DisplayData() (*resources.Texture2dData, error)

	// ResizeDisplayTarget resizes the display target's backing storage.
	// Passes referencing the display target are unaffected.
	ResizeDisplayTarget(width, height int)

	// Optimise stable-sorts each layer of the pass by shader program
	// identity to minimize shader switches; see [OptimisePass].
	// Idempotent until the pass's renderables change.
	Optimise(pass *RenderPass)

	// Render executes the pass: binds its target, clears color and depth,
	// then walks the renderables in sequence order, applying blend and
	// depth state, binding uniforms and issuing draws. Redundant state
	// transitions are suppressed; the sequence order is never changed.
	Render(pass *RenderPass)

	// CheckError surfaces the backend's most recent unchecked error
	// condition, if any. A development diagnostic, not a correctness
	// mechanism; returns nil when no error is pending.
	CheckError() error
}
