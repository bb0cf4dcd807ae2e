// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package renderer turns ordered collections of draw-call descriptors into
// GPU work, hiding the concrete graphics backend behind a stable
// abstraction.
//
// # Core model
//
//   - [Renderable]: one draw call's worth of geometry, uniform binding and
//     per-call state flags.
//   - [RenderPass]: a priority-layered, incrementally mutable sequence of
//     renderables plus the [RenderTarget] it draws into.
//   - [Renderer]: factory for all GPU resources and the executor that walks
//     a pass and issues the minimal state changes and draw calls needed to
//     realize it.
//
// Backends implement [Renderer] and register themselves with this package;
// see [Register] and the renderer/opengl and renderer/headless packages.
// Resource descriptions (pixel buffers, mesh data, shader sources, uniform
// block layouts) live in renderer/resources and never touch a graphics API.
//
// # Building and drawing
//
//	rend, err := renderer.Get("headless", renderer.Config{Width: 800, Height: 600})
//	if err != nil { ... }
//
//	prog, err := rend.AddShader(vert, frag)
//	quad := rend.AddBufferlessQuad()
//	input := prog.CreateUniformInput()
//
//	pass := rend.AddRenderPass(nil, rend.DisplayTarget())
//	pass.AddRenderable(renderer.Renderable{
//	    Geometry: quad,
//	    Uniforms: input,
//	}, 10)
//
//	rend.Render(pass)
//
// # Ownership and errors
//
// Every resource is owned by the renderer that created it; passing a
// resource to a different renderer instance is a programming error and
// panics. Data errors (shader compilation, bad buffer sizes, backend
// failures) are returned as errors. A renderable without geometry is not
// an error: it is a state-only draw used for shader-driven full-screen
// passes.
//
// # Concurrency
//
// The package is single-threaded: Render must run on the thread
// owning the graphics context, and a pass must not be mutated concurrently
// with a Render call reading it. Resource metadata is immutable after
// creation, so concurrent reads of it are safe.
package renderer
