// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package headless provides a renderer backend that runs without a GPU.
//
// The backend implements the full [renderer.Renderer] contract against
// CPU-side buffers: render targets are plain RGBA8 pixel buffers, uniform
// buffers hold their bytes in memory using the renderer/resources layout
// engine, and shader "programs" are identities without compiled code.
//
// Executing a pass does not rasterize anything. Instead the renderer
// records a [Trace] of the state transitions and draw calls it would have
// issued, with redundant transitions suppressed exactly like a GPU
// backend. Tests and tools assert against the trace:
//
//	rend, _ := headless.New(renderer.Config{Width: 64, Height: 64})
//	rend.Render(pass)
//	for _, op := range rend.Trace() { ... }
//
// Because no shader is ever compiled, uniform names on shader programs are
// accepted unchecked and block reflection is unavailable:
// [renderer.Renderer.AddUniformBufferFromShader] returns [ErrNoReflection].
// Uniform buffers built from an explicit block description behave fully.
//
// The package registers itself under the name "headless".
package headless
