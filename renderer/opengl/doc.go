// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package opengl implements the renderer backend on OpenGL 4.1 core.
//
// The backend requires a current GL context on the calling thread before a
// renderer is created; window and context creation belong to the caller
// (see cmd/renderdemo for a GLFW setup). All GL state the executor touches
// hangs off the renderer instance: clear color, blend function and depth
// function defaults are set at construction, and blend, depth and program
// state is tracked per instance so redundant transitions are skipped.
//
// Shader programs are compiled and linked eagerly, and their uniforms and
// uniform blocks are reflected at link time, so misspelled uniform names
// fail at the call site instead of silently at draw time.
//
// The package registers itself under the name "opengl".
package opengl
