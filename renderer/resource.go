// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Kirann1973/openage/renderer/resources"
)

// GeometryType identifies how a geometry sources its vertices.
type GeometryType uint8

const (
	// GeometryBufferless has no vertex buffer; the vertex shader derives
	// positions from the vertex index alone. Used for full-screen quads.
	GeometryBufferless GeometryType = iota

	// GeometryMesh draws from an uploaded vertex (and optionally index)
	// buffer.
	GeometryMesh
)

// Texture2d is a GPU-resident 2D texture created by a [Renderer].
//
// The texture's size and format are immutable; its pixel contents can be
// rewritten. Texture handles are shared: a texture may simultaneously be
// sampled by shaders and attached to a texture render target, and it lives
// as long as any holder keeps a reference.
type Texture2d interface {
	// Info returns the size and pixel format of the texture.
	Info() resources.Texture2dInfo

	// IntoData reads the texture contents back into a CPU-side buffer.
	IntoData() (*resources.Texture2dData, error)
}

// Geometry is an uploaded, drawable vertex arrangement created by a
// [Renderer].
type Geometry interface {
	// Type returns how the geometry sources its vertices.
	Type() GeometryType

	// UpdateVerts overwrites the vertex buffer contents. The data size
	// must match the existing buffer exactly; bufferless geometry has no
	// buffer to update and always returns an error.
	UpdateVerts(data []byte) error
}

// ShaderProgram is a compiled and linked shader created by a [Renderer].
type ShaderProgram interface {
	// ID returns a stable identity for the program, unique within its
	// renderer. Optimise sorts renderables by this value.
	ID() uint64

	// HasUniform reports whether the program declares a uniform with the
	// given name.
	HasUniform(name string) bool

	// CreateUniformInput creates an empty uniform value set bound to this
	// program. Values set on it are applied when a renderable carrying it
	// is drawn.
	CreateUniformInput() UniformInput

	// BindUniformBuffer connects a named uniform block of this program to
	// the given buffer, so that draws with this program read block values
	// from the buffer. Naming a block the program does not declare is a
	// programming error and panics.
	BindUniformBuffer(blockName string, buf UniformBuffer)
}

// UniformInput is a CPU-side staging set of uniform values for one shader
// program. It is created through [ShaderProgram.CreateUniformInput] and
// referenced by [Renderable]; the values are uploaded when the renderable
// is drawn.
//
// Setting a value for a uniform the program does not declare, or with a
// type that does not match the declaration, is a programming error and
// panics.
type UniformInput interface {
	// Program returns the shader program this input was created for.
	Program() ShaderProgram

	// SetInt32 stages a signed integer uniform.
	SetInt32(name string, v int32)

	// SetUint32 stages an unsigned integer uniform.
	SetUint32(name string, v uint32)

	// SetFloat32 stages a float uniform.
	SetFloat32(name string, v float32)

	// SetFloat64 stages a double uniform.
	SetFloat64(name string, v float64)

	// SetVec2 stages a vec2 uniform.
	SetVec2(name string, v mgl32.Vec2)

	// SetVec3 stages a vec3 uniform.
	SetVec3(name string, v mgl32.Vec3)

	// SetVec4 stages a vec4 uniform.
	SetVec4(name string, v mgl32.Vec4)

	// SetMat4 stages a mat4 uniform.
	SetMat4(name string, v mgl32.Mat4)

	// SetTexture stages a texture sampler uniform.
	SetTexture(name string, t Texture2d)
}

// UniformBuffer is a GPU-resident named-parameter block with a byte layout
// computed once at creation; see the renderer/resources layout engine. The
// buffer contents can be rewritten every frame, the layout never changes.
//
// The setters write one named input at its computed offset. Naming an
// input the block does not contain, or using a setter whose type does not
// match the input, is a programming error and panics.
type UniformBuffer interface {
	// Layout returns the immutable byte layout of the block.
	Layout() resources.BlockLayout

	// SetInt32 writes a signed integer input.
	SetInt32(name string, v int32)

	// SetUint32 writes an unsigned integer input.
	SetUint32(name string, v uint32)

	// SetFloat32 writes a float input.
	SetFloat32(name string, v float32)

	// SetFloat64 writes a double input.
	SetFloat64(name string, v float64)

	// SetVec2 writes a vec2 input.
	SetVec2(name string, v mgl32.Vec2)

	// SetVec3 writes a vec3 input.
	SetVec3(name string, v mgl32.Vec3)

	// SetVec4 writes a vec4 input.
	SetVec4(name string, v mgl32.Vec4)

	// SetMat4 writes a mat4 input.
	SetMat4(name string, v mgl32.Mat4)

	// Write overwrites a raw region of the buffer starting at the given
	// byte offset. The region must lie within the buffer.
	Write(data []byte, offset int) error
}
