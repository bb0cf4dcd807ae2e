// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
)

// uniformKind tags a staged uniform value.
type uniformKind uint8

const (
	uniformI32 uniformKind = iota
	uniformU32
	uniformF32
	uniformF64
	uniformV2F32
	uniformV3F32
	uniformV4F32
	uniformM4F32
	uniformTexture
)

// uniformValue is one staged value awaiting upload at draw time.
type uniformValue struct {
	kind uniformKind
	tex  *texture2d
	f64  float64
	f32  [16]float32
	i32  int32
	u32  uint32
}

// uniformInput stages uniform values for one program. Values are uploaded
// when a renderable carrying the input is drawn.
type uniformInput struct {
	owner  *Renderer
	prog   *shaderProgram
	values map[string]uniformValue
}

var _ renderer.UniformInput = (*uniformInput)(nil)

func (in *uniformInput) ownerID() uuid.UUID { return in.owner.id }

func (in *uniformInput) Program() renderer.ShaderProgram {
	return in.prog
}

// stage records a value for a declared uniform. Unknown names and values
// whose type does not match the shader declaration are programming
// errors.
func (in *uniformInput) stage(name string, want uint32, val uniformValue) {
	decl, ok := in.prog.uniforms[name]
	if !ok {
		panic(fmt.Sprintf("opengl: shader program %d has no uniform %q", in.prog.handle, name))
	}
	if decl.glType != want {
		panic(fmt.Sprintf("opengl: uniform %q of shader program %d has GL type 0x%04x, written as 0x%04x",
			name, in.prog.handle, decl.glType, want))
	}
	in.values[name] = val
}

func (in *uniformInput) SetInt32(name string, v int32) {
	in.stage(name, gl.INT, uniformValue{kind: uniformI32, i32: v})
}

func (in *uniformInput) SetUint32(name string, v uint32) {
	in.stage(name, gl.UNSIGNED_INT, uniformValue{kind: uniformU32, u32: v})
}

func (in *uniformInput) SetFloat32(name string, v float32) {
	in.stage(name, gl.FLOAT, uniformValue{kind: uniformF32, f32: [16]float32{v}})
}

func (in *uniformInput) SetFloat64(name string, v float64) {
	in.stage(name, gl.DOUBLE, uniformValue{kind: uniformF64, f64: v})
}

func (in *uniformInput) SetVec2(name string, v mgl32.Vec2) {
	in.stage(name, gl.FLOAT_VEC2, uniformValue{kind: uniformV2F32, f32: [16]float32{v[0], v[1]}})
}

func (in *uniformInput) SetVec3(name string, v mgl32.Vec3) {
	in.stage(name, gl.FLOAT_VEC3, uniformValue{kind: uniformV3F32, f32: [16]float32{v[0], v[1], v[2]}})
}

func (in *uniformInput) SetVec4(name string, v mgl32.Vec4) {
	in.stage(name, gl.FLOAT_VEC4, uniformValue{kind: uniformV4F32, f32: [16]float32{v[0], v[1], v[2], v[3]}})
}

func (in *uniformInput) SetMat4(name string, v mgl32.Mat4) {
	val := uniformValue{kind: uniformM4F32}
	copy(val.f32[:], v[:])
	in.stage(name, gl.FLOAT_MAT4, val)
}

// SetTexture stages a sampler binding. The texture must belong to the
// same renderer as the input.
func (in *uniformInput) SetTexture(name string, t renderer.Texture2d) {
	tex := in.owner.ownTexture(t, "SetTexture")

	decl, ok := in.prog.uniforms[name]
	if !ok {
		panic(fmt.Sprintf("opengl: shader program %d has no uniform %q", in.prog.handle, name))
	}
	if !glSampler(decl.glType) {
		panic(fmt.Sprintf("opengl: uniform %q of shader program %d is not a sampler", name, in.prog.handle))
	}
	in.values[name] = uniformValue{kind: uniformTexture, tex: tex}
}
