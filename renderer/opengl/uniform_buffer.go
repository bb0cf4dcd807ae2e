// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// uniformBuffer is a GL buffer object bound to a fixed uniform buffer
// binding point, with the byte layout computed once at creation.
type uniformBuffer struct {
	owner   *Renderer
	handle  uint32
	binding uint32
	layout  resources.BlockLayout
}

var _ renderer.UniformBuffer = (*uniformBuffer)(nil)

func (b *uniformBuffer) ownerID() uuid.UUID { return b.owner.id }

// newUniformBuffer allocates GPU storage for the layout and attaches it to
// a fresh binding point.
func newUniformBuffer(owner *Renderer, layout resources.BlockLayout) (*uniformBuffer, error) {
	binding, err := owner.ctx.NextUniformBufferBinding()
	if err != nil {
		return nil, err
	}

	b := &uniformBuffer{owner: owner, binding: binding, layout: layout}
	gl.GenBuffers(1, &b.handle)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.handle)
	gl.BufferData(gl.UNIFORM_BUFFER, layout.Size(), nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, b.handle)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	if err := owner.ctx.CheckError(); err != nil {
		gl.DeleteBuffers(1, &b.handle)
		return nil, fmt.Errorf("opengl: creating %d byte uniform buffer: %w", layout.Size(), err)
	}

	renderer.Logger().Debug("created uniform buffer", "renderer", owner.id,
		"handle", b.handle, "binding", binding, "size", layout.Size())
	return b, nil
}

func (b *uniformBuffer) Layout() resources.BlockLayout {
	return b.layout
}

func (b *uniformBuffer) SetInt32(name string, v int32) {
	b.set(name, resources.I32, binary.LittleEndian.AppendUint32(nil, uint32(v)))
}

func (b *uniformBuffer) SetUint32(name string, v uint32) {
	b.set(name, resources.U32, binary.LittleEndian.AppendUint32(nil, v))
}

func (b *uniformBuffer) SetFloat32(name string, v float32) {
	b.set(name, resources.F32, appendFloat32(nil, v))
}

func (b *uniformBuffer) SetFloat64(name string, v float64) {
	b.set(name, resources.F64, binary.LittleEndian.AppendUint64(nil, math.Float64bits(v)))
}

func (b *uniformBuffer) SetVec2(name string, v mgl32.Vec2) {
	b.set(name, resources.V2F32, appendFloats(nil, v[:]))
}

func (b *uniformBuffer) SetVec3(name string, v mgl32.Vec3) {
	b.set(name, resources.V3F32, appendFloats(nil, v[:]))
}

func (b *uniformBuffer) SetVec4(name string, v mgl32.Vec4) {
	b.set(name, resources.V4F32, appendFloats(nil, v[:]))
}

func (b *uniformBuffer) SetMat4(name string, v mgl32.Mat4) {
	b.set(name, resources.M4F32, appendFloats(nil, v[:]))
}

// Write overwrites a raw region of the buffer.
func (b *uniformBuffer) Write(data []byte, offset int) error {
	if offset < 0 || offset+len(data) > b.layout.Size() {
		return fmt.Errorf("opengl: write of %d bytes at offset %d exceeds %d byte buffer",
			len(data), offset, b.layout.Size())
	}
	b.upload(data, offset)
	return nil
}

// set uploads one named input at its layout offset. Unknown names and
// type mismatches are programming errors.
func (b *uniformBuffer) set(name string, typ resources.UBOInputType, data []byte) {
	entry, err := b.layout.Entry(name)
	if err != nil {
		panic(fmt.Sprintf("opengl: uniform buffer %d has no input %q", b.handle, name))
	}
	if entry.Type != typ {
		panic(fmt.Sprintf("opengl: uniform buffer input %q is %s, written as %s",
			name, entry.Type, typ))
	}
	b.upload(data, entry.Offset)
}

func (b *uniformBuffer) upload(data []byte, offset int) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.handle)
	gl.BufferSubData(gl.UNIFORM_BUFFER, offset, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// appendFloat32 appends the little-endian bytes of f.
func appendFloat32(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}

// appendFloats appends the little-endian bytes of all values.
func appendFloats(b []byte, fs []float32) []byte {
	for _, f := range fs {
		b = appendFloat32(b, f)
	}
	return b
}
