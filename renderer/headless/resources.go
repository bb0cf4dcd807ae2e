// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// texture2d is a CPU-resident texture: its pixel bytes live in memory.
type texture2d struct {
	owner *Renderer
	info  resources.Texture2dInfo
	data  []byte
}

var _ renderer.Texture2d = (*texture2d)(nil)

func (t *texture2d) ownerID() uuid.UUID { return t.owner.id }

func (t *texture2d) Info() resources.Texture2dInfo {
	return t.info
}

func (t *texture2d) IntoData() (*resources.Texture2dData, error) {
	buf := make([]byte, len(t.data))
	copy(buf, t.data)
	return resources.NewTexture2dData(t.info, buf)
}

// geometry mirrors an uploaded vertex arrangement. The vertex bytes are
// kept so UpdateVerts can enforce the size contract.
type geometry struct {
	owner *Renderer
	typ   renderer.GeometryType
	info  resources.VertexInfo
	data  []byte
}

var _ renderer.Geometry = (*geometry)(nil)

func (g *geometry) ownerID() uuid.UUID { return g.owner.id }

func (g *geometry) Type() renderer.GeometryType {
	return g.typ
}

func (g *geometry) UpdateVerts(data []byte) error {
	if g.typ == renderer.GeometryBufferless {
		return fmt.Errorf("headless: bufferless geometry has no vertex buffer to update")
	}
	if len(data) != len(g.data) {
		return fmt.Errorf("headless: vertex update is %d bytes, buffer holds %d", len(data), len(g.data))
	}
	copy(g.data, data)
	return nil
}

// shaderProgram is a shader identity without compiled code. Uniform names
// are accepted unchecked since there is no reflected declaration to check
// against.
type shaderProgram struct {
	owner *Renderer
	id    uint64

	// boundBlocks remembers block-to-buffer bindings for inspection.
	boundBlocks map[string]renderer.UniformBuffer
}

var _ renderer.ShaderProgram = (*shaderProgram)(nil)

func (p *shaderProgram) ownerID() uuid.UUID { return p.owner.id }

func (p *shaderProgram) ID() uint64 {
	return p.id
}

func (p *shaderProgram) HasUniform(string) bool {
	// No compiled shader to reflect; every name is assumed to exist.
	return true
}

func (p *shaderProgram) CreateUniformInput() renderer.UniformInput {
	return &uniformInput{
		owner:  p.owner,
		prog:   p,
		values: make(map[string]uniformValue),
	}
}

func (p *shaderProgram) BindUniformBuffer(blockName string, buf renderer.UniformBuffer) {
	b := p.owner.ownUniformBuffer(buf, "BindUniformBuffer")
	if p.boundBlocks == nil {
		p.boundBlocks = make(map[string]renderer.UniformBuffer)
	}
	p.boundBlocks[blockName] = b
}

// uniformValue is one staged uniform value.
type uniformValue struct {
	typ resources.UBOInputType
	tex renderer.Texture2d
	f64 float64
	f32 [16]float32
	i32 int32
	u32 uint32
}

// uniformInput stages uniform values for one program.
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

func (in *uniformInput) SetInt32(name string, v int32) {
	in.values[name] = uniformValue{typ: resources.I32, i32: v}
}

func (in *uniformInput) SetUint32(name string, v uint32) {
	in.values[name] = uniformValue{typ: resources.U32, u32: v}
}

func (in *uniformInput) SetFloat32(name string, v float32) {
	in.values[name] = uniformValue{typ: resources.F32, f32: [16]float32{v}}
}

func (in *uniformInput) SetFloat64(name string, v float64) {
	in.values[name] = uniformValue{typ: resources.F64, f64: v}
}

func (in *uniformInput) SetVec2(name string, v mgl32.Vec2) {
	in.values[name] = uniformValue{typ: resources.V2F32, f32: [16]float32{v[0], v[1]}}
}

func (in *uniformInput) SetVec3(name string, v mgl32.Vec3) {
	in.values[name] = uniformValue{typ: resources.V3F32, f32: [16]float32{v[0], v[1], v[2]}}
}

func (in *uniformInput) SetVec4(name string, v mgl32.Vec4) {
	in.values[name] = uniformValue{typ: resources.V4F32, f32: [16]float32{v[0], v[1], v[2], v[3]}}
}

func (in *uniformInput) SetMat4(name string, v mgl32.Mat4) {
	val := uniformValue{typ: resources.M4F32}
	copy(val.f32[:], v[:])
	in.values[name] = val
}

func (in *uniformInput) SetTexture(name string, t renderer.Texture2d) {
	tex := in.owner.ownTexture(t, "SetTexture")
	in.values[name] = uniformValue{tex: tex}
}

// uniformBuffer holds block bytes in memory, written at the offsets the
// layout engine computed.
type uniformBuffer struct {
	owner  *Renderer
	layout resources.BlockLayout
	data   []byte
}

var _ renderer.UniformBuffer = (*uniformBuffer)(nil)

func (b *uniformBuffer) ownerID() uuid.UUID { return b.owner.id }

func (b *uniformBuffer) Layout() resources.BlockLayout {
	return b.layout
}

// Data returns the raw block bytes. Tests read written values back
// through it.
func (b *uniformBuffer) Data() []byte {
	return b.data
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

func (b *uniformBuffer) Write(data []byte, offset int) error {
	if offset < 0 || offset+len(data) > len(b.data) {
		return fmt.Errorf("headless: write of %d bytes at offset %d exceeds %d byte buffer",
			len(data), offset, len(b.data))
	}
	copy(b.data[offset:], data)
	return nil
}

// set writes one named input at its layout offset. Unknown names and type
// mismatches are programming errors.
func (b *uniformBuffer) set(name string, typ resources.UBOInputType, data []byte) {
	entry, err := b.layout.Entry(name)
	if err != nil {
		panic(fmt.Sprintf("headless: uniform buffer has no input %q", name))
	}
	if entry.Type != typ {
		panic(fmt.Sprintf("headless: uniform buffer input %q is %s, written as %s",
			name, entry.Type, typ))
	}
	copy(b.data[entry.Offset:], data)
}

// renderTarget is a CPU pixel buffer destination. The display target owns
// its own RGBA8 buffer; texture targets write into their attached
// textures.
type renderTarget struct {
	owner   *Renderer
	display bool

	// Display target storage, rows bottom-up like a GPU readback.
	width, height int
	pixels        []byte

	// Texture target attachments.
	colors []*texture2d
	depth  *texture2d
}

var _ renderer.RenderTarget = (*renderTarget)(nil)

func (t *renderTarget) ownerID() uuid.UUID { return t.owner.id }

func (t *renderTarget) Size() (int, int) {
	if t.display {
		return t.width, t.height
	}
	if len(t.colors) > 0 {
		return t.colors[0].info.Width, t.colors[0].info.Height
	}
	return t.depth.info.Width, t.depth.info.Height
}

func (t *renderTarget) Textures() []renderer.Texture2d {
	if t.display {
		return nil
	}
	out := make([]renderer.Texture2d, len(t.colors))
	for i, tex := range t.colors {
		out[i] = tex
	}
	return out
}

// clear zeroes the target's buffers: the display pixel buffer, or every
// attached texture of a texture target.
func (t *renderTarget) clear() {
	if t.display {
		clear(t.pixels)
		return
	}
	for _, tex := range t.colors {
		clear(tex.data)
	}
	if t.depth != nil {
		clear(t.depth.data)
	}
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
