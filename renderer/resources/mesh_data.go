// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import (
	"encoding/binary"
	"fmt"
	"math"
)

// VertexInputType identifies the per-vertex type of a single mesh attribute.
type VertexInputType uint8

const (
	// VertexF32 is a single 32-bit float attribute.
	VertexF32 VertexInputType = iota

	// VertexV2F32 is a 2-component 32-bit float attribute.
	VertexV2F32

	// VertexV3F32 is a 3-component 32-bit float attribute.
	VertexV3F32

	// VertexV4F32 is a 4-component 32-bit float attribute.
	VertexV4F32
)

// Components returns the number of scalar components of the attribute.
func (t VertexInputType) Components() int {
	switch t {
	case VertexF32:
		return 1
	case VertexV2F32:
		return 2
	case VertexV3F32:
		return 3
	case VertexV4F32:
		return 4
	default:
		panic(fmt.Sprintf("resources: unknown vertex input type %d", t))
	}
}

// Size returns the attribute size in bytes.
func (t VertexInputType) Size() int {
	return t.Components() * 4
}

// VertexLayout selects how attributes of several vertices are interleaved
// in the vertex buffer.
type VertexLayout uint8

const (
	// LayoutAOS stores all attributes of one vertex together, then the
	// next vertex (array of structs).
	LayoutAOS VertexLayout = iota

	// LayoutSOA stores each attribute contiguously for all vertices
	// (struct of arrays).
	LayoutSOA
)

// VertexPrimitive identifies how the vertex sequence assembles into
// primitives.
type VertexPrimitive uint8

const (
	// PrimitivePoints draws each vertex as a point.
	PrimitivePoints VertexPrimitive = iota

	// PrimitiveLines draws each pair of vertices as a line.
	PrimitiveLines

	// PrimitiveLineStrip draws a connected line through all vertices.
	PrimitiveLineStrip

	// PrimitiveTriangles draws each triple of vertices as a triangle.
	PrimitiveTriangles

	// PrimitiveTriangleStrip draws a strip where every vertex after the
	// second forms a triangle with the two before it.
	PrimitiveTriangleStrip
)

// IndexType identifies the integer width of mesh index data.
type IndexType uint8

const (
	// IndexU8 indexes vertices with 8-bit unsigned integers.
	IndexU8 IndexType = iota

	// IndexU16 indexes vertices with 16-bit unsigned integers.
	IndexU16

	// IndexU32 indexes vertices with 32-bit unsigned integers.
	IndexU32
)

// Size returns the byte size of one index.
func (t IndexType) Size() int {
	switch t {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	case IndexU32:
		return 4
	default:
		panic(fmt.Sprintf("resources: unknown index type %d", t))
	}
}

// VertexInfo describes the attribute formats of a mesh's vertex buffer.
type VertexInfo struct {
	// Inputs are the per-vertex attributes in shader location order.
	Inputs []VertexInputType

	// Layout is the interleaving of attributes in the buffer.
	Layout VertexLayout

	// Primitive is how the vertex sequence assembles into primitives.
	Primitive VertexPrimitive

	// Index is the index integer width. Only meaningful when the mesh
	// carries index data.
	Index IndexType
}

// VertexSize returns the byte size of a single vertex, i.e. the sum of all
// attribute sizes.
func (i VertexInfo) VertexSize() int {
	size := 0
	for _, in := range i.Inputs {
		size += in.Size()
	}
	return size
}

// MeshData is a CPU-side vertex buffer with its attribute description and
// optional index data.
type MeshData struct {
	info    VertexInfo
	data    []byte
	indices []byte
}

// NewMeshData wraps a vertex buffer with its description. The buffer length
// must be a whole multiple of the vertex size, and index data (may be nil)
// a whole multiple of the index size.
func NewMeshData(info VertexInfo, data, indices []byte) (*MeshData, error) {
	vs := info.VertexSize()
	if vs == 0 {
		return nil, fmt.Errorf("resources: mesh has no vertex attributes")
	}
	if len(data) == 0 || len(data)%vs != 0 {
		return nil, fmt.Errorf("resources: vertex buffer is %d bytes, not a multiple of the %d byte vertex size",
			len(data), vs)
	}
	if len(indices) > 0 && len(indices)%info.Index.Size() != 0 {
		return nil, fmt.Errorf("resources: index buffer is %d bytes, not a multiple of the %d byte index size",
			len(indices), info.Index.Size())
	}
	return &MeshData{info: info, data: data, indices: indices}, nil
}

// Info returns the vertex description of the mesh.
func (m *MeshData) Info() VertexInfo {
	return m.info
}

// Data returns the raw vertex buffer. The slice is shared, not copied.
func (m *MeshData) Data() []byte {
	return m.data
}

// Indices returns the raw index buffer, or nil for non-indexed meshes.
func (m *MeshData) Indices() []byte {
	return m.indices
}

// VertexCount returns the number of vertices in the buffer.
func (m *MeshData) VertexCount() int {
	return len(m.data) / m.info.VertexSize()
}

// IndexCount returns the number of indices, or 0 for non-indexed meshes.
func (m *MeshData) IndexCount() int {
	return len(m.indices) / m.info.Index.Size()
}

// QuadMesh returns a unit quad in normalized device coordinates with
// interleaved position and texture coordinates, drawn as a triangle strip.
// It is the standard geometry for textured full-screen or sprite draws.
func QuadMesh() *MeshData {
	// x, y, u, v per vertex.
	verts := []float32{
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, 1, 1, 1,
		1, -1, 1, 0,
	}
	data := make([]byte, 0, len(verts)*4)
	for _, f := range verts {
		data = appendFloat32(data, f)
	}

	return mustMeshData(VertexInfo{
		Inputs:    []VertexInputType{VertexV2F32, VertexV2F32},
		Layout:    LayoutAOS,
		Primitive: PrimitiveTriangleStrip,
	}, data, nil)
}

// mustMeshData builds mesh data from constants known to be valid.
func mustMeshData(info VertexInfo, data, indices []byte) *MeshData {
	mesh, err := NewMeshData(info, data, indices)
	if err != nil {
		panic(err)
	}
	return mesh
}

// appendFloat32 appends the little-endian bytes of f.
func appendFloat32(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}
