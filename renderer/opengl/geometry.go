// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// geometry is a drawable vertex arrangement: a VAO with its buffers, or an
// empty VAO for bufferless draws.
type geometry struct {
	owner *Renderer
	typ   renderer.GeometryType

	vao uint32
	vbo uint32
	ebo uint32

	primitive  uint32
	vertCount  int32
	indexCount int32
	indexType  uint32
	bufSize    int
}

var _ renderer.Geometry = (*geometry)(nil)

func (g *geometry) ownerID() uuid.UUID { return g.owner.id }

// newBufferlessQuad creates an empty VAO drawn as a four-vertex triangle
// strip; the vertex shader derives positions from gl_VertexID.
func newBufferlessQuad(owner *Renderer) *geometry {
	g := &geometry{
		owner:     owner,
		typ:       renderer.GeometryBufferless,
		primitive: gl.TRIANGLE_STRIP,
		vertCount: 4,
	}
	gl.GenVertexArrays(1, &g.vao)
	return g
}

// newMeshGeometry uploads mesh data into a VAO with vertex and optional
// index buffers.
func newMeshGeometry(owner *Renderer, mesh *resources.MeshData) (*geometry, error) {
	info := mesh.Info()
	primitive, err := glPrimitive(info.Primitive)
	if err != nil {
		return nil, err
	}

	g := &geometry{
		owner:     owner,
		typ:       renderer.GeometryMesh,
		primitive: primitive,
		vertCount: int32(mesh.VertexCount()),
		bufSize:   len(mesh.Data()),
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Data()), gl.Ptr(mesh.Data()), gl.STATIC_DRAW)

	setVertexAttribs(info, mesh.VertexCount())

	if mesh.Indices() != nil {
		g.indexType, err = glIndexType(info.Index)
		if err != nil {
			g.release()
			return nil, err
		}
		g.indexCount = int32(mesh.IndexCount())

		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices()), gl.Ptr(mesh.Indices()), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	if err := owner.ctx.CheckError(); err != nil {
		g.release()
		return nil, fmt.Errorf("opengl: uploading %d vertices: %w", mesh.VertexCount(), err)
	}
	return g, nil
}

// setVertexAttribs declares the attribute pointers for the bound VBO.
// AOS interleaves attributes per vertex; SOA packs each attribute
// contiguously for all vertices.
func setVertexAttribs(info resources.VertexInfo, vertCount int) {
	switch info.Layout {
	case resources.LayoutAOS:
		stride := int32(info.VertexSize())
		offset := 0
		for i, in := range info.Inputs {
			gl.EnableVertexAttribArray(uint32(i))
			gl.VertexAttribPointerWithOffset(uint32(i), int32(in.Components()),
				gl.FLOAT, false, stride, uintptr(offset))
			offset += in.Size()
		}
	case resources.LayoutSOA:
		offset := 0
		for i, in := range info.Inputs {
			gl.EnableVertexAttribArray(uint32(i))
			gl.VertexAttribPointerWithOffset(uint32(i), int32(in.Components()),
				gl.FLOAT, false, 0, uintptr(offset))
			offset += in.Size() * vertCount
		}
	}
}

func (g *geometry) Type() renderer.GeometryType {
	return g.typ
}

// UpdateVerts overwrites the vertex buffer. The data size must match the
// allocation.
func (g *geometry) UpdateVerts(data []byte) error {
	if g.typ == renderer.GeometryBufferless {
		return fmt.Errorf("opengl: bufferless geometry has no vertex buffer to update")
	}
	if len(data) != g.bufSize {
		return fmt.Errorf("opengl: vertex update is %d bytes, buffer holds %d", len(data), g.bufSize)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// draw issues the geometry's draw call. The caller has already bound the
// program and applied its uniforms.
func (g *geometry) draw() {
	gl.BindVertexArray(g.vao)
	if g.indexCount > 0 {
		gl.DrawElements(g.primitive, g.indexCount, g.indexType, nil)
	} else {
		gl.DrawArrays(g.primitive, 0, g.vertCount)
	}
}

// release deletes the GL objects backing the geometry.
func (g *geometry) release() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
}
