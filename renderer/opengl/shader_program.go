// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// uniformDecl is one reflected plain (non-block) uniform of a program.
type uniformDecl struct {
	location int32
	glType   uint32
	unit     int32 // sampler texture unit, -1 for non-samplers
}

// shaderProgram is a compiled and linked GL program together with its
// reflected uniform declarations.
type shaderProgram struct {
	owner  *Renderer
	handle uint32

	uniforms map[string]uniformDecl
}

var _ renderer.ShaderProgram = (*shaderProgram)(nil)

func (p *shaderProgram) ownerID() uuid.UUID { return p.owner.id }

// newShaderProgram compiles one shader per source, links them and reflects
// the program's uniforms. Compile and link failures carry the driver's
// info log.
func newShaderProgram(owner *Renderer, srcs []resources.ShaderSource) (*shaderProgram, error) {
	if len(srcs) == 0 {
		return nil, fmt.Errorf("opengl: shader program needs at least one source")
	}

	p := &shaderProgram{owner: owner, handle: gl.CreateProgram()}

	shaders := make([]uint32, 0, len(srcs))
	releaseShaders := func() {
		for _, s := range shaders {
			gl.DetachShader(p.handle, s)
			gl.DeleteShader(s)
		}
	}

	for _, src := range srcs {
		shader, err := compileShader(src)
		if err != nil {
			releaseShaders()
			gl.DeleteProgram(p.handle)
			return nil, err
		}
		gl.AttachShader(p.handle, shader)
		shaders = append(shaders, shader)
	}

	gl.LinkProgram(p.handle)
	var linked int32
	gl.GetProgramiv(p.handle, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		log := programInfoLog(p.handle)
		releaseShaders()
		gl.DeleteProgram(p.handle)
		return nil, fmt.Errorf("opengl: linking shader program: %s", log)
	}
	releaseShaders()

	p.reflectUniforms()

	renderer.Logger().Debug("created shader program", "renderer", owner.id,
		"handle", p.handle, "uniforms", len(p.uniforms))
	return p, nil
}

// compileShader compiles a single stage.
func compileShader(src resources.ShaderSource) (uint32, error) {
	stage, err := glShaderStage(src.Stage)
	if err != nil {
		return 0, err
	}
	if src.Source == "" {
		return 0, fmt.Errorf("opengl: %s shader source is empty", src.Stage)
	}

	shader := gl.CreateShader(stage)
	csrc, free := gl.Strs(src.Source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var compiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("opengl: compiling %s shader: %s",
			src.Stage, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// programInfoLog fetches the link log of a program.
func programInfoLog(handle uint32) string {
	var logLen int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen)+1)
	gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// reflectUniforms enumerates the program's plain uniforms. Uniforms that
// live inside a block have no location and are reachable through uniform
// buffers instead. Samplers get texture units assigned in declaration
// order.
func (p *shaderProgram) reflectUniforms() {
	p.uniforms = make(map[string]uniformDecl)

	var count int32
	gl.GetProgramiv(p.handle, gl.ACTIVE_UNIFORMS, &count)

	var nextUnit int32
	for i := int32(0); i < count; i++ {
		var nameBuf [256]byte
		var nameLen, size int32
		var glType uint32
		gl.GetActiveUniform(p.handle, uint32(i), int32(len(nameBuf)), &nameLen, &size, &glType, &nameBuf[0])
		name := string(nameBuf[:nameLen])
		// Array uniforms reflect as "name[0]".
		name = strings.TrimSuffix(name, "[0]")

		location := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
		if location < 0 {
			// Member of a uniform block.
			continue
		}

		decl := uniformDecl{location: location, glType: glType, unit: -1}
		if glSampler(glType) {
			decl.unit = nextUnit
			nextUnit++
		}
		p.uniforms[name] = decl
	}
}

// ID returns the GL program handle; handles are unique per context, which
// makes them a valid sort key for Optimise.
func (p *shaderProgram) ID() uint64 {
	return uint64(p.handle)
}

func (p *shaderProgram) HasUniform(name string) bool {
	_, ok := p.uniforms[name]
	return ok
}

func (p *shaderProgram) CreateUniformInput() renderer.UniformInput {
	return &uniformInput{
		owner:  p.owner,
		prog:   p,
		values: make(map[string]uniformValue),
	}
}

// BindUniformBuffer connects the named uniform block to the buffer's
// binding point. An unknown block name is a programming error.
func (p *shaderProgram) BindUniformBuffer(blockName string, buf renderer.UniformBuffer) {
	b := p.owner.ownUniformBuffer(buf, "BindUniformBuffer")

	idx := gl.GetUniformBlockIndex(p.handle, gl.Str(blockName+"\x00"))
	if idx == gl.INVALID_INDEX {
		panic(fmt.Sprintf("opengl: shader program %d has no uniform block %q", p.handle, blockName))
	}
	gl.UniformBlockBinding(p.handle, idx, b.binding)
}

// blockLayout reflects the named uniform block into the layout model the
// uniform buffer setters use: per-member offset, size, stride and count as
// reported by the driver.
func (p *shaderProgram) blockLayout(blockName string) (resources.BlockLayout, error) {
	idx := gl.GetUniformBlockIndex(p.handle, gl.Str(blockName+"\x00"))
	if idx == gl.INVALID_INDEX {
		return resources.BlockLayout{}, fmt.Errorf("opengl: shader program %d has no uniform block %q",
			p.handle, blockName)
	}

	var dataSize, memberCount int32
	gl.GetActiveUniformBlockiv(p.handle, idx, gl.UNIFORM_BLOCK_DATA_SIZE, &dataSize)
	gl.GetActiveUniformBlockiv(p.handle, idx, gl.UNIFORM_BLOCK_ACTIVE_UNIFORMS, &memberCount)
	if memberCount == 0 {
		return resources.BlockLayout{}, fmt.Errorf("opengl: uniform block %q has no members", blockName)
	}

	indices := make([]int32, memberCount)
	gl.GetActiveUniformBlockiv(p.handle, idx, gl.UNIFORM_BLOCK_ACTIVE_UNIFORM_INDICES, &indices[0])

	uindices := make([]uint32, memberCount)
	for i, v := range indices {
		uindices[i] = uint32(v)
	}
	offsets := make([]int32, memberCount)
	strides := make([]int32, memberCount)
	gl.GetActiveUniformsiv(p.handle, memberCount, &uindices[0], gl.UNIFORM_OFFSET, &offsets[0])
	gl.GetActiveUniformsiv(p.handle, memberCount, &uindices[0], gl.UNIFORM_ARRAY_STRIDE, &strides[0])

	names := make([]string, 0, memberCount)
	entries := make(map[string]resources.BlockEntry, memberCount)
	for i := int32(0); i < memberCount; i++ {
		var nameBuf [256]byte
		var nameLen, size int32
		var glType uint32
		gl.GetActiveUniform(p.handle, uindices[i], int32(len(nameBuf)), &nameLen, &size, &glType, &nameBuf[0])
		name := strings.TrimSuffix(string(nameBuf[:nameLen]), "[0]")
		// Strip the instance-less block prefix some drivers report.
		name = strings.TrimPrefix(name, blockName+".")

		typ, err := uboTypeFromGL(glType)
		if err != nil {
			return resources.BlockLayout{}, fmt.Errorf("opengl: block %q member %q: %w", blockName, name, err)
		}

		stride := int(strides[i])
		if stride <= 0 {
			stride = resources.StrideSize(typ, resources.LayoutSTD140)
		}
		entrySize := typ.Size()
		if size > 1 {
			entrySize = stride * int(size)
		}

		names = append(names, name)
		entries[name] = resources.BlockEntry{
			Type:   typ,
			Offset: int(offsets[i]),
			Size:   entrySize,
			Stride: stride,
			Count:  int(size),
		}
	}

	return resources.NewBlockLayout(int(dataSize), names, entries)
}

// updateUniforms activates the program and applies every staged value of
// the input.
func (p *shaderProgram) updateUniforms(in *uniformInput) {
	p.owner.useProgram(p)
	for name, val := range in.values {
		p.applyUniform(name, val)
	}
}

// applyUniform uploads one staged value to its reflected location.
func (p *shaderProgram) applyUniform(name string, val uniformValue) {
	decl := p.uniforms[name]
	switch val.kind {
	case uniformI32:
		gl.Uniform1i(decl.location, val.i32)
	case uniformU32:
		gl.Uniform1ui(decl.location, val.u32)
	case uniformF32:
		gl.Uniform1f(decl.location, val.f32[0])
	case uniformF64:
		gl.Uniform1d(decl.location, val.f64)
	case uniformV2F32:
		gl.Uniform2fv(decl.location, 1, &val.f32[0])
	case uniformV3F32:
		gl.Uniform3fv(decl.location, 1, &val.f32[0])
	case uniformV4F32:
		gl.Uniform4fv(decl.location, 1, &val.f32[0])
	case uniformM4F32:
		gl.UniformMatrix4fv(decl.location, 1, false, &val.f32[0])
	case uniformTexture:
		val.tex.bind(uint32(decl.unit))
		gl.Uniform1i(decl.location, decl.unit)
	}
}
