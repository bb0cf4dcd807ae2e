// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// Built-in shader sources, used when no shader directory is configured.

const backgroundVert = `#version 410 core
out vec2 uv;
void main() {
	// Full-screen triangle strip from the vertex index alone.
	uv = vec2(float(gl_VertexID & 1), float((gl_VertexID >> 1) & 1));
	gl_Position = vec4(uv * 2.0 - 1.0, 0.999, 1.0);
}
`

const backgroundFrag = `#version 410 core
in vec2 uv;
out vec4 color;

layout (std140) uniform globals {
	vec4 top_color;
	vec4 bottom_color;
	float time;
};

void main() {
	vec4 base = mix(bottom_color, top_color, uv.y);
	float pulse = 0.5 + 0.5 * sin(time);
	color = vec4(base.rgb * (0.75 + 0.25 * pulse), 1.0);
}
`

const spriteVert = `#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 tex_coord;
uniform mat4 transform;
out vec2 uv;
void main() {
	uv = tex_coord;
	gl_Position = transform * vec4(position, 0.0, 1.0);
}
`

const spriteFrag = `#version 410 core
in vec2 uv;
out vec4 color;
uniform sampler2D sprite;
void main() {
	color = texture(sprite, uv);
}
`

// Layer priorities: the background draws first, sprites above it.
const (
	layerBackground = 100
	layerSprites    = 50
)

// scene owns the demo's render pass and the handles needed to animate it.
type scene struct {
	rend renderer.Renderer
	pass *renderer.RenderPass

	globals      renderer.UniformBuffer
	spriteInputs []renderer.UniformInput
}

// shaderPair loads one program's sources from the shader directory, or
// falls back to the built-in sources.
func shaderPair(dir, name, vert, frag string) ([]resources.ShaderSource, error) {
	if dir == "" {
		return []resources.ShaderSource{
			resources.NewShaderSource(resources.StageVertex, vert),
			resources.NewShaderSource(resources.StageFragment, frag),
		}, nil
	}

	v, err := resources.LoadShaderSource(resources.StageVertex, filepath.Join(dir, name+".vert.glsl"))
	if err != nil {
		return nil, err
	}
	f, err := resources.LoadShaderSource(resources.StageFragment, filepath.Join(dir, name+".frag.glsl"))
	if err != nil {
		return nil, err
	}
	return []resources.ShaderSource{v, f}, nil
}

// buildScene compiles the demo's shaders and fills the pass with a
// layered scene: a shader-driven background quad below a few textured
// sprites.
func buildScene(rend renderer.Renderer, shaderDir string) (*scene, error) {
	s := &scene{rend: rend}

	bgSrcs, err := shaderPair(shaderDir, "background", backgroundVert, backgroundFrag)
	if err != nil {
		return nil, err
	}
	bgProg, err := rend.AddShader(bgSrcs...)
	if err != nil {
		return nil, fmt.Errorf("background shader: %w", err)
	}

	spriteSrcs, err := shaderPair(shaderDir, "sprite", spriteVert, spriteFrag)
	if err != nil {
		return nil, err
	}
	spriteProg, err := rend.AddShader(spriteSrcs...)
	if err != nil {
		return nil, fmt.Errorf("sprite shader: %w", err)
	}

	// The background parameters live in a uniform buffer reflected from
	// the compiled shader, so driver offsets are authoritative.
	s.globals, err = rend.AddUniformBufferFromShader(bgProg, "globals")
	if err != nil {
		return nil, fmt.Errorf("globals buffer: %w", err)
	}
	s.globals.SetVec4("top_color", mgl32.Vec4{0.10, 0.15, 0.35, 1})
	s.globals.SetVec4("bottom_color", mgl32.Vec4{0.02, 0.02, 0.08, 1})
	bgProg.BindUniformBuffer("globals", s.globals)

	tex, err := rend.AddTexture(checkerTexture(64, 8))
	if err != nil {
		return nil, fmt.Errorf("sprite texture: %w", err)
	}
	quad, err := rend.AddMeshGeometry(resources.QuadMesh())
	if err != nil {
		return nil, fmt.Errorf("sprite quad: %w", err)
	}

	s.pass = rend.AddRenderPass(nil, rend.DisplayTarget())
	s.pass.AddRenderable(renderer.Renderable{
		Geometry: rend.AddBufferlessQuad(),
		Uniforms: bgProg.CreateUniformInput(),
	}, layerBackground)

	for i := 0; i < 3; i++ {
		input := spriteProg.CreateUniformInput()
		input.SetTexture("sprite", tex)
		s.spriteInputs = append(s.spriteInputs, input)
		s.pass.AddRenderable(renderer.Renderable{
			Geometry:      quad,
			Uniforms:      input,
			AlphaBlending: true,
		}, layerSprites)
	}

	rend.Optimise(s.pass)
	return s, nil
}

// animate updates the per-frame uniforms: the pulsing background time and
// the orbiting sprite transforms.
func (s *scene) animate(t float64) {
	s.globals.SetFloat32("time", float32(t))

	for i, input := range s.spriteInputs {
		phase := float32(t) + float32(i)*2.1
		transform := mgl32.Translate3D(0.6*cos32(phase), 0.6*sin32(phase), 0).
			Mul4(mgl32.HomogRotate3DZ(phase / 2)).
			Mul4(mgl32.Scale3D(0.2, 0.2, 1))
		input.SetMat4("transform", transform)
	}
}

// checkerTexture builds a procedural RGBA checkerboard.
func checkerTexture(size, cells int) *resources.Texture2dData {
	info := resources.NewTexture2dInfo(size, size, resources.RGBA8)
	data := make([]byte, info.DataSize())
	cell := size / cells
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			if (x/cell+y/cell)%2 == 0 {
				data[i], data[i+1], data[i+2] = 235, 180, 52
			} else {
				data[i], data[i+1], data[i+2] = 52, 120, 235
			}
			data[i+3] = 255
		}
	}
	// Size is computed from info; the constructor cannot fail here.
	tex, _ := resources.NewTexture2dData(info, data)
	return tex
}

func cos32(v float32) float32 { return float32(math.Cos(float64(v))) }

func sin32(v float32) float32 { return float32(math.Sin(float64(v))) }
