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

func init() {
	renderer.Register(renderer.BackendOpenGL, func(cfg renderer.Config) (renderer.Renderer, error) {
		return New(cfg)
	})
}

// Renderer is the OpenGL backend: resource factory plus executor over a GL
// context that must be current on the calling thread.
type Renderer struct {
	id      uuid.UUID
	ctx     *Context
	display *renderTarget

	// Tracked pipeline state, used to suppress redundant GL calls.
	// GL contexts start with blending and depth testing disabled and no
	// program bound, which matches the zero values.
	blendOn    bool
	depthOn    bool
	curProgram uint32
}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates an OpenGL renderer over the context current on the calling
// thread, with a display viewport of the given size. The constructor sets
// the state defaults the executor relies on: transparent black clear
// color, premultiplied-friendly blend function, and a less-or-equal depth
// test over the [0,1] range.
func New(cfg renderer.Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("opengl: display size %dx%d is not positive", cfg.Width, cfg.Height)
	}

	ctx, err := NewContext()
	if err != nil {
		return nil, err
	}

	r := &Renderer{id: uuid.New(), ctx: ctx}
	r.display = newDisplayTarget(r, cfg.Width, cfg.Height)

	gl.ClearColor(0, 0, 0, 0)
	gl.BlendFuncSeparate(
		gl.SRC_ALPHA,           // source RGB factor
		gl.ONE_MINUS_SRC_ALPHA, // destination RGB factor
		gl.ONE,                 // source alpha factor
		gl.ONE_MINUS_SRC_ALPHA, // destination alpha factor
	)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthRange(0.0, 1.0)

	renderer.Logger().Info("created OpenGL renderer",
		"renderer", r.id, "version", ctx.Version(), "width", cfg.Width, "height", cfg.Height)
	return r, nil
}

// ID returns the instance identity used in ownership diagnostics.
func (r *Renderer) ID() uuid.UUID {
	return r.id
}

// AddTexture creates a texture initialised with the given pixel data.
func (r *Renderer) AddTexture(data *resources.Texture2dData) (renderer.Texture2d, error) {
	if data == nil {
		return nil, fmt.Errorf("opengl: texture data is nil")
	}
	return newTexture2d(r, data.Info(), data.Data())
}

// AddTextureFor creates a texture with uninitialised storage.
func (r *Renderer) AddTextureFor(info resources.Texture2dInfo) (renderer.Texture2d, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("opengl: texture size %dx%d is not positive", info.Width, info.Height)
	}
	return newTexture2d(r, info, nil)
}

// AddShader compiles and links a shader program.
func (r *Renderer) AddShader(srcs ...resources.ShaderSource) (renderer.ShaderProgram, error) {
	return newShaderProgram(r, srcs)
}

// AddMeshGeometry uploads mesh data into drawable geometry.
func (r *Renderer) AddMeshGeometry(mesh *resources.MeshData) (renderer.Geometry, error) {
	if mesh == nil {
		return nil, fmt.Errorf("opengl: mesh data is nil")
	}
	return newMeshGeometry(r, mesh)
}

// AddBufferlessQuad creates an empty-VAO triangle strip quad.
func (r *Renderer) AddBufferlessQuad() renderer.Geometry {
	return newBufferlessQuad(r)
}

// AddRenderPass creates a pass drawing into target.
func (r *Renderer) AddRenderPass(renderables []renderer.Renderable, target renderer.RenderTarget) *renderer.RenderPass {
	return renderer.NewRenderPass(renderables, target)
}

// CreateTextureTarget creates a framebuffer over the given textures.
func (r *Renderer) CreateTextureTarget(textures []renderer.Texture2d) (renderer.RenderTarget, error) {
	owned := make([]*texture2d, len(textures))
	for i, t := range textures {
		owned[i] = r.ownTexture(t, "CreateTextureTarget")
	}
	return newTextureTarget(r, owned)
}

// DisplayTarget returns the default framebuffer target.
func (r *Renderer) DisplayTarget() renderer.RenderTarget {
	return r.display
}

// AddUniformBuffer creates a uniform buffer with the layout computed from
// an explicit block description.
func (r *Renderer) AddUniformBuffer(info *resources.UniformBufferInfo) (renderer.UniformBuffer, error) {
	if info == nil {
		return nil, fmt.Errorf("opengl: uniform buffer info is nil")
	}
	return newUniformBuffer(r, info.CalculateLayout())
}

// AddUniformBufferFromShader creates a uniform buffer whose layout is
// reflected from the named block of a compiled shader. An unknown block
// name is a construction-time failure.
func (r *Renderer) AddUniformBufferFromShader(prog renderer.ShaderProgram, blockName string) (renderer.UniformBuffer, error) {
	p := r.ownProgram(prog, "AddUniformBufferFromShader")
	layout, err := p.blockLayout(blockName)
	if err != nil {
		return nil, err
	}
	return newUniformBuffer(r, layout)
}

// DisplayData reads the display contents back as RGBA8, flipped from the
// GPU's bottom-left origin to top-left.
func (r *Renderer) DisplayData() (*resources.Texture2dData, error) {
	width, height := r.display.Size()
	info := resources.NewTexture2dInfo(width, height, resources.RGBA8)
	buf := make([]byte, info.DataSize())

	r.display.bindRead()
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))

	if err := r.ctx.CheckError(); err != nil {
		return nil, fmt.Errorf("opengl: reading back display: %w", err)
	}

	data, err := resources.NewTexture2dData(info, buf)
	if err != nil {
		return nil, err
	}
	return data.FlipY(), nil
}

// ResizeDisplayTarget resizes the display viewport. Passes holding the
// display target keep their reference; the new size takes effect the next
// time the target is bound.
func (r *Renderer) ResizeDisplayTarget(width, height int) {
	r.display.width = width
	r.display.height = height
}

// Optimise stable-sorts each layer of the pass by shader identity.
func (r *Renderer) Optimise(pass *renderer.RenderPass) {
	renderer.OptimisePass(pass)
}

// Render executes the pass: binds its target, clears color and depth,
// then walks the renderables in sequence, toggling blend and depth state,
// uploading uniforms and issuing draws. Already-active state is not
// re-applied.
func (r *Renderer) Render(pass *renderer.RenderPass) {
	target := r.ownTarget(pass.Target(), "Render")
	target.bindWrite()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, obj := range pass.Renderables() {
		if obj.AlphaBlending != r.blendOn {
			r.blendOn = obj.AlphaBlending
			if r.blendOn {
				gl.Enable(gl.BLEND)
			} else {
				gl.Disable(gl.BLEND)
			}
		}
		if obj.DepthTest != r.depthOn {
			r.depthOn = obj.DepthTest
			if r.depthOn {
				gl.Enable(gl.DEPTH_TEST)
			} else {
				gl.Disable(gl.DEPTH_TEST)
			}
		}

		if obj.Uniforms == nil {
			panic(fmt.Sprintf("opengl: renderable without uniform input rendered by %s", r.id))
		}
		in := r.ownUniformInput(obj.Uniforms, "Render")

		// Activates the program and uploads the staged values.
		in.prog.updateUniforms(in)

		if obj.Geometry != nil {
			r.ownGeometry(obj.Geometry, "Render").draw()
		}
	}
}

// CheckError drains the context's pending GL error flags.
func (r *Renderer) CheckError() error {
	return r.ctx.CheckError()
}

// useProgram activates the program unless it already is active.
func (r *Renderer) useProgram(p *shaderProgram) {
	if r.curProgram == p.handle {
		return
	}
	r.curProgram = p.handle
	gl.UseProgram(p.handle)
}

// Ownership checks. Using a resource with a renderer that did not create
// it is a programming error, so these fail loudly instead of returning.

func (r *Renderer) ownTexture(t renderer.Texture2d, op string) *texture2d {
	tex, ok := t.(*texture2d)
	if !ok || tex.owner != r {
		panic(foreignResource("texture", t, r, op))
	}
	return tex
}

func (r *Renderer) ownGeometry(g renderer.Geometry, op string) *geometry {
	geo, ok := g.(*geometry)
	if !ok || geo.owner != r {
		panic(foreignResource("geometry", g, r, op))
	}
	return geo
}

func (r *Renderer) ownProgram(p renderer.ShaderProgram, op string) *shaderProgram {
	prog, ok := p.(*shaderProgram)
	if !ok || prog.owner != r {
		panic(foreignResource("shader program", p, r, op))
	}
	return prog
}

func (r *Renderer) ownUniformInput(in renderer.UniformInput, op string) *uniformInput {
	u, ok := in.(*uniformInput)
	if !ok || u.owner != r {
		panic(foreignResource("uniform input", in, r, op))
	}
	return u
}

func (r *Renderer) ownUniformBuffer(b renderer.UniformBuffer, op string) *uniformBuffer {
	buf, ok := b.(*uniformBuffer)
	if !ok || buf.owner != r {
		panic(foreignResource("uniform buffer", b, r, op))
	}
	return buf
}

func (r *Renderer) ownTarget(t renderer.RenderTarget, op string) *renderTarget {
	target, ok := t.(*renderTarget)
	if !ok || target.owner != r {
		panic(foreignResource("render target", t, r, op))
	}
	return target
}

// foreignResource formats the ownership panic message, naming both
// renderer instances when the foreign one is known.
func foreignResource(kind string, res any, r *Renderer, op string) string {
	type owned interface{ ownerID() uuid.UUID }
	if o, ok := res.(owned); ok {
		return fmt.Sprintf("opengl: %s: %s created by renderer %s used with renderer %s",
			op, kind, o.ownerID(), r.id)
	}
	return fmt.Sprintf("opengl: %s: %s %T was not created by renderer %s",
		op, kind, res, r.id)
}
