// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// ErrNoReflection is returned by AddUniformBufferFromShader: deriving a
// block layout requires a compiled shader to reflect, which the headless
// backend does not have. Build the buffer from an explicit
// [resources.UniformBufferInfo] instead.
var ErrNoReflection = errors.New("headless: shader reflection not available, use an explicit buffer info")

func init() {
	renderer.Register(renderer.BackendHeadless, func(cfg renderer.Config) (renderer.Renderer, error) {
		return New(cfg)
	})
}

// Renderer is the headless backend: the full executor contract against
// CPU buffers, recording a [Trace] instead of issuing GPU work.
type Renderer struct {
	id      uuid.UUID
	display *renderTarget
	trace   Trace

	// nextProgram numbers shader programs; the ids double as the sort
	// key for Optimise.
	nextProgram uint64

	// Tracked pipeline state, used to suppress redundant transitions.
	// The zero values match the state a fresh context starts in: no
	// blending, no depth test, no program bound.
	blendOn    bool
	depthOn    bool
	curProgram uint64
}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates a headless renderer with a display target of the given size.
func New(cfg renderer.Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("headless: display size %dx%d is not positive", cfg.Width, cfg.Height)
	}

	r := &Renderer{id: uuid.New()}
	r.display = &renderTarget{
		owner:   r,
		display: true,
		width:   cfg.Width,
		height:  cfg.Height,
		pixels:  make([]byte, cfg.Width*cfg.Height*4),
	}

	renderer.Logger().Info("created headless renderer",
		"renderer", r.id, "width", cfg.Width, "height", cfg.Height)
	return r, nil
}

// ID returns the instance identity used in ownership diagnostics.
func (r *Renderer) ID() uuid.UUID {
	return r.id
}

// Trace returns a copy of the operations recorded so far.
func (r *Renderer) Trace() Trace {
	out := make(Trace, len(r.trace))
	copy(out, r.trace)
	return out
}

// ResetTrace discards the recorded operations. The tracked pipeline state
// is kept, matching a GPU context that persists across frames.
func (r *Renderer) ResetTrace() {
	r.trace = nil
}

// AddTexture creates a texture initialised with the given pixel data.
func (r *Renderer) AddTexture(data *resources.Texture2dData) (renderer.Texture2d, error) {
	if data == nil {
		return nil, fmt.Errorf("headless: texture data is nil")
	}
	buf := make([]byte, len(data.Data()))
	copy(buf, data.Data())
	tex := &texture2d{owner: r, info: data.Info(), data: buf}
	renderer.Logger().Debug("created texture",
		"renderer", r.id, "width", tex.info.Width, "height", tex.info.Height, "format", tex.info.Format)
	return tex, nil
}

// AddTextureFor creates a texture with zeroed storage.
func (r *Renderer) AddTextureFor(info resources.Texture2dInfo) (renderer.Texture2d, error) {
	if info.Width <= 0 || info.Height <= 0 {
		return nil, fmt.Errorf("headless: texture size %dx%d is not positive", info.Width, info.Height)
	}
	return &texture2d{owner: r, info: info, data: make([]byte, info.DataSize())}, nil
}

// AddShader creates a shader identity. Nothing is compiled; the sources
// are only validated for presence.
func (r *Renderer) AddShader(srcs ...resources.ShaderSource) (renderer.ShaderProgram, error) {
	if len(srcs) == 0 {
		return nil, fmt.Errorf("headless: shader program needs at least one source")
	}
	for _, src := range srcs {
		if src.Source == "" {
			return nil, fmt.Errorf("headless: %s shader source is empty", src.Stage)
		}
	}

	r.nextProgram++
	prog := &shaderProgram{owner: r, id: r.nextProgram}
	renderer.Logger().Debug("created shader program", "renderer", r.id, "program", prog.id)
	return prog, nil
}

// AddMeshGeometry copies the mesh's vertex data into drawable geometry.
func (r *Renderer) AddMeshGeometry(mesh *resources.MeshData) (renderer.Geometry, error) {
	if mesh == nil {
		return nil, fmt.Errorf("headless: mesh data is nil")
	}
	buf := make([]byte, len(mesh.Data()))
	copy(buf, mesh.Data())
	return &geometry{owner: r, typ: renderer.GeometryMesh, info: mesh.Info(), data: buf}, nil
}

// AddBufferlessQuad creates a geometry without a vertex buffer.
func (r *Renderer) AddBufferlessQuad() renderer.Geometry {
	return &geometry{owner: r, typ: renderer.GeometryBufferless}
}

// AddRenderPass creates a pass drawing into target.
func (r *Renderer) AddRenderPass(renderables []renderer.Renderable, target renderer.RenderTarget) *renderer.RenderPass {
	return renderer.NewRenderPass(renderables, target)
}

// CreateTextureTarget creates an off-screen target over the given
// textures. At most one texture may have a depth format; it becomes the
// depth attachment.
func (r *Renderer) CreateTextureTarget(textures []renderer.Texture2d) (renderer.RenderTarget, error) {
	if len(textures) == 0 {
		return nil, fmt.Errorf("headless: texture target needs at least one texture")
	}

	target := &renderTarget{owner: r}
	for _, t := range textures {
		tex := r.ownTexture(t, "CreateTextureTarget")
		if tex.info.Format == resources.Depth24 {
			if target.depth != nil {
				return nil, fmt.Errorf("headless: texture target has more than one depth texture")
			}
			target.depth = tex
			continue
		}
		target.colors = append(target.colors, tex)
	}
	return target, nil
}

// DisplayTarget returns the on-screen target stand-in.
func (r *Renderer) DisplayTarget() renderer.RenderTarget {
	return r.display
}

// AddUniformBuffer creates a CPU-side uniform buffer from an explicit
// block description.
func (r *Renderer) AddUniformBuffer(info *resources.UniformBufferInfo) (renderer.UniformBuffer, error) {
	if info == nil {
		return nil, fmt.Errorf("headless: uniform buffer info is nil")
	}
	layout := info.CalculateLayout()
	return &uniformBuffer{owner: r, layout: layout, data: make([]byte, layout.Size())}, nil
}

// AddUniformBufferFromShader always fails with [ErrNoReflection]: there is
// no compiled shader to reflect a block layout from.
func (r *Renderer) AddUniformBufferFromShader(prog renderer.ShaderProgram, blockName string) (renderer.UniformBuffer, error) {
	r.ownProgram(prog, "AddUniformBufferFromShader")
	return nil, fmt.Errorf("deriving layout of block %q: %w", blockName, ErrNoReflection)
}

// DisplayData returns the display pixel buffer as RGBA8, flipped to
// top-left origin.
func (r *Renderer) DisplayData() (*resources.Texture2dData, error) {
	info := resources.NewTexture2dInfo(r.display.width, r.display.height, resources.RGBA8)
	buf := make([]byte, len(r.display.pixels))
	copy(buf, r.display.pixels)
	data, err := resources.NewTexture2dData(info, buf)
	if err != nil {
		return nil, err
	}
	return data.FlipY(), nil
}

// ResizeDisplayTarget reallocates the display pixel buffer. Passes holding
// the display target keep their reference.
func (r *Renderer) ResizeDisplayTarget(width, height int) {
	r.display.width = width
	r.display.height = height
	r.display.pixels = make([]byte, width*height*4)
}

// Optimise stable-sorts each layer of the pass by shader identity.
func (r *Renderer) Optimise(pass *renderer.RenderPass) {
	renderer.OptimisePass(pass)
}

// Render executes the pass against the CPU target: clears it, then walks
// the renderables recording state transitions and draw calls. Redundant
// blend, depth and program changes are suppressed.
func (r *Renderer) Render(pass *renderer.RenderPass) {
	target := r.ownTarget(pass.Target(), "Render")
	target.clear()
	r.trace = append(r.trace, TraceOp{Kind: OpClear})

	for _, obj := range pass.Renderables() {
		if obj.AlphaBlending != r.blendOn {
			r.blendOn = obj.AlphaBlending
			r.trace = append(r.trace, TraceOp{Kind: OpBlend, Enabled: r.blendOn})
		}
		if obj.DepthTest != r.depthOn {
			r.depthOn = obj.DepthTest
			r.trace = append(r.trace, TraceOp{Kind: OpDepth, Enabled: r.depthOn})
		}

		if obj.Uniforms == nil {
			panic(fmt.Sprintf("headless: renderable without uniform input rendered by %s", r.id))
		}
		in := r.ownUniformInput(obj.Uniforms, "Render")
		if in.prog.id != r.curProgram {
			r.curProgram = in.prog.id
			r.trace = append(r.trace, TraceOp{Kind: OpProgram, Program: r.curProgram})
		}

		if obj.Geometry != nil {
			r.ownGeometry(obj.Geometry, "Render")
			r.trace = append(r.trace, TraceOp{Kind: OpDraw, Program: r.curProgram})
		}
	}
}

// CheckError reports pending backend errors; the headless backend has no
// deferred error state, so it always returns nil.
func (r *Renderer) CheckError() error {
	return nil
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
		return fmt.Sprintf("headless: %s: %s created by renderer %s used with renderer %s",
			op, kind, o.ownerID(), r.id)
	}
	return fmt.Sprintf("headless: %s: %s %T was not created by renderer %s",
		op, kind, res, r.id)
}
