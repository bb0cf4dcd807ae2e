// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"cmp"
	"math"
	"slices"
	"sort"
)

// LayerPriorityMax is the default priority for renderables added without an
// explicit layer. Layers with higher priority are drawn first.
const LayerPriorityMax int64 = math.MaxInt64

// Layer is a contiguous slice of a render pass's renderables that share a
// priority. Layers partition the renderable sequence: the sum of all layer
// lengths always equals the number of renderables in the pass.
type Layer struct {
	// Priority orders the layer inside the pass. Higher priorities are
	// drawn first.
	Priority int64

	// Length is the number of consecutive renderables in this layer.
	Length int
}

// RenderPass is an ordered, layered sequence of renderables drawn into one
// render target.
//
// The sequence is kept sorted by descending layer priority; within one
// layer, renderables keep their submission order. Mutation is incremental:
// adding renderables inserts at the layer boundary instead of re-sorting
// the whole sequence.
//
// A pass may be mutated between frames, but never concurrently with a
// [Renderer.Render] call reading it; the caller provides that ordering.
type RenderPass struct {
	renderables []Renderable
	layers      []Layer
	target      RenderTarget

	// optimised records that the current renderable order has been
	// shader-sorted. Any mutation of the sequence resets it.
	optimised bool
}

// NewRenderPass creates a pass over the given renderables, placed in a
// single layer at [LayerPriorityMax], writing into target. Backends call
// this from their AddRenderPass factory; it is exported so tests can build
// passes directly.
func NewRenderPass(renderables []Renderable, target RenderTarget) *RenderPass {
	pass := &RenderPass{target: target}
	if len(renderables) > 0 {
		pass.AddRenderables(renderables, LayerPriorityMax)
	}
	return pass
}

// Renderables returns the pass's renderables in draw order, layers already
// baked into the sequence. The returned slice is a copy.
func (p *RenderPass) Renderables() []Renderable {
	out := make([]Renderable, len(p.renderables))
	copy(out, p.renderables)
	return out
}

// Layers returns the pass's layers, sorted by descending priority. The
// returned slice is a copy.
func (p *RenderPass) Layers() []Layer {
	out := make([]Layer, len(p.layers))
	copy(out, p.layers)
	return out
}

// Target returns the render target the pass draws into.
func (p *RenderPass) Target() RenderTarget {
	return p.target
}

// SetTarget changes which target future executions of the pass write into.
// The renderable ordering is unaffected.
func (p *RenderPass) SetTarget(target RenderTarget) {
	p.target = target
}

// AddRenderable appends a single renderable to the layer with the given
// priority, creating the layer if needed.
func (p *RenderPass) AddRenderable(r Renderable, priority int64) {
	p.AddRenderables([]Renderable{r}, priority)
}

// AddRenderables appends renderables as a contiguous block to the layer
// with the given priority. If the layer exists, the block goes to the end
// of its span and submission order within the layer is preserved;
// otherwise a new layer is created at the position that keeps the layers
// sorted by descending priority.
//
// The cost is a layer lookup plus one insertion; the existing sequence is
// never re-sorted.
func (p *RenderPass) AddRenderables(rs []Renderable, priority int64) {
	idx, found := p.findLayer(priority)
	if !found {
		p.layers = slices.Insert(p.layers, idx, Layer{Priority: priority})
	}
	if len(rs) == 0 {
		return
	}

	// Insertion point is the end of the layer's span.
	offset := 0
	for i := 0; i <= idx; i++ {
		offset += p.layers[i].Length
	}
	p.renderables = slices.Insert(p.renderables, offset, rs...)
	p.layers[idx].Length += len(rs)
	p.optimised = false
}

// SetRenderables replaces the whole sequence with rs, placed in a single
// layer at [LayerPriorityMax]. The previous layer structure is discarded.
func (p *RenderPass) SetRenderables(rs []Renderable) {
	p.renderables = make([]Renderable, len(rs))
	copy(p.renderables, rs)
	p.layers = []Layer{{Priority: LayerPriorityMax, Length: len(rs)}}
	p.optimised = false
}

// AddLayer creates an empty layer at the given priority, establishing its
// position in the draw order before any renderables are pushed to it.
// A no-op if a layer at that priority already exists.
func (p *RenderPass) AddLayer(priority int64) {
	idx, found := p.findLayer(priority)
	if !found {
		p.layers = slices.Insert(p.layers, idx, Layer{Priority: priority})
	}
}

// ClearRenderables empties both the renderable sequence and the layer
// structure. The target is retained.
func (p *RenderPass) ClearRenderables() {
	p.renderables = nil
	p.layers = nil
	p.optimised = false
}

// findLayer locates the layer with exactly the given priority. If absent,
// the returned index is where a new layer of that priority belongs to keep
// the slice sorted by descending priority.
func (p *RenderPass) findLayer(priority int64) (int, bool) {
	idx := sort.Search(len(p.layers), func(i int) bool {
		return p.layers[i].Priority <= priority
	})
	if idx < len(p.layers) && p.layers[idx].Priority == priority {
		return idx, true
	}
	return idx, false
}

// OptimisePass stable-sorts each layer's renderables by the identity of
// their bound shader program, minimizing shader switches during execution.
// The sort never crosses layer boundaries, so the priority ordering of the
// pass is preserved; within one shader, renderables keep their submission
// order, which blending of transparent geometry relies on.
//
// The operation is idempotent: a pass stays optimised until its renderable
// sequence is mutated again. Backends delegate their Optimise to this
// function, since shader identity is exposed backend-independently through
// [ShaderProgram.ID].
//
// Panics if a renderable has no uniform input to derive its program from.
func OptimisePass(pass *RenderPass) {
	if pass.optimised {
		return
	}

	start := 0
	for _, layer := range pass.layers {
		span := pass.renderables[start : start+layer.Length]
		slices.SortStableFunc(span, func(a, b Renderable) int {
			return cmp.Compare(renderableProgramID(a), renderableProgramID(b))
		})
		start += layer.Length
	}
	pass.optimised = true
}

// renderableProgramID returns the shader program identity a renderable is
// bound to.
func renderableProgramID(r Renderable) uint64 {
	if r.Uniforms == nil {
		panic("renderer: renderable has no uniform input, cannot determine its shader program")
	}
	return r.Uniforms.Program().ID()
}
