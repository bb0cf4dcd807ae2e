// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"math/rand"
	"testing"
)

// fakeTarget is a minimal RenderTarget for pass tests.
type fakeTarget struct {
	width, height int
}

func (t *fakeTarget) Size() (int, int)      { return t.width, t.height }
func (t *fakeTarget) Textures() []Texture2d { return nil }

// fakeProgram provides a shader identity without a backend. The embedded
// interface panics on any method the tests do not exercise.
type fakeProgram struct {
	ShaderProgram
	id uint64
}

func (p *fakeProgram) ID() uint64 { return p.id }

// fakeInput tags a renderable with a program and a submission marker.
type fakeInput struct {
	UniformInput
	prog ShaderProgram
	tag  int
}

func (i *fakeInput) Program() ShaderProgram { return i.prog }

func tagged(prog ShaderProgram, tag int) Renderable {
	return Renderable{Uniforms: &fakeInput{prog: prog, tag: tag}}
}

func tagOf(t *testing.T, r Renderable) int {
	t.Helper()
	in, ok := r.Uniforms.(*fakeInput)
	if !ok {
		t.Fatalf("renderable carries %T, want *fakeInput", r.Uniforms)
	}
	return in.tag
}

// checkInvariants asserts the layer partition invariants of a pass.
func checkInvariants(t *testing.T, pass *RenderPass) {
	t.Helper()

	layers := pass.Layers()
	total := 0
	for i, l := range layers {
		total += l.Length
		if i > 0 && layers[i-1].Priority <= l.Priority {
			t.Fatalf("layers not strictly descending: %d (prio %d) before %d (prio %d)",
				i-1, layers[i-1].Priority, i, l.Priority)
		}
	}
	if got := len(pass.Renderables()); total != got {
		t.Fatalf("sum of layer lengths = %d, renderables = %d", total, got)
	}
}

func TestAddRenderablesOrdering(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{width: 64, height: 64})
	prog := &fakeProgram{id: 1}

	// r1 at priority 5, r2 at priority 10: the higher priority layer
	// comes first in the sequence.
	pass.AddRenderable(tagged(prog, 1), 5)
	pass.AddRenderable(tagged(prog, 2), 10)
	checkInvariants(t, pass)

	rs := pass.Renderables()
	if len(rs) != 2 {
		t.Fatalf("len(Renderables()) = %d, want 2", len(rs))
	}
	if tagOf(t, rs[0]) != 2 || tagOf(t, rs[1]) != 1 {
		t.Errorf("order = [%d %d], want [2 1]", tagOf(t, rs[0]), tagOf(t, rs[1]))
	}

	layers := pass.Layers()
	if len(layers) != 2 {
		t.Fatalf("len(Layers()) = %d, want 2", len(layers))
	}
	if layers[0].Priority != 10 || layers[1].Priority != 5 {
		t.Errorf("layer priorities = [%d %d], want [10 5]", layers[0].Priority, layers[1].Priority)
	}
}

func TestAddRenderablesAppendsWithinLayer(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}

	pass.AddRenderables([]Renderable{tagged(prog, 1), tagged(prog, 2)}, 7)
	pass.AddRenderable(tagged(prog, 3), 7)
	checkInvariants(t, pass)

	layers := pass.Layers()
	if len(layers) != 1 {
		t.Fatalf("len(Layers()) = %d, want 1", len(layers))
	}
	if layers[0].Length != 3 {
		t.Errorf("layer length = %d, want 3", layers[0].Length)
	}

	for i, r := range pass.Renderables() {
		if got := tagOf(t, r); got != i+1 {
			t.Errorf("renderable %d has tag %d, want %d (submission order lost)", i, got, i+1)
		}
	}
}

func TestAddRenderablesInterleavedPriorities(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}

	// A middle layer appended after its neighbors must land between them.
	pass.AddRenderable(tagged(prog, 1), 20)
	pass.AddRenderable(tagged(prog, 2), 0)
	pass.AddRenderable(tagged(prog, 3), 10)
	pass.AddRenderable(tagged(prog, 4), 10)
	checkInvariants(t, pass)

	want := []int{1, 3, 4, 2}
	rs := pass.Renderables()
	for i, w := range want {
		if got := tagOf(t, rs[i]); got != w {
			t.Errorf("renderable %d has tag %d, want %d", i, got, w)
		}
	}
}

func TestAddRenderablesDefaultPriorityAppendsLast(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}

	pass.AddRenderable(tagged(prog, 1), LayerPriorityMax)
	pass.AddRenderable(tagged(prog, 2), 3)
	pass.AddRenderable(tagged(prog, 3), LayerPriorityMax)
	checkInvariants(t, pass)

	want := []int{1, 3, 2}
	rs := pass.Renderables()
	for i, w := range want {
		if got := tagOf(t, rs[i]); got != w {
			t.Errorf("renderable %d has tag %d, want %d", i, got, w)
		}
	}
}

func TestAddRenderablesRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}

	count := 0
	for i := 0; i < 200; i++ {
		n := rng.Intn(3) + 1
		block := make([]Renderable, n)
		for j := range block {
			block[j] = tagged(prog, count)
			count++
		}
		pass.AddRenderables(block, int64(rng.Intn(10)-5))
		checkInvariants(t, pass)
	}
	if len(pass.Renderables()) != count {
		t.Errorf("len(Renderables()) = %d, want %d", len(pass.Renderables()), count)
	}
}

func TestAddLayerEstablishesOrder(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}

	// Pre-seed an empty layer, then fill lower and higher layers first.
	pass.AddLayer(50)
	pass.AddRenderable(tagged(prog, 1), 100)
	pass.AddRenderable(tagged(prog, 2), 1)
	pass.AddRenderable(tagged(prog, 3), 50)
	checkInvariants(t, pass)

	want := []int{1, 3, 2}
	rs := pass.Renderables()
	for i, w := range want {
		if got := tagOf(t, rs[i]); got != w {
			t.Errorf("renderable %d has tag %d, want %d", i, got, w)
		}
	}

	// Duplicate AddLayer is a no-op.
	pass.AddLayer(50)
	if got := len(pass.Layers()); got != 3 {
		t.Errorf("len(Layers()) after duplicate AddLayer = %d, want 3", got)
	}
}

func TestSetRenderablesReplacesEverything(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}

	pass.AddRenderable(tagged(prog, 1), 5)
	pass.AddRenderable(tagged(prog, 2), 9)
	pass.SetRenderables([]Renderable{tagged(prog, 10), tagged(prog, 11)})
	checkInvariants(t, pass)

	layers := pass.Layers()
	if len(layers) != 1 {
		t.Fatalf("len(Layers()) = %d, want 1", len(layers))
	}
	if layers[0].Priority != LayerPriorityMax || layers[0].Length != 2 {
		t.Errorf("layer = %+v, want priority max, length 2", layers[0])
	}
	rs := pass.Renderables()
	if tagOf(t, rs[0]) != 10 || tagOf(t, rs[1]) != 11 {
		t.Errorf("order = [%d %d], want [10 11]", tagOf(t, rs[0]), tagOf(t, rs[1]))
	}
}

func TestClearRenderablesKeepsTarget(t *testing.T) {
	target := &fakeTarget{width: 32, height: 32}
	pass := NewRenderPass(nil, target)
	prog := &fakeProgram{id: 1}

	pass.AddRenderable(tagged(prog, 1), 5)
	pass.ClearRenderables()

	if got := len(pass.Renderables()); got != 0 {
		t.Errorf("len(Renderables()) = %d, want 0", got)
	}
	if got := len(pass.Layers()); got != 0 {
		t.Errorf("len(Layers()) = %d, want 0", got)
	}
	if pass.Target() != RenderTarget(target) {
		t.Error("ClearRenderables changed the target")
	}
}

func TestSetTargetKeepsOrdering(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	prog := &fakeProgram{id: 1}
	pass.AddRenderable(tagged(prog, 1), 5)

	next := &fakeTarget{width: 16, height: 16}
	pass.SetTarget(next)
	if pass.Target() != RenderTarget(next) {
		t.Error("SetTarget did not change the target")
	}
	if got := len(pass.Renderables()); got != 1 {
		t.Errorf("len(Renderables()) = %d, want 1", got)
	}
}

func TestOptimisePassSortsWithinLayers(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	a := &fakeProgram{id: 2}
	b := &fakeProgram{id: 1}

	// Layer 10 interleaves two shaders; layer 5 uses the "smaller" one.
	pass.AddRenderables([]Renderable{
		tagged(a, 1), tagged(b, 2), tagged(a, 3), tagged(b, 4),
	}, 10)
	pass.AddRenderable(tagged(b, 5), 5)

	OptimisePass(pass)
	checkInvariants(t, pass)

	// Within layer 10: shader b first (lower id), stable among equals.
	// Layer 5 stays behind layer 10 even though its shader id is lower.
	want := []int{2, 4, 1, 3, 5}
	rs := pass.Renderables()
	for i, w := range want {
		if got := tagOf(t, rs[i]); got != w {
			t.Errorf("renderable %d has tag %d, want %d", i, got, w)
		}
	}
}

func TestOptimisePassIdempotent(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	a := &fakeProgram{id: 2}
	b := &fakeProgram{id: 1}
	pass.AddRenderables([]Renderable{tagged(a, 1), tagged(b, 2), tagged(a, 3)}, 10)

	OptimisePass(pass)
	first := pass.Renderables()
	OptimisePass(pass)
	second := pass.Renderables()

	for i := range first {
		if tagOf(t, first[i]) != tagOf(t, second[i]) {
			t.Fatalf("second OptimisePass changed order at %d", i)
		}
	}
}

func TestOptimisePassResetsOnMutation(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	a := &fakeProgram{id: 2}
	b := &fakeProgram{id: 1}

	pass.AddRenderables([]Renderable{tagged(a, 1), tagged(b, 2)}, 10)
	OptimisePass(pass)

	// A new mutation re-arms the optimisation.
	pass.AddRenderable(tagged(b, 3), 10)
	OptimisePass(pass)

	want := []int{2, 3, 1}
	rs := pass.Renderables()
	for i, w := range want {
		if got := tagOf(t, rs[i]); got != w {
			t.Errorf("renderable %d has tag %d, want %d", i, got, w)
		}
	}
}

func TestOptimisePassNilUniformsPanics(t *testing.T) {
	pass := NewRenderPass(nil, &fakeTarget{})
	pass.AddRenderables([]Renderable{{}, {}}, 10)

	defer func() {
		if recover() == nil {
			t.Error("OptimisePass on renderables without uniforms did not panic")
		}
	}()
	OptimisePass(pass)
}

func TestNewRenderPassSeedsSingleLayer(t *testing.T) {
	prog := &fakeProgram{id: 1}
	pass := NewRenderPass([]Renderable{tagged(prog, 1), tagged(prog, 2)}, &fakeTarget{})
	checkInvariants(t, pass)

	layers := pass.Layers()
	if len(layers) != 1 {
		t.Fatalf("len(Layers()) = %d, want 1", len(layers))
	}
	if layers[0].Priority != LayerPriorityMax || layers[0].Length != 2 {
		t.Errorf("layer = %+v, want priority max, length 2", layers[0])
	}
}

func TestRenderablesReturnsCopy(t *testing.T) {
	prog := &fakeProgram{id: 1}
	pass := NewRenderPass([]Renderable{tagged(prog, 1)}, &fakeTarget{})

	rs := pass.Renderables()
	rs[0] = tagged(prog, 99)
	if got := tagOf(t, pass.Renderables()[0]); got != 1 {
		t.Errorf("mutating the returned slice changed the pass: tag = %d, want 1", got)
	}
}
