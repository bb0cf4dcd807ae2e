// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import "testing"

func TestLayoutVecScalarVec(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "a", Type: V4F32},
		{Name: "b", Type: F32},
		{Name: "c", Type: V4F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	layout := info.CalculateLayout()
	tests := []struct {
		name   string
		offset int
		size   int
	}{
		{"a", 0, 16},
		{"b", 16, 4},
		{"c", 32, 16},
	}
	for _, tt := range tests {
		e, err := layout.Entry(tt.name)
		if err != nil {
			t.Fatalf("Entry(%q): %v", tt.name, err)
		}
		if e.Offset != tt.offset {
			t.Errorf("Entry(%q).Offset = %d, want %d", tt.name, e.Offset, tt.offset)
		}
		if e.Size != tt.size {
			t.Errorf("Entry(%q).Size = %d, want %d", tt.name, e.Size, tt.size)
		}
	}
	if layout.Size() != 48 {
		t.Errorf("Size() = %d, want 48", layout.Size())
	}
}

func TestLayoutScalarPacking(t *testing.T) {
	// Consecutive scalars pack tightly; the vec2 then aligns to 8.
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "x", Type: F32},
		{Name: "y", Type: I32},
		{Name: "z", Type: F32},
		{Name: "uv", Type: V2F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	layout := info.CalculateLayout()
	wantOffsets := map[string]int{"x": 0, "y": 4, "z": 8, "uv": 16}
	for name, want := range wantOffsets {
		e, err := layout.Entry(name)
		if err != nil {
			t.Fatalf("Entry(%q): %v", name, err)
		}
		if e.Offset != want {
			t.Errorf("Entry(%q).Offset = %d, want %d", name, e.Offset, want)
		}
	}
	if layout.Size() != 32 {
		t.Errorf("Size() = %d, want 32", layout.Size())
	}
}

func TestLayoutVec3AlignsTo16(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "a", Type: F32},
		{Name: "pos", Type: V3F32},
		{Name: "b", Type: F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	layout := info.CalculateLayout()
	pos, _ := layout.Entry("pos")
	if pos.Offset != 16 {
		t.Errorf("vec3 after float: Offset = %d, want 16", pos.Offset)
	}
	// A scalar fits into the vec3's trailing pad slot.
	b, _ := layout.Entry("b")
	if b.Offset != 28 {
		t.Errorf("float after vec3: Offset = %d, want 28", b.Offset)
	}
	if layout.Size() != 32 {
		t.Errorf("Size() = %d, want 32", layout.Size())
	}
}

func TestLayoutMat4(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "mvp", Type: M4F32},
		{Name: "time", Type: F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	layout := info.CalculateLayout()
	mvp, _ := layout.Entry("mvp")
	if mvp.Offset != 0 || mvp.Size != 64 {
		t.Errorf("mat4 entry = offset %d size %d, want 0, 64", mvp.Offset, mvp.Size)
	}
	tm, _ := layout.Entry("time")
	if tm.Offset != 64 {
		t.Errorf("float after mat4: Offset = %d, want 64", tm.Offset)
	}
	if layout.Size() != 80 {
		t.Errorf("Size() = %d, want 80", layout.Size())
	}
}

func TestLayoutArrayStride(t *testing.T) {
	// std140 pads array elements to 16 bytes regardless of element size.
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "weights", Type: F32, Count: 4},
		{Name: "tail", Type: F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	layout := info.CalculateLayout()
	w, _ := layout.Entry("weights")
	if w.Stride != 16 {
		t.Errorf("array Stride = %d, want 16", w.Stride)
	}
	if w.Size != 64 {
		t.Errorf("array Size = %d, want 64", w.Size)
	}
	if w.Count != 4 {
		t.Errorf("array Count = %d, want 4", w.Count)
	}
	tail, _ := layout.Entry("tail")
	if tail.Offset != 64 {
		t.Errorf("entry after array: Offset = %d, want 64", tail.Offset)
	}
}

func TestLayoutIsStable(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "a", Type: V4F32},
		{Name: "b", Type: F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	first := info.CalculateLayout()
	second := info.CalculateLayout()
	for _, name := range first.Names() {
		e1, _ := first.Entry(name)
		e2, _ := second.Entry(name)
		if e1 != e2 {
			t.Errorf("Entry(%q) changed between calls: %+v vs %+v", name, e1, e2)
		}
	}
	if first.Size() != second.Size() {
		t.Errorf("Size() changed between calls: %d vs %d", first.Size(), second.Size())
	}
}

func TestLayoutNamesOrder(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "first", Type: F32},
		{Name: "second", Type: V4F32},
		{Name: "third", Type: I32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	names := info.CalculateLayout().Names()
	want := []string{"first", "second", "third"}
	if len(names) != len(want) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestUnknownEntryIsError(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "a", Type: F32},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}

	if _, err := info.CalculateLayout().Entry("missing"); err == nil {
		t.Error("Entry(missing) succeeded, want error")
	}
	if info.CalculateLayout().Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
}

func TestInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		inputs []UBOInput
	}{
		{"empty", nil},
		{"unnamed", []UBOInput{{Type: F32}}},
		{"duplicate", []UBOInput{{Name: "a", Type: F32}, {Name: "a", Type: V4F32}}},
		{"negative count", []UBOInput{{Name: "a", Type: F32, Count: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewUniformBufferInfo(LayoutSTD140, tt.inputs); err == nil {
				t.Errorf("NewUniformBufferInfo(%v) succeeded, want error", tt.inputs)
			}
		})
	}
}

func TestZeroCountMeansOne(t *testing.T) {
	info, err := NewUniformBufferInfo(LayoutSTD140, []UBOInput{
		{Name: "a", Type: F32, Count: 0},
	})
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}
	e, _ := info.CalculateLayout().Entry("a")
	if e.Count != 1 {
		t.Errorf("Count = %d, want 1", e.Count)
	}
	if e.Size != 4 {
		t.Errorf("Size = %d, want 4", e.Size)
	}
}

func TestStrideSize(t *testing.T) {
	tests := []struct {
		typ  UBOInputType
		want int
	}{
		{F32, 16},
		{V2F32, 16},
		{V3F32, 16},
		{V4F32, 16},
		{M4F32, 64},
	}
	for _, tt := range tests {
		if got := StrideSize(tt.typ, LayoutSTD140); got != tt.want {
			t.Errorf("StrideSize(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}
