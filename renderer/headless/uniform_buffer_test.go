// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Kirann1973/openage/renderer/resources"
)

func newTestBuffer(t *testing.T, r *Renderer, inputs []resources.UBOInput) *uniformBuffer {
	t.Helper()
	info, err := resources.NewUniformBufferInfo(resources.LayoutSTD140, inputs)
	if err != nil {
		t.Fatalf("NewUniformBufferInfo: %v", err)
	}
	buf, err := r.AddUniformBuffer(info)
	if err != nil {
		t.Fatalf("AddUniformBuffer: %v", err)
	}
	return buf.(*uniformBuffer)
}

func TestUniformBufferWritesAtLayoutOffsets(t *testing.T) {
	r := newTestRenderer(t)
	buf := newTestBuffer(t, r, []resources.UBOInput{
		{Name: "color", Type: resources.V4F32},
		{Name: "time", Type: resources.F32},
	})

	if got := len(buf.Data()); got != 32 {
		t.Fatalf("buffer size = %d, want 32", got)
	}

	buf.SetVec4("color", mgl32.Vec4{1, 2, 3, 4})
	buf.SetFloat32("time", 0.5)

	// color at offset 0, four floats.
	for i, want := range []float32{1, 2, 3, 4} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf.Data()[i*4:]))
		if got != want {
			t.Errorf("color[%d] = %v, want %v", i, got, want)
		}
	}
	// time at offset 16.
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf.Data()[16:])); got != 0.5 {
		t.Errorf("time = %v, want 0.5", got)
	}
}

func TestUniformBufferScalarTypes(t *testing.T) {
	r := newTestRenderer(t)
	buf := newTestBuffer(t, r, []resources.UBOInput{
		{Name: "i", Type: resources.I32},
		{Name: "u", Type: resources.U32},
		{Name: "d", Type: resources.F64},
	})

	buf.SetInt32("i", -7)
	buf.SetUint32("u", 9)
	buf.SetFloat64("d", 2.5)

	if got := int32(binary.LittleEndian.Uint32(buf.Data()[0:])); got != -7 {
		t.Errorf("i = %d, want -7", got)
	}
	if got := binary.LittleEndian.Uint32(buf.Data()[4:]); got != 9 {
		t.Errorf("u = %d, want 9", got)
	}
	if got := math.Float64frombits(binary.LittleEndian.Uint64(buf.Data()[8:])); got != 2.5 {
		t.Errorf("d = %v, want 2.5", got)
	}
}

func TestUniformBufferMat4(t *testing.T) {
	r := newTestRenderer(t)
	buf := newTestBuffer(t, r, []resources.UBOInput{
		{Name: "mvp", Type: resources.M4F32},
	})

	m := mgl32.Translate3D(1, 2, 3)
	buf.SetMat4("mvp", m)

	for i := 0; i < 16; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf.Data()[i*4:]))
		if got != m[i] {
			t.Errorf("mvp[%d] = %v, want %v", i, got, m[i])
		}
	}
}

func TestUniformBufferUnknownNamePanics(t *testing.T) {
	r := newTestRenderer(t)
	buf := newTestBuffer(t, r, []resources.UBOInput{
		{Name: "time", Type: resources.F32},
	})

	defer func() {
		if recover() == nil {
			t.Error("setting an unknown input did not panic")
		}
	}()
	buf.SetFloat32("missing", 1)
}

func TestUniformBufferTypeMismatchPanics(t *testing.T) {
	r := newTestRenderer(t)
	buf := newTestBuffer(t, r, []resources.UBOInput{
		{Name: "time", Type: resources.F32},
	})

	defer func() {
		if recover() == nil {
			t.Error("writing a vec4 into a float input did not panic")
		}
	}()
	buf.SetVec4("time", mgl32.Vec4{})
}

func TestUniformBufferRawWrite(t *testing.T) {
	r := newTestRenderer(t)
	buf := newTestBuffer(t, r, []resources.UBOInput{
		{Name: "color", Type: resources.V4F32},
	})

	if err := buf.Write([]byte{1, 2, 3, 4}, 4); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Data()[4] != 1 || buf.Data()[7] != 4 {
		t.Errorf("raw write not placed at offset 4: %v", buf.Data()[:8])
	}

	if err := buf.Write(make([]byte, 32), 8); err == nil {
		t.Error("out-of-bounds Write succeeded, want error")
	}
	if err := buf.Write([]byte{1}, -1); err == nil {
		t.Error("negative offset Write succeeded, want error")
	}
}

func TestBindUniformBufferForeignPanics(t *testing.T) {
	r1 := newTestRenderer(t)
	r2 := newTestRenderer(t)
	prog := newTestShader(t, r1)
	buf := newTestBuffer(t, r2, []resources.UBOInput{
		{Name: "time", Type: resources.F32},
	})

	defer func() {
		if recover() == nil {
			t.Error("binding a foreign uniform buffer did not panic")
		}
	}()
	prog.BindUniformBuffer("globals", buf)
}
