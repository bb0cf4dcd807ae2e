// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Kirann1973/openage/renderer/resources"
)

func TestGLPixelFormat(t *testing.T) {
	tests := []struct {
		format       resources.PixelFormat
		wantInternal int32
		wantFormat   uint32
	}{
		{resources.RGB8, gl.RGB8, gl.RGB},
		{resources.BGR8, gl.RGB8, gl.BGR},
		{resources.RGBA8, gl.RGBA8, gl.RGBA},
		{resources.RGBA8UI, gl.RGBA8UI, gl.RGBA_INTEGER},
		{resources.Depth24, gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT},
	}
	for _, tt := range tests {
		internal, format, _, err := glPixelFormat(tt.format)
		if err != nil {
			t.Errorf("glPixelFormat(%s): %v", tt.format, err)
			continue
		}
		if internal != tt.wantInternal || format != tt.wantFormat {
			t.Errorf("glPixelFormat(%s) = (0x%04x, 0x%04x), want (0x%04x, 0x%04x)",
				tt.format, internal, format, tt.wantInternal, tt.wantFormat)
		}
	}
}

func TestUBOTypeFromGL(t *testing.T) {
	tests := []struct {
		glType uint32
		want   resources.UBOInputType
	}{
		{gl.FLOAT, resources.F32},
		{gl.FLOAT_VEC4, resources.V4F32},
		{gl.FLOAT_MAT4, resources.M4F32},
		{gl.INT_VEC2, resources.V2I32},
	}
	for _, tt := range tests {
		got, err := uboTypeFromGL(tt.glType)
		if err != nil {
			t.Errorf("uboTypeFromGL(0x%04x): %v", tt.glType, err)
			continue
		}
		if got != tt.want {
			t.Errorf("uboTypeFromGL(0x%04x) = %s, want %s", tt.glType, got, tt.want)
		}
	}

	if _, err := uboTypeFromGL(gl.SAMPLER_2D); err == nil {
		t.Error("uboTypeFromGL(sampler) succeeded, want error (samplers cannot live in blocks)")
	}
}

func TestGLSampler(t *testing.T) {
	if !glSampler(gl.SAMPLER_2D) {
		t.Error("glSampler(SAMPLER_2D) = false, want true")
	}
	if glSampler(gl.FLOAT_VEC4) {
		t.Error("glSampler(FLOAT_VEC4) = true, want false")
	}
}
