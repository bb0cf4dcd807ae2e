// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Kirann1973/openage/renderer/resources"
)

// glPixelFormat maps a pixel format to the GL internal format, transfer
// format and component type used for uploads and readbacks.
func glPixelFormat(f resources.PixelFormat) (internal int32, format, typ uint32, err error) {
	switch f {
	case resources.R16UI:
		return gl.R16UI, gl.RED_INTEGER, gl.UNSIGNED_SHORT, nil
	case resources.R32UI:
		return gl.R32UI, gl.RED_INTEGER, gl.UNSIGNED_INT, nil
	case resources.RGB8:
		return gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE, nil
	case resources.BGR8:
		return gl.RGB8, gl.BGR, gl.UNSIGNED_BYTE, nil
	case resources.RGBA8:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, nil
	case resources.RGBA8UI:
		return gl.RGBA8UI, gl.RGBA_INTEGER, gl.UNSIGNED_BYTE, nil
	case resources.Depth24:
		return gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil
	default:
		return 0, 0, 0, fmt.Errorf("opengl: unsupported pixel format %s", f)
	}
}

// glShaderStage maps a shader stage to its GL shader type enum.
func glShaderStage(s resources.ShaderStage) (uint32, error) {
	switch s {
	case resources.StageVertex:
		return gl.VERTEX_SHADER, nil
	case resources.StageGeometry:
		return gl.GEOMETRY_SHADER, nil
	case resources.StageTessControl:
		return gl.TESS_CONTROL_SHADER, nil
	case resources.StageTessEval:
		return gl.TESS_EVALUATION_SHADER, nil
	case resources.StageFragment:
		return gl.FRAGMENT_SHADER, nil
	default:
		return 0, fmt.Errorf("opengl: unsupported shader stage %s", s)
	}
}

// glPrimitive maps a vertex primitive to its GL draw mode.
func glPrimitive(p resources.VertexPrimitive) (uint32, error) {
	switch p {
	case resources.PrimitivePoints:
		return gl.POINTS, nil
	case resources.PrimitiveLines:
		return gl.LINES, nil
	case resources.PrimitiveLineStrip:
		return gl.LINE_STRIP, nil
	case resources.PrimitiveTriangles:
		return gl.TRIANGLES, nil
	case resources.PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	default:
		return 0, fmt.Errorf("opengl: unsupported primitive %d", p)
	}
}

// glIndexType maps an index width to its GL component type.
func glIndexType(t resources.IndexType) (uint32, error) {
	switch t {
	case resources.IndexU8:
		return gl.UNSIGNED_BYTE, nil
	case resources.IndexU16:
		return gl.UNSIGNED_SHORT, nil
	case resources.IndexU32:
		return gl.UNSIGNED_INT, nil
	default:
		return 0, fmt.Errorf("opengl: unsupported index type %d", t)
	}
}

// uboTypeFromGL maps a reflected GL uniform type to the layout engine's
// input type. Only types the layout engine models are accepted.
func uboTypeFromGL(glType uint32) (resources.UBOInputType, error) {
	switch glType {
	case gl.INT:
		return resources.I32, nil
	case gl.UNSIGNED_INT:
		return resources.U32, nil
	case gl.FLOAT:
		return resources.F32, nil
	case gl.DOUBLE:
		return resources.F64, nil
	case gl.FLOAT_VEC2:
		return resources.V2F32, nil
	case gl.FLOAT_VEC3:
		return resources.V3F32, nil
	case gl.FLOAT_VEC4:
		return resources.V4F32, nil
	case gl.INT_VEC2:
		return resources.V2I32, nil
	case gl.INT_VEC3:
		return resources.V3I32, nil
	case gl.INT_VEC4:
		return resources.V4I32, nil
	case gl.FLOAT_MAT4:
		return resources.M4F32, nil
	default:
		return 0, fmt.Errorf("opengl: uniform block member type 0x%04x is not supported", glType)
	}
}

// glSampler reports whether a reflected GL uniform type is a 2D sampler.
func glSampler(glType uint32) bool {
	switch glType {
	case gl.SAMPLER_2D, gl.INT_SAMPLER_2D, gl.UNSIGNED_INT_SAMPLER_2D, gl.SAMPLER_2D_SHADOW:
		return true
	default:
		return false
	}
}
