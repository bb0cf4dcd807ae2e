// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import (
	"fmt"
	"os"
)

// ShaderStage identifies the pipeline stage a shader source compiles for.
type ShaderStage uint8

const (
	// StageVertex is the vertex shader stage.
	StageVertex ShaderStage = iota

	// StageGeometry is the geometry shader stage.
	StageGeometry

	// StageTessControl is the tessellation control stage.
	StageTessControl

	// StageTessEval is the tessellation evaluation stage.
	StageTessEval

	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the stage name used in log and error output.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageGeometry:
		return "geometry"
	case StageTessControl:
		return "tessellation control"
	case StageTessEval:
		return "tessellation evaluation"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderStage(%d)", s)
	}
}

// ShaderSource is the GLSL text of a single shader stage.
// A shader program is assembled from one source per stage.
type ShaderSource struct {
	// Stage is the pipeline stage this source compiles for.
	Stage ShaderStage

	// Source is the GLSL source text.
	Source string
}

// NewShaderSource wraps GLSL text for the given stage.
func NewShaderSource(stage ShaderStage, source string) ShaderSource {
	return ShaderSource{Stage: stage, Source: source}
}

// LoadShaderSource reads GLSL text for the given stage from a file.
func LoadShaderSource(stage ShaderStage, path string) (ShaderSource, error) {
	code, err := os.ReadFile(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return ShaderSource{}, fmt.Errorf("resources: reading %s shader: %w", stage, err)
	}
	return ShaderSource{Stage: stage, Source: string(code)}, nil
}
