// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShaderSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.vert.glsl")
	const src = "#version 410\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing shader file: %v", err)
	}

	got, err := LoadShaderSource(StageVertex, path)
	if err != nil {
		t.Fatalf("LoadShaderSource: %v", err)
	}
	if got.Stage != StageVertex {
		t.Errorf("Stage = %v, want StageVertex", got.Stage)
	}
	if got.Source != src {
		t.Errorf("Source = %q, want %q", got.Source, src)
	}
}

func TestLoadShaderSourceMissingFile(t *testing.T) {
	if _, err := LoadShaderSource(StageFragment, filepath.Join(t.TempDir(), "nope.glsl")); err == nil {
		t.Error("LoadShaderSource(missing) succeeded, want error")
	}
}

func TestShaderStageString(t *testing.T) {
	if got := StageFragment.String(); got != "fragment" {
		t.Errorf("StageFragment.String() = %q, want %q", got, "fragment")
	}
	if got := ShaderStage(99).String(); got != "ShaderStage(99)" {
		t.Errorf("ShaderStage(99).String() = %q, want %q", got, "ShaderStage(99)")
	}
}
