// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo's TOML configuration.
type Config struct {
	// Width and Height size the window and display target.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Title is the window title.
	Title string `toml:"title"`

	// ShaderDir, when set, loads the demo shaders from GLSL files in
	// that directory instead of the built-in sources, and reloads them
	// live when the files change.
	ShaderDir string `toml:"shader_dir"`

	// Screenshot is the PNG path written when F12 is pressed.
	Screenshot string `toml:"screenshot"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "renderdemo",
		Screenshot: "renderdemo.png",
	}
}

// loadConfig reads a TOML config file, filling unset fields with defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path comes from the -config flag
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %s: window size %dx%d is not positive", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}
