// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command renderdemo opens a window and drives the OpenGL renderer with a
// layered demo scene: a shader-driven gradient background below a set of
// orbiting textured sprites.
//
// Keys: F12 writes a screenshot, Escape quits. With -config pointing at a
// TOML file that sets shader_dir, the demo loads its shaders from that
// directory and reloads them live when the files change.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/opengl"
)

func init() {
	// The GL context and all rendering stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("renderdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	fbWidth, fbHeight := window.GetFramebufferSize()
	rend, err := opengl.New(renderer.Config{Width: fbWidth, Height: fbHeight})
	if err != nil {
		return err
	}

	demo, err := buildScene(rend, cfg.ShaderDir)
	if err != nil {
		return err
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		rend.ResizeDisplayTarget(w, h)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyF12:
			saveScreenshot(rend, cfg.Screenshot, logger)
		}
	})

	reload := watchShaders(cfg.ShaderDir, logger)

	for !window.ShouldClose() {
		select {
		case <-reload:
			logger.Info("shader change detected, rebuilding scene")
			next, err := buildScene(rend, cfg.ShaderDir)
			if err != nil {
				// Broken shader edits keep the previous scene alive.
				logger.Warn("shader reload failed", "error", err)
			} else {
				demo = next
			}
		default:
		}

		demo.animate(glfw.GetTime())
		rend.Render(demo.pass)
		if err := rend.CheckError(); err != nil {
			logger.Warn("GL error", "error", err)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// saveScreenshot reads the display back and writes it as PNG.
func saveScreenshot(rend renderer.Renderer, path string, logger *slog.Logger) {
	data, err := rend.DisplayData()
	if err != nil {
		logger.Warn("reading back display", "error", err)
		return
	}
	if err := data.StorePNG(path); err != nil {
		logger.Warn("writing screenshot", "error", err)
		return
	}
	logger.Info("wrote screenshot", "path", path)
}

// watchShaders watches the shader directory and signals writes on the
// returned channel. Returns a nil channel (never ready) when no directory
// is configured or the watcher cannot start.
func watchShaders(dir string, logger *slog.Logger) <-chan struct{} {
	if dir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("shader watching disabled", "error", err)
		return nil
	}
	if err := watcher.Add(dir); err != nil {
		logger.Warn("shader watching disabled", "dir", dir, "error", err)
		_ = watcher.Close()
		return nil
	}

	reload := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					select {
					case reload <- struct{}{}:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("shader watcher", "error", err)
			}
		}
	}()
	return reload
}
