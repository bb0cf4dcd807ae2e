// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Kirann1973/openage/renderer"
)

// Context wraps the process's current GL context with the capability
// queries and allocators the backend needs. It is owned by one Renderer;
// nothing in this package reaches for ambient global state beyond the GL
// context itself, which is inherently thread-bound.
type Context struct {
	vendor   string
	version  string
	renderer string

	// Uniform buffer binding points are a finite GL resource; the
	// context hands them out sequentially.
	maxUniformBufferBindings int32
	nextUniformBufferBinding uint32
}

// NewContext initializes GL function loading against the context current
// on the calling thread and queries its capabilities.
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: initializing GL bindings: %w", err)
	}

	ctx := &Context{
		vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	gl.GetIntegerv(gl.MAX_UNIFORM_BUFFER_BINDINGS, &ctx.maxUniformBufferBindings)

	renderer.Logger().Info("initialized OpenGL context",
		"vendor", ctx.vendor, "version", ctx.version, "device", ctx.renderer)
	return ctx, nil
}

// Version returns the GL version string of the context.
func (c *Context) Version() string {
	return c.version
}

// NextUniformBufferBinding allocates a fresh uniform buffer binding point.
func (c *Context) NextUniformBufferBinding() (uint32, error) {
	if c.nextUniformBufferBinding >= uint32(c.maxUniformBufferBindings) {
		return 0, fmt.Errorf("opengl: all %d uniform buffer binding points are in use",
			c.maxUniformBufferBindings)
	}
	binding := c.nextUniformBufferBinding
	c.nextUniformBufferBinding++
	return binding, nil
}

// CheckError drains the GL error flags accumulated since the last check
// and joins them into one error, or nil when none are pending.
func (c *Context) CheckError() error {
	var errs []error
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = append(errs, fmt.Errorf("opengl: %s", glErrorName(code)))
	}
	return errors.Join(errs...)
}

// glErrorName translates a glGetError code into its enum name.
func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04x", code)
	}
}
