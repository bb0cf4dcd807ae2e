// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// renderTarget is a drawable destination: the default framebuffer for the
// display, or a framebuffer object over attached textures.
type renderTarget struct {
	owner   *Renderer
	display bool

	// Display target viewport; updated by ResizeDisplayTarget.
	width, height int

	// Texture target state.
	fbo    uint32
	colors []*texture2d
	depth  *texture2d
}

var _ renderer.RenderTarget = (*renderTarget)(nil)

func (t *renderTarget) ownerID() uuid.UUID { return t.owner.id }

// newDisplayTarget wraps the default framebuffer.
func newDisplayTarget(owner *Renderer, width, height int) *renderTarget {
	return &renderTarget{owner: owner, display: true, width: width, height: height}
}

// newTextureTarget builds a framebuffer over the given textures. Textures
// with a depth format become the depth attachment, everything else a color
// attachment in list order.
func newTextureTarget(owner *Renderer, textures []*texture2d) (*renderTarget, error) {
	if len(textures) == 0 {
		return nil, fmt.Errorf("opengl: texture target needs at least one texture")
	}

	t := &renderTarget{owner: owner}
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	var drawBuffers []uint32
	for _, tex := range textures {
		if tex.info.Format == resources.Depth24 {
			if t.depth != nil {
				gl.DeleteFramebuffers(1, &t.fbo)
				return nil, fmt.Errorf("opengl: texture target has more than one depth texture")
			}
			t.depth = tex
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, tex.handle, 0)
			continue
		}

		attachment := uint32(gl.COLOR_ATTACHMENT0 + len(t.colors))
		t.colors = append(t.colors, tex)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, tex.handle, 0)
		drawBuffers = append(drawBuffers, attachment)
	}
	if len(drawBuffers) > 0 {
		gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &t.fbo)
		return nil, fmt.Errorf("opengl: framebuffer incomplete, status 0x%04x", status)
	}
	return t, nil
}

// Size returns the drawable area of the target.
func (t *renderTarget) Size() (int, int) {
	if t.display {
		return t.width, t.height
	}
	if len(t.colors) > 0 {
		return t.colors[0].info.Width, t.colors[0].info.Height
	}
	return t.depth.info.Width, t.depth.info.Height
}

// Textures returns the color attachments of a texture target.
func (t *renderTarget) Textures() []renderer.Texture2d {
	if t.display {
		return nil
	}
	out := make([]renderer.Texture2d, len(t.colors))
	for i, tex := range t.colors {
		out[i] = tex
	}
	return out
}

// bindWrite makes the target the draw destination and sizes the viewport
// to it.
func (t *renderTarget) bindWrite() {
	if t.display {
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	} else {
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, t.fbo)
	}
	w, h := t.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
}

// bindRead makes the target the readback source.
func (t *renderTarget) bindRead() {
	if t.display {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	} else {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
	}
}
