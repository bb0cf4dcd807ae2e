// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"

	"github.com/Kirann1973/openage/renderer"
	"github.com/Kirann1973/openage/renderer/resources"
)

// texture2d is a GL texture object. Its storage layout is fixed at
// creation; the pixel contents can be re-uploaded.
type texture2d struct {
	owner  *Renderer
	info   resources.Texture2dInfo
	handle uint32
}

var _ renderer.Texture2d = (*texture2d)(nil)

func (t *texture2d) ownerID() uuid.UUID { return t.owner.id }

// newTexture2d allocates GL storage for info and uploads data when it is
// non-nil.
func newTexture2d(owner *Renderer, info resources.Texture2dInfo, data []byte) (*texture2d, error) {
	internal, format, typ, err := glPixelFormat(info.Format)
	if err != nil {
		return nil, err
	}

	t := &texture2d{owner: owner, info: info}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)

	// Rows are tightly packed regardless of format width.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var pixels unsafe.Pointer
	if data != nil {
		pixels = gl.Ptr(data)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal,
		int32(info.Width), int32(info.Height), 0, format, typ, pixels)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := owner.ctx.CheckError(); err != nil {
		gl.DeleteTextures(1, &t.handle)
		return nil, fmt.Errorf("opengl: creating %dx%d %s texture: %w",
			info.Width, info.Height, info.Format, err)
	}

	renderer.Logger().Debug("created texture", "renderer", owner.id,
		"handle", t.handle, "width", info.Width, "height", info.Height, "format", info.Format)
	return t, nil
}

func (t *texture2d) Info() resources.Texture2dInfo {
	return t.info
}

// IntoData reads the texture contents back from the GPU.
func (t *texture2d) IntoData() (*resources.Texture2dData, error) {
	_, format, typ, err := glPixelFormat(t.info.Format)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, t.info.DataSize())
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(gl.TEXTURE_2D, 0, format, typ, gl.Ptr(buf))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := t.owner.ctx.CheckError(); err != nil {
		return nil, fmt.Errorf("opengl: reading back texture %d: %w", t.handle, err)
	}
	return resources.NewTexture2dData(t.info, buf)
}

// bind makes the texture current on the given texture unit.
func (t *texture2d) bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}
