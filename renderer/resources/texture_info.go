// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import "fmt"

// PixelFormat identifies the in-memory layout of a single pixel.
//
// The set mirrors the formats the renderer can upload and attach to
// framebuffers. Depth24 is only valid for textures that become the depth
// attachment of a texture render target.
type PixelFormat uint8

const (
	// R16UI is a single 16-bit unsigned integer channel.
	R16UI PixelFormat = iota

	// R32UI is a single 32-bit unsigned integer channel.
	R32UI

	// RGB8 is three 8-bit channels, red first, no alpha.
	RGB8

	// BGR8 is three 8-bit channels, blue first, no alpha.
	BGR8

	// RGBA8 is four 8-bit channels including alpha. This is the format
	// used for display readbacks and screenshots.
	RGBA8

	// RGBA8UI is four 8-bit unsigned integer (non-normalized) channels.
	RGBA8UI

	// Depth24 is a 24-bit depth value. Textures with this format can only
	// be used as the depth attachment of a texture target.
	Depth24
)

// BytesPerPixel returns the size of one pixel in bytes.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case R16UI:
		return 2
	case R32UI:
		return 4
	case RGB8, BGR8:
		return 3
	case RGBA8, RGBA8UI:
		return 4
	case Depth24:
		return 3
	default:
		panic(fmt.Sprintf("resources: unknown pixel format %d", f))
	}
}

// String returns the format name as written in shader and log output.
func (f PixelFormat) String() string {
	switch f {
	case R16UI:
		return "r16ui"
	case R32UI:
		return "r32ui"
	case RGB8:
		return "rgb8"
	case BGR8:
		return "bgr8"
	case RGBA8:
		return "rgba8"
	case RGBA8UI:
		return "rgba8ui"
	case Depth24:
		return "depth24"
	default:
		return fmt.Sprintf("PixelFormat(%d)", f)
	}
}

// Texture2dInfo describes the dimensions and pixel format of a 2D texture.
// It carries no pixel data; pair it with [Texture2dData] for uploads.
type Texture2dInfo struct {
	// Width is the texture width in pixels.
	Width int

	// Height is the texture height in pixels.
	Height int

	// Format is the pixel format of the texture storage.
	Format PixelFormat
}

// NewTexture2dInfo creates a texture description with the given size and
// format.
func NewTexture2dInfo(width, height int, format PixelFormat) Texture2dInfo {
	return Texture2dInfo{Width: width, Height: height, Format: format}
}

// DataSize returns the number of bytes a tightly packed pixel buffer for
// this texture occupies.
func (i Texture2dInfo) DataSize() int {
	return i.Width * i.Height * i.Format.BytesPerPixel()
}

// RowSize returns the number of bytes in one tightly packed pixel row.
func (i Texture2dInfo) RowSize() int {
	return i.Width * i.Format.BytesPerPixel()
}
