// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Texture2dData is a CPU-side pixel buffer together with its description.
//
// It is the unit of exchange between the renderer and the caller for texture
// uploads, GPU readbacks and screenshots. The buffer is tightly packed with
// rows ordered bottom-up when it comes from a GPU readback; use [Texture2dData.FlipY]
// to convert to the top-left origin convention of image files.
type Texture2dData struct {
	info Texture2dInfo
	data []byte
}

// NewTexture2dData wraps a pixel buffer with its description.
// The buffer length must match info.DataSize exactly.
func NewTexture2dData(info Texture2dInfo, data []byte) (*Texture2dData, error) {
	if len(data) != info.DataSize() {
		return nil, fmt.Errorf("resources: pixel buffer is %d bytes, %dx%d %s needs %d",
			len(data), info.Width, info.Height, info.Format, info.DataSize())
	}
	return &Texture2dData{info: info, data: data}, nil
}

// Info returns the texture description of this buffer.
func (t *Texture2dData) Info() Texture2dInfo {
	return t.info
}

// Data returns the raw pixel buffer. The slice is shared, not copied.
func (t *Texture2dData) Data() []byte {
	return t.data
}

// FlipY returns a copy of the buffer with the row order reversed.
// GPU readbacks arrive bottom-left origin; flipping converts them to the
// top-left origin expected by image files.
func (t *Texture2dData) FlipY() *Texture2dData {
	row := t.info.RowSize()
	flipped := make([]byte, len(t.data))
	for y := 0; y < t.info.Height; y++ {
		src := t.data[y*row : (y+1)*row]
		dst := flipped[(t.info.Height-1-y)*row:]
		copy(dst, src)
	}
	return &Texture2dData{info: t.info, data: flipped}
}

// ToImage converts the buffer to an image.RGBA.
// Only RGBA8 buffers convert; other formats return an error.
func (t *Texture2dData) ToImage() (*image.RGBA, error) {
	if t.info.Format != RGBA8 {
		return nil, fmt.Errorf("resources: cannot convert %s pixel data to image", t.info.Format)
	}
	img := image.NewRGBA(image.Rect(0, 0, t.info.Width, t.info.Height))
	copy(img.Pix, t.data)
	return img, nil
}

// FromImage converts an arbitrary image into an RGBA8 pixel buffer.
func FromImage(img image.Image) *Texture2dData {
	bounds := img.Bounds()
	info := NewTexture2dInfo(bounds.Dx(), bounds.Dy(), RGBA8)
	dst := image.NewRGBA(image.Rect(0, 0, info.Width, info.Height))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return &Texture2dData{info: info, data: dst.Pix}
}

// Scaled returns an RGBA8 copy of the buffer resampled to the given size.
// Used for screenshot thumbnails; not a substitute for GPU mipmapping.
func (t *Texture2dData) Scaled(width, height int) (*Texture2dData, error) {
	src, err := t.ToImage()
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return &Texture2dData{
		info: NewTexture2dInfo(width, height, RGBA8),
		data: dst.Pix,
	}, nil
}

// StorePNG writes the buffer to a PNG file. Only RGBA8 buffers store.
func (t *Texture2dData) StorePNG(path string) error {
	img, err := t.ToImage()
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
