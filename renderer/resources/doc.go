// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package resources holds backend-independent descriptions of GPU resources.
//
// Types in this package describe data that the renderer uploads to or reads
// back from the GPU: pixel buffers ([Texture2dData]), vertex buffers
// ([MeshData]), shader sources ([ShaderSource]) and uniform buffer blocks
// ([UniformBufferInfo]). None of them touch a graphics API; they are plain
// CPU-side values that any renderer backend can consume.
//
// # Uniform buffer layout
//
// [UniformBufferInfo] doubles as the layout engine for GPU parameter blocks:
// given an ordered list of named, typed inputs and a layout convention it
// computes a byte offset, size and stride for every input, plus the total
// buffer size. The layout is computed once and is immutable for the lifetime
// of the buffer; backends rewrite the buffer contents every frame without
// recomputing it:
//
//	info, _ := resources.NewUniformBufferInfo(resources.LayoutSTD140, []resources.UBOInput{
//	    {Name: "mvp", Type: resources.M4F32},
//	    {Name: "time", Type: resources.F32},
//	})
//	layout := info.CalculateLayout()
//	entry, _ := layout.Entry("time") // Offset 64, Size 4
//
// # Pixel data
//
// [Texture2dData] is the CPU-side pixel buffer used for texture uploads,
// readbacks and screenshots. It converts to and from [image.Image] and can
// be flipped vertically to translate between the GPU's bottom-left origin
// and the top-left origin of image files.
package resources
