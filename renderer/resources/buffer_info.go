// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package resources

import "fmt"

// UBOInputType identifies the scalar, vector or matrix type of a uniform
// buffer input.
type UBOInputType uint8

const (
	// I32 is a 32-bit signed integer.
	I32 UBOInputType = iota

	// U32 is a 32-bit unsigned integer.
	U32

	// F32 is a 32-bit float.
	F32

	// F64 is a 64-bit float.
	F64

	// V2F32 is a 2-component 32-bit float vector.
	V2F32

	// V3F32 is a 3-component 32-bit float vector.
	V3F32

	// V4F32 is a 4-component 32-bit float vector.
	V4F32

	// V2I32 is a 2-component 32-bit integer vector.
	V2I32

	// V3I32 is a 3-component 32-bit integer vector.
	V3I32

	// V4I32 is a 4-component 32-bit integer vector.
	V4I32

	// M4F32 is a 4x4 32-bit float matrix, stored as four column vectors.
	M4F32
)

// Size returns the number of bytes one value of this type occupies,
// excluding any padding imposed by a layout convention.
func (t UBOInputType) Size() int {
	switch t {
	case I32, U32, F32:
		return 4
	case F64, V2F32, V2I32:
		return 8
	case V3F32, V3I32:
		return 12
	case V4F32, V4I32:
		return 16
	case M4F32:
		return 64
	default:
		panic(fmt.Sprintf("resources: unknown uniform input type %d", t))
	}
}

// String returns the GLSL name of the type.
func (t UBOInputType) String() string {
	switch t {
	case I32:
		return "int"
	case U32:
		return "uint"
	case F32:
		return "float"
	case F64:
		return "double"
	case V2F32:
		return "vec2"
	case V3F32:
		return "vec3"
	case V4F32:
		return "vec4"
	case V2I32:
		return "ivec2"
	case V3I32:
		return "ivec3"
	case V4I32:
		return "ivec4"
	case M4F32:
		return "mat4"
	default:
		return fmt.Sprintf("UBOInputType(%d)", t)
	}
}

// UBOLayout selects the packing convention used to place inputs inside a
// uniform buffer.
type UBOLayout uint8

const (
	// LayoutSTD140 is the std140 convention: every member is aligned to
	// its base alignment, vec3 aligns like vec4, array elements and
	// matrix columns are padded to 16 bytes.
	LayoutSTD140 UBOLayout = iota
)

// String returns the convention name.
func (l UBOLayout) String() string {
	switch l {
	case LayoutSTD140:
		return "std140"
	default:
		return fmt.Sprintf("UBOLayout(%d)", l)
	}
}

// UBOInput is one named, typed member of a uniform buffer block.
type UBOInput struct {
	// Name is the member name as declared in the shader block.
	Name string

	// Type is the scalar, vector or matrix type of the member.
	Type UBOInputType

	// Count is the array length. Zero and one both mean a single value.
	Count int
}

// BlockEntry is the computed layout of one uniform buffer input: where it
// lives inside the buffer and how array elements are spaced.
type BlockEntry struct {
	// Type is the input type the entry was computed for.
	Type UBOInputType

	// Offset is the byte offset of the input from the start of the buffer.
	Offset int

	// Size is the total byte size of the input, including padding between
	// array elements but not after the last one.
	Size int

	// Stride is the byte distance between consecutive array elements.
	// For non-arrays it equals the padded element size.
	Stride int

	// Count is the array length, at least 1.
	Count int
}

// BlockLayout maps every input of a [UniformBufferInfo] to its computed
// [BlockEntry]. It is produced once at buffer creation and never changes;
// backends reuse it for every write into the buffer.
type BlockLayout struct {
	entries map[string]BlockEntry
	names   []string
	size    int
}

// NewBlockLayout assembles a layout from externally computed entries, e.g.
// from reflecting a compiled shader's uniform block. Names gives the input
// declaration order; every name must have an entry.
func NewBlockLayout(size int, names []string, entries map[string]BlockEntry) (BlockLayout, error) {
	if len(names) != len(entries) {
		return BlockLayout{}, fmt.Errorf("resources: block layout has %d names but %d entries",
			len(names), len(entries))
	}
	copied := make(map[string]BlockEntry, len(entries))
	ordered := make([]string, len(names))
	for i, name := range names {
		e, ok := entries[name]
		if !ok {
			return BlockLayout{}, fmt.Errorf("resources: block layout is missing an entry for %q", name)
		}
		copied[name] = e
		ordered[i] = name
	}
	return BlockLayout{entries: copied, names: ordered, size: size}, nil
}

// Entry returns the layout of the named input. Requesting a name that is
// not part of the block is an error; layouts never grow after creation.
func (l BlockLayout) Entry(name string) (BlockEntry, error) {
	e, ok := l.entries[name]
	if !ok {
		return BlockEntry{}, fmt.Errorf("resources: no input %q in uniform block layout", name)
	}
	return e, nil
}

// Has reports whether the block contains an input with the given name.
func (l BlockLayout) Has(name string) bool {
	_, ok := l.entries[name]
	return ok
}

// Names returns the input names in declaration order.
func (l BlockLayout) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Size returns the total byte size of the buffer, i.e. the end of the last
// input rounded up to the convention's buffer alignment granularity.
func (l BlockLayout) Size() int {
	return l.size
}

// UniformBufferInfo describes a uniform buffer block: its ordered inputs
// and the layout convention that places them. The byte layout is computed
// once at construction and is immutable afterwards.
type UniformBufferInfo struct {
	layout UBOLayout
	inputs []UBOInput
	block  BlockLayout
}

// NewUniformBufferInfo computes the block layout for the given inputs under
// the given convention. Inputs must have unique, non-empty names and a
// non-negative count; a count of zero is treated as one.
func NewUniformBufferInfo(layout UBOLayout, inputs []UBOInput) (*UniformBufferInfo, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("resources: uniform buffer needs at least one input")
	}

	seen := make(map[string]struct{}, len(inputs))
	normalized := make([]UBOInput, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			return nil, fmt.Errorf("resources: uniform buffer input %d has no name", i)
		}
		if _, dup := seen[in.Name]; dup {
			return nil, fmt.Errorf("resources: duplicate uniform buffer input %q", in.Name)
		}
		if in.Count < 0 {
			return nil, fmt.Errorf("resources: uniform buffer input %q has negative count %d", in.Name, in.Count)
		}
		seen[in.Name] = struct{}{}
		if in.Count == 0 {
			in.Count = 1
		}
		normalized[i] = in
	}

	info := &UniformBufferInfo{
		layout: layout,
		inputs: normalized,
		block:  calculateLayout(layout, normalized),
	}
	return info, nil
}

// Convention returns the layout convention of the block.
func (i *UniformBufferInfo) Convention() UBOLayout {
	return i.layout
}

// Inputs returns the block's inputs in declaration order.
func (i *UniformBufferInfo) Inputs() []UBOInput {
	out := make([]UBOInput, len(i.inputs))
	copy(out, i.inputs)
	return out
}

// CalculateLayout returns the precomputed block layout. The layout was
// fixed at construction; calling this repeatedly always yields the same
// offsets.
func (i *UniformBufferInfo) CalculateLayout() BlockLayout {
	return i.block
}

// Size returns the total byte size of the buffer under the block's layout.
func (i *UniformBufferInfo) Size() int {
	return i.block.size
}

// StrideSize returns the byte distance between consecutive array elements
// of the given type under the given convention. Under std140 every array
// element is padded to a 16-byte boundary.
func StrideSize(t UBOInputType, layout UBOLayout) int {
	switch layout {
	case LayoutSTD140:
		return alignUp(t.Size(), 16)
	default:
		panic(fmt.Sprintf("resources: unknown uniform buffer layout %d", layout))
	}
}

// alignment returns the base alignment of the type under the convention.
func alignment(t UBOInputType, layout UBOLayout) int {
	switch layout {
	case LayoutSTD140:
		switch t {
		case I32, U32, F32:
			return 4
		case F64, V2F32, V2I32:
			return 8
		case V3F32, V3I32, V4F32, V4I32, M4F32:
			// vec3 rounds up to the vec4 alignment; mat4 aligns like
			// its column vectors.
			return 16
		default:
			panic(fmt.Sprintf("resources: unknown uniform input type %d", t))
		}
	default:
		panic(fmt.Sprintf("resources: unknown uniform buffer layout %d", layout))
	}
}

// calculateLayout walks the inputs in order and assigns each the smallest
// offset past the previous input's end that satisfies its alignment.
func calculateLayout(layout UBOLayout, inputs []UBOInput) BlockLayout {
	entries := make(map[string]BlockEntry, len(inputs))
	names := make([]string, 0, len(inputs))

	offset := 0
	for _, in := range inputs {
		align := alignment(in.Type, layout)
		stride := StrideSize(in.Type, layout)

		var size int
		if in.Count > 1 {
			// Arrays align and stride at the padded element size.
			align = stride
			size = stride * in.Count
		} else {
			size = in.Type.Size()
		}

		offset = alignUp(offset, align)
		entries[in.Name] = BlockEntry{
			Type:   in.Type,
			Offset: offset,
			Size:   size,
			Stride: stride,
			Count:  in.Count,
		}
		names = append(names, in.Name)
		offset += size
	}

	return BlockLayout{
		entries: entries,
		names:   names,
		size:    alignUp(offset, 16),
	}
}

// alignUp rounds v up to the next multiple of align.
func alignUp(v, align int) int {
	return (v + align - 1) / align * align
}
