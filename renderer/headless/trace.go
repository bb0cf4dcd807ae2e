// Copyright 2026 the openage authors.
// SPDX-License-Identifier: BSD-3-Clause

package headless

import "fmt"

// TraceOpKind identifies one kind of recorded executor operation.
type TraceOpKind uint8

const (
	// OpClear records clearing the color and depth buffers of the bound
	// target.
	OpClear TraceOpKind = iota

	// OpBlend records an alpha blending state change.
	OpBlend

	// OpDepth records a depth testing state change.
	OpDepth

	// OpProgram records activating a shader program.
	OpProgram

	// OpDraw records issuing a draw call.
	OpDraw
)

// String returns the operation name used in trace dumps.
func (k TraceOpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpBlend:
		return "blend"
	case OpDepth:
		return "depth"
	case OpProgram:
		return "program"
	case OpDraw:
		return "draw"
	default:
		return fmt.Sprintf("TraceOpKind(%d)", k)
	}
}

// TraceOp is one recorded executor operation.
type TraceOp struct {
	// Kind is the operation kind.
	Kind TraceOpKind

	// Enabled carries the new state for OpBlend and OpDepth.
	Enabled bool

	// Program carries the shader identity for OpProgram and OpDraw.
	Program uint64
}

// String formats the operation for trace dumps and test failures.
func (op TraceOp) String() string {
	switch op.Kind {
	case OpBlend, OpDepth:
		return fmt.Sprintf("%s(%t)", op.Kind, op.Enabled)
	case OpProgram, OpDraw:
		return fmt.Sprintf("%s(%d)", op.Kind, op.Program)
	default:
		return op.Kind.String()
	}
}

// Trace is the sequence of operations recorded by one or more Render
// calls, in execution order.
type Trace []TraceOp

// Kinds returns just the operation kinds, in order. Convenient for
// asserting the shape of a trace without caring about arguments.
func (t Trace) Kinds() []TraceOpKind {
	kinds := make([]TraceOpKind, len(t))
	for i, op := range t {
		kinds[i] = op.Kind
	}
	return kinds
}

// Count returns how many operations of the given kind the trace contains.
func (t Trace) Count(kind TraceOpKind) int {
	n := 0
	for _, op := range t {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
