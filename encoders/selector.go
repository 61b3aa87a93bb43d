package encoders

import "github.com/agentstation/wordchipper"

// newSpanEncoder builds the concrete SpanEncoder named by selector,
// resolving Default/Reference to their current concrete algorithm.
func newSpanEncoder[T wordchipper.TokenID](selector wordchipper.SpanEncoderSelector) SpanEncoder[T] {
	switch selector.Resolved() {
	case wordchipper.TailSweep:
		return NewTailSweepEncoder[T]()
	case wordchipper.BufferSweep:
		return NewBufferSweepEncoder[T]()
	case wordchipper.MergeHeap:
		return NewMergeHeapEncoder[T]()
	case wordchipper.PriorityMerge:
		return NewPriorityMergeEncoder[T]()
	default:
		return NewPriorityMergeEncoder[T]()
	}
}
