// Package fusion decides which instructions of an operation graph may legally be
// grouped into a single generated GPU kernel, and which groupings are desirable under
// the hardware resource budget.
//
// Every decision function is a pure, side-effect-free query (aside from optional klog
// diagnostics) over a graph snapshot it never mutates; the rewrite pass that applies
// the verdicts owns all structural edits and must not run them concurrently with a
// query over the same subgraph. Stateless rules are package functions; rules that
// depend on configuration (the operand budget, the experimental multi-output gate)
// live on Engine.
package fusion

import (
	"github.com/gomlx/exceptions"

	"github.com/gomlx/hlofusion/hlo"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// appendParams collects the "leaf operands" of an instruction: the fused parameters
// for a fusion, the direct operands otherwise.
func appendParams(instr *hlo.Instruction, params []*hlo.Instruction) []*hlo.Instruction {
	if instr.OpType() == optypes.Fusion {
		return append(params, instr.FusedParameters()...)
	}
	return append(params, instr.Operands()...)
}

// LayoutsAreReduceInputFusionFriendly returns whether fusing producer into the given
// reduce consumer would leave all kernel inputs laid out compatibly with the
// dominant-rank input, which drives the iteration order. Mismatched layouts would
// force transposes inside the kernel.
func LayoutsAreReduceInputFusionFriendly(producer, reduce *hlo.Instruction) bool {
	var params []*hlo.Instruction
	params = appendParams(producer, params)
	params = appendParams(reduce, params)
	maxRank := -1
	var maxRankShape shapes.Shape
	for _, param := range params {
		if shape := param.Shape(); shape.IsArray() && shape.Rank() > maxRank {
			maxRank = shape.Rank()
			maxRankShape = shape
		}
	}
	for _, param := range params {
		shape := param.Shape()
		if !shape.IsArray() || shape.Rank() < maxRank {
			continue
		}
		if !shapes.LayoutsEqual(shape, maxRankShape) {
			return false
		}
	}
	return true
}

// IsReduceInputFusion returns whether instr is a fusion rooted (or, for multi-output
// fusions, co-rooted) at a reduction-to-contiguous-dimensions op.
func IsReduceInputFusion(instr *hlo.Instruction) bool {
	if instr.IsMultiOutputFusion() {
		for _, operand := range instr.FusedRoot().Operands() {
			if hlo.IsReductionFromOrToContiguousDimensions(operand) {
				if !instr.IsInputFusion() {
					exceptions.Panicf("multi-output fusion rooted at reduction-to-vector ops must be of kind InputFusion: %s", instr)
				}
				return true
			}
		}
	} else if instr.OpType() == optypes.Fusion &&
		hlo.IsReductionFromOrToContiguousDimensions(instr.FusedRoot()) {
		if !instr.IsInputFusion() {
			exceptions.Panicf("fusion rooted at a reduction-to-vector op must be of kind InputFusion: %s", instr)
		}
		return true
	}
	return false
}

// IsInputFusibleReduction returns whether instr is a reduction-to-contiguous-dimensions
// op, bare or as the root of an input fusion. Variadic (tuple-shaped) plain reductions
// are not supported.
func IsInputFusibleReduction(instr *hlo.Instruction) bool {
	if instr.OpType() == optypes.Reduce && instr.Shape().IsTuple() {
		return false
	}
	return IsReduceInputFusion(instr) ||
		hlo.IsReductionFromOrToContiguousDimensions(instr)
}

// IsInputFusibleScatter returns whether instr is a scatter, bare or as the root of an
// input fusion.
func IsInputFusibleScatter(instr *hlo.Instruction) bool {
	return instr.OpType() == optypes.Scatter ||
		(instr.IsInputFusion() && instr.FusedRoot().OpType() == optypes.Scatter)
}

// IsInputFusible returns whether instr may serve as the root of an input fusion.
// Input fusion only handles non-elemental reduction and scatter operations.
func IsInputFusible(instr *hlo.Instruction) bool {
	return instr.IsFusible() &&
		(IsInputFusibleReduction(instr) || IsInputFusibleScatter(instr))
}

// IsLoopFusible returns whether instr may be absorbed into a loop fusion.
//
// Get-tuple-element is deliberately not on the list: the address of an unfused tuple
// element can be computed at the top of any kernel that reads it, which is cheaper
// than generating code for it.
func IsLoopFusible(instr *hlo.Instruction) bool {
	return instr.IsFusible() &&
		((instr.IsElementwise() && instr.NumOperands() > 0) ||
			instr.OpType() == optypes.Bitcast ||
			instr.OpType() == optypes.Broadcast ||
			instr.OpType() == optypes.Concatenate ||
			instr.OpType() == optypes.DynamicSlice ||
			instr.OpType() == optypes.DynamicUpdateSlice ||
			instr.IsLoopFusion() ||
			instr.OpType() == optypes.Gather ||
			instr.OpType() == optypes.Iota ||
			instr.OpType() == optypes.Pad ||
			(instr.OpType() == optypes.Reduce &&
				!hlo.IsReductionFromOrToContiguousDimensions(instr) &&
				!instr.Shape().IsTuple()) ||
			instr.OpType() == optypes.ReduceWindow ||
			instr.OpType() == optypes.Reshape ||
			instr.OpType() == optypes.Reverse ||
			instr.OpType() == optypes.Slice ||
			instr.OpType() == optypes.Constant ||
			instr.OpType() == optypes.Transpose)
}

// IsFusible returns whether instr may take part in any kind of fusion.
func IsFusible(instr *hlo.Instruction) bool {
	return IsInputFusible(instr) || IsLoopFusible(instr)
}

// IsProducerConsumerFusible decides whether a single producer may be absorbed into a
// single consumer.
func IsProducerConsumerFusible(producer, consumer *hlo.Instruction) bool {
	if !IsLoopFusible(producer) || !IsFusible(consumer) {
		return false
	}

	// Fusing a multi-output producer into anything is not supported yet.
	if producer.IsMultiOutputFusion() {
		return false
	}

	// Do not fuse into reduce input fusions if the resulting kernel would suffer from
	// poor data locality (due to unfriendly input layouts).
	if IsInputFusibleReduction(consumer) &&
		!LayoutsAreReduceInputFusionFriendly(producer, consumer) {
		return false
	}

	// Library calls can't be fused, so if a user of such an op could become a bitcast,
	// leave it unfused: fusing away the view would force materializing the data the
	// library call produced.
	if producer.CouldBeBitcast() && hlo.ImplementedAsLibraryCall(producer.Operand(0)) {
		return false
	}

	// Fuse scalar constants into loop fusion nodes: this reduces the number of kernel
	// parameters and makes matching scalar broadcasts easier. Bigger constants stay
	// unfused, where they can be kept as external buffers instead of being inlined
	// into the generated code of every kernel that reads them.
	if producer.OpType() == optypes.Constant {
		return shapes.IsEffectiveScalar(producer.Shape()) &&
			consumer.OpType() == optypes.Fusion
	}

	return true
}

// ChooseFusionKind returns the structural kind a fusion of producer into consumer must
// be tagged with. Only the consumer matters: it becomes the fusion root, and the kind
// reflects the root's nature.
func ChooseFusionKind(_, consumer *hlo.Instruction) hlo.FusionKind {
	if IsInputFusible(consumer) {
		return hlo.InputFusion
	}
	return hlo.LoopFusion
}
