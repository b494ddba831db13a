package fusion

import (
	"slices"

	"github.com/gomlx/hlofusion/hlo"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// realHero returns the instruction that determines the emitter used to lower instr:
// itself for a non-fusion, the fused root for a single-output fusion, and for a
// multi-output fusion the root operand with the most lowering constraints -- a
// reduction-to-contiguous-dimensions op if there is one, the first root operand
// otherwise.
func realHero(instr *hlo.Instruction) *hlo.Instruction {
	if instr.OpType() != optypes.Fusion {
		return instr
	}
	root := instr.FusedRoot()
	if instr.IsMultiOutputFusion() {
		for _, operand := range root.Operands() {
			if hlo.IsReductionFromOrToContiguousDimensions(operand) {
				return operand
			}
		}
		return root.Operand(0)
	}
	return root
}

// loopShape returns the shape the kernel's common parallel loop iterates over for the
// given hero: the pre-reduction (first operand) shape for
// reduction-to-contiguous-dimensions ops, the output shape otherwise.
func loopShape(hero *hlo.Instruction) shapes.Shape {
	if hlo.IsReductionFromOrToContiguousDimensions(hero) {
		return hero.Operand(0).Shape()
	}
	return hero.Shape()
}

// ShapesCompatibleForMultiOutputFusion returns whether instr1 and instr2 could share
// the single parallel loop of a multi-output fusion kernel.
//
// If both heroes are reductions, their output shapes and reduction dimensions must
// agree exactly. Otherwise the two loop shapes must be equal -- up to floating point
// precision, which doesn't affect the loop structure.
func ShapesCompatibleForMultiOutputFusion(instr1, instr2 *hlo.Instruction) bool {
	hero1 := realHero(instr1)
	hero2 := realHero(instr2)
	if hlo.IsReductionFromOrToContiguousDimensions(hero1) &&
		hlo.IsReductionFromOrToContiguousDimensions(hero2) &&
		(!shapes.Equal(hero1.Shape(), hero2.Shape()) ||
			!slices.Equal(hero1.ReduceDimensions(), hero2.ReduceDimensions())) {
		return false
	}
	return shapes.EqualIgnoringFpPrecision(loopShape(hero1), loopShape(hero2))
}

// IsFusibleAsMultiOutputFusionRoot returns whether instr may become (part of) the root
// tuple of a multi-output fusion: input-fusible reductions, existing loop fusions and
// elementwise instructions qualify. Scatter does not -- its emitter doesn't support
// being a multi-output root.
func IsFusibleAsMultiOutputFusionRoot(instr *hlo.Instruction) bool {
	return instr.IsFusible() &&
		(IsInputFusibleReduction(instr) ||
			instr.IsLoopFusion() ||
			instr.IsElementwise())
}

// IsProducerConsumerMultiOutputFusible decides whether producer and consumer may be
// merged into one kernel emitting both results.
func IsProducerConsumerMultiOutputFusible(producer, consumer *hlo.Instruction) bool {
	if !IsLoopFusible(producer) || !IsFusibleAsMultiOutputFusionRoot(consumer) {
		return false
	}
	if !ShapesCompatibleForMultiOutputFusion(producer, consumer) {
		return false
	}
	return LayoutsAreReduceInputFusionFriendly(producer, consumer)
}
