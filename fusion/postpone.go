package fusion

import (
	"strings"

	"k8s.io/klog/v2"

	"github.com/gomlx/hlofusion/hlo"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// isDowncast reports whether instr is a precision-reducing conversion: the output
// occupies fewer bytes than the input.
func isDowncast(instr *hlo.Instruction) bool {
	return instr.OpType() == optypes.Convert &&
		shapes.ByteSizeOf(instr.Operand(0).Shape()) > shapes.ByteSizeOf(instr.Shape())
}

func instructionNames(instrs []*hlo.Instruction) string {
	names := make([]string, len(instrs))
	for ii, instr := range instrs {
		names[ii] = instr.Name()
	}
	return strings.Join(names, ", ")
}

// ShouldPostponeFusion decides whether fusing producer into consumer should be delayed
// in favor of a better future fusion of the producer into its own producer.
//
// When a downcast sits between a wide-precision producer and a consumer, it pays to
// eventually merge the downcast upward: the narrow result is then produced directly
// inside the kernel that computes the wide value, and the downcast never materializes
// as a standalone buffer. The upward merge only happens in the multi-output fusion
// stage, so earlier stages must hold the downcast back.
func (e *Engine) ShouldPostponeFusion(producer, consumer *hlo.Instruction) bool {
	// Step 1: see if the producer is a downcast or equivalent.
	// Besides a bare downcast convert, a single-operand loop fusion that lowers its
	// output's memory footprint behaves the same way.
	downcastTryToPostpone := false
	if isDowncast(producer) {
		if isDowncast(consumer) ||
			(consumer.IsLoopFusion() && isDowncast(consumer.FusedRoot())) {
			// The consumer is itself a downcast: merging now is equivalent to one
			// bigger downcast, there's no benefit to waiting.
			return false
		} else if producer.Operand(0).OpType() == optypes.Parameter {
			// A downcast of a parameter has no producer to merge into.
			return false
		} else {
			downcastTryToPostpone = true
		}
	} else if producer.IsLoopFusion() && producer.NumOperands() == 1 &&
		isDowncast(producer.FusedRoot()) {
		downcastTryToPostpone = true
	} else if producer.IsLoopFusion() && producer.NumOperands() == 1 {
		root := producer.FusedRoot()
		if root.OpType() == optypes.Convert &&
			shapes.ByteSizeOf(producer.Operand(0).Shape()) > shapes.ByteSizeOf(producer.Shape()) {
			downcastTryToPostpone = true
		}
	}
	if !downcastTryToPostpone {
		klog.V(4).Info("no operation to postpone")
		return false
	}

	// Step 2: postponing only makes sense if the future merge is actually achievable.
	futureProducer := producer.Operand(0)
	if !e.ShouldFuseMultiOutput(futureProducer, producer) {
		return false
	}

	// Step 3: check the future fusion cannot create a cycle.
	if futureMergeRisksCycle(futureProducer) {
		klog.V(3).Infof("not postponing %s into users { %s }, future users { %s }",
			producer.Name(),
			instructionNames(producer.Users()),
			instructionNames(futureProducer.Users()))
		return false
	}

	return true
}

// futureMergeRisksCycle is a conservative cycle check for merging futureProducer into
// one of its users. For simplicity and speed it is overly strict: if every user of
// futureProducer reads only leaves or futureProducer itself, no cycle is possible;
// anything else is refused, possibly giving up a safe postponement.
func futureMergeRisksCycle(futureProducer *hlo.Instruction) bool {
	if len(futureProducer.Users()) <= 1 {
		return false
	}
	for _, user := range futureProducer.Users() {
		for _, operand := range user.Operands() {
			if operand.NumOperands() > 0 && operand != futureProducer {
				return true
			}
		}
	}
	return false
}
