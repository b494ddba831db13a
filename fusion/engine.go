package fusion

import (
	"k8s.io/klog/v2"

	"github.com/gomlx/hlofusion/hlo"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// MaxOperandsAndOutputsPerFusion caps the number of operands plus output buffers of a
// fusion kernel.
//
// There's a hard cap on how many parameters can be passed to a GPU kernel, but exactly
// what that limit is depends on (among other things) how much constant memory is in
// use for other purposes, and how many of the fusion's operands end up sharing a
// buffer -- neither is known when fusion runs. So a conservative constant is used.
//
// The limit is also often good for performance: in a fusion with many operands each
// thread likely does a lot of work and so possibly uses many registers, limiting
// occupancy.
const MaxOperandsAndOutputsPerFusion = 64

// Config carries the tunables of an Engine. Decision functions never read process
// state (flags, environment) directly, so verdicts stay pure and testable.
type Config struct {
	// MaxOperandsAndOutputsPerFusion bounds the combined kernel parameter and output
	// buffer count of a prospective fusion. Zero means the default.
	MaxOperandsAndOutputsPerFusion int

	// ExperimentalMultiOutputFusion gates extra diagnostics for a relaxation of
	// ShouldFuseMultiOutput's consumer rule that is not shipped: enabling it only
	// adds log output and never changes any verdict.
	ExperimentalMultiOutputFusion bool
}

// Engine answers the configuration-dependent fusion decisions.
// It is stateless beyond its Config and safe for concurrent use.
type Engine struct {
	config Config
}

// New creates an Engine with the given configuration, applying defaults for unset
// fields.
func New(config Config) *Engine {
	if config.MaxOperandsAndOutputsPerFusion == 0 {
		config.MaxOperandsAndOutputsPerFusion = MaxOperandsAndOutputsPerFusion
	}
	return &Engine{config: config}
}

// FusionWouldBeTooLarge returns whether fusing instr1 and instr2 would exceed the
// kernel parameter budget.
func (e *Engine) FusionWouldBeTooLarge(instr1, instr2 *hlo.Instruction) bool {
	// Number of output buffers of the (possibly multi-output) fusion node being
	// considered. This over-counts by one when two multi-output fusions are merged
	// (their tuple buffers become one), or when one instruction is the other's sole
	// consumer (its result is then not an output of the fusion) -- acceptable
	// imprecision given the limit's generous margin.
	numOutputBuffers := shapes.SubshapeCount(instr1.Shape()) +
		shapes.SubshapeCount(instr2.Shape())

	// The new fusion will have no more operands and outputs than
	//   producer_operands + consumer_operands - 1 + num_output_buffers
	// (minus one because a producer->consumer edge between the two is fused away).
	// Often this bound already fits the budget, saving the exact count below.
	if instr1.NumOperands()+instr2.NumOperands()-1+numOutputBuffers <=
		e.config.MaxOperandsAndOutputsPerFusion {
		return false
	}

	// Compute the precise number of operands of the new fusion. An edge between
	// instr1 and instr2 is being fused away, so neither counts as an operand.
	operands := make(map[*hlo.Instruction]struct{},
		instr1.NumOperands()+instr2.NumOperands())
	for _, operand := range instr1.Operands() {
		operands[operand] = struct{}{}
	}
	for _, operand := range instr2.Operands() {
		operands[operand] = struct{}{}
	}
	delete(operands, instr1)
	delete(operands, instr2)
	return len(operands)+numOutputBuffers > e.config.MaxOperandsAndOutputsPerFusion
}

// ShouldFuseMultiOutput decides whether producer and consumer should be merged into a
// multi-output fusion.
//
// The consumer is currently required to be an input-fusible reduction, a deliberately
// narrower condition than IsFusibleAsMultiOutputFusionRoot; the experimental
// configuration gate only reports how the relaxed rule would classify the consumer,
// without acting on it.
func (e *Engine) ShouldFuseMultiOutput(producer, consumer *hlo.Instruction) bool {
	if !IsInputFusibleReduction(consumer) {
		if e.config.ExperimentalMultiOutputFusion && IsFusibleAsMultiOutputFusionRoot(consumer) {
			klog.Infof("consumer %s would be a multi-output fusion root under the experimental relaxed rule", consumer.Name())
		} else {
			klog.V(3).Infof("consumer %s is not an input-fusible reduction", consumer.Name())
		}
		return false
	}
	if !IsProducerConsumerMultiOutputFusible(producer, consumer) {
		klog.V(3).Infof("%s and %s are not multi-output fusible", producer.Name(), consumer.Name())
		return false
	}
	// Never multi-output fuse constants. To the extent constants should be fused at
	// all, that is handled by the regular fusion pass.
	if producer.OpType() == optypes.Constant {
		klog.V(3).Infof("%s is a constant", producer.Name())
		return false
	}
	if e.FusionWouldBeTooLarge(producer, consumer) {
		klog.V(3).Infof("%s and %s would be too large of a fusion", producer.Name(), consumer.Name())
		return false
	}
	return true
}
