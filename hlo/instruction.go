// Package hlo models the dataflow graph of tensor operations over which the fusion
// decisions are made: instructions with an op type, a shape (with physical layout),
// ordered operands and an unordered user list, plus the fusion metadata carried by
// Fusion instructions.
//
// The graph is built and rewritten by its owner (typically a compilation pass); the
// decision code in package fusion only reads it.
package hlo

import (
	"fmt"
	"strings"

	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// Instruction is a node in the operation graph.
//
// It holds non-owning references to its operands; the users list is the reverse
// adjacency index, maintained by the graph-building functions in this package.
//
// While the accessors can be used freely, an Instruction must not be modified while a
// decision query is inspecting the graph.
type Instruction struct {
	opType   optypes.OpType
	name     string
	shape    shapes.Shape
	operands []*Instruction
	users    []*Instruction
	fusible  bool

	// Set only for Reduce instructions.
	reduceDimensions []int

	// Set only for Constant instructions.
	literal *Literal

	// Set only for Fusion instructions.
	fusionKind  FusionKind
	fusedRoot   *Instruction
	fusedParams []*Instruction
}

// OpType returns the operation kind this instruction computes.
func (instr *Instruction) OpType() optypes.OpType { return instr.opType }

// Name returns the instruction's unique name, used for diagnostics only.
func (instr *Instruction) Name() string { return instr.name }

// Shape returns the shape of the instruction's result.
func (instr *Instruction) Shape() shapes.Shape { return instr.shape }

// Operands returns the ordered list of instructions this one reads.
// The returned slice is owned by the instruction and must not be modified.
func (instr *Instruction) Operands() []*Instruction { return instr.operands }

// Operand returns the ii-th operand.
func (instr *Instruction) Operand(ii int) *Instruction { return instr.operands[ii] }

// NumOperands returns the number of operands.
func (instr *Instruction) NumOperands() int { return len(instr.operands) }

// Users returns the instructions that read this one's result. The order is arbitrary.
// The returned slice is owned by the instruction and must not be modified.
func (instr *Instruction) Users() []*Instruction { return instr.users }

// IsFusible returns whether this instance may be fused at all. It defaults per op type
// (parameters, tuples and custom-calls are never fusible) and can be cleared by the
// graph owner with SetFusible for instructions that must stay standalone.
func (instr *Instruction) IsFusible() bool { return instr.fusible }

// SetFusible overrides the instruction's fusibility capability.
func (instr *Instruction) SetFusible(fusible bool) { instr.fusible = fusible }

// ReduceDimensions returns the dimensions being reduced, for Reduce instructions.
// It returns nil for every other op type.
func (instr *Instruction) ReduceDimensions() []int { return instr.reduceDimensions }

// Literal returns the constant payload, for Constant instructions, nil otherwise.
func (instr *Instruction) Literal() *Literal { return instr.literal }

// FusionKind returns the structural kind of a Fusion instruction, or
// UndefinedFusionKind for every other op type.
func (instr *Instruction) FusionKind() FusionKind { return instr.fusionKind }

// FusedRoot returns the root instruction of the fused sub-graph, for Fusion
// instructions, nil otherwise.
func (instr *Instruction) FusedRoot() *Instruction { return instr.fusedRoot }

// FusedParameters returns the parameter placeholders of the fused sub-graph, 1:1 with
// the outer operand list, for Fusion instructions, nil otherwise.
func (instr *Instruction) FusedParameters() []*Instruction { return instr.fusedParams }

// IsLoopFusion returns whether this is a Fusion instruction of kind LoopFusion.
func (instr *Instruction) IsLoopFusion() bool {
	return instr.opType == optypes.Fusion && instr.fusionKind == LoopFusion
}

// IsInputFusion returns whether this is a Fusion instruction of kind InputFusion.
func (instr *Instruction) IsInputFusion() bool {
	return instr.opType == optypes.Fusion && instr.fusionKind == InputFusion
}

// IsMultiOutputFusion returns whether this is a Fusion instruction whose root is a
// tuple of several independent results.
func (instr *Instruction) IsMultiOutputFusion() bool {
	return instr.opType == optypes.Fusion && instr.fusedRoot.opType == optypes.Tuple
}

// IsElementwise returns whether the instruction computes its result pointwise from its
// operands, so any surrounding loop structure can absorb it.
func (instr *Instruction) IsElementwise() bool {
	return isElementwiseOpType(instr.opType)
}

func isElementwiseOpType(opType optypes.OpType) bool {
	switch opType {
	case optypes.Abs, optypes.Add, optypes.Ceil, optypes.Clamp, optypes.Cos,
		optypes.Div, optypes.Equal, optypes.Exp, optypes.Expm1, optypes.Floor,
		optypes.GreaterOrEqual, optypes.GreaterThan, optypes.IsFinite,
		optypes.LessOrEqual, optypes.LessThan, optypes.Log, optypes.Log1p,
		optypes.LogicalAnd, optypes.LogicalNot, optypes.LogicalOr,
		optypes.LogicalXor, optypes.Logistic, optypes.Max, optypes.Min,
		optypes.Mul, optypes.Neg, optypes.NotEqual, optypes.Pow, optypes.Rem,
		optypes.Round, optypes.Rsqrt, optypes.Select, optypes.ShiftLeft,
		optypes.ShiftRightArithmetic, optypes.ShiftRightLogical, optypes.Sign,
		optypes.Sin, optypes.Sqrt, optypes.Sub, optypes.Tanh,
		optypes.Convert:
		return true
	}
	return false
}

// CouldBeBitcast returns whether the instruction may lower to a zero-cost view of its
// operand (no data movement), depending on the layouts involved.
func (instr *Instruction) CouldBeBitcast() bool {
	return instr.opType == optypes.Transpose || instr.opType == optypes.Reshape
}

// String implements fmt.Stringer, printing the instruction in an HLO-like one-line
// format.
func (instr *Instruction) String() string {
	operandNames := make([]string, len(instr.operands))
	for ii, operand := range instr.operands {
		operandNames[ii] = operand.name
	}
	return fmt.Sprintf("%s = %s %s(%s)", instr.name, instr.shape,
		strings.ToLower(instr.opType.String()), strings.Join(operandNames, ", "))
}

// ImplementedAsLibraryCall returns whether the instruction is lowered to a call into a
// precompiled library routine (BLAS, DNN, FFT, RNG, solvers) rather than emitted
// inline -- such instructions can never be absorbed into a generated kernel.
func ImplementedAsLibraryCall(instr *Instruction) bool {
	switch instr.opType {
	case optypes.Dot, optypes.Convolution, optypes.FFT, optypes.RngBitGenerator,
		optypes.BatchNormInference, optypes.BatchNormTraining,
		optypes.BatchNormGradient, optypes.Cholesky, optypes.TriangularSolve,
		optypes.CustomCall:
		return true
	}
	return false
}
