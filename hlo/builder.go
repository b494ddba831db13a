package hlo

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// This file implements the graph-building API: it is used by the graph owner (and the
// tests) to materialize a graph, and it is the only code that creates instructions and
// maintains the users back-references. The decision code never calls into it.

var nameSeq atomic.Int64

func autoName(opType optypes.OpType) string {
	return fmt.Sprintf("%s.%d", strings.ToLower(opType.String()), nameSeq.Add(1))
}

func defaultFusible(opType optypes.OpType) bool {
	switch opType {
	case optypes.Parameter, optypes.Tuple, optypes.CustomCall:
		return false
	}
	return true
}

// NewInstruction creates an instruction of an arbitrary op type with the given result
// shape and operands, and registers it as a user of each operand.
//
// Prefer the specific constructors (Binary, Reduce, NewFusion, ...) where one exists;
// NewInstruction performs no op-specific validation.
func NewInstruction(opType optypes.OpType, shape shapes.Shape, operands ...*Instruction) *Instruction {
	instr := &Instruction{
		opType:   opType,
		name:     autoName(opType),
		shape:    shape,
		operands: slices.Clone(operands),
		fusible:  defaultFusible(opType),
	}
	for _, operand := range operands {
		operand.users = append(operand.users, instr)
	}
	return instr
}

// Parameter creates a named graph input with the given shape.
func Parameter(name string, shape shapes.Shape) *Instruction {
	instr := NewInstruction(optypes.Parameter, shape)
	instr.name = name
	return instr
}

// Constant creates a constant instruction holding the given literal value.
func Constant(literal *Literal) *Instruction {
	instr := NewInstruction(optypes.Constant, literal.Shape())
	instr.literal = literal
	return instr
}

// Iota creates an instruction that fills the shape with sequential values along the
// given axis.
func Iota(shape shapes.Shape, iotaAxis int) (*Instruction, error) {
	if iotaAxis < 0 || iotaAxis >= shape.Rank() {
		return nil, errors.Errorf("Iota axis %d out of range for shape %s", iotaAxis, shape)
	}
	return NewInstruction(optypes.Iota, shape), nil
}

// Unary creates an elementwise instruction with one operand (Neg, Exp, Sqrt, ...).
// The result has the operand's shape, except for predicate-valued ops (IsFinite).
func Unary(opType optypes.OpType, x *Instruction) (*Instruction, error) {
	if !isElementwiseOpType(opType) || opType == optypes.Convert {
		return nil, errors.Errorf("Unary cannot build op type %s", opType)
	}
	shape := x.Shape().Clone()
	if opType == optypes.IsFinite {
		shape.DType = dtypes.PRED
	}
	return NewInstruction(opType, shape, x), nil
}

// Binary creates an elementwise instruction with two operands (Add, Mul, Max, ...).
// Operand dimensions must match exactly; comparisons yield a PRED result.
func Binary(opType optypes.OpType, lhs, rhs *Instruction) (*Instruction, error) {
	if !isElementwiseOpType(opType) || opType == optypes.Convert {
		return nil, errors.Errorf("Binary cannot build op type %s", opType)
	}
	if !slices.Equal(lhs.Shape().Dimensions, rhs.Shape().Dimensions) {
		return nil, errors.Errorf("Binary %s operand dimensions don't match: %s vs %s",
			opType, lhs.Shape(), rhs.Shape())
	}
	shape := lhs.Shape().Clone()
	switch opType {
	case optypes.Equal, optypes.NotEqual, optypes.GreaterOrEqual, optypes.GreaterThan,
		optypes.LessOrEqual, optypes.LessThan:
		shape.DType = dtypes.PRED
	}
	return NewInstruction(opType, shape, lhs, rhs), nil
}

// Select creates an elementwise selection between onTrue and onFalse, per element of
// the predicate.
func Select(pred, onTrue, onFalse *Instruction) (*Instruction, error) {
	if !slices.Equal(onTrue.Shape().Dimensions, onFalse.Shape().Dimensions) {
		return nil, errors.Errorf("Select branch dimensions don't match: %s vs %s",
			onTrue.Shape(), onFalse.Shape())
	}
	return NewInstruction(optypes.Select, onTrue.Shape().Clone(), pred, onTrue, onFalse), nil
}

// Convert creates an elementwise dtype conversion of x. Dimensions and layout are
// preserved.
func Convert(x *Instruction, dtype dtypes.DType) (*Instruction, error) {
	if !x.Shape().IsArray() {
		return nil, errors.Errorf("Convert requires an array operand, got %s", x.Shape())
	}
	shape := x.Shape().Clone()
	shape.DType = dtype
	return NewInstruction(optypes.Convert, shape, x), nil
}

// Reduce creates a reduction of the operand over the given dimensions, seeded with the
// initial value (a scalar). The output shape drops the reduced dimensions and carries
// the default layout.
func Reduce(operand, initial *Instruction, dimensions ...int) (*Instruction, error) {
	outputShape, err := reducedShape(operand.Shape(), dimensions)
	if err != nil {
		return nil, err
	}
	if !initial.Shape().IsScalar() {
		return nil, errors.Errorf("Reduce initial value must be a scalar, got %s", initial.Shape())
	}
	instr := NewInstruction(optypes.Reduce, outputShape, operand, initial)
	instr.reduceDimensions = slices.Clone(dimensions)
	return instr, nil
}

// VariadicReduce creates a reduction of several operands at once over the same
// dimensions, yielding a tuple of the reduced values. The operands and initial values
// are interleaved as (operands..., initials...) in the operand list.
func VariadicReduce(operands, initials []*Instruction, dimensions ...int) (*Instruction, error) {
	if len(operands) == 0 || len(operands) != len(initials) {
		return nil, errors.Errorf("VariadicReduce needs matching numbers of operands and initial values, got %d and %d",
			len(operands), len(initials))
	}
	tupleShapes := make([]shapes.Shape, len(operands))
	for ii, operand := range operands {
		var err error
		tupleShapes[ii], err = reducedShape(operand.Shape(), dimensions)
		if err != nil {
			return nil, err
		}
	}
	all := make([]*Instruction, 0, 2*len(operands))
	all = append(all, operands...)
	all = append(all, initials...)
	instr := NewInstruction(optypes.Reduce, shapes.MakeTuple(tupleShapes...), all...)
	instr.reduceDimensions = slices.Clone(dimensions)
	return instr, nil
}

func reducedShape(operandShape shapes.Shape, dimensions []int) (shapes.Shape, error) {
	if !operandShape.IsArray() {
		return shapes.Shape{}, errors.Errorf("Reduce requires an array operand, got %s", operandShape)
	}
	var outputDims []int
	for dim, size := range operandShape.Dimensions {
		if slices.Contains(dimensions, dim) {
			continue
		}
		outputDims = append(outputDims, size)
	}
	for _, dim := range dimensions {
		if dim < 0 || dim >= operandShape.Rank() {
			return shapes.Shape{}, errors.Errorf("Reduce dimension %d out of range for shape %s", dim, operandShape)
		}
	}
	return shapes.Shape{DType: operandShape.DType, Dimensions: outputDims}, nil
}

// Tuple groups the given instructions into one tuple-shaped instruction.
func Tuple(elements ...*Instruction) *Instruction {
	tupleShapes := make([]shapes.Shape, len(elements))
	for ii, element := range elements {
		tupleShapes[ii] = element.Shape()
	}
	return NewInstruction(optypes.Tuple, shapes.MakeTuple(tupleShapes...), elements...)
}

// GetTupleElement extracts one element of a tuple-shaped instruction.
func GetTupleElement(tuple *Instruction, index int) (*Instruction, error) {
	if index < 0 || index >= tuple.Shape().TupleSize() {
		return nil, errors.Errorf("GetTupleElement index %d out of range for %s", index, tuple.Shape())
	}
	return NewInstruction(optypes.GetTupleElement, tuple.Shape().TupleShapes[index], tuple), nil
}

// NewFusion creates a Fusion instruction of the given kind.
//
// The fused sub-graph is given by its root; parameters are the placeholder
// instructions inside the sub-graph, 1:1 with the outer operands. The fusion's result
// shape is the root's shape (a tuple for multi-output fusions).
func NewFusion(kind FusionKind, root *Instruction, parameters, operands []*Instruction) (*Instruction, error) {
	if kind == UndefinedFusionKind {
		return nil, errors.New("NewFusion requires a LoopFusion or InputFusion kind")
	}
	if root == nil {
		return nil, errors.New("NewFusion requires a root instruction")
	}
	if len(parameters) != len(operands) {
		return nil, errors.Errorf("NewFusion requires parameters 1:1 with operands, got %d parameters and %d operands",
			len(parameters), len(operands))
	}
	for ii, param := range parameters {
		if param.OpType() != optypes.Parameter {
			return nil, errors.Errorf("NewFusion parameter #%d is a %s, must be a Parameter", ii, param.OpType())
		}
		if !shapes.Equal(param.Shape(), operands[ii].Shape()) {
			return nil, errors.Errorf("NewFusion parameter #%d shape %s doesn't match operand shape %s",
				ii, param.Shape(), operands[ii].Shape())
		}
	}
	instr := NewInstruction(optypes.Fusion, root.Shape().Clone(), operands...)
	instr.fusionKind = kind
	instr.fusedRoot = root
	instr.fusedParams = slices.Clone(parameters)
	return instr, nil
}
