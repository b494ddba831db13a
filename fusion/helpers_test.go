package fusion

import (
	"github.com/janpfeifer/must"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/hlo"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// Helpers to assemble the small graphs the decision tests run over.

func f32(dimensions ...int) shapes.Shape {
	return shapes.Make(dtypes.F32, dimensions...)
}

func f16(dimensions ...int) shapes.Shape {
	return shapes.Make(dtypes.F16, dimensions...)
}

func scalarConstant(dtype dtypes.DType, value float64) *hlo.Instruction {
	return hlo.Constant(must.M1(hlo.NewScalarLiteralFromFloat64(value, dtype)))
}

// addOverParams returns x+y over two fresh parameters of the given shape.
func addOverParams(shape shapes.Shape) *hlo.Instruction {
	return must.M1(hlo.Binary(optypes.Add,
		hlo.Parameter("x", shape), hlo.Parameter("y", shape)))
}

// reduceOf sums operand over the given dimensions, seeded with a zero scalar.
func reduceOf(operand *hlo.Instruction, dimensions ...int) *hlo.Instruction {
	zero := scalarConstant(operand.Shape().DType, 0)
	return must.M1(hlo.Reduce(operand, zero, dimensions...))
}

// unaryFusion wraps a one-parameter fused sub-graph rooted at root(param) into a
// Fusion instruction of the given kind reading operand.
func unaryFusion(kind hlo.FusionKind, operand *hlo.Instruction,
	root func(param *hlo.Instruction) *hlo.Instruction) *hlo.Instruction {
	param := hlo.Parameter("p0", operand.Shape())
	return must.M1(hlo.NewFusion(kind, root(param),
		[]*hlo.Instruction{param}, []*hlo.Instruction{operand}))
}

// inputFusionWithReduceRoot returns an input fusion computing a row-sum of its single
// f32[rows, cols] operand.
func inputFusionWithReduceRoot(operand *hlo.Instruction) *hlo.Instruction {
	return unaryFusion(hlo.InputFusion, operand, func(param *hlo.Instruction) *hlo.Instruction {
		return reduceOf(param, 1)
	})
}

// scatterOf builds a scatter updating target at indices with updates; shapes are kept
// trivial, the decision rules only look at the op type.
func scatterOf(target, indices, updates *hlo.Instruction) *hlo.Instruction {
	return hlo.NewInstruction(optypes.Scatter, target.Shape(), target, indices, updates)
}
