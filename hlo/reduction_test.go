package hlo

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

func reduceOverDims(operandShape shapes.Shape, dimensions ...int) *Instruction {
	operand := Parameter("x", operandShape)
	zero := Constant(must.M1(NewScalarLiteralFromFloat64(0, operandShape.DType)))
	return must.M1(Reduce(operand, zero, dimensions...))
}

func TestIsReductionFromOrToContiguousDimensions(t *testing.T) {
	// Row sum: the reduced (minor) dimension is a consecutive run of the layout.
	require.True(t, IsReductionFromOrToContiguousDimensions(
		reduceOverDims(shapes.Make(dtypes.F32, 1000, 1000), 1)))

	// Column sum: a single reduced dimension is trivially consecutive.
	require.True(t, IsReductionFromOrToContiguousDimensions(
		reduceOverDims(shapes.Make(dtypes.F32, 1000, 1000), 0)))

	// Reduction to a scalar reduces everything, trivially contiguous.
	require.True(t, IsReductionFromOrToContiguousDimensions(
		reduceOverDims(shapes.Make(dtypes.F32, 3, 4), 0, 1)))

	// Interleaved reduced and kept dimensions: neither set is consecutive.
	require.False(t, IsReductionFromOrToContiguousDimensions(
		reduceOverDims(shapes.Make(dtypes.F32, 2, 3, 4, 5), 0, 2)))

	// The two trailing dimensions are physically consecutive under the default
	// layout.
	require.True(t, IsReductionFromOrToContiguousDimensions(
		reduceOverDims(shapes.Make(dtypes.F32, 2, 3, 4, 5), 2, 3)))

	// An explicit layout can make a logically strided reduction contiguous: here
	// dimensions 0 and 2 sit next to each other at the major end of memory.
	withLayout := shapes.MakeWithLayout(dtypes.F32, []int{2, 3, 4, 5}, []int{1, 3, 2, 0})
	require.True(t, IsReductionFromOrToContiguousDimensions(
		reduceOverDims(withLayout, 0, 2)))

	// Non-reductions never qualify.
	require.False(t, IsReductionFromOrToContiguousDimensions(
		Parameter("p", shapes.Make(dtypes.F32, 8))))
	require.False(t, IsReductionFromOrToContiguousDimensions(
		must.M1(Unary(optypes.Neg, Parameter("q", shapes.Make(dtypes.F32, 8))))))
}
