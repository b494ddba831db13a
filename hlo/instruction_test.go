package hlo

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

func TestBuilderMaintainsUsers(t *testing.T) {
	x := Parameter("x", shapes.Make(dtypes.F32, 8))
	y := Parameter("y", shapes.Make(dtypes.F32, 8))
	sum := must.M1(Binary(optypes.Add, x, y))
	require.Equal(t, []*Instruction{x, y}, sum.Operands())
	require.Contains(t, x.Users(), sum)
	require.Contains(t, y.Users(), sum)

	neg := must.M1(Unary(optypes.Neg, sum))
	require.Contains(t, sum.Users(), neg)
	require.Len(t, sum.Users(), 1)
	require.Empty(t, neg.Users())
}

func TestBinaryValidation(t *testing.T) {
	x := Parameter("x", shapes.Make(dtypes.F32, 8))
	y := Parameter("y", shapes.Make(dtypes.F32, 16))
	_, err := Binary(optypes.Add, x, y)
	require.Error(t, err)
	// A failed construction must not leave stray user entries behind.
	require.Empty(t, x.Users())
	require.Empty(t, y.Users())

	_, err = Binary(optypes.Reshape, x, x)
	require.Error(t, err)

	cmp := must.M1(Binary(optypes.GreaterThan, x, Parameter("z", shapes.Make(dtypes.F32, 8))))
	require.Equal(t, dtypes.PRED, cmp.Shape().DType)
}

func TestElementwiseClassification(t *testing.T) {
	x := Parameter("x", shapes.Make(dtypes.F32, 8))
	require.True(t, must.M1(Unary(optypes.Exp, x)).IsElementwise())
	require.True(t, must.M1(Convert(x, dtypes.F16)).IsElementwise())
	require.False(t, x.IsElementwise())
	require.False(t, NewInstruction(optypes.Reshape, shapes.Make(dtypes.F32, 2, 4), x).IsElementwise())
	require.False(t, NewInstruction(optypes.Broadcast, shapes.Make(dtypes.F32, 2, 8), x).IsElementwise())
}

func TestCouldBeBitcast(t *testing.T) {
	x := Parameter("x", shapes.Make(dtypes.F32, 2, 4))
	require.True(t, NewInstruction(optypes.Transpose, shapes.Make(dtypes.F32, 4, 2), x).CouldBeBitcast())
	require.True(t, NewInstruction(optypes.Reshape, shapes.Make(dtypes.F32, 8), x).CouldBeBitcast())
	require.False(t, must.M1(Unary(optypes.Neg, x)).CouldBeBitcast())
}

func TestImplementedAsLibraryCall(t *testing.T) {
	lhs := Parameter("lhs", shapes.Make(dtypes.F32, 4, 4))
	rhs := Parameter("rhs", shapes.Make(dtypes.F32, 4, 4))
	dot := NewInstruction(optypes.Dot, shapes.Make(dtypes.F32, 4, 4), lhs, rhs)
	require.True(t, ImplementedAsLibraryCall(dot))
	require.True(t, ImplementedAsLibraryCall(
		NewInstruction(optypes.CustomCall, shapes.Make(dtypes.F32, 4))))
	require.False(t, ImplementedAsLibraryCall(must.M1(Unary(optypes.Neg, lhs))))
}

func TestFusionMetadata(t *testing.T) {
	operand := Parameter("in", shapes.Make(dtypes.F32, 16))
	param := Parameter("p0", shapes.Make(dtypes.F32, 16))
	root := must.M1(Unary(optypes.Neg, param))
	fused := must.M1(NewFusion(LoopFusion, root,
		[]*Instruction{param}, []*Instruction{operand}))

	require.Equal(t, optypes.Fusion, fused.OpType())
	require.Equal(t, LoopFusion, fused.FusionKind())
	require.Same(t, root, fused.FusedRoot())
	require.Equal(t, []*Instruction{param}, fused.FusedParameters())
	require.True(t, fused.IsLoopFusion())
	require.False(t, fused.IsInputFusion())
	require.False(t, fused.IsMultiOutputFusion())
	require.True(t, shapes.Equal(root.Shape(), fused.Shape()))

	// Multi-output: the root is a tuple.
	root2 := Tuple(root, must.M1(Unary(optypes.Exp, param)))
	mof := must.M1(NewFusion(LoopFusion, root2,
		[]*Instruction{param}, []*Instruction{operand}))
	require.True(t, mof.IsMultiOutputFusion())
	require.True(t, mof.Shape().IsTuple())
}

func TestNewFusionValidation(t *testing.T) {
	operand := Parameter("in", shapes.Make(dtypes.F32, 16))
	param := Parameter("p0", shapes.Make(dtypes.F32, 16))
	root := must.M1(Unary(optypes.Neg, param))

	_, err := NewFusion(UndefinedFusionKind, root, []*Instruction{param}, []*Instruction{operand})
	require.Error(t, err)

	_, err = NewFusion(LoopFusion, root, nil, []*Instruction{operand})
	require.Error(t, err)

	badParam := Parameter("p1", shapes.Make(dtypes.F32, 32))
	_, err = NewFusion(LoopFusion, root, []*Instruction{badParam}, []*Instruction{operand})
	require.Error(t, err)

	notAParam := must.M1(Unary(optypes.Neg, param))
	_, err = NewFusion(LoopFusion, root, []*Instruction{notAParam}, []*Instruction{operand})
	require.Error(t, err)
}

func TestSetFusible(t *testing.T) {
	x := Parameter("x", shapes.Make(dtypes.F32, 8))
	require.False(t, x.IsFusible())
	sum := must.M1(Binary(optypes.Add, x, Parameter("y", shapes.Make(dtypes.F32, 8))))
	require.True(t, sum.IsFusible())
	sum.SetFusible(false)
	require.False(t, sum.IsFusible())
}

func TestInstructionString(t *testing.T) {
	x := Parameter("x", shapes.Make(dtypes.F32, 8))
	y := Parameter("y", shapes.Make(dtypes.F32, 8))
	sum := must.M1(Binary(optypes.Add, x, y))
	require.Contains(t, sum.String(), "add(x, y)")
	require.Contains(t, sum.String(), "(F32)[8]")
}
