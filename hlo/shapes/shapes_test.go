package shapes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlofusion/dtypes"
)

func TestMake(t *testing.T) {
	s := Make(dtypes.Float32, 3, 5)
	require.Equal(t, 2, s.Rank())
	require.Equal(t, 15, s.Size())
	require.Equal(t, uintptr(60), s.Memory())
	require.True(t, s.IsArray())
	require.False(t, s.IsTuple())
	require.Equal(t, "(F32)[3 5]", s.String())

	scalar := Make(dtypes.Int64)
	require.True(t, scalar.IsScalar())
	require.Equal(t, 1, scalar.Size())

	require.Panics(t, func() { Make(dtypes.Float32, 3, 0) })
}

func TestMakeWithLayout(t *testing.T) {
	s := MakeWithLayout(dtypes.F32, []int{3, 5}, []int{0, 1})
	require.Equal(t, []int{0, 1}, s.MinorToMajor())

	// The default layout is descending: last axis minor-most.
	require.Equal(t, []int{1, 0}, Make(dtypes.F32, 3, 5).MinorToMajor())

	require.Panics(t, func() { MakeWithLayout(dtypes.F32, []int{3, 5}, []int{0, 0}) })
	require.Panics(t, func() { MakeWithLayout(dtypes.F32, []int{3, 5}, []int{0}) })
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(Make(dtypes.F32, 3, 5), Make(dtypes.F32, 3, 5)))
	require.False(t, Equal(Make(dtypes.F32, 3, 5), Make(dtypes.F16, 3, 5)))
	require.False(t, Equal(Make(dtypes.F32, 3, 5), Make(dtypes.F32, 5, 3)))

	// An explicit default layout equals an implicit one.
	require.True(t, Equal(Make(dtypes.F32, 3, 5),
		MakeWithLayout(dtypes.F32, []int{3, 5}, []int{1, 0})))
	require.False(t, Equal(Make(dtypes.F32, 3, 5),
		MakeWithLayout(dtypes.F32, []int{3, 5}, []int{0, 1})))

	tuple1 := MakeTuple(Make(dtypes.F32, 3), Make(dtypes.S32))
	tuple2 := MakeTuple(Make(dtypes.F32, 3), Make(dtypes.S32))
	require.True(t, Equal(tuple1, tuple2))
	require.False(t, Equal(tuple1, Make(dtypes.F32, 3)))
	require.False(t, Equal(tuple1, MakeTuple(Make(dtypes.F32, 3))))
}

func TestEqualIgnoringFpPrecision(t *testing.T) {
	require.True(t, EqualIgnoringFpPrecision(Make(dtypes.F32, 7), Make(dtypes.F16, 7)))
	require.True(t, EqualIgnoringFpPrecision(Make(dtypes.BF16, 7), Make(dtypes.F64, 7)))
	require.False(t, EqualIgnoringFpPrecision(Make(dtypes.F32, 7), Make(dtypes.S32, 7)))
	require.False(t, EqualIgnoringFpPrecision(Make(dtypes.F32, 7), Make(dtypes.F32, 8)))
	require.False(t, EqualIgnoringFpPrecision(Make(dtypes.F32, 3, 5),
		MakeWithLayout(dtypes.F16, []int{3, 5}, []int{0, 1})))
}

func TestSubshapeCount(t *testing.T) {
	require.Equal(t, 1, SubshapeCount(Make(dtypes.F32, 3, 5)))
	require.Equal(t, 1, SubshapeCount(Make(dtypes.F32)))

	tuple := MakeTuple(Make(dtypes.F32, 3), Make(dtypes.S32))
	require.Equal(t, 3, SubshapeCount(tuple))

	nested := MakeTuple(tuple, Make(dtypes.F64))
	require.Equal(t, 5, SubshapeCount(nested))
}

func TestByteSizeOf(t *testing.T) {
	require.Equal(t, uintptr(4096), ByteSizeOf(Make(dtypes.F32, 1024)))
	require.Equal(t, uintptr(2048), ByteSizeOf(Make(dtypes.F16, 1024)))
	require.Equal(t, uintptr(12+8), ByteSizeOf(MakeTuple(Make(dtypes.F32, 3), Make(dtypes.F64))))
}

func TestIsEffectiveScalar(t *testing.T) {
	require.True(t, IsEffectiveScalar(Make(dtypes.F32)))
	require.True(t, IsEffectiveScalar(Make(dtypes.F32, 1, 1, 1)))
	require.False(t, IsEffectiveScalar(Make(dtypes.F32, 1, 2)))
	require.False(t, IsEffectiveScalar(MakeTuple(Make(dtypes.F32))))
}

func TestClone(t *testing.T) {
	s := MakeWithLayout(dtypes.F32, []int{3, 5}, []int{0, 1})
	c := s.Clone()
	require.True(t, Equal(s, c))
	c.Dimensions[0] = 7
	c.Layout[0] = 1
	require.Equal(t, 3, s.Dimensions[0])
	require.Equal(t, 0, s.Layout[0])

	tuple := MakeTuple(s, Make(dtypes.S32))
	clone := tuple.Clone()
	require.True(t, Equal(tuple, clone))
	clone.TupleShapes[0].Dimensions[0] = 9
	require.Equal(t, 3, tuple.TupleShapes[0].Dimensions[0])
}
