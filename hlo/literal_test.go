package hlo

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

func TestNewLiteralFromShape(t *testing.T) {
	l := NewLiteralFromShape(shapes.Make(dtypes.F32, 3, 2))
	require.Equal(t, 3*2*4, len(l.Data()))
	require.True(t, shapes.Equal(shapes.Make(dtypes.F32, 3, 2), l.Shape()))

	require.Panics(t, func() {
		NewLiteralFromShape(shapes.MakeTuple(shapes.Make(dtypes.F32), shapes.Make(dtypes.F32)))
	})
}

func TestNewScalarLiteralFromFloat64(t *testing.T) {
	// IEEE binary16 of 1.0 is 0x3C00.
	f16 := must.M1(NewScalarLiteralFromFloat64(1, dtypes.F16))
	require.Equal(t, []byte{0x00, 0x3C}, f16.Data())

	// bfloat16 keeps the top 16 bits of the float32 pattern: 1.0 is 0x3F80.
	bf16 := must.M1(NewScalarLiteralFromFloat64(1, dtypes.BF16))
	require.Equal(t, []byte{0x80, 0x3F}, bf16.Data())

	f32 := must.M1(NewScalarLiteralFromFloat64(1, dtypes.F32))
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, f32.Data())

	s32 := must.M1(NewScalarLiteralFromFloat64(-2, dtypes.S32))
	require.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF}, s32.Data())

	pred := must.M1(NewScalarLiteralFromFloat64(1, dtypes.PRED))
	require.Equal(t, []byte{1}, pred.Data())

	_, err := NewScalarLiteralFromFloat64(1, dtypes.InvalidDType)
	require.Error(t, err)
}
