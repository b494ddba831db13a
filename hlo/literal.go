package hlo

import (
	"encoding/binary"
	"math"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// Literal holds the payload of a Constant instruction, and is treated as immutable.
//
// The data is stored flat, in row-major logical order, little-endian.
type Literal struct {
	shape shapes.Shape
	data  []byte
}

// NewLiteralFromShape creates a zero-initialized literal with the given shape.
// It cannot be used to create Literal tuples.
func NewLiteralFromShape(shape shapes.Shape) *Literal {
	if shape.IsTuple() {
		exceptions.Panicf("NewLiteralFromShape cannot be used to create tuple literals, shape given was %s", shape)
	}
	return &Literal{
		shape: shape.Clone(),
		data:  make([]byte, shape.Memory()),
	}
}

// NewScalarLiteralFromFloat64 creates a scalar literal of the given dtype from the
// value, converting (and possibly truncating) as needed.
func NewScalarLiteralFromFloat64(value float64, dtype dtypes.DType) (*Literal, error) {
	l := NewLiteralFromShape(shapes.Make(dtype))
	switch dtype {
	case dtypes.F16:
		binary.LittleEndian.PutUint16(l.data, float16.Fromfloat32(float32(value)).Bits())
	case dtypes.BF16:
		binary.LittleEndian.PutUint16(l.data, uint16(math.Float32bits(float32(value))>>16))
	case dtypes.F32:
		binary.LittleEndian.PutUint32(l.data, math.Float32bits(float32(value)))
	case dtypes.F64:
		binary.LittleEndian.PutUint64(l.data, math.Float64bits(value))
	case dtypes.S8, dtypes.U8:
		l.data[0] = byte(int64(value))
	case dtypes.S16, dtypes.U16:
		binary.LittleEndian.PutUint16(l.data, uint16(int64(value)))
	case dtypes.S32, dtypes.U32:
		binary.LittleEndian.PutUint32(l.data, uint32(int64(value)))
	case dtypes.S64, dtypes.U64:
		binary.LittleEndian.PutUint64(l.data, uint64(int64(value)))
	case dtypes.PRED:
		if value != 0 {
			l.data[0] = 1
		}
	default:
		return nil, errors.Errorf("NewScalarLiteralFromFloat64 does not support dtype %s", dtype)
	}
	return l, nil
}

// Shape of the literal.
func (l *Literal) Shape() shapes.Shape { return l.shape }

// Data returns the literal's flat little-endian bytes. It must not be modified.
func (l *Literal) Data() []byte { return l.data }
