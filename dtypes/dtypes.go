// Package dtypes defines the DType enum of element types supported by instruction shapes.
//
// The names mirror XLA's primitive type mnemonics (PRED, S8, ..., F32, ...); Go-style
// aliases (Bool, Int8, ..., Float32, ...) are provided for convenience.
package dtypes

//go:generate go tool enumer -type=DType dtypes.go

// DType is the element type of an array shape.
type DType int32

const (
	InvalidDType DType = iota
	PRED
	S8
	S16
	S32
	S64
	U8
	U16
	U32
	U64
	F16
	F32
	F64
	BF16
	C64
	C128
)

// Aliases to the XLA mnemonics above.
const (
	// Bool (an alias for PRED) is used as the output and input of logic operations.
	Bool = PRED

	Int8  = S8
	Int16 = S16
	Int32 = S32
	Int64 = S64

	Uint8  = U8
	Uint16 = U16
	Uint32 = U32
	Uint64 = U64

	Float16  = F16
	Float32  = F32
	Float64  = F64
	BFloat16 = BF16

	Complex64  = C64
	Complex128 = C128
)

// Memory returns the number of bytes used to store one element of the given DType.
// Careful with PRED (bool), which on device uses one byte.
func (dtype DType) Memory() uintptr {
	switch dtype {
	case PRED, S8, U8:
		return 1
	case S16, U16, F16, BF16:
		return 2
	case S32, U32, F32:
		return 4
	case S64, U64, F64, C64:
		return 8
	case C128:
		return 16
	}
	return 0
}

// IsFloat returns whether the DType is a floating point type, including the truncated
// 16-bit formats.
func (dtype DType) IsFloat() bool {
	return dtype == F16 || dtype == F32 || dtype == F64 || dtype == BF16
}

// IsComplex returns whether the DType is a complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == C64 || dtype == C128
}

// IsInt returns whether the DType is a signed or unsigned integer type.
func (dtype DType) IsInt() bool {
	switch dtype {
	case S8, S16, S32, S64, U8, U16, U32, U64:
		return true
	}
	return false
}
