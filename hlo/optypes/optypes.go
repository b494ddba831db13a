// Package optypes defines OpType and lists the supported operations.
package optypes

// OpType is an enum of the operation kinds an instruction may compute.
type OpType int

//go:generate go tool enumer -type=OpType optypes.go

const (
	Invalid OpType = iota

	// Special ops:

	Parameter
	Constant
	Iota
	Tuple
	GetTupleElement
	Fusion
	CustomCall

	// Ops lowered to precompiled library routines rather than emitted inline:

	Dot
	Convolution
	FFT
	RngBitGenerator
	BatchNormInference
	BatchNormTraining
	BatchNormGradient
	Cholesky
	TriangularSolve

	// Data movement and structural ops:

	Bitcast
	Broadcast
	Concatenate
	Convert
	DynamicSlice
	DynamicUpdateSlice
	Gather
	Pad
	Reduce
	ReduceWindow
	Reshape
	Reverse
	Scatter
	Slice
	Transpose

	// Elementwise ops:

	Abs
	Add
	Ceil
	Clamp
	Cos
	Div
	Equal
	Exp
	Expm1
	Floor
	GreaterOrEqual
	GreaterThan
	IsFinite
	LessOrEqual
	LessThan
	Log
	Log1p
	LogicalAnd
	LogicalNot
	LogicalOr
	LogicalXor
	Logistic
	Max
	Min
	Mul
	Neg
	NotEqual
	Pow
	Rem
	Round
	Rsqrt
	Select
	ShiftLeft
	ShiftRightArithmetic
	ShiftRightLogical
	Sign
	Sin
	Sqrt
	Sub
	Tanh

	// Last should always be kept the last, it is used as a counter/marker.
	Last
)
