package shapes

import "slices"

// This file holds the shape predicates consulted by the fusion decision rules.

// Equal compares dtype, dimensions and physical layout of two shapes.
// Tuple shapes are compared recursively, element by element.
func Equal(s1, s2 Shape) bool {
	if s1.IsTuple() != s2.IsTuple() {
		return false
	}
	if s1.IsTuple() {
		return slices.EqualFunc(s1.TupleShapes, s2.TupleShapes, Equal)
	}
	return s1.DType == s2.DType &&
		slices.Equal(s1.Dimensions, s2.Dimensions) &&
		LayoutsEqual(s1, s2)
}

// EqualIgnoringFpPrecision is like Equal, but it considers all floating point dtypes
// (F16, BF16, F32, F64) interchangeable: the datatype width doesn't affect the loop
// structure of a kernel iterating over the shape.
func EqualIgnoringFpPrecision(s1, s2 Shape) bool {
	if s1.IsTuple() != s2.IsTuple() {
		return false
	}
	if s1.IsTuple() {
		return slices.EqualFunc(s1.TupleShapes, s2.TupleShapes, EqualIgnoringFpPrecision)
	}
	if s1.DType != s2.DType && !(s1.DType.IsFloat() && s2.DType.IsFloat()) {
		return false
	}
	return slices.Equal(s1.Dimensions, s2.Dimensions) && LayoutsEqual(s1, s2)
}

// LayoutsEqual compares the physical (minor-to-major) layouts of two array shapes,
// resolving nil layouts to the default.
func LayoutsEqual(s1, s2 Shape) bool {
	return slices.Equal(s1.MinorToMajor(), s2.MinorToMajor())
}

// SubshapeCount returns the number of shapes contained in the given shape, including
// itself: 1 for an array shape, 1 plus the recursive count of every element for a tuple.
func SubshapeCount(s Shape) int {
	if !s.IsTuple() {
		return 1
	}
	count := 1
	for _, subShape := range s.TupleShapes {
		count += SubshapeCount(subShape)
	}
	return count
}

// ByteSizeOf returns the number of bytes needed to hold the shape's data: the array
// memory for arrays, or the sum over the elements for tuples.
func ByteSizeOf(s Shape) uintptr {
	if !s.IsTuple() {
		return s.Memory()
	}
	var size uintptr
	for _, subShape := range s.TupleShapes {
		size += ByteSizeOf(subShape)
	}
	return size
}

// IsEffectiveScalar returns whether the shape is an array holding exactly one element:
// a true scalar, or an array whose dimensions are all 1.
func IsEffectiveScalar(s Shape) bool {
	if !s.IsArray() {
		return false
	}
	for _, dim := range s.Dimensions {
		if dim != 1 {
			return false
		}
	}
	return true
}
