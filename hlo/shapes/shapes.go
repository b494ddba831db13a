// Package shapes defines the Shape of instruction results, including the physical
// memory layout of array shapes, plus the shape utilities consulted by the fusion rules.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/hlofusion/dtypes"
	"github.com/pkg/errors"
)

// Shape is a minimalistic shape representation of a tensor.
//
// It is defined as a DType (the underlying data type, e.g.: Float32, Int64, etc.), the
// dimensions on each axis of the tensor and the Layout, the physical ordering of those
// axes in memory, given minor-to-major. If len(Dimensions) is 0, it represents a scalar.
// A nil Layout means the default descending layout (last axis is minor-most).
//
// Alternatively, a value can represent a "tuple" of sub-values.
// In this case Shape.TupleShapes is defined with the shapes of its sub-values -- it is a
// recursive structure. In this case DType is set to InvalidDType, and the shape doesn't
// have a value of itself.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int

	// Layout holds the physical ordering of the axes in memory, minor-to-major.
	// If nil, the default descending layout is assumed.
	Layout []int

	TupleShapes []Shape // Shapes of the tuple, if this is a tuple.
}

// Make returns a Shape with the default layout, filled with the values given.
//
// The dimensions must be >= 1, and it doesn't work for tuple shapes.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s, err := MakeOrError(dtype, dimensions...)
	if err != nil {
		exceptions.Panicf("shapes.Make(%s, %v): %v", dtype, dimensions, err)
	}
	return s
}

// MakeOrError is the same as Make, but it returns an error instead if the dimensions
// are <= 0.
func MakeOrError(dtype dtypes.DType, dimensions ...int) (Shape, error) {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim <= 0 {
			return Shape{}, errors.Errorf("cannot create a shape with an axis with dimension <= 0, got %v", dimensions)
		}
	}
	return s, nil
}

// MakeWithLayout is like Make, but with an explicit minor-to-major layout.
// The layout must be a permutation of the axes.
func MakeWithLayout(dtype dtypes.DType, dimensions, layout []int) Shape {
	s := Make(dtype, dimensions...)
	if !IsPermutation(layout, len(dimensions)) {
		exceptions.Panicf("shapes.MakeWithLayout(%s, %v, %v): layout is not a permutation of the %d axes",
			dtype, dimensions, layout, len(dimensions))
	}
	s.Layout = slices.Clone(layout)
	return s
}

// MakeTuple returns a tuple-shape with the given sub-shapes.
func MakeTuple(elements ...Shape) Shape {
	return Shape{TupleShapes: slices.Clone(elements)}
}

// IsTuple returns whether the shape represents a tuple of sub-values.
func (s Shape) IsTuple() bool { return len(s.TupleShapes) > 0 }

// IsArray returns whether the shape represents an array (including scalars), as opposed
// to a tuple.
func (s Shape) IsArray() bool { return !s.IsTuple() && s.DType != dtypes.InvalidDType }

// IsScalar returns whether the Shape is a scalar, i.e. its len(Shape.Dimensions) == 0.
func (s Shape) IsScalar() bool { return s.IsArray() && s.Rank() == 0 }

// Rank of a shape is the number of axes. A shortcut to len(Shape.Dimensions).
// Scalar values have rank 0.
func (s Shape) Rank() int { return len(s.Dimensions) }

// Size returns the total size of the shape. E.g.: a Shape of dimensions [3, 5] has
// size 15. A scalar has size 1.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return size
}

// Memory returns the number of bytes needed to store an array of the given shape.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// MinorToMajor returns the physical ordering of the shape's axes, minor-most first.
// If no layout was set explicitly, it returns the default descending layout.
func (s Shape) MinorToMajor() []int {
	if s.Layout != nil {
		return s.Layout
	}
	layout := make([]int, s.Rank())
	for ii := range layout {
		layout[ii] = s.Rank() - 1 - ii
	}
	return layout
}

// TupleSize is an alias to len(Shape.TupleShapes).
func (s Shape) TupleSize() int { return len(s.TupleShapes) }

// Clone makes a deep copy (including dimensions, layout and tuples) of the given shape.
func (s Shape) Clone() (newS Shape) {
	newS.DType = s.DType
	newS.Dimensions = slices.Clone(s.Dimensions)
	newS.Layout = slices.Clone(s.Layout)
	if len(s.TupleShapes) > 0 {
		newS.TupleShapes = make([]Shape, len(s.TupleShapes))
		for ii, subS := range s.TupleShapes {
			newS.TupleShapes[ii] = subS.Clone()
		}
	}
	return newS
}

// String implements fmt.Stringer and pretty-print the shape.
func (s Shape) String() string {
	if s.IsTuple() {
		parts := make([]string, 0, s.TupleSize())
		for _, tuple := range s.TupleShapes {
			parts = append(parts, tuple.String())
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(parts, ", "))
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)[]", s.DType)
	}
	if s.Layout != nil {
		return fmt.Sprintf("(%s)%v{%v}", s.DType, s.Dimensions, s.Layout)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// IsPermutation checks whether the values in layout are a permutation of 0 to rank-1.
func IsPermutation(layout []int, rank int) bool {
	if len(layout) != rank {
		return false
	}
	seen := make([]bool, rank)
	for _, axis := range layout {
		if axis < 0 || axis >= rank || seen[axis] {
			return false
		}
		seen[axis] = true
	}
	return true
}
