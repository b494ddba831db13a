package hlo

import (
	"slices"

	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

// IsReductionFromOrToContiguousDimensions returns whether the instruction is a Reduce
// whose reduced dimensions -- or whose kept dimensions -- occupy a physically
// consecutive run of the input's layout.
//
// Such reductions collapse to a reduction "from" the minor (or "to" the major) end of
// memory and get a specialized, efficient lowering; everything else has to be emitted
// as a plain loop.
func IsReductionFromOrToContiguousDimensions(instr *Instruction) bool {
	if instr.OpType() != optypes.Reduce {
		return false
	}
	operandShape := instr.Operand(0).Shape()
	dimsToReduce := instr.ReduceDimensions()
	var dimsToKeep []int
	for dim := range operandShape.Dimensions {
		if !slices.Contains(dimsToReduce, dim) {
			dimsToKeep = append(dimsToKeep, dim)
		}
	}
	return areDimensionsConsecutive(operandShape, dimsToKeep) ||
		areDimensionsConsecutive(operandShape, dimsToReduce)
}

// areDimensionsConsecutive checks whether the given logical dimensions sit next to
// each other in the shape's physical (minor-to-major) layout.
func areDimensionsConsecutive(shape shapes.Shape, dims []int) bool {
	minorToMajor := shape.MinorToMajor()
	positions := make([]int, 0, len(dims))
	for _, dim := range dims {
		positions = append(positions, slices.Index(minorToMajor, dim))
	}
	slices.Sort(positions)
	for ii := 1; ii < len(positions); ii++ {
		if positions[ii] != positions[ii-1]+1 {
			return false
		}
	}
	return true
}
