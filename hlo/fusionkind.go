package hlo

// FusionKind tags the structural kind of a Fusion instruction, which selects how the
// fused kernel is generated.
type FusionKind int

//go:generate go tool enumer -type=FusionKind fusionkind.go

const (
	// UndefinedFusionKind is the zero value, carried by every non-Fusion instruction.
	UndefinedFusionKind FusionKind = iota

	// LoopFusion generates a single elementwise-style parallel loop.
	LoopFusion

	// InputFusion generates a specialized kernel for a fusion rooted at a reduction
	// or a scatter.
	InputFusion
)
