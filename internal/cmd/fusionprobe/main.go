// fusionprobe builds a small softmax-style graph and prints the fusion engine's verdict
// for every producer/consumer edge in it. Handy to eyeball how the decision rules play
// out on a realistic graph without wiring up a whole compiler pass.
package main

import (
	"flag"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gomlx/hlofusion/dtypes"
	"github.com/gomlx/hlofusion/fusion"
	"github.com/gomlx/hlofusion/hlo"
	"github.com/gomlx/hlofusion/hlo/optypes"
	"github.com/gomlx/hlofusion/hlo/shapes"
)

var (
	flagRows  = flag.Int("rows", 1024, "Number of rows of the sample input")
	flagCols  = flag.Int("cols", 1024, "Number of columns of the sample input")
	flagLimit = flag.Int("limit", fusion.MaxOperandsAndOutputsPerFusion,
		"Kernel operand plus output budget")
)

// buildSoftmaxTail builds the exp/max/sum tail of a row-wise softmax, ending in a
// downcast to F16. The exp node feeds two row reductions and the downcast, which gives
// the engine both multi-output and postponement candidates to rule on. Returns the
// instructions in topological order.
func buildSoftmaxTail(rows, cols int) []*hlo.Instruction {
	input := hlo.Parameter("input", shapes.Make(dtypes.Float32, rows, cols))
	exp := must.M1(hlo.Unary(optypes.Exp, input))

	negInf := hlo.Constant(must.M1(hlo.NewScalarLiteralFromFloat64(
		float64(math32.Inf(-1)), dtypes.Float32)))
	rowMax := must.M1(hlo.Reduce(exp, negInf, 1))

	zero := hlo.Constant(must.M1(hlo.NewScalarLiteralFromFloat64(0, dtypes.Float32)))
	rowSum := must.M1(hlo.Reduce(exp, zero, 1))

	downcast := must.M1(hlo.Convert(exp, dtypes.Float16))

	return []*hlo.Instruction{input, exp, negInf, rowMax, zero, rowSum, downcast}
}

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	engine := fusion.New(fusion.Config{MaxOperandsAndOutputsPerFusion: *flagLimit})
	instrs := buildSoftmaxTail(*flagRows, *flagCols)

	fmt.Printf("Graph (%d instructions):\n", len(instrs))
	for _, instr := range instrs {
		fmt.Printf("  %s\n", instr)
	}

	fmt.Println("\nProducer/consumer verdicts:")
	for _, producer := range instrs {
		for _, consumer := range producer.Users() {
			fmt.Printf("  %s -> %s:\n", producer.Name(), consumer.Name())
			fmt.Printf("    fusible=%v kind=%s\n",
				fusion.IsProducerConsumerFusible(producer, consumer),
				fusion.ChooseFusionKind(producer, consumer))
			fmt.Printf("    multiOutput=%v tooLarge=%v postpone=%v\n",
				engine.ShouldFuseMultiOutput(producer, consumer),
				engine.FusionWouldBeTooLarge(producer, consumer),
				engine.ShouldPostponeFusion(producer, consumer))
		}
	}
}
