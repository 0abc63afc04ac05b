package tsplib_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/glsearch/tsplib"
)

// ExampleParse reads a small TSPLIB EUC_2D instance.
func ExampleParse() {
	src := "NAME: box4\n" +
		"TYPE: TSP\n" +
		"DIMENSION: 4\n" +
		"EDGE_WEIGHT_TYPE: EUC_2D\n" +
		"NODE_COORD_SECTION\n" +
		"1 0 0\n" +
		"2 3 0\n" +
		"3 3 4\n" +
		"4 0 4\n" +
		"EOF\n"
	in, err := tsplib.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(in.Name, in.Len(), in.Cities[2])
	// Output:
	// box4 4 {3 4}
}

// ExampleBerlin52 loads the embedded benchmark instance.
func ExampleBerlin52() {
	in := tsplib.Berlin52()
	fmt.Println(in.Name, in.Len(), tsplib.Berlin52Optimum)
	// Output:
	// berlin52 52 7542
}
