package axis_test

import (
	"fmt"

	"github.com/matzehuels/framechart/pkg/axis"
)

func ExampleNiceMarks() {
	values, err := axis.NiceMarks(-5.2345, 8.41234, 6)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(values)
	// Output:
	// [-6 -4 -2 0 2 4 6 8 10]
}

func ExampleAxis_ComputeMarks() {
	a := axis.Horizontal(0.13, 0.92)
	if err := a.ComputeMarks(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("range:", a.Range)
	for _, m := range a.Marks {
		fmt.Printf("%s at x=%.3f\n", m.Label, m.Local.X)
	}
	// Output:
	// range: [0 1]
	// 0.00 at x=0.000
	// 0.20 at x=0.200
	// 0.40 at x=0.400
	// 0.60 at x=0.600
	// 0.80 at x=0.800
	// 1.00 at x=1.000
}
