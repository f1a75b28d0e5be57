package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-pattern/dsp/conv"
)

func ExampleConvolve() {
	out, err := conv.Convolve([]float64{1, 2, 3, 4, 5}, []float64{1, 1, 1}, conv.ModeValid)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// [6 9 12]
}
