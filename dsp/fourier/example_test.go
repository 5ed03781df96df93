package fourier_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rppg/dsp/fourier"
)

func ExampleNewPlan() {
	const n = 8

	plan, err := fourier.NewPlan(n, fourier.Forward)
	if err != nil {
		panic(err)
	}

	// Cosine at bin 2: energy lands in bins 2 and n-2.
	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(math.Cos(2*math.Pi*2*float64(i)/n), 0)
	}

	out := make([]complex128, n)
	if err := plan.Transform(out, in); err != nil {
		panic(err)
	}

	fmt.Printf("|X[2]| = %.1f\n", cmplx.Abs(out[2]))
	fmt.Printf("|X[6]| = %.1f\n", cmplx.Abs(out[6]))
	// Output:
	// |X[2]| = 4.0
	// |X[6]| = 4.0
}
