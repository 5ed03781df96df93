// Package fourier implements a mixed-radix complex discrete Fourier
// transform with precomputed plans.
//
// A Plan fixes the transform length and direction at construction time,
// precomputing the twiddle-factor table and a factorization of the
// length into small radices. Radix-2 and radix-4 stages use dedicated
// butterflies; any other prime factor p falls back to a generic O(p²)
// combine. Lengths are not restricted to powers of two.
//
// # Usage
//
//	plan, err := fourier.NewPlan(300, fourier.Forward)
//	out := make([]complex128, 300)
//	err = plan.Transform(out, in)
//
// The inverse direction uses conjugated twiddle factors and is
// unnormalized: transforming forward and then inverse scales the input
// by the plan length.
package fourier
