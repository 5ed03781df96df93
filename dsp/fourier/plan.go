package fourier

import (
	"fmt"
	"math"
)

// Direction selects the sign of the transform exponent.
type Direction int

const (
	// Forward computes X[k] = sum_n x[n]·exp(-2πi·k·n/N).
	Forward Direction = iota
	// Inverse computes the conjugate transform without the 1/N
	// normalization, so Inverse(Forward(x)) = N·x.
	Inverse
)

// Plan holds the precomputed state for transforms of one fixed length
// and direction: the twiddle-factor table and the radix factorization.
//
// A Plan is immutable after construction except for an internal scratch
// buffer used by the generic butterfly, so a single Plan must not be
// used from multiple goroutines concurrently. Distinct plans are
// independent.
type Plan struct {
	n        int
	dir      Direction
	twiddles []complex128
	factors  []int // flattened (radix, remaining) pairs
	scratch  []complex128
}

// NewPlan creates a transform plan for length n in the given direction.
// Any n >= 1 is supported; lengths with large prime factors degrade to
// the O(p²) generic stage but remain exact.
func NewPlan(n int, dir Direction) (*Plan, error) {
	if n < 1 {
		return nil, fmt.Errorf("fourier: plan size must be >= 1: %d", n)
	}

	twiddles := make([]complex128, n)
	for i := range twiddles {
		phase := -2 * math.Pi * float64(i) / float64(n)
		if dir == Inverse {
			phase = -phase
		}

		twiddles[i] = complex(math.Cos(phase), math.Sin(phase))
	}

	factors := factorize(n)

	maxRadix := 1
	for i := 0; i < len(factors); i += 2 {
		if factors[i] > maxRadix {
			maxRadix = factors[i]
		}
	}

	return &Plan{
		n:        n,
		dir:      dir,
		twiddles: twiddles,
		factors:  factors,
		scratch:  make([]complex128, maxRadix),
	}, nil
}

// Size returns the transform length the plan was built for.
func (p *Plan) Size() int { return p.n }

// Direction returns the transform direction the plan was built for.
func (p *Plan) Direction() Direction { return p.dir }

// Transform computes the DFT of src into dst. Both slices must have
// exactly the plan size and must not share backing memory.
func (p *Plan) Transform(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrLengthMismatch
	}

	if &dst[0] == &src[0] {
		return ErrAliasedBuffers
	}

	p.work(dst, src, 0, 1, p.factors)

	return nil
}

// factorize splits n into (radix, remaining) pairs: the smallest factor
// is tried as 4, then 2, then 3, then increasing odd numbers; once the
// candidate exceeds floor(sqrt(n)) the remainder itself is taken as a
// factor. This mirrors the classic mixed-radix decimation order that
// keeps radix-4 stages in front.
func factorize(n int) []int {
	factors := make([]int, 0, 16)

	p := 4
	floorSqrt := int(math.Floor(math.Sqrt(float64(n))))

	for {
		for n%p != 0 {
			switch p {
			case 4:
				p = 2
			case 2:
				p = 3
			default:
				p += 2
			}

			if p > floorSqrt {
				p = n
			}
		}

		n /= p
		factors = append(factors, p, n)

		if n <= 1 {
			return factors
		}
	}
}

// work recursively transforms the stride-interleaved sub-blocks of src
// into out and combines them with the radix-p butterfly. out is a
// window of p*m contiguous output elements; src is read starting at
// off with the given stride.
func (p *Plan) work(out, src []complex128, off, fstride int, factors []int) {
	radix := factors[0]
	m := factors[1]

	if m == 1 {
		for i := 0; i < radix; i++ {
			out[i] = src[off+i*fstride]
		}
	} else {
		for q := 0; q < radix; q++ {
			p.work(out[q*m:(q+1)*m], src, off+q*fstride, fstride*radix, factors[2:])
		}
	}

	switch radix {
	case 2:
		p.bfly2(out, fstride, m)
	case 4:
		p.bfly4(out, fstride, m)
	default:
		p.bflyGeneric(out, fstride, m, radix)
	}
}

func (p *Plan) bfly2(out []complex128, fstride, m int) {
	for i := 0; i < m; i++ {
		t := out[m+i] * p.twiddles[i*fstride]
		out[m+i] = out[i] - t
		out[i] += t
	}
}

func (p *Plan) bfly4(out []complex128, fstride, m int) {
	m2 := 2 * m
	m3 := 3 * m

	for i := 0; i < m; i++ {
		s0 := out[m+i] * p.twiddles[i*fstride]
		s1 := out[m2+i] * p.twiddles[2*i*fstride]
		s2 := out[m3+i] * p.twiddles[3*i*fstride]

		s5 := out[i] - s1
		f0 := out[i] + s1
		s3 := s0 + s2
		s4 := s0 - s2

		out[i] = f0 + s3
		out[m2+i] = f0 - s3

		// s5 ± i·s4, with the sign pair swapped for the inverse
		// direction.
		rot := complex(-imag(s4), real(s4))
		if p.dir == Inverse {
			out[m+i] = s5 + rot
			out[m3+i] = s5 - rot
		} else {
			out[m+i] = s5 - rot
			out[m3+i] = s5 + rot
		}
	}
}

// bflyGeneric is the O(p²) combine for radices without a dedicated
// butterfly. Twiddle indices are accumulated modulo n; a single
// subtraction suffices because fstride*k < n for every output index k
// in this stage.
func (p *Plan) bflyGeneric(out []complex128, fstride, m, radix int) {
	scratch := p.scratch[:radix]

	for u := 0; u < m; u++ {
		k := u
		for q1 := 0; q1 < radix; q1++ {
			scratch[q1] = out[k]
			k += m
		}

		k = u
		for q1 := 0; q1 < radix; q1++ {
			twidx := 0
			out[k] = scratch[0]

			for q := 1; q < radix; q++ {
				twidx += fstride * k
				if twidx >= p.n {
					twidx -= p.n
				}

				out[k] += scratch[q] * p.twiddles[twidx]
			}

			k += m
		}
	}
}
