package heartrate

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rppg/dsp/fourier"
	"github.com/cwbudde/algo-rppg/dsp/window"
)

const (
	// Physiological search band: 45-200 BPM. Capped at 200 to keep
	// high-frequency noise out of the peak search.
	minSearchFreqHz = 0.75
	maxSearchFreqHz = 3.33

	// Once locked, the search narrows to ±15 BPM around the previous
	// estimate.
	narrowBandBPM = 15.0

	// The peak must exceed the band-average magnitude by this factor
	// to be accepted.
	snrThreshold = 2.0

	// New-value weight of the exponential smoother.
	smoothingWeight = 0.3

	// Minimum window fill before any estimate is attempted, in
	// multiples of the sample rate (seconds).
	minWindowSeconds = 3.0
)

// Estimator turns a stream of per-frame green-channel samples into a
// stabilized heart-rate estimate in BPM.
//
// It holds a fixed-capacity sliding window over the most recent
// samples and one forward transform plan of the window capacity for
// its whole lifetime. A single mutex serializes AddSample against
// ComputeHeartRate and Reset, so a reset never interleaves with an
// in-flight computation.
type Estimator struct {
	mu sync.Mutex

	capacity   int
	sampleRate float64

	ring    *sampleRing
	prevBPM float64

	plan       *fourier.Plan
	fullCoeffs []float64 // Hamming coefficients for a full window

	// Scratch buffers, reused across computations
	signal []float64
	fftIn  []complex128
	fftOut []complex128
	re     []float64
	im     []float64
	mags   []float64
}

// NewEstimator creates an estimator with the given options. It fails
// fast on a non-positive buffer capacity or sample rate.
func NewEstimator(opts ...Option) (*Estimator, error) {
	cfg := ApplyOptions(opts...)

	if cfg.BufferCapacity <= 0 {
		return nil, fmt.Errorf("heartrate: buffer capacity must be > 0: %d", cfg.BufferCapacity)
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("heartrate: sample rate must be > 0: %f", cfg.SampleRate)
	}

	plan, err := fourier.NewPlan(cfg.BufferCapacity, fourier.Forward)
	if err != nil {
		return nil, fmt.Errorf("heartrate: transform plan: %w", err)
	}

	half := cfg.BufferCapacity / 2

	return &Estimator{
		capacity:   cfg.BufferCapacity,
		sampleRate: cfg.SampleRate,
		ring:       newSampleRing(cfg.BufferCapacity),
		plan:       plan,
		fullCoeffs: window.Generate(window.TypeHamming, cfg.BufferCapacity),
		signal:     make([]float64, cfg.BufferCapacity),
		fftIn:      make([]complex128, cfg.BufferCapacity),
		fftOut:     make([]complex128, cfg.BufferCapacity),
		re:         make([]float64, half),
		im:         make([]float64, half),
		mags:       make([]float64, half),
	}, nil
}

// BufferCapacity returns the sliding-window capacity in samples.
func (e *Estimator) BufferCapacity() int { return e.capacity }

// SampleRate returns the nominal sampling rate in Hz.
func (e *Estimator) SampleRate() float64 { return e.sampleRate }

// AddSample appends one frame's averaged green-channel intensity and
// its capture time in milliseconds. At capacity the oldest sample is
// evicted. AddSample never fails.
func (e *Estimator) AddSample(value float64, timestampMillis int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ring.push(value, timestampMillis)
}

// Reset empties the sliding window and drops the smoothing lock. The
// transform plan is retained; it depends only on the capacity.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ring.reset()
	e.prevBPM = 0
}

// SampleCount returns the current sliding-window length.
func (e *Estimator) SampleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ring.len()
}

// Buffer returns a snapshot of the current window values, oldest
// first, for visualization.
func (e *Estimator) Buffer() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]float64, e.ring.len())
	e.ring.copyValues(out)

	return out
}

// Timestamps returns a snapshot of the capture times matching Buffer,
// oldest first.
func (e *Estimator) Timestamps() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]int64, e.ring.len())
	e.ring.copyTimes(out)

	return out
}

// ComputeHeartRate produces the current BPM estimate, or 0 while no
// estimate exists yet. Degraded conditions never surface as errors:
// with under three seconds of samples it returns 0 untouched, and a
// peak failing the SNR gate returns the previous estimate unchanged.
func (e *Estimator) ComputeHeartRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.ring.len()
	if float64(n) < e.sampleRate*minWindowSeconds {
		return 0
	}

	sig := e.signal[:n]
	e.ring.copyValues(sig)

	// Detrend: ambient lighting shows up as a DC offset.
	mean := vecmath.Sum(sig) / float64(n)
	for i := range sig {
		sig[i] -= mean
	}

	coeffs := e.fullCoeffs
	if n != e.capacity {
		coeffs = window.Generate(window.TypeHamming, n)
	}

	if err := window.ApplyInPlace(sig, coeffs); err != nil {
		return e.prevBPM
	}

	// Zero-pad a partially filled window; the transform always runs
	// at full capacity.
	for i := 0; i < n; i++ {
		e.fftIn[i] = complex(sig[i], 0)
	}

	for i := n; i < e.capacity; i++ {
		e.fftIn[i] = 0
	}

	if err := e.plan.Transform(e.fftOut, e.fftIn); err != nil {
		return e.prevBPM
	}

	half := e.capacity / 2
	for i := 0; i < half; i++ {
		e.re[i] = real(e.fftOut[i])
		e.im[i] = imag(e.fftOut[i])
	}

	vecmath.Magnitude(e.mags, e.re, e.im)

	minFreq := minSearchFreqHz
	maxFreq := maxSearchFreqHz

	if e.prevBPM > 0 {
		prevFreq := e.prevBPM / 60
		halfBand := narrowBandBPM / 60
		minFreq = math.Max(minSearchFreqHz, prevFreq-halfBand)
		maxFreq = math.Min(maxSearchFreqHz, prevFreq+halfBand)
	}

	maxMagnitude := 0.0
	peakIndex := -1
	sumMagnitude := 0.0
	countMagnitude := 0

	// Bins [1, capacity/2): positive frequencies below Nyquist,
	// excluding DC. The noise floor always averages over the full
	// physiological band even when the peak search is narrowed.
	for i := 1; i < half; i++ {
		freq := float64(i) * e.sampleRate / float64(e.capacity)
		magnitude := e.mags[i]

		if freq >= minSearchFreqHz && freq <= maxSearchFreqHz {
			sumMagnitude += magnitude
			countMagnitude++
		}

		if freq >= minFreq && freq <= maxFreq && magnitude > maxMagnitude {
			maxMagnitude = magnitude
			peakIndex = i
		}
	}

	if countMagnitude > 0 {
		avgMagnitude := sumMagnitude / float64(countMagnitude)
		if maxMagnitude < avgMagnitude*snrThreshold {
			// Too weak or noisy; hold the previous estimate.
			return e.prevBPM
		}
	}

	if peakIndex != -1 {
		freq := float64(peakIndex) * e.sampleRate / float64(e.capacity)
		currentBPM := freq * 60

		if e.prevBPM > 0 {
			e.prevBPM = e.prevBPM*(1-smoothingWeight) + currentBPM*smoothingWeight
		} else {
			e.prevBPM = currentBPM
		}
	}

	return e.prevBPM
}
