package heartrate

// sampleRing is a fixed-capacity FIFO over value/timestamp pairs.
// Pushing at capacity evicts the oldest pair. Snapshots are always
// oldest-first regardless of where the ring has wrapped.
type sampleRing struct {
	values []float64
	times  []int64
	head   int
	size   int
}

func newSampleRing(capacity int) *sampleRing {
	return &sampleRing{
		values: make([]float64, capacity),
		times:  make([]int64, capacity),
	}
}

func (r *sampleRing) push(value float64, timestamp int64) {
	capacity := len(r.values)

	if r.size < capacity {
		idx := (r.head + r.size) % capacity
		r.values[idx] = value
		r.times[idx] = timestamp
		r.size++

		return
	}

	r.values[r.head] = value
	r.times[r.head] = timestamp
	r.head = (r.head + 1) % capacity
}

func (r *sampleRing) len() int {
	return r.size
}

func (r *sampleRing) reset() {
	r.head = 0
	r.size = 0
}

// copyValues writes up to len(dst) samples oldest-first and returns the
// number written.
func (r *sampleRing) copyValues(dst []float64) int {
	n := min(len(dst), r.size)
	capacity := len(r.values)

	for i := 0; i < n; i++ {
		dst[i] = r.values[(r.head+i)%capacity]
	}

	return n
}

// copyTimes writes up to len(dst) timestamps oldest-first and returns
// the number written.
func (r *sampleRing) copyTimes(dst []int64) int {
	n := min(len(dst), r.size)
	capacity := len(r.values)

	for i := 0; i < n; i++ {
		dst[i] = r.times[(r.head+i)%capacity]
	}

	return n
}
