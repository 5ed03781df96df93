package heartrate

import "testing"

func TestRingPushBelowCapacity(t *testing.T) {
	r := newSampleRing(4)

	r.push(1, 10)
	r.push(2, 20)

	if r.len() != 2 {
		t.Fatalf("len = %d, want 2", r.len())
	}

	vals := make([]float64, 2)
	times := make([]int64, 2)
	r.copyValues(vals)
	r.copyTimes(times)

	if vals[0] != 1 || vals[1] != 2 {
		t.Fatalf("values = %v, want [1 2]", vals)
	}

	if times[0] != 10 || times[1] != 20 {
		t.Fatalf("times = %v, want [10 20]", times)
	}
}

func TestRingEvictsOldest(t *testing.T) {
	r := newSampleRing(3)

	for i := 1; i <= 7; i++ {
		r.push(float64(i), int64(i*100))
	}

	if r.len() != 3 {
		t.Fatalf("len = %d, want 3", r.len())
	}

	vals := make([]float64, 3)
	times := make([]int64, 3)
	r.copyValues(vals)
	r.copyTimes(times)

	for i, want := range []float64{5, 6, 7} {
		if vals[i] != want {
			t.Fatalf("values = %v, want [5 6 7]", vals)
		}

		if times[i] != int64(want)*100 {
			t.Fatalf("times = %v, want [500 600 700]", times)
		}
	}
}

func TestRingReset(t *testing.T) {
	r := newSampleRing(3)

	for i := 0; i < 5; i++ {
		r.push(float64(i), int64(i))
	}

	r.reset()

	if r.len() != 0 {
		t.Fatalf("len after reset = %d, want 0", r.len())
	}

	r.push(42, 1)

	vals := make([]float64, 1)
	if r.copyValues(vals); vals[0] != 42 {
		t.Fatalf("first value after reset = %v, want 42", vals[0])
	}
}

func TestRingShortDestination(t *testing.T) {
	r := newSampleRing(4)

	for i := 1; i <= 4; i++ {
		r.push(float64(i), int64(i))
	}

	vals := make([]float64, 2)
	if n := r.copyValues(vals); n != 2 {
		t.Fatalf("copied %d, want 2", n)
	}

	if vals[0] != 1 || vals[1] != 2 {
		t.Fatalf("values = %v, want [1 2]", vals)
	}
}
