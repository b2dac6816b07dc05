package core

import "testing"

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be remapped")
	}
}

func TestSimpleRNGIntnRange(t *testing.T) {
	r := NewSimpleRNG(7)
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := r.Intn(100)
		if v < 0 || v >= 100 {
			t.Fatalf("Intn(100) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) < 90 {
		t.Errorf("only %d distinct values out of 100", len(seen))
	}

	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("non-positive n should yield 0")
	}
}

func TestSimpleRNGFloat64(t *testing.T) {
	r := NewSimpleRNG(99)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v out of [0,1)", f)
		}
	}
}

func TestSimpleRNGStateRestore(t *testing.T) {
	r := NewSimpleRNG(5)
	r.Next()
	saved := r.State()
	want := r.Intn(1000)

	r.SetState(saved)
	if got := r.Intn(1000); got != want {
		t.Errorf("after restore Intn = %d, want %d", got, want)
	}
}
