package random

import "testing"

func TestRollStaysInRange(t *testing.T) {
	s := NewSource(1)
	for i := 0; i < 1000; i++ {
		if v := s.Roll(10); v >= 10 {
			t.Fatalf("roll out of range: %d", v)
		}
	}
	if v := s.Roll(0); v != 0 {
		t.Fatalf("roll(0) = %d, want 0", v)
	}
}

func TestChanceBounds(t *testing.T) {
	s := NewSource(1)
	if s.Chance(0) {
		t.Fatalf("zero percent succeeded")
	}
	if !s.Chance(100) {
		t.Fatalf("certain chance failed")
	}
}

func TestSeedReproducibility(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		if a.Roll(1000) != b.Roll(1000) {
			t.Fatalf("same seed diverged at roll %d", i)
		}
	}
}
