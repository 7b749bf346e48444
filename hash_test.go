package spatialhash

import "testing"

func TestHashIVecDeterministic(t *testing.T) {
	v := IVec{3, -7, 42}
	if HashIVec(3, v) != HashIVec(3, v) {
		t.Error("expected HashIVec to be deterministic for the same input")
	}
}

func TestHashIVecDiffersAcrossAxes(t *testing.T) {
	a := HashIVec(3, IVec{1, 0, 0})
	b := HashIVec(3, IVec{0, 1, 0})
	c := HashIVec(3, IVec{0, 0, 1})
	if a == b || b == c || a == c {
		t.Errorf("expected distinct single-axis hashes, got %d %d %d", a, b, c)
	}
}

func TestHashIVecIgnoresThirdAxisIn2D(t *testing.T) {
	a := HashIVec(2, IVec{5, 9, 100})
	b := HashIVec(2, IVec{5, 9, -100})
	if a != b {
		t.Errorf("expected 2D hash to ignore the z component, got %d != %d", a, b)
	}
}
