package spatialhash

import "testing"

func TestGridMapperCalcCell(t *testing.T) {
	g := NewGridMapper(3, Vec{1, 1, 1})

	cases := []struct {
		p    Vec
		want IVec
	}{
		{Vec{0.1, 0.1, 0.1}, IVec{0, 0, 0}},
		{Vec{1.9, 1.9, 1.9}, IVec{1, 1, 1}},
		{Vec{3.9, 3.9, 3.9}, IVec{3, 3, 3}},
	}

	for _, c := range cases {
		got := g.CalcCell(c.p)
		if got != c.want {
			t.Errorf("CalcCell(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestGridMapperCalcCellTruncatesTowardZero(t *testing.T) {
	g := NewGridMapper(2, Vec{1, 1})

	// Negative coordinates in (-1, 0) truncate toward zero, landing in
	// cell 0 rather than cell -1 -- the documented asymmetry.
	got := g.CalcCell(Vec{-0.5, -0.5})
	want := IVec{0, 0, 0}
	if got != want {
		t.Errorf("CalcCell(-0.5,-0.5) = %v, want %v", got, want)
	}

	got = g.CalcCell(Vec{-1.5, -1.5})
	want = IVec{-1, -1, 0}
	if got != want {
		t.Errorf("CalcCell(-1.5,-1.5) = %v, want %v", got, want)
	}
}

func TestStrictGridMapperMapsFixedRegion(t *testing.T) {
	s := NewStrictGridMapper(2, Vec{0, 0}, Vec{10, 10}, IVec{5, 5, 0})

	if got := s.CalcCell(Vec{4, 4}); got != (IVec{2, 2, 0}) {
		t.Errorf("expected (2,2), got %v", got)
	}
	if got := s.CalcCell(Vec{9.9, 9.9}); got != (IVec{4, 4, 0}) {
		t.Errorf("expected (4,4), got %v", got)
	}

	// Points outside [min, max] are not range-checked: they produce
	// coordinates outside [0, cells), same as GridMapper.
	if got := s.CalcCell(Vec{-2, -2}); got != (IVec{-1, -1, 0}) {
		t.Errorf("expected (-1,-1), got %v", got)
	}
	if got := s.CalcCell(Vec{15, 15}); got != (IVec{7, 7, 0}) {
		t.Errorf("expected (7,7), got %v", got)
	}
}
