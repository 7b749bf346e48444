package spatialhash

import "testing"

func TestApplyCellsCount3D(t *testing.T) {
	b0 := IVec{1, 1, 1}
	b1 := IVec{2, 2, 2}

	count := 0
	ApplyCells(3, b0, b1, func(v IVec) { count++ })

	if count != 8 {
		t.Errorf("expected 8 cells, got %d", count)
	}
}

func TestApplyCellsCount2D(t *testing.T) {
	b0 := IVec{0, 0, 0}
	b1 := IVec{2, 1, 0}

	count := 0
	ApplyCells(2, b0, b1, func(v IVec) { count++ })

	if count != 6 { // (2-0+1) * (1-0+1)
		t.Errorf("expected 6 cells, got %d", count)
	}
}

func TestApplyCellsEmptyWhenInverted(t *testing.T) {
	b0 := IVec{2, 0, 0}
	b1 := IVec{1, 5, 5}

	count := 0
	ApplyCells(3, b0, b1, func(v IVec) { count++ })

	if count != 0 {
		t.Errorf("expected 0 cells for inverted bound, got %d", count)
	}
}

func TestApplyCellsOrder(t *testing.T) {
	var got []IVec
	ApplyCells(2, IVec{0, 0, 0}, IVec{1, 1, 0}, func(v IVec) {
		got = append(got, v)
	})

	want := []IVec{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
