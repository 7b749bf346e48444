package spatialhash

import "testing"

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: Vec{0, 0, 0}, Max: Vec{1, 1, 1}}

	cases := []struct {
		name string
		b    AABB
		dim  int
		want bool
	}{
		{"identical", a, 3, true},
		{"touching edge", AABB{Min: Vec{1, 0, 0}, Max: Vec{2, 1, 1}}, 3, true},
		{"disjoint on x", AABB{Min: Vec{1.1, 0, 0}, Max: Vec{2, 1, 1}}, 3, false},
		{"disjoint on z, ignored in 2D", AABB{Min: Vec{0, 0, 5}, Max: Vec{1, 1, 6}}, 2, true},
		{"disjoint on z, checked in 3D", AABB{Min: Vec{0, 0, 5}, Max: Vec{1, 1, 6}}, 3, false},
	}

	for _, c := range cases {
		if got := a.Overlaps(c.b, c.dim); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}
