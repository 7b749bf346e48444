package spatialhash

// ApplyCells invokes f(v) for every integer cell coordinate v satisfying
// b0[i] <= v[i] <= b1[i] for every axis in [0, dim). Enumeration order is
// lexicographic on axes (0, 1, 2): axis 0 varies slowest, the last axis
// fastest. That order is observable only to f and is not a public
// contract. If b0 is not componentwise <= b1 on some axis, that axis's
// loop simply doesn't run, so the enumerated set is empty by construction
// — no explicit precondition check is needed.
func ApplyCells(dim int, b0, b1 IVec, f func(v IVec)) {
	if dim == 2 {
		for x := b0[0]; x <= b1[0]; x++ {
			for y := b0[1]; y <= b1[1]; y++ {
				f(IVec{x, y, 0})
			}
		}
		return
	}

	for x := b0[0]; x <= b1[0]; x++ {
		for y := b0[1]; y <= b1[1]; y++ {
			for z := b0[2]; z <= b1[2]; z++ {
				f(IVec{x, y, z})
			}
		}
	}
}
