package spatialhash

// Id is a caller-chosen identifier. Ids need not be unique or contiguous;
// the library stores them verbatim. Negative ids are legal but
// conventionally unused.
type Id = int32

// IVec is a fixed-length integer cell coordinate. Only the first Dim
// components (2 or 3) of any IVec passed to or returned from this package
// are meaningful; the rest are always zero. IVec is comparable and is used
// directly as a map key.
type IVec [3]int32

// Vec is a fixed-length world-space coordinate, single precision per the
// library's default numeric configuration. Only the first Dim components
// are meaningful.
type Vec [3]float32

// AABB is an axis-aligned bounding box. Callers are expected to normalize
// Min[i] <= Max[i] componentwise; the library treats the field values as
// given and does not re-normalize them.
type AABB struct {
	Min, Max Vec
}

// Overlaps reports whether a and b share any point, checked componentwise
// over dim axes (2 or 3). Two boxes that merely touch at a boundary count
// as overlapping (a non-strict <=/>= comparison).
func (a AABB) Overlaps(b AABB, dim int) bool {
	for i := 0; i < dim; i++ {
		if b.Min[i] > a.Max[i] || b.Max[i] < a.Min[i] {
			return false
		}
	}
	return true
}
