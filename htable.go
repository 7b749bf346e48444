package spatialhash

import "fmt"

// MaxTiers is the hard cap on the number of tiers a HTable may have.
const MaxTiers = 64

// HTable (hierarchical table) stacks up to MaxTiers flat tables at
// geometrically doubling cell sizes sharing a common grid origin. Tier t's
// cells are 2^t times the base cell edge. Every AABB is classified into
// tier floor(log2(l)), clamped to the top tier, where l is the AABB's
// largest per-axis extent in base cells (inclusive); unless clamped, the
// tier's cell edge is the largest power of two (in base cells) not
// exceeding l, bounding per-item insertion work to
// O(log(size_ratio)) cells across all tiers.
type HTable struct {
	dim    int
	grid   *GridMapper
	tiers  []*FlatTable
	totals []int32
}

// NewHTable constructs an uninitialized table for the given
// dimensionality. Initialize must be called before Build.
func NewHTable(dim int) *HTable {
	assert(dim == 2 || dim == 3, "NewHTable: dim must be 2 or 3, got %d", dim)
	return &HTable{dim: dim}
}

// Initialize configures the base grid's cell size and the number of
// tiers. It returns an error if numTiers is outside [1, MaxTiers]; unlike
// the per-call preconditions elsewhere in this package, a bad tier count
// is a one-time construction mistake, not a contract a hot loop is
// expected to uphold, so it gets an ordinary error instead of an
// assertion.
func (h *HTable) Initialize(cellSize Vec, numTiers int) error {
	if numTiers < 1 || numTiers > MaxTiers {
		return fmt.Errorf("spatialhash: numTiers must be in [1, %d], got %d", MaxTiers, numTiers)
	}

	h.grid = NewGridMapper(h.dim, cellSize)
	h.tiers = make([]*FlatTable, numTiers)
	for t := range h.tiers {
		h.tiers[t] = NewFlatTable(h.dim)
	}
	h.totals = make([]int32, numTiers)
	return nil
}

// IsInitialized reports whether Initialize has been called successfully.
func (h *HTable) IsInitialized() bool { return h.grid != nil }

// NumTiers reports the table's configured tier count.
func (h *HTable) NumTiers() int { return len(h.tiers) }

// NumCells reports the total number of occupied cells across all tiers.
func (h *HTable) NumCells() int {
	n := 0
	for _, tier := range h.tiers {
		n += tier.NumCells()
	}
	return n
}

// NumCellsTier reports the number of occupied cells in tier t.
func (h *HTable) NumCellsTier(t int) int { return h.tiers[t].NumCells() }

// Clear empties every tier, preserving their allocations.
func (h *HTable) Clear() {
	for _, tier := range h.tiers {
		tier.Clear()
	}
	for i := range h.totals {
		h.totals[i] = 0
	}
}

// classify halves b's largest inclusive cell-coordinate extent l (rounding
// down) until it reaches 1 or the top tier is hit, so the chosen tier is
// floor(log2(l)) clamped to the top tier: for l a power of two its cells
// match the extent exactly, otherwise they are smaller than it (l = 3
// picks tier 1, with cells 2 base cells wide). It returns b's min/max
// corners expressed in that tier's coordinate system.
func (h *HTable) classify(b AABB) (b0, b1 IVec, tier int) {
	rb0 := h.grid.CalcCell(b.Min)
	rb1 := h.grid.CalcCell(b.Max)

	l := int32(1)
	for i := 0; i < h.dim; i++ {
		if extent := rb1[i] - rb0[i]; extent+1 > l {
			l = extent + 1
		}
	}

	maxTier := len(h.tiers) - 1
	for l > 1 && tier < maxTier {
		l /= 2
		tier++
	}

	factor := int32(1) << tier
	for i := 0; i < h.dim; i++ {
		b0[i] = rb0[i] / factor
		b1[i] = rb1[i] / factor
	}
	return b0, b1, tier
}

// Build rebuilds every tier from scratch over the given AABBs. Internally,
// tiers store each item's index (not ids[i]) as the key inserted into
// their FlatTable; FindOverlaps translates back to caller ids when it
// emits a group.
func (h *HTable) Build(boxes []AABB) {
	assert(h.grid != nil, "Build: HTable has not been Initialize-d")
	h.Clear()

	for _, b := range boxes {
		b0, b1, tier := h.classify(b)
		h.tiers[tier].CountRange(b0, b1, &h.totals[tier])
	}

	for t, tier := range h.tiers {
		tier.Prepare(h.totals[t])
	}

	for i, b := range boxes {
		b0, b1, tier := h.classify(b)
		h.tiers[tier].InsertRange(Id(i), b0, b1)
	}
}

// halve divides b0 and b1 componentwise by 2 (truncating toward zero, the
// same convention as GridMapper.CalcCell), moving coordinates from one
// tier's frame into the next tier up's.
func halve(dim int, b0, b1 IVec) (IVec, IVec) {
	for i := 0; i < dim; i++ {
		b0[i] /= 2
		b1[i] /= 2
	}
	return b0, b1
}

// FindOverlaps computes broad-phase candidate pairs for every item in
// boxes (ids[i] names item i; boxes and ids must be the same length) and
// appends them to out as groups, one per item that has at least one
// overlapping collider. out is not cleared first — callers that want a
// fresh result set must Clear it themselves, consistent with OverlapList
// owning its own storage.
//
// For item i, classified into tier t0: own-tier cells are checked against
// every other item j < i stored there (the j < i rule ensures each
// unordered pair is emitted exactly once, anchored at the larger index);
// every higher tier t > t0 is checked against every j stored there with no
// index filter, since no item stored in a strictly higher tier can ever
// have i as its own anchor (its own tier is, by definition, higher than
// t0).
func (h *HTable) FindOverlaps(ids []Id, boxes []AABB, out *OverlapList) {
	assert(h.grid != nil, "FindOverlaps: HTable has not been Initialize-d")
	assert(len(ids) == len(boxes), "FindOverlaps: ids and boxes must be the same length")

	for i := range boxes {
		b0, b1, t0 := h.classify(boxes[i])

		out.Group()
		out.Push(ids[i])

		ApplyCells(h.dim, b0, b1, func(c IVec) {
			for _, j := range h.tiers[t0].Find(c) {
				if j < Id(i) && boxes[i].Overlaps(boxes[j], h.dim) {
					out.Push(ids[j])
				}
			}
		})

		cb0, cb1 := b0, b1
		for t := t0 + 1; t < len(h.tiers); t++ {
			cb0, cb1 = halve(h.dim, cb0, cb1)
			ApplyCells(h.dim, cb0, cb1, func(c IVec) {
				for _, j := range h.tiers[t].Find(c) {
					if boxes[i].Overlaps(boxes[j], h.dim) {
						out.Push(ids[j])
					}
				}
			})
		}

		out.Ungroup()
	}
}
