package spatialhash

import "math"

type tableState uint8

const (
	tableEmpty tableState = iota
	tableCounting
	tableBuilt
)

// CellRange is a borrowed view over the ids stored in one cell. It is
// valid until the next mutation of the table that produced it.
type CellRange []Id

// FlatTable maps a cell coordinate to the compact list of item ids sharing
// that cell. It is built in three strictly ordered phases: Count (or
// CountRange) any number of times, then one Prepare, then Insert (or
// InsertRange) for every id counted. Reading via Find or Each is only
// valid once the table has been Prepare-d and fully inserted into.
//
// entries is one contiguous allocation sized exactly to the prepared
// total in Prepare; cellMap maps each occupied cell to the start offset of
// its span within entries. A cell's span is
// entries[start : start+1+entries[start]], where entries[start] is the
// final per-cell count and entries[start+1] is, during Insert, a write
// cursor that starts at the count and is decremented by each Insert, which
// writes its id at entries[start+cursor]. The last Insert for a cell
// writes its id into the cursor slot itself, so once every id has been
// written the cursor is gone and entries[start+1:] holds only ids;
// entries[start] is left untouched by Insert, so the count survives.
type FlatTable struct {
	dim     int
	state   tableState
	cellMap map[IVec]int32
	entries []int32
}

// NewFlatTable constructs an empty table for the given dimensionality.
func NewFlatTable(dim int) *FlatTable {
	assert(dim == 2 || dim == 3, "NewFlatTable: dim must be 2 or 3, got %d", dim)
	return &FlatTable{
		dim:     dim,
		cellMap: make(map[IVec]int32),
	}
}

// Clear resets the table to empty, preserving the capacity of its
// existing allocations so a subsequent rebuild can reuse them.
func (t *FlatTable) Clear() {
	clear(t.cellMap)
	t.entries = t.entries[:0]
	t.state = tableEmpty
}

// NumCells reports the number of distinct cells with at least one id.
func (t *FlatTable) NumCells() int { return len(t.cellMap) }

// Count is phase A for a single cell: records that one more id belongs to
// cell v, and advances *tot by however much entries must grow to make
// room for it. tot is owned by the caller (HTable, for instance, keeps one
// total per tier in its own slice and passes each tier its own), which is
// why it is threaded through explicitly rather than tracked internally.
func (t *FlatTable) Count(v IVec, tot *int32) {
	assert(t.state == tableEmpty || t.state == tableCounting, "Count: table is not in counting phase")
	t.state = tableCounting

	if cur, ok := t.cellMap[v]; !ok {
		// Two slots reserved: the final count, and a temporary write cursor.
		t.cellMap[v] = 2
		*tot += 2
	} else {
		t.cellMap[v] = cur + 1
		*tot++
	}
}

// CountRange is phase A for every cell an AABB's cell span touches.
func (t *FlatTable) CountRange(b0, b1 IVec, tot *int32) {
	ApplyCells(t.dim, b0, b1, func(v IVec) { t.Count(v, tot) })
}

// Prepare is phase B: it allocates entries to exactly tot zero-filled
// slots and converts cellMap's per-cell counts into start offsets into
// that buffer. After Prepare, entries never reallocates until the next
// Clear.
func (t *FlatTable) Prepare(tot int32) {
	assert(t.state == tableCounting || t.state == tableEmpty, "Prepare: table is not in counting phase")

	if cap(t.entries) >= int(tot) {
		t.entries = t.entries[:tot]
		for i := range t.entries {
			t.entries[i] = 0
		}
	} else {
		t.entries = make([]int32, tot)
	}

	var running int64
	for k, ecount := range t.cellMap {
		start := int32(running)
		running += int64(ecount)
		assert(running <= math.MaxInt32, "Prepare: entries offset overflowed int32")

		t.cellMap[k] = start
		t.entries[start] = ecount - 1
		t.entries[start+1] = ecount - 1
	}

	t.state = tableBuilt
}

// Insert is phase C for a single id at a single cell: v must already have
// been Count-ed (in the same build cycle, before Prepare).
func (t *FlatTable) Insert(id Id, v IVec) {
	assert(t.state == tableBuilt, "Insert: table has not been Prepare-d")

	start, ok := t.cellMap[v]
	assert(ok, "Insert: cell %v was never counted", v)

	off := t.entries[start+1]
	t.entries[start+1] = off - 1
	t.entries[start+off] = id
}

// InsertRange is phase C for an id across every cell of an AABB's span.
func (t *FlatTable) InsertRange(id Id, b0, b1 IVec) {
	ApplyCells(t.dim, b0, b1, func(v IVec) { t.Insert(id, v) })
}

// Find returns the ids stored at cell v, or an empty range if v holds no
// ids. The returned CellRange borrows from the table's entries buffer and
// is valid until the next mutation.
func (t *FlatTable) Find(v IVec) CellRange {
	start, ok := t.cellMap[v]
	if !ok {
		return nil
	}
	count := t.entries[start]
	return CellRange(t.entries[start+1 : start+1+count])
}

// Each calls f once per occupied cell, in unspecified (cellMap iteration)
// order, with the cell coordinate and its borrowed CellRange.
func (t *FlatTable) Each(f func(v IVec, r CellRange)) {
	for v, start := range t.cellMap {
		count := t.entries[start]
		f(v, CellRange(t.entries[start+1:start+1+count]))
	}
}
