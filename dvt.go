package spatialhash

// DVT (dynamic-vector table) composes a GridMapper with a FlatTable to
// build a cell lookup straight from world-space points or AABBs.
type DVT struct {
	dim   int
	grid  *GridMapper
	table *FlatTable
}

// NewDVT constructs an uninitialized table for the given dimensionality.
// Initialize must be called before BuildPoints or BuildAABBs.
func NewDVT(dim int) *DVT {
	assert(dim == 2 || dim == 3, "NewDVT: dim must be 2 or 3, got %d", dim)
	return &DVT{dim: dim, table: NewFlatTable(dim)}
}

// Initialize (re)configures the table's grid mapper by per-axis cell size.
// Calling it again after a build discards the previous contents.
func (d *DVT) Initialize(cellSize Vec) {
	d.grid = NewGridMapper(d.dim, cellSize)
	d.table.Clear()
}

// InitializeGrid (re)configures the table with a caller-constructed grid
// mapper, for callers that share one mapper across several structures.
// The mapper's dimensionality must match the table's.
func (d *DVT) InitializeGrid(g *GridMapper) {
	assert(g.Dim() == d.dim, "InitializeGrid: mapper dim %d does not match table dim %d", g.Dim(), d.dim)
	d.grid = g
	d.table.Clear()
}

// Grid returns the table's grid mapper, or nil if Initialize has not been
// called yet.
func (d *DVT) Grid() *GridMapper { return d.grid }

// Clear empties the table, preserving its grid mapper and allocations.
func (d *DVT) Clear() { d.table.Clear() }

// NumCells reports the number of distinct occupied cells.
func (d *DVT) NumCells() int { return d.table.NumCells() }

// BuildPoints rebuilds the table from scratch over a set of points. If ids
// is nil, each point's index is used as its id.
func (d *DVT) BuildPoints(ids []Id, points []Vec) {
	assert(d.grid != nil, "BuildPoints: DVT has not been Initialize-d")
	d.table.Clear()

	var tot int32
	for _, p := range points {
		d.table.Count(d.grid.CalcCell(p), &tot)
	}
	d.table.Prepare(tot)
	for i, p := range points {
		d.table.Insert(itemId(ids, i), d.grid.CalcCell(p))
	}
}

// BuildAABBs rebuilds the table from scratch over a set of AABBs, each
// inserted into every cell its extent touches. If ids is nil, each box's
// index is used as its id.
func (d *DVT) BuildAABBs(ids []Id, boxes []AABB) {
	assert(d.grid != nil, "BuildAABBs: DVT has not been Initialize-d")
	d.table.Clear()

	var tot int32
	for _, b := range boxes {
		b0, b1 := d.grid.CalcCell(b.Min), d.grid.CalcCell(b.Max)
		d.table.CountRange(b0, b1, &tot)
	}
	d.table.Prepare(tot)
	for i, b := range boxes {
		b0, b1 := d.grid.CalcCell(b.Min), d.grid.CalcCell(b.Max)
		d.table.InsertRange(itemId(ids, i), b0, b1)
	}
}

// Find returns the ids sharing p's cell.
func (d *DVT) Find(p Vec) CellRange {
	assert(d.grid != nil, "Find: DVT has not been Initialize-d")
	return d.table.Find(d.grid.CalcCell(p))
}

// Each calls f once per occupied cell.
func (d *DVT) Each(f func(v IVec, r CellRange)) { d.table.Each(f) }

// itemId returns ids[i] if ids is non-nil, else the index i itself.
func itemId(ids []Id, i int) Id {
	if ids == nil {
		return Id(i)
	}
	return ids[i]
}
