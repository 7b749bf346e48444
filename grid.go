package spatialhash

// GridMapper represents a uniform grid by its per-axis cell edge lengths.
// It is the sole place world-space points are converted to integer cell
// coordinates.
type GridMapper struct {
	dim   int
	cell  Vec
	scale Vec
}

// NewGridMapper builds a grid mapper for the given dimensionality (2 or 3)
// and per-axis cell edge lengths. Every axis's cell edge must be greater
// than a small epsilon; violating that is a construction-time programming
// error.
func NewGridMapper(dim int, cell Vec) *GridMapper {
	assert(dim == 2 || dim == 3, "NewGridMapper: dim must be 2 or 3, got %d", dim)
	g := &GridMapper{dim: dim, cell: cell}
	for i := 0; i < dim; i++ {
		assert(cell[i] > 1e-9, "NewGridMapper: cell edge on axis %d must be > 0, got %v", i, cell[i])
		g.scale[i] = 1 / cell[i]
	}
	return g
}

// Dim reports the mapper's configured dimensionality.
func (g *GridMapper) Dim() int { return g.dim }

// CellSize returns the per-axis cell edge lengths this mapper was built with.
func (g *GridMapper) CellSize() Vec { return g.cell }

// CalcCell returns p*scale componentwise, converted to int32 by
// truncation toward zero — this is the library's chosen rounding, not
// math.Floor. Negative
// coordinates round toward zero, not toward negative infinity: a point in
// (-1, 0) maps to cell 0, the same cell as a point in (0, 1), which is an
// asymmetry about the origin. Callers who need negative world coordinates
// to map to distinct negative cells must translate their world origin so
// all coordinates of interest are non-negative; this package does not
// silently switch to floor semantics to paper over it.
func (g *GridMapper) CalcCell(p Vec) IVec {
	var v IVec
	for i := 0; i < g.dim; i++ {
		v[i] = int32(p[i] * g.scale[i])
	}
	return v
}

// StrictGridMapper maps a bounded [min, max] world region onto a fixed
// cell count, so that every caller of a given StrictGridMapper shares the
// same origin regardless of the points they individually feed it. HTable
// does not use it because its tiers already share an origin by
// construction (every tier's coordinates are the base grid's coordinates
// divided by 2^tier, truncating toward zero, so there is nothing to
// realign).
type StrictGridMapper struct {
	dim      int
	min      Vec
	cellSize Vec
	cells    IVec
}

// NewStrictGridMapper builds a mapper for the region [min, max] subdivided
// into the given number of cells per axis.
func NewStrictGridMapper(dim int, min, max Vec, cells IVec) *StrictGridMapper {
	assert(dim == 2 || dim == 3, "NewStrictGridMapper: dim must be 2 or 3, got %d", dim)
	s := &StrictGridMapper{dim: dim, min: min, cells: cells}
	for i := 0; i < dim; i++ {
		assert(cells[i] > 0, "NewStrictGridMapper: cell count on axis %d must be > 0", i)
		extent := max[i] - min[i]
		assert(extent > 1e-9, "NewStrictGridMapper: max must exceed min on axis %d", i)
		s.cellSize[i] = extent / float32(cells[i])
	}
	return s
}

// CalcCell maps p into the mapper's fixed region. Like GridMapper, it does
// not range-check: a point outside [min, max] produces a coordinate
// outside [0, cells), and it is the caller's responsibility to keep
// queries within the region the mapper was constructed for.
func (s *StrictGridMapper) CalcCell(p Vec) IVec {
	var v IVec
	for i := 0; i < s.dim; i++ {
		v[i] = int32((p[i] - s.min[i]) / s.cellSize[i])
	}
	return v
}
