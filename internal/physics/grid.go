package physics

import (
	"math"

	"tankbox/internal/geometry"
)

// SpatialGrid is a uniform grid for broad-phase collision detection in a
// bounded arena. Objects are inserted by their axis-aligned bounds and
// index; candidates near a query box are then found by scanning only the
// cells the box spans instead of every object.
//
// An object whose bounds span multiple cells is inserted into each of them;
// queries de-duplicate via a per-query generation stamp so the callback sees
// every candidate exactly once.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell

	// Per-query de-duplication. seen[i] == generation means index i was
	// already reported during the current query.
	seen       []uint64
	generation uint64
}

// gridCell stores the indices of objects whose bounds touch a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given arena dimensions.
// cellSize trades memory for precision; a size near the bounding box of the
// largest common object keeps cell occupancy low.
func NewSpatialGrid(arenaW, arenaH, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(arenaW / cellSize))
	rows := int(math.Ceil(arenaH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) covering the given bounds.
// The item is recorded in every cell the bounds span.
func (g *SpatialGrid) Insert(bounds geometry.Rectangle, index int) {
	minCol, minRow, maxCol, maxRow := g.cellSpan(bounds)
	for row := minRow; row <= maxRow; row++ {
		rowOffset := row * g.cols
		for col := minCol; col <= maxCol; col++ {
			cell := &g.cells[rowOffset+col]
			cell.items = append(cell.items, index)
		}
	}

	// Grow the stamp table to cover this index.
	if index >= len(g.seen) {
		grown := make([]uint64, index+1)
		copy(grown, g.seen)
		g.seen = grown
	}
}

// Query calls fn for each item whose cells intersect the given bounds.
// Each item is reported at most once per query. If fn returns true,
// iteration stops early (useful for "find first" queries).
func (g *SpatialGrid) Query(bounds geometry.Rectangle, fn func(index int) bool) {
	g.generation++

	minCol, minRow, maxCol, maxRow := g.cellSpan(bounds)
	for row := minRow; row <= maxRow; row++ {
		rowOffset := row * g.cols
		for col := minCol; col <= maxCol; col++ {
			for _, index := range g.cells[rowOffset+col].items {
				if index < len(g.seen) && g.seen[index] == g.generation {
					continue
				}
				if index < len(g.seen) {
					g.seen[index] = g.generation
				}
				if fn(index) {
					return
				}
			}
		}
	}
}

// cellSpan converts bounds to an inclusive cell range, clamped to the grid.
func (g *SpatialGrid) cellSpan(bounds geometry.Rectangle) (minCol, minRow, maxCol, maxRow int) {
	minCol = g.clampCol(int(bounds.X * g.invCellSize))
	maxCol = g.clampCol(int(bounds.Right() * g.invCellSize))
	minRow = g.clampRow(int(bounds.Y * g.invCellSize))
	maxRow = g.clampRow(int(bounds.Bottom() * g.invCellSize))
	return minCol, minRow, maxCol, maxRow
}

func (g *SpatialGrid) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= g.cols {
		return g.cols - 1
	}
	return col
}

func (g *SpatialGrid) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= g.rows {
		return g.rows - 1
	}
	return row
}
