// Package hexgrid provides the sparse, position-indexed store of hex cells.
package hexgrid

import (
	"fmt"

	"github.com/Faultbox/hexmap/pkg/hex"
)

// Grid errors. All of them wrap hex.ErrPrecondition.
var (
	ErrDuplicateCoordinate = fmt.Errorf("%w: duplicate cell coordinate", hex.ErrPrecondition)
	ErrNegativeTileIndex   = fmt.Errorf("%w: tile index must not be negative", hex.ErrPrecondition)
	ErrCellNotFound        = fmt.Errorf("%w: no cell at coordinate", hex.ErrPrecondition)
)

// Cell is one occupied grid position and the atlas tile drawn there.
type Cell struct {
	Position  hex.Coord
	TileIndex int
}

// NewCell returns a cell at (q, r) showing tileIndex.
func NewCell(q, r, tileIndex int) Cell {
	return Cell{Position: hex.New(q, r), TileIndex: tileIndex}
}

// Grid holds cells in insertion order plus a coordinate index into that order.
// Mesh vertex blocks follow the same order, so IndexOf also locates a
// cell's block in a mesh built from this grid.
//
// A Grid is not safe for concurrent mutation; serialise SetTileIndex against readers.
type Grid struct {
	cells []Cell
	index map[hex.Coord]int
}

// Build validates cells and returns a grid holding a copy of them.
func Build(cells []Cell) (*Grid, error) {
	g := &Grid{
		cells: make([]Cell, len(cells)),
		index: make(map[hex.Coord]int, len(cells)),
	}
	copy(g.cells, cells)

	for i, c := range g.cells {
		if c.TileIndex < 0 {
			return nil, fmt.Errorf("%w: cell %v has tile %d", ErrNegativeTileIndex, c.Position, c.TileIndex)
		}
		if prev, exists := g.index[c.Position]; exists {
			return nil, fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateCoordinate, c.Position, prev, i)
		}
		g.index[c.Position] = i
	}
	return g, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Get returns the cell at c. A miss is reported with ok == false.
func (g *Grid) Get(c hex.Coord) (cell Cell, ok bool) {
	i, ok := g.index[c]
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Contains reports whether c is occupied.
func (g *Grid) Contains(c hex.Coord) bool {
	_, ok := g.index[c]
	return ok
}

// IndexOf returns the insertion-order position of the cell at c.
func (g *Grid) IndexOf(c hex.Coord) (int, bool) {
	i, ok := g.index[c]
	return i, ok
}

// At returns the cell at insertion-order position i.
func (g *Grid) At(i int) Cell {
	return g.cells[i]
}

// Cells returns a copy of all cells in insertion order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Coords returns all occupied coordinates in insertion order.
func (g *Grid) Coords() []hex.Coord {
	out := make([]hex.Coord, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Position
	}
	return out
}

// SetTileIndex changes the tile of the cell at c in place.
// Position and membership are never affected.
func (g *Grid) SetTileIndex(c hex.Coord, tileIndex int) error {
	if tileIndex < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeTileIndex, tileIndex)
	}
	i, ok := g.index[c]
	if !ok {
		return fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}
	g.cells[i].TileIndex = tileIndex
	return nil
}

// MaxTileIndex returns the highest tile index in use, or -1 for an empty grid.
func (g *Grid) MaxTileIndex() int {
	maxIdx := -1
	for _, c := range g.cells {
		maxIdx = max(maxIdx, c.TileIndex)
	}
	return maxIdx
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		cells: g.Cells(),
		index: make(map[hex.Coord]int, len(g.index)),
	}
	for c, i := range g.index {
		clone.index[c] = i
	}
	return clone
}
