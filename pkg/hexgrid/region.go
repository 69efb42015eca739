package hexgrid

import (
	"github.com/Travis-Britz/structures/stack"

	"github.com/Faultbox/hexmap/pkg/hex"
)

// Neighbors returns the occupied neighbours of c in hex.Directions order.
func (g *Grid) Neighbors(c hex.Coord) []Cell {
	out := make([]Cell, 0, 6)
	for _, n := range c.Neighbors() {
		if cell, ok := g.Get(n); ok {
			out = append(out, cell)
		}
	}
	return out
}

// MatchFunc decides whether the flood fill may step from one cell to an adjacent one.
type MatchFunc func(from, to Cell) bool

// SameTile joins adjacent cells showing the same tile.
func SameTile(from, to Cell) bool {
	return from.TileIndex == to.TileIndex
}

// Occupied joins any two adjacent cells.
func Occupied(from, to Cell) bool {
	return true
}

// Region returns the cells reachable from start through adjacent cells
// accepted by match, in discovery order. start itself comes first.
// An unoccupied start yields nil.
func (g *Grid) Region(start hex.Coord, match MatchFunc) []Cell {
	first, ok := g.Get(start)
	if !ok {
		return nil
	}
	if match == nil {
		match = Occupied
	}

	region := []Cell{first}
	visited := map[hex.Coord]bool{start: true}
	frontier := &stack.Stack[Cell]{}

	for current, more := first, true; more; current, more = frontier.Pop() {
		for _, next := range g.Neighbors(current.Position) {
			if visited[next.Position] || !match(current, next) {
				continue
			}
			visited[next.Position] = true
			region = append(region, next)
			frontier.Push(next)
		}
	}
	return region
}

// Islands partitions the grid into connected components of occupied cells.
// Components are ordered by their first cell's insertion order.
func (g *Grid) Islands() [][]Cell {
	seen := make(map[hex.Coord]bool, len(g.cells))
	var islands [][]Cell
	for _, c := range g.cells {
		if seen[c.Position] {
			continue
		}
		island := g.Region(c.Position, Occupied)
		for _, member := range island {
			seen[member.Position] = true
		}
		islands = append(islands, island)
	}
	return islands
}
