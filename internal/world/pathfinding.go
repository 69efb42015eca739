package world

import (
	"container/heap"

	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
)

// PathNode represents a node in the A* search.
type PathNode struct {
	Pos    hex.Coord
	G      int // Steps from start
	H      int // Hex distance to goal
	F      int // G + H
	Parent *PathNode
	Index  int // Index in heap
}

// PathHeap implements a priority queue for A* pathfinding.
type PathHeap []*PathNode

func (h PathHeap) Len() int { return len(h) }

// Less orders by F, then prefers nodes nearer the goal.
func (h PathHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].H < h[j].H
}

func (h PathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *PathHeap) Push(x any) {
	node := x.(*PathNode)
	node.Index = len(*h)
	*h = append(*h, node)
}

func (h *PathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[:n-1]
	return node
}

// PassableFunc reports whether a path may enter cell.
type PassableFunc func(cell hexgrid.Cell) bool

// PathFinder finds shortest paths across the occupied cells of a grid.
// Every step to a neighbour costs 1.
type PathFinder struct {
	grid     *hexgrid.Grid
	passable PassableFunc
}

// NewPathFinder creates a pathfinder over grid. A nil passable admits
// every occupied cell.
func NewPathFinder(grid *hexgrid.Grid, passable PassableFunc) *PathFinder {
	if grid == nil {
		return nil
	}
	if passable == nil {
		passable = func(hexgrid.Cell) bool { return true }
	}
	return &PathFinder{grid: grid, passable: passable}
}

// IsPassable reports whether c is occupied and passable.
func (pf *PathFinder) IsPassable(c hex.Coord) bool {
	if pf == nil {
		return false
	}
	cell, ok := pf.grid.Get(c)
	return ok && pf.passable(cell)
}

// FindPath returns the cells from start to goal inclusive, or nil if the
// goal cannot be reached. start itself need not be passable.
func (pf *PathFinder) FindPath(start, goal hex.Coord) []hex.Coord {
	if pf == nil || !pf.grid.Contains(start) || !pf.IsPassable(goal) {
		return nil
	}

	openSet := &PathHeap{}
	heap.Init(openSet)

	closedSet := make(map[hex.Coord]bool)
	nodeMap := make(map[hex.Coord]*PathNode)

	startNode := &PathNode{Pos: start, H: start.DistanceTo(goal)}
	startNode.F = startNode.H
	heap.Push(openSet, startNode)
	nodeMap[start] = startNode

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*PathNode)
		if current.Pos == goal {
			return reconstructPath(current)
		}
		closedSet[current.Pos] = true

		for _, next := range current.Pos.Neighbors() {
			if closedSet[next] || !pf.IsPassable(next) {
				continue
			}

			g := current.G + 1
			neighbor, exists := nodeMap[next]
			if !exists {
				neighbor = &PathNode{
					Pos:    next,
					G:      g,
					H:      next.DistanceTo(goal),
					Parent: current,
				}
				neighbor.F = neighbor.G + neighbor.H
				nodeMap[next] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.G {
				neighbor.G = g
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	return nil
}

func reconstructPath(node *PathNode) []hex.Coord {
	var path []hex.Coord
	for node != nil {
		path = append(path, node.Pos)
		node = node.Parent
	}
	// Built from goal to start
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
