// Package world owns a live hex map: its grid, the mesh built from it and
// the queries tools run against both.
package world

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	"github.com/Faultbox/hexmap/pkg/hexmesh"
	hmath "github.com/Faultbox/hexmap/pkg/math"
	"github.com/Faultbox/hexmap/pkg/picking"
	"github.com/Faultbox/hexmap/pkg/tileset"
)

// Map keeps a grid and its mesh consistent. Writers hold the lock while the
// grid and mesh are swapped together, so readers never see a mesh built from
// a different grid.
type Map struct {
	mu      sync.RWMutex
	grid    *hexgrid.Grid
	mesh    *hexmesh.Mesh
	atlas   *tileset.Atlas
	builder *hexmesh.Builder
	layout  picking.Layout
}

// New builds the initial mesh for grid. The map keeps its own copy of grid.
// atlas may be nil for welded builders.
func New(grid *hexgrid.Grid, atlas *tileset.Atlas, builder *hexmesh.Builder, origin hmath.Vec2) (*Map, error) {
	own := grid.Clone()
	mesh, err := builder.Build(own, atlas)
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}

	logger.Named("world").Debug("map created",
		zap.Int("cells", own.Len()),
		zap.Stringer("policy", builder.Policy()),
		zap.Int("vertices", mesh.VertexCount()))

	return &Map{
		grid:    own,
		mesh:    mesh,
		atlas:   atlas,
		builder: builder,
		layout:  picking.Layout{GridSize: builder.Layout().Size, Origin: origin},
	}, nil
}

// Mesh returns the current mesh. The returned value is never mutated.
func (m *Map) Mesh() *hexmesh.Mesh {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mesh
}

// Grid returns a copy of the current grid.
func (m *Map) Grid() *hexgrid.Grid {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid.Clone()
}

// Layout returns the world placement of the grid.
func (m *Map) Layout() picking.Layout {
	return m.layout
}

// Cell returns the cell at c.
func (m *Map) Cell(c hex.Coord) (hexgrid.Cell, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.grid.Get(c)
}

// Replace swaps in a new cell set and rebuilds the mesh from scratch.
// On error the map is left unchanged.
func (m *Map) Replace(grid *hexgrid.Grid) error {
	own := grid.Clone()
	mesh, err := m.builder.Build(own, m.atlas)
	if err != nil {
		return fmt.Errorf("building mesh: %w", err)
	}

	m.mu.Lock()
	m.grid, m.mesh = own, mesh
	m.mu.Unlock()

	logger.Named("world").Info("map replaced", zap.Int("cells", own.Len()))
	return nil
}

// SetTile changes the tile of one cell. Unwelded meshes get a UV patch;
// welded meshes are rebuilt. On error the map is left unchanged.
func (m *Map) SetTile(c hex.Coord, tileIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.grid.Get(c)
	if !ok {
		return fmt.Errorf("%w: %v", hexgrid.ErrCellNotFound, c)
	}
	if m.atlas != nil && !m.atlas.Contains(tileIndex) {
		return fmt.Errorf("%w: %d", tileset.ErrTileIndexOutOfRange, tileIndex)
	}
	if err := m.grid.SetTileIndex(c, tileIndex); err != nil {
		return err
	}

	var mesh *hexmesh.Mesh
	var err error
	if m.mesh.Policy == hexmesh.Welded {
		mesh, err = m.builder.Build(m.grid, m.atlas)
	} else {
		mesh, err = hexmesh.PatchTileUV(m.mesh, m.grid, c, m.atlas)
	}
	if err != nil {
		_ = m.grid.SetTileIndex(c, old.TileIndex)
		return err
	}
	m.mesh = mesh

	logger.Named("world").Debug("tile set",
		zap.Stringer("coord", c),
		zap.Int("from", old.TileIndex),
		zap.Int("to", tileIndex))
	return nil
}

// Pick returns the occupied cell under a world-space point.
func (m *Map) Pick(world hmath.Vec2) (hexgrid.Cell, bool) {
	c, err := m.layout.WorldToHex(world)
	if err != nil {
		return hexgrid.Cell{}, false
	}
	return m.Cell(c)
}

// PickRay returns the occupied cell hit by ray. Rays that miss the mesh
// bounds are rejected before any hex math.
func (m *Map) PickRay(ray picking.Ray) (hexgrid.Cell, bool) {
	bounds := m.Mesh().Bounds
	origin := m.layout.Origin.XY0()
	if _, hit := ray.IntersectBounds(bounds.Min.Add(origin), bounds.Max.Add(origin)); !hit {
		return hexgrid.Cell{}, false
	}

	c, ok, err := m.layout.RayToHex(ray)
	if err != nil || !ok {
		return hexgrid.Cell{}, false
	}
	return m.Cell(c)
}

// FindPath runs A* across the current grid.
func (m *Map) FindPath(start, goal hex.Coord, passable PassableFunc) []hex.Coord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return NewPathFinder(m.grid, passable).FindPath(start, goal)
}
