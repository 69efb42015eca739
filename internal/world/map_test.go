package world

import (
	"errors"
	"sync"
	"testing"

	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	"github.com/Faultbox/hexmap/pkg/hexmesh"
	hmath "github.com/Faultbox/hexmap/pkg/math"
	"github.com/Faultbox/hexmap/pkg/picking"
	"github.com/Faultbox/hexmap/pkg/tileset"
)

func newTestMap(t *testing.T, policy hexmesh.Policy) *Map {
	t.Helper()
	atlas, err := tileset.New(4, 2)
	if err != nil {
		t.Fatalf("tileset.New failed: %v", err)
	}
	builder, err := hexmesh.NewBuilder(1, policy)
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	m, err := New(diskGrid(t, 2, nil), atlas, builder, hmath.Vec2{X: 10, Y: 0})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestMap_SetTileKeepsGeometry(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)
	before := m.Mesh()

	if err := m.SetTile(hex.New(1, -1), 6); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}
	after := m.Mesh()

	if after == before {
		t.Fatal("expected a new mesh value")
	}
	if len(after.Vertices) != len(before.Vertices) {
		t.Fatalf("vertex count changed: %d vs %d", len(before.Vertices), len(after.Vertices))
	}
	for i := range before.Vertices {
		if before.Vertices[i] != after.Vertices[i] {
			t.Fatalf("vertex %d moved", i)
		}
	}
	for i := range before.Triangles {
		if before.Triangles[i] != after.Triangles[i] {
			t.Fatalf("index %d changed", i)
		}
	}

	if cell, _ := m.Cell(hex.New(1, -1)); cell.TileIndex != 6 {
		t.Errorf("expected tile 6, got %d", cell.TileIndex)
	}
}

func TestMap_SetTileWelded(t *testing.T) {
	m := newTestMap(t, hexmesh.Welded)
	if err := m.SetTile(hex.New(0, 0), 3); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}
	if m.Mesh().Policy != hexmesh.Welded {
		t.Error("expected welded mesh after rebuild")
	}
}

func TestMap_SetTileErrors(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)

	if err := m.SetTile(hex.New(9, 9), 1); !errors.Is(err, hexgrid.ErrCellNotFound) {
		t.Errorf("expected ErrCellNotFound, got %v", err)
	}
	if err := m.SetTile(hex.New(0, 0), 8); !errors.Is(err, tileset.ErrTileIndexOutOfRange) {
		t.Errorf("expected ErrTileIndexOutOfRange, got %v", err)
	}
	if err := m.SetTile(hex.New(0, 0), -1); !errors.Is(err, hex.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
	if cell, _ := m.Cell(hex.New(0, 0)); cell.TileIndex != 0 {
		t.Errorf("failed SetTile must not change the grid, tile is %d", cell.TileIndex)
	}
}

func TestMap_Pick(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)

	for _, c := range hex.Disk(2) {
		world, err := m.Layout().HexToWorld(c)
		if err != nil {
			t.Fatalf("HexToWorld failed: %v", err)
		}
		cell, ok := m.Pick(world)
		if !ok || cell.Position != c {
			t.Errorf("expected %v, got %v (ok=%v)", c, cell.Position, ok)
		}
	}

	if _, ok := m.Pick(hmath.Vec2{X: -100, Y: 0}); ok {
		t.Error("expected miss far outside the grid")
	}
}

func TestMap_PickRay(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)
	target, _ := m.Layout().HexToWorld(hex.New(-1, 1))

	ray := picking.NewRay(hmath.Vec3{X: target.X, Y: target.Y, Z: 20}, target.XY0())
	cell, ok := m.PickRay(ray)
	if !ok || cell.Position != hex.New(-1, 1) {
		t.Errorf("expected (-1,1), got %v (ok=%v)", cell.Position, ok)
	}

	miss := picking.NewRay(hmath.Vec3{X: 500, Y: 500, Z: 20}, hmath.Vec3{X: 500, Y: 500})
	if _, ok := m.PickRay(miss); ok {
		t.Error("expected ray outside bounds to miss")
	}
}

func TestMap_Replace(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)

	if err := m.Replace(diskGrid(t, 1, nil)); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if m.Mesh().VertexCount() != 7*7 {
		t.Errorf("expected 49 vertices, got %d", m.Mesh().VertexCount())
	}

	bad, err := hexgrid.Build([]hexgrid.Cell{hexgrid.NewCell(0, 0, 12)})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := m.Replace(bad); !errors.Is(err, tileset.ErrTileIndexOutOfRange) {
		t.Errorf("expected ErrTileIndexOutOfRange, got %v", err)
	}
	if m.Grid().Len() != 7 {
		t.Errorf("failed Replace must keep the old grid, got %d cells", m.Grid().Len())
	}
}

func TestMap_GridIsCopy(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)
	g := m.Grid()
	if err := g.SetTileIndex(hex.New(0, 0), 5); err != nil {
		t.Fatalf("SetTileIndex failed: %v", err)
	}
	if cell, _ := m.Cell(hex.New(0, 0)); cell.TileIndex == 5 {
		t.Error("mutating Grid() result changed the map")
	}
}

func TestMap_ConcurrentAccess(t *testing.T) {
	m := newTestMap(t, hexmesh.Unwelded)
	coords := hex.Disk(2)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		w := w
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i, c := range coords {
				_ = m.SetTile(c, (i+w)%8)
			}
		}()
		go func() {
			defer wg.Done()
			for range coords {
				mesh := m.Mesh()
				if len(mesh.UVs) != len(mesh.Vertices) {
					t.Errorf("inconsistent mesh snapshot")
					return
				}
				_ = m.FindPath(hex.New(0, 0), hex.New(2, 0), nil)
			}
		}()
	}
	wg.Wait()
}
