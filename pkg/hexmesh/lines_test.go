package hexmesh

import (
	"testing"

	"github.com/Faultbox/hexmap/pkg/hex"
)

func TestGridLines_Unwelded(t *testing.T) {
	grid := mustGrid(t, hex.Disk(1), 1)
	mesh, err := Build(grid, mustAtlas(t, 1, 1), 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	lines := GridLines(mesh)
	if len(lines) != 2*6*grid.Len() {
		t.Errorf("expected %d endpoints, got %d", 2*6*grid.Len(), len(lines))
	}
	for i := 0; i < len(lines); i += 2 {
		length := lines[i+1].Sub(lines[i]).XY().Length()
		if length < 0.999 || length > 1.001 {
			t.Errorf("segment %d: expected length 1, got %v", i/2, length)
		}
	}
}

func TestGridLines_WeldedSharesEdges(t *testing.T) {
	b, err := NewBuilder(1, Welded)
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	mesh, err := b.Build(mustGrid(t, []hex.Coord{hex.New(0, 0), hex.New(1, 0)}, 1), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Two touching hexagons have 11 distinct edges.
	if got := len(GridLines(mesh)) / 2; got != 11 {
		t.Errorf("expected 11 segments, got %d", got)
	}
}

func TestCellOutline_BothPolicies(t *testing.T) {
	grid := mustGrid(t, hex.Disk(1), 1)
	layout, _ := hex.NewLayout(1)

	for _, policy := range []Policy{Unwelded, Welded} {
		b, err := NewBuilder(1, policy)
		if err != nil {
			t.Fatalf("NewBuilder failed: %v", err)
		}
		mesh, err := b.Build(grid, mustAtlas(t, 1, 1))
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if mesh.CellCount() != grid.Len() {
			t.Errorf("%v: expected %d cells, got %d", policy, grid.Len(), mesh.CellCount())
		}

		for p, n := 0, grid.Len(); p < n; p++ {
			center := layout.Center(grid.At(p).Position)
			for k, corner := range mesh.CellOutline(p) {
				want := layout.Corner(center, k)
				if !corner.XY().ApproxEqual(want, 1e-5) {
					t.Errorf("%v cell %d corner %d: expected %v, got %v", policy, p, k, want, corner)
				}
			}
		}
	}
}
