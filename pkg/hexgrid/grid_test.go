package hexgrid

import (
	"errors"
	"testing"

	"github.com/Faultbox/hexmap/pkg/hex"
)

// diskCells creates a disk of cells with tile = position in order % tiles.
func diskCells(radius, tiles int) []Cell {
	var cells []Cell
	for i, c := range hex.Disk(radius) {
		cells = append(cells, Cell{Position: c, TileIndex: i % tiles})
	}
	return cells
}

func TestBuild_PreservesOrder(t *testing.T) {
	cells := []Cell{
		NewCell(2, 0, 1),
		NewCell(0, 0, 0),
		NewCell(-1, 1, 3),
	}

	g, err := Build(cells)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.Len() != 3 {
		t.Errorf("expected 3 cells, got %d", g.Len())
	}

	for i, c := range g.Cells() {
		if c != cells[i] {
			t.Errorf("cell %d: expected %v, got %v", i, cells[i], c)
		}
		idx, ok := g.IndexOf(c.Position)
		if !ok || idx != i {
			t.Errorf("IndexOf(%v) = %d, %v; want %d, true", c.Position, idx, ok, i)
		}
	}
}

func TestBuild_CopiesInput(t *testing.T) {
	cells := []Cell{NewCell(0, 0, 1)}
	g, err := Build(cells)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cells[0].TileIndex = 9
	if c, _ := g.Get(hex.New(0, 0)); c.TileIndex != 1 {
		t.Errorf("grid should not alias input slice, tile is %d", c.TileIndex)
	}
}

func TestBuild_DuplicateCoordinate(t *testing.T) {
	_, err := Build([]Cell{
		NewCell(1, 1, 0),
		NewCell(0, 0, 0),
		NewCell(1, 1, 2),
	})
	if !errors.Is(err, ErrDuplicateCoordinate) {
		t.Errorf("expected ErrDuplicateCoordinate, got %v", err)
	}
	if !errors.Is(err, hex.ErrPrecondition) {
		t.Error("expected error to wrap hex.ErrPrecondition")
	}
}

func TestBuild_NegativeTile(t *testing.T) {
	_, err := Build([]Cell{NewCell(0, 0, -1)})
	if !errors.Is(err, ErrNegativeTileIndex) {
		t.Errorf("expected ErrNegativeTileIndex, got %v", err)
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("expected empty grid, got %d cells", g.Len())
	}
	if g.MaxTileIndex() != -1 {
		t.Errorf("expected max tile -1, got %d", g.MaxTileIndex())
	}
}

func TestGet_Miss(t *testing.T) {
	g, err := Build(diskCells(1, 4))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cell, ok := g.Get(hex.New(5, 5))
	if ok {
		t.Errorf("expected miss, got %v", cell)
	}
	if cell != (Cell{}) {
		t.Errorf("expected zero cell on miss, got %v", cell)
	}
	if g.Contains(hex.New(5, 5)) {
		t.Error("Contains should be false for unoccupied coordinate")
	}
}

func TestSetTileIndex(t *testing.T) {
	g, err := Build(diskCells(2, 4))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	before := g.Cells()

	target := hex.New(1, -1)
	if err := g.SetTileIndex(target, 7); err != nil {
		t.Fatalf("SetTileIndex failed: %v", err)
	}

	after := g.Cells()
	for i := range before {
		if before[i].Position != after[i].Position {
			t.Errorf("cell %d moved from %v to %v", i, before[i].Position, after[i].Position)
		}
		if after[i].Position == target {
			if after[i].TileIndex != 7 {
				t.Errorf("expected tile 7, got %d", after[i].TileIndex)
			}
		} else if after[i].TileIndex != before[i].TileIndex {
			t.Errorf("cell %v changed unexpectedly", after[i].Position)
		}
	}
	if g.MaxTileIndex() != 7 {
		t.Errorf("expected max tile 7, got %d", g.MaxTileIndex())
	}
}

func TestSetTileIndex_Errors(t *testing.T) {
	g, err := Build(diskCells(1, 2))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tests := []struct {
		name    string
		coord   hex.Coord
		tile    int
		wantErr error
	}{
		{"absent", hex.New(3, 0), 1, ErrCellNotFound},
		{"negative", hex.New(0, 0), -2, ErrNegativeTileIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.SetTileIndex(tt.coord, tt.tile)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	g, err := Build(diskCells(1, 3))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	clone := g.Clone()

	if err := clone.SetTileIndex(hex.New(0, 0), 42); err != nil {
		t.Fatalf("SetTileIndex failed: %v", err)
	}
	if c, _ := g.Get(hex.New(0, 0)); c.TileIndex == 42 {
		t.Error("mutating clone changed original")
	}
	if clone.Len() != g.Len() {
		t.Errorf("expected clone length %d, got %d", g.Len(), clone.Len())
	}
}

func TestCoords(t *testing.T) {
	g, err := Build(diskCells(1, 1))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	coords := g.Coords()
	for i, c := range hex.Disk(1) {
		if coords[i] != c {
			t.Errorf("index %d: expected %v, got %v", i, c, coords[i])
		}
	}
}
