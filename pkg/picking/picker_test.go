package picking

import (
	"errors"
	"testing"

	"github.com/Faultbox/hexmap/pkg/hex"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

func TestPointToHex_Centers(t *testing.T) {
	for _, size := range []float32{0.5, 1, 10} {
		layout, err := hex.NewLayout(size)
		if err != nil {
			t.Fatalf("NewLayout failed: %v", err)
		}
		for _, c := range hex.Disk(4) {
			got, err := PointToHex(layout.Center(c), size)
			if err != nil {
				t.Fatalf("PointToHex failed: %v", err)
			}
			if got != c {
				t.Errorf("size %v: expected %v, got %v", size, c, got)
			}
		}
	}
}

func TestPointToHex_Samples(t *testing.T) {
	tests := []struct {
		name string
		p    hmath.Vec2
		want hex.Coord
	}{
		{"origin", hmath.Vec2{X: 0, Y: 0}, hex.New(0, 0)},
		{"east neighbour", hmath.Vec2{X: 1.8, Y: 0}, hex.New(1, 0)},
		{"below is +r", hmath.Vec2{X: 0.85, Y: -1.5}, hex.New(0, 1)},
		{"above is -r", hmath.Vec2{X: -0.85, Y: 1.5}, hex.New(0, -1)},
		{"inside near top corner", hmath.Vec2{X: 0, Y: 0.9}, hex.New(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointToHex(tt.p, 1)
			if err != nil {
				t.Fatalf("PointToHex failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPointToHex_InvalidSize(t *testing.T) {
	for _, size := range []float32{0, -1} {
		if _, err := PointToHex(hmath.Vec2{}, size); !errors.Is(err, hex.ErrPrecondition) {
			t.Errorf("size %v: expected precondition error, got %v", size, err)
		}
	}
}

func TestLayout_Origin(t *testing.T) {
	l := Layout{GridSize: 2, Origin: hmath.Vec2{X: 100, Y: -50}}

	for _, c := range hex.Disk(3) {
		world, err := l.HexToWorld(c)
		if err != nil {
			t.Fatalf("HexToWorld failed: %v", err)
		}
		got, err := l.WorldToHex(world)
		if err != nil {
			t.Fatalf("WorldToHex failed: %v", err)
		}
		if got != c {
			t.Errorf("expected %v, got %v", c, got)
		}
	}

	got, _ := l.WorldToHex(hmath.Vec2{X: 100, Y: -50})
	if got != hex.New(0, 0) {
		t.Errorf("origin should map to (0,0), got %v", got)
	}
}
