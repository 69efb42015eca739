// Package tileset maps tile indices of a packed texture atlas to hexagon UVs.
package tileset

import (
	"fmt"
	"math"

	"github.com/Faultbox/hexmap/pkg/hex"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

// Atlas errors.
var (
	ErrInvalidDimensions   = fmt.Errorf("%w: atlas dimensions must be positive", hex.ErrPrecondition)
	ErrTileIndexOutOfRange = fmt.Errorf("%w: tile index out of atlas range", hex.ErrPrecondition)
)

// UVCount is the number of UVs per hex: the centre plus six corners.
const UVCount = 7

var halfSqrt3 = float32(math.Sqrt(3) / 4)

// hexUVs places the hexagon inside a unit tile. Entry 0 is the centre,
// entries 1..6 are corners 0..5 of hex.Layout with V pointing up.
var hexUVs = [UVCount]hmath.Vec2{
	{X: 0.5, Y: 0.5},
	{X: 0.5 + halfSqrt3, Y: 0.25},
	{X: 0.5, Y: 0},
	{X: 0.5 - halfSqrt3, Y: 0.25},
	{X: 0.5 - halfSqrt3, Y: 0.75},
	{X: 0.5, Y: 1},
	{X: 0.5 + halfSqrt3, Y: 0.75},
}

// Atlas describes a texture packed as a TilesHorizontal x TilesVertical grid.
// Tile 0 is the top-left tile; indices run left to right, then downwards.
type Atlas struct {
	TilesHorizontal int
	TilesVertical   int
}

// New returns an atlas of h columns and v rows.
func New(h, v int) (*Atlas, error) {
	if h <= 0 || v <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, h, v)
	}
	return &Atlas{TilesHorizontal: h, TilesVertical: v}, nil
}

// TileCount returns the number of tiles in the atlas.
func (a *Atlas) TileCount() int {
	return a.TilesHorizontal * a.TilesVertical
}

// Contains reports whether tileIndex addresses a tile of the atlas.
func (a *Atlas) Contains(tileIndex int) bool {
	return tileIndex >= 0 && tileIndex < a.TileCount()
}

// TileCell returns the column and the UV row of a tile. UV rows count
// from the bottom of the texture, so the first tile row maps to the last UV row.
func (a *Atlas) TileCell(tileIndex int) (column, row int, err error) {
	if !a.Contains(tileIndex) {
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrTileIndexOutOfRange, tileIndex, a.TileCount())
	}
	tileX := tileIndex % a.TilesHorizontal
	tileY := tileIndex / a.TilesHorizontal
	return tileX, a.TilesVertical - 1 - tileY, nil
}

// TileRect returns the UV rectangle (u0, v0) - (u1, v1) covered by a tile.
func (a *Atlas) TileRect(tileIndex int) (uv0, uv1 hmath.Vec2, err error) {
	column, row, err := a.TileCell(tileIndex)
	if err != nil {
		return hmath.Vec2{}, hmath.Vec2{}, err
	}
	scale := a.tileScale()
	uv0 = hmath.Vec2{X: float32(column) * scale.X, Y: float32(row) * scale.Y}
	return uv0, uv0.Add(scale), nil
}

// UVs returns the seven UVs of a tile in vertex-block order: centre first,
// then corners 0..5.
func (a *Atlas) UVs(tileIndex int) ([UVCount]hmath.Vec2, error) {
	var result [UVCount]hmath.Vec2
	offset, _, err := a.TileRect(tileIndex)
	if err != nil {
		return result, err
	}

	scale := a.tileScale()
	for i, uv := range hexUVs {
		result[i] = offset.Add(uv.Mul(scale))
	}
	return result, nil
}

func (a *Atlas) tileScale() hmath.Vec2 {
	return hmath.Vec2{
		X: 1 / float32(a.TilesHorizontal),
		Y: 1 / float32(a.TilesVertical),
	}
}

// PlainUVs is the UV block used by atlas-less meshes: every entry is (0, 0).
func PlainUVs() [UVCount]hmath.Vec2 {
	return [UVCount]hmath.Vec2{}
}
