// Package generator produces hex grids for the hexmap tools.
//
// A generator is a plain function of a seeded random source. All randomness
// must come from that source so a seed always yields the same map.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/config"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
)

// ErrInvalidParams is returned for generator parameters that cannot produce a map.
var ErrInvalidParams = errors.New("invalid generator parameters")

// Func generates the cells of a map from rng.
type Func func(rng *rand.Rand) ([]hexgrid.Cell, error)

// Standard returns the single-cell map: one tile-0 cell at the origin.
func Standard() Func {
	return func(*rand.Rand) ([]hexgrid.Cell, error) {
		return []hexgrid.Cell{hexgrid.NewCell(0, 0, 0)}, nil
	}
}

// Radial fills a disk of the given radius with tiles drawn from [0, tileCount).
func Radial(radius, tileCount int) Func {
	return func(rng *rand.Rand) ([]hexgrid.Cell, error) {
		if radius < 0 {
			return nil, fmt.Errorf("%w: radius %d", ErrInvalidParams, radius)
		}
		return fill(rng, hex.SymmetricGroup(radius, radius, radius), tileCount)
	}
}

// DimensionRestrained fills every cell with |q| <= qMax, |r| <= rMax and
// |s| <= sMax with tiles drawn from [0, tileCount).
func DimensionRestrained(qMax, rMax, sMax, tileCount int) Func {
	return func(rng *rand.Rand) ([]hexgrid.Cell, error) {
		if qMax < 0 || rMax < 0 || sMax < 0 {
			return nil, fmt.Errorf("%w: bounds %d/%d/%d", ErrInvalidParams, qMax, rMax, sMax)
		}
		return fill(rng, hex.SymmetricGroup(qMax, rMax, sMax), tileCount)
	}
}

func fill(rng *rand.Rand, coords []hex.Coord, tileCount int) ([]hexgrid.Cell, error) {
	if tileCount <= 0 {
		return nil, fmt.Errorf("%w: tile count %d", ErrInvalidParams, tileCount)
	}
	cells := make([]hexgrid.Cell, len(coords))
	for i, c := range coords {
		cells[i] = hexgrid.Cell{Position: c, TileIndex: rng.Intn(tileCount)}
	}
	return cells, nil
}

// Generate runs fn with a source seeded by seed and builds the grid.
func Generate(fn Func, seed int64) (*hexgrid.Grid, error) {
	log := logger.Named("generator")

	rng := rand.New(rand.NewSource(seed))
	cells, err := fn(rng)
	if err != nil {
		return nil, fmt.Errorf("generating map: %w", err)
	}

	grid, err := hexgrid.Build(cells)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	log.Debug("map generated",
		zap.Int64("seed", seed),
		zap.Int("cells", grid.Len()),
		zap.Int("max_tile", grid.MaxTileIndex()))
	return grid, nil
}

// FromConfig selects the generator named by cfg.Generator.Kind.
func FromConfig(cfg *config.Config) (Func, error) {
	gen := cfg.Generator
	tiles := cfg.TileCount()

	switch gen.Kind {
	case config.GeneratorStandard:
		return Standard(), nil
	case config.GeneratorRadial:
		return Radial(gen.Radius, tiles), nil
	case config.GeneratorDimension:
		return DimensionRestrained(gen.QMax, gen.RMax, gen.SMax, tiles), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidParams, gen.Kind)
}

// FromConfigGrid is FromConfig followed by Generate with the configured seed.
func FromConfigGrid(cfg *config.Config) (*hexgrid.Grid, error) {
	fn, err := FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	logger.Named("generator").Info("generating map",
		zap.String("kind", cfg.Generator.Kind),
		zap.Int64("seed", cfg.Generator.Seed))
	return Generate(fn, cfg.Generator.Seed)
}
