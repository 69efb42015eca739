package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/hexmap/pkg/hexmesh"
)

// ErrInvalid marks every validation failure reported by Validate.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var err error

	if !(c.Grid.Size > 0) {
		err = multierr.Append(err, invalid("grid.size must be positive, got %v", c.Grid.Size))
	}
	if _, perr := hexmesh.ParsePolicy(c.Grid.Policy); perr != nil {
		err = multierr.Append(err, invalid("grid.policy: %v", perr))
	}

	if c.Tileset.TilesHorizontal <= 0 || c.Tileset.TilesVertical <= 0 {
		err = multierr.Append(err, invalid("tileset dimensions must be positive, got %dx%d",
			c.Tileset.TilesHorizontal, c.Tileset.TilesVertical))
	}

	gen := c.Generator
	switch gen.Kind {
	case GeneratorStandard:
	case GeneratorRadial:
		if gen.Radius < 0 {
			err = multierr.Append(err, invalid("generator.radius must not be negative, got %d", gen.Radius))
		}
	case GeneratorDimension:
		if gen.QMax < 0 || gen.RMax < 0 || gen.SMax < 0 {
			err = multierr.Append(err, invalid("generator q_max/r_max/s_max must not be negative"))
		}
	default:
		err = multierr.Append(err, invalid("unknown generator.kind %q", gen.Kind))
	}
	if gen.TileCount < 0 || gen.TileCount > c.Tileset.TilesHorizontal*c.Tileset.TilesVertical {
		err = multierr.Append(err, invalid("generator.tile_count %d outside atlas", gen.TileCount))
	}

	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		err = multierr.Append(err, invalid("preview size must be positive, got %dx%d",
			c.Preview.Width, c.Preview.Height))
	}
	if c.Preview.Supersample < 1 || c.Preview.Supersample > 4 {
		err = multierr.Append(err, invalid("preview.supersample must be in [1, 4], got %d", c.Preview.Supersample))
	}

	return err
}

// TileCount returns the number of tiles generators should draw from.
func (c *Config) TileCount() int {
	if c.Generator.TileCount > 0 {
		return c.Generator.TileCount
	}
	return c.Tileset.TilesHorizontal * c.Tileset.TilesVertical
}
