package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/config"
	"github.com/Faultbox/hexmap/internal/debug"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/internal/world"
	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	"github.com/Faultbox/hexmap/pkg/hexmesh"
	"github.com/Faultbox/hexmap/pkg/picking"
)

var errUsage = errors.New("invalid arguments")

func cmdGenerate(args []string) error {
	fs, flags := newFlagSet("generate")
	dump := fs.Bool("dump", false, "Print every cell as 'q r tile'")
	fs.Parse(args)

	cfg, err := setup(flags)
	if err != nil {
		return err
	}
	m, _, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	mesh := m.Mesh()
	grid := m.Grid()
	fmt.Printf("Generator: %s (seed %d)\n", cfg.Generator.Kind, cfg.Generator.Seed)
	fmt.Printf("Cells:     %d\n", grid.Len())
	fmt.Printf("Islands:   %d\n", len(grid.Islands()))
	fmt.Printf("Policy:    %s\n", mesh.Policy)
	fmt.Printf("Vertices:  %d\n", mesh.VertexCount())
	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Edges:     %d\n", len(debug.NewHexGridRenderer(mesh).GenerateGridLines(color.White, 0))/2)
	fmt.Printf("Bounds:    (%.3f, %.3f) - (%.3f, %.3f)\n",
		mesh.Bounds.Min.X, mesh.Bounds.Min.Y, mesh.Bounds.Max.X, mesh.Bounds.Max.Y)

	if *dump {
		for _, c := range grid.Cells() {
			fmt.Printf("%d %d %d\n", c.Position.Q, c.Position.R, c.TileIndex)
		}
	}
	return nil
}

func cmdPick(args []string) error {
	fs, flags := newFlagSet("pick")
	from := fs.String("from", "", "Cast a ray from camera position x,y,z to the point instead")
	fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("%w: usage: hexmap pick <x> <y>", errUsage)
	}
	point, err := parseVec2(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}

	cfg, err := setup(flags)
	if err != nil {
		return err
	}
	m, _, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	coord, err := m.Layout().WorldToHex(point)
	if err != nil {
		return err
	}

	var cell hexgrid.Cell
	var ok bool
	if *from != "" {
		camera, err := parseVec3(*from)
		if err != nil {
			return err
		}
		cell, ok = m.PickRay(picking.NewRay(camera, point.XY0()))
	} else {
		cell, ok = m.Pick(point)
	}

	fmt.Printf("Point:  (%g, %g)\n", point.X, point.Y)
	fmt.Printf("Coord:  %v\n", coord)
	if !ok {
		fmt.Println("Cell:   (empty)")
		return nil
	}
	fmt.Printf("Cell:   %v tile %d\n", cell.Position, cell.TileIndex)
	return nil
}

func cmdPaint(args []string) error {
	fs, flags := newFlagSet("paint")
	fs.Parse(args)

	if fs.NArg() < 3 {
		return fmt.Errorf("%w: usage: hexmap paint <q> <r> <tile>", errUsage)
	}
	coord, err := parseCoord(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}
	tile, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("%w: tile %q", errUsage, fs.Arg(2))
	}

	cfg, err := setup(flags)
	if err != nil {
		return err
	}
	m, _, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	if err := m.SetTile(coord, tile); err != nil {
		return err
	}

	mesh := m.Mesh()
	grid := m.Grid()
	p, _ := grid.IndexOf(coord)
	fmt.Printf("Cell %v now shows tile %d\n", coord, tile)
	if mesh.Policy == hexmesh.Unwelded {
		start := p * hexmesh.VerticesPerCell
		for i, uv := range mesh.UVs[start : start+hexmesh.VerticesPerCell] {
			fmt.Printf("  uv[%d] = (%.4f, %.4f)\n", start+i, uv.X, uv.Y)
		}
	}

	return maybePreview(flagWasSet(fs, "o"), cfg, m, nil)
}

func cmdPath(args []string) error {
	fs, flags := newFlagSet("path")
	avoid := fs.String("avoid", "", "Comma-separated tile indices that block movement")
	fs.Parse(args)

	if fs.NArg() < 4 {
		return fmt.Errorf("%w: usage: hexmap path <q1> <r1> <q2> <r2>", errUsage)
	}
	start, err := parseCoord(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}
	goal, err := parseCoord(fs.Arg(2), fs.Arg(3))
	if err != nil {
		return err
	}
	blocked, err := parseTiles(*avoid)
	if err != nil {
		return err
	}

	cfg, err := setup(flags)
	if err != nil {
		return err
	}
	m, _, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	path := m.FindPath(start, goal, func(c hexgrid.Cell) bool { return !blocked[c.TileIndex] })
	if path == nil {
		fmt.Printf("No path from %v to %v\n", start, goal)
		return nil
	}

	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	fmt.Printf("Path (%d steps, distance %d): %s\n", len(path)-1, start.DistanceTo(goal), strings.Join(steps, " "))

	return maybePreview(flagWasSet(fs, "o"), cfg, m, path)
}

func cmdPreview(args []string) error {
	fs, flags := newFlagSet("preview")
	texture := fs.String("texture", "", "Atlas texture (PNG/JPEG/BMP) to derive tile colours from")
	fs.Parse(args)

	cfg, err := setup(flags)
	if err != nil {
		return err
	}
	m, atlas, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	opts, err := debug.OptionsFromConfig(cfg.Preview)
	if err != nil {
		return err
	}
	if *texture != "" {
		img, err := debug.LoadTexture(*texture)
		if err != nil {
			return err
		}
		if opts.Palette, err = debug.PaletteFromTexture(img, atlas); err != nil {
			return err
		}
	}

	if err := debug.RenderPNG(cfg.Preview.Output, m.Mesh(), m.Grid(), opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfg.Preview.Output)
	return nil
}

func cmdConfig(args []string) error {
	fs, flags := newFlagSet("config")
	save := fs.Bool("save", false, "Save the effective config to the user config dir")
	saveTo := fs.String("save-to", "", "Save the effective config to a file")
	fs.Parse(args)

	cfg, err := setup(flags)
	if err != nil {
		return err
	}

	switch {
	case *saveTo != "":
		if err := cfg.SaveTo(*saveTo); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("path", *saveTo))
	case *save:
		if err := cfg.Save(); err != nil {
			return err
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// maybePreview renders the map when -o was given.
func maybePreview(enabled bool, cfg *config.Config, m *world.Map, highlight []hex.Coord) error {
	if !enabled {
		return nil
	}
	opts, err := debug.OptionsFromConfig(cfg.Preview)
	if err != nil {
		return err
	}
	opts.Highlight = highlight
	if err := debug.RenderPNG(cfg.Preview.Output, m.Mesh(), m.Grid(), opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfg.Preview.Output)
	return nil
}
