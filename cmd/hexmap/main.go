// hexmap is a CLI for generating, editing and previewing hex tile maps.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hexmap/internal/config"
	"github.com/Faultbox/hexmap/internal/generator"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/internal/world"
	"github.com/Faultbox/hexmap/pkg/hexmesh"
	hmath "github.com/Faultbox/hexmap/pkg/math"
	"github.com/Faultbox/hexmap/pkg/tileset"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "generate", "gen":
		err = cmdGenerate(args)
	case "pick":
		err = cmdPick(args)
	case "paint":
		err = cmdPaint(args)
	case "path":
		err = cmdPath(args)
	case "preview":
		err = cmdPreview(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`hexmap - hex tile map tool

Usage:
  hexmap <command> [options] [arguments]

Commands:
  generate                     Generate a map and print mesh statistics
  pick <x> <y>                 Show the cell under a world point
  paint <q> <r> <tile>         Change one cell's tile and patch the mesh
  path <q1> <r1> <q2> <r2>     Find a path between two cells
  preview                      Render the map to a PNG
  config                       Print the effective configuration

Common options:
  -config <file>   Config file (default ./hexmap.yaml or user config dir)
  -debug           Debug logging
  -generator kind  standard, radial or dimension
  -radius n        Radial generator radius
  -seed n          Generator seed
  -tiles n         Tiles the generator draws from
  -grid-size f     Hex side length
  -welded          Weld shared corners (plain UVs, no patching)
  -o <file>        Preview output path

Examples:
  hexmap generate -radius 4 -seed 7
  hexmap pick 2.5 -1
  hexmap paint 1 -1 3 -o painted.png
  hexmap path -avoid 2 -4 0 4 0
  hexmap config -save`)
}

// newFlagSet returns a flag set carrying the shared config flags.
func newFlagSet(name string) (*flag.FlagSet, *config.Flags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs, config.BindFlags(fs)
}

// setup loads the config and installs the logger.
func setup(flags *config.Flags) (*config.Config, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	opts := logger.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Console: true,
	}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)
	return cfg, nil
}

// loadWorld generates the configured map and builds its mesh.
func loadWorld(cfg *config.Config) (*world.Map, *tileset.Atlas, error) {
	atlas, err := tileset.New(cfg.Tileset.TilesHorizontal, cfg.Tileset.TilesVertical)
	if err != nil {
		return nil, nil, err
	}
	policy, err := hexmesh.ParsePolicy(cfg.Grid.Policy)
	if err != nil {
		return nil, nil, err
	}
	builder, err := hexmesh.NewBuilder(cfg.Grid.Size, policy)
	if err != nil {
		return nil, nil, err
	}

	grid, err := generator.FromConfigGrid(cfg)
	if err != nil {
		return nil, nil, err
	}

	origin := hmath.Vec2{X: cfg.Grid.OriginX, Y: cfg.Grid.OriginY}
	m, err := world.New(grid, atlas, builder, origin)
	if err != nil {
		return nil, nil, err
	}
	return m, atlas, nil
}
