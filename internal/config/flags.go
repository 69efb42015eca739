package config

import "flag"

// Flags holds the command-line overrides shared by every hexmap command.
type Flags struct {
	fs *flag.FlagSet

	config    *string
	debug     *bool
	gridSize  *float64
	welded    *bool
	generator *string
	radius    *int
	seed      *int64
	tiles     *int
	output    *string
	logFile   *string
}

// BindFlags registers the shared flags on fs. Call fs.Parse before Load.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:        fs,
		config:    fs.String("config", "", "Path to config file"),
		debug:     fs.Bool("debug", false, "Enable debug logging"),
		gridSize:  fs.Float64("grid-size", 0, "Hex side length in world units"),
		welded:    fs.Bool("welded", false, "Build welded meshes with shared corners"),
		generator: fs.String("generator", "", "Map generator: standard, radial or dimension"),
		radius:    fs.Int("radius", 0, "Radius for the radial generator"),
		seed:      fs.Int64("seed", 0, "Generator seed"),
		tiles:     fs.Int("tiles", 0, "Number of atlas tiles the generator draws from"),
		output:    fs.String("o", "", "Preview output path"),
		logFile:   fs.String("log-file", "", "Write logs to a rotating file"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply overrides cfg with every flag given explicitly on the command line.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.debug {
				cfg.Logging.Level = "debug"
			}
		case "grid-size":
			cfg.Grid.Size = float32(*f.gridSize)
		case "welded":
			if *f.welded {
				cfg.Grid.Policy = "welded"
			} else {
				cfg.Grid.Policy = "unwelded"
			}
		case "generator":
			cfg.Generator.Kind = *f.generator
		case "radius":
			cfg.Generator.Radius = *f.radius
		case "seed":
			cfg.Generator.Seed = *f.seed
		case "tiles":
			cfg.Generator.TileCount = *f.tiles
		case "o":
			cfg.Preview.Output = *f.output
		case "log-file":
			cfg.Logging.LogFile = *f.logFile
		}
	})
}
