// Package config handles hexmap configuration loading and management.
package config

// Generator kinds understood by GeneratorConfig.Kind.
const (
	GeneratorStandard  = "standard"
	GeneratorRadial    = "radial"
	GeneratorDimension = "dimension"
)

// Config holds all hexmap settings.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Tileset   TilesetConfig   `yaml:"tileset"`
	Generator GeneratorConfig `yaml:"generator"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GridConfig holds cell geometry and triangulation settings.
type GridConfig struct {
	Size    float32 `yaml:"size"`   // Side length of one hex in world units
	Policy  string  `yaml:"policy"` // unwelded or welded
	OriginX float32 `yaml:"origin_x"`
	OriginY float32 `yaml:"origin_y"`
}

// TilesetConfig describes the texture atlas layout.
type TilesetConfig struct {
	TilesHorizontal int `yaml:"tiles_horizontal"`
	TilesVertical   int `yaml:"tiles_vertical"`
}

// GeneratorConfig selects and parameterises the map generator.
type GeneratorConfig struct {
	Kind      string `yaml:"kind"`
	Radius    int    `yaml:"radius"`
	QMax      int    `yaml:"q_max"`
	RMax      int    `yaml:"r_max"`
	SMax      int    `yaml:"s_max"`
	TileCount int    `yaml:"tile_count"` // 0 uses every atlas tile
	Seed      int64  `yaml:"seed"`
}

// PreviewConfig holds PNG preview rendering settings.
type PreviewConfig struct {
	Output      string   `yaml:"output"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Padding     int      `yaml:"padding"`
	Supersample int      `yaml:"supersample"`
	Background  string   `yaml:"background"` // colornames name
	LineColor   string   `yaml:"line_color"`
	LineWidth   float64  `yaml:"line_width"`
	Palette     []string `yaml:"palette"` // one colour per tile index, cycled
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"` // console or json
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Size:   1,
			Policy: "unwelded",
		},
		Tileset: TilesetConfig{
			TilesHorizontal: 4,
			TilesVertical:   2,
		},
		Generator: GeneratorConfig{
			Kind:   GeneratorRadial,
			Radius: 6,
			QMax:   4,
			RMax:   4,
			SMax:   4,
			Seed:   1,
		},
		Preview: PreviewConfig{
			Output:      "hexmap.png",
			Width:       800,
			Height:      800,
			Padding:     16,
			Supersample: 2,
			Background:  "black",
			LineColor:   "white",
			LineWidth:   1,
			Palette: []string{
				"forestgreen", "khaki", "steelblue", "sienna",
				"lightgray", "olivedrab", "sandybrown", "slategray",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
