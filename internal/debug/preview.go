package debug

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/llgcode/draw2d/draw2dimg"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/Faultbox/hexmap/internal/config"
	"github.com/Faultbox/hexmap/internal/logger"
	"github.com/Faultbox/hexmap/pkg/hex"
	"github.com/Faultbox/hexmap/pkg/hexgrid"
	"github.com/Faultbox/hexmap/pkg/hexmesh"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

// ErrUnknownColor is returned for colour names missing from colornames.Map.
var ErrUnknownColor = errors.New("unknown color name")

// PreviewOptions controls RenderPreview.
type PreviewOptions struct {
	Width, Height  int
	Padding        int
	Supersample    int
	Background     color.Color
	Line           color.Color
	LineWidth      float64
	Palette        []color.Color
	Highlight      []hex.Coord // outlined with HighlightColor, e.g. a path
	HighlightColor color.Color
}

// ParseColor looks up an SVG colour name such as "steelblue".
func ParseColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// OptionsFromConfig converts the preview section of the config.
func OptionsFromConfig(cfg config.PreviewConfig) (PreviewOptions, error) {
	opts := PreviewOptions{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Padding:        cfg.Padding,
		Supersample:    max(cfg.Supersample, 1),
		LineWidth:      cfg.LineWidth,
		HighlightColor: colornames.Red,
	}

	var err error
	if opts.Background, err = ParseColor(cfg.Background); err != nil {
		return opts, fmt.Errorf("preview.background: %w", err)
	}
	if opts.Line, err = ParseColor(cfg.LineColor); err != nil {
		return opts, fmt.Errorf("preview.line_color: %w", err)
	}
	for i, name := range cfg.Palette {
		c, err := ParseColor(name)
		if err != nil {
			return opts, fmt.Errorf("preview.palette[%d]: %w", i, err)
		}
		opts.Palette = append(opts.Palette, c)
	}
	return opts, nil
}

// RenderPreview draws every cell of grid, filled by tile colour and
// outlined, fitted into the configured image size. mesh must have been
// built from grid.
func RenderPreview(mesh *hexmesh.Mesh, grid *hexgrid.Grid, opts PreviewOptions) (image.Image, error) {
	if mesh.CellCount() != grid.Len() {
		return nil, fmt.Errorf("%w: %d mesh cells for %d grid cells", hexmesh.ErrStaleMesh, mesh.CellCount(), grid.Len())
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview size %dx%d must be positive", opts.Width, opts.Height)
	}
	if len(opts.Palette) == 0 {
		opts.Palette = []color.Color{colornames.Gray}
	}
	ss := max(opts.Supersample, 1)

	w, h := opts.Width*ss, opts.Height*ss
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background(opts)), image.Point{}, draw.Src)

	project := fit(mesh.Bounds, w, h, float64(opts.Padding*ss))

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(opts.Line)
	gc.SetLineWidth(opts.LineWidth * float64(ss))

	for p, n := 0, grid.Len(); p < n; p++ {
		gc.SetFillColor(opts.Palette[grid.At(p).TileIndex%len(opts.Palette)])
		tracePolygon(gc, mesh.CellOutline(p), project)
		if opts.Line != nil && opts.LineWidth > 0 {
			gc.FillStroke()
		} else {
			gc.Fill()
		}
	}

	if len(opts.Highlight) > 0 {
		gc.SetStrokeColor(highlight(opts))
		gc.SetLineWidth(max(opts.LineWidth, 1) * 2 * float64(ss))
		for _, c := range opts.Highlight {
			p, ok := grid.IndexOf(c)
			if !ok {
				continue
			}
			tracePolygon(gc, mesh.CellOutline(p), project)
			gc.Stroke()
		}
	}

	if ss == 1 {
		return img, nil
	}
	return transform.Resize(img, opts.Width, opts.Height, transform.Linear), nil
}

// RenderPNG renders a preview and writes it to path.
func RenderPNG(path string, mesh *hexmesh.Mesh, grid *hexgrid.Grid, opts PreviewOptions) error {
	img, err := RenderPreview(mesh, grid, opts)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}

	logger.Named("debug").Info("preview written",
		zap.String("path", path),
		zap.Int("cells", grid.Len()),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height))
	return nil
}

type pathTracer interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Close()
}

func tracePolygon(gc pathTracer, corners [6]hmath.Vec3, project func(hmath.Vec3) (float64, float64)) {
	gc.BeginPath()
	for i, c := range corners {
		x, y := project(c)
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}
	gc.Close()
}

// fit maps world XY into a w x h image with padding, preserving aspect
// ratio and flipping Y so world up is image up.
func fit(b hexmesh.Bounds, w, h int, padding float64) func(hmath.Vec3) (float64, float64) {
	size := b.Size()
	spanX, spanY := max(float64(size.X), 1e-6), max(float64(size.Y), 1e-6)
	availX, availY := float64(w)-2*padding, float64(h)-2*padding
	scale := min(availX/spanX, availY/spanY)

	offX := padding + (availX-spanX*scale)/2
	offY := padding + (availY-spanY*scale)/2
	return func(p hmath.Vec3) (float64, float64) {
		x := offX + (float64(p.X)-float64(b.Min.X))*scale
		y := offY + (float64(b.Max.Y)-float64(p.Y))*scale
		return x, y
	}
}

func background(opts PreviewOptions) color.Color {
	if opts.Background == nil {
		return colornames.Black
	}
	return opts.Background
}

func highlight(opts PreviewOptions) color.Color {
	if opts.HighlightColor == nil {
		return colornames.Red
	}
	return opts.HighlightColor
}
