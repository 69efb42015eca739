package debug

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/hexmap/pkg/tileset"
)

// LoadTexture opens a PNG, JPEG or BMP atlas texture.
func LoadTexture(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture %s: %w", path, err)
	}
	return img, nil
}

// PaletteFromTexture returns the mean colour of each atlas tile in img,
// indexed by tile. UV v runs upwards while image rows run downwards.
func PaletteFromTexture(img image.Image, atlas *tileset.Atlas) ([]color.Color, error) {
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	palette := make([]color.Color, atlas.TileCount())
	for idx := range palette {
		uv0, uv1, err := atlas.TileRect(idx)
		if err != nil {
			return nil, err
		}
		rect := image.Rect(
			bounds.Min.X+int(float64(uv0.X)*w),
			bounds.Min.Y+int((1-float64(uv1.Y))*h),
			bounds.Min.X+int(float64(uv1.X)*w),
			bounds.Min.Y+int((1-float64(uv0.Y))*h),
		)
		palette[idx] = meanColor(img, rect)
	}
	return palette, nil
}

func meanColor(img image.Image, rect image.Rectangle) color.Color {
	var r, g, b, a, n uint64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			r, g, b, a = r+uint64(cr), g+uint64(cg), b+uint64(cb), a+uint64(ca)
			n++
		}
	}
	if n == 0 {
		return color.Transparent
	}
	return color.RGBA64{R: uint16(r / n), G: uint16(g / n), B: uint16(b / n), A: uint16(a / n)}
}
