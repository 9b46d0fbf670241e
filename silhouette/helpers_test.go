package silhouette

// Helper functions for testing.

import "image"
import "strings"
import "math/rand"

// Builds a raster from rows of characters: '#' is a full intensity
// stroke, '+' is a faint value right at the default cutoff, anything
// else is zero.
func rasterFromRows(rows ...string) *image.Gray {
	raster := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, char := range row {
			switch char {
			case '#': raster.Pix[y*raster.Stride + x] = 255
			case '+': raster.Pix[y*raster.Stride + x] = DefaultCutoff
			}
		}
	}
	return raster
}

// Converts an alpha mask back to rows of '#' (opaque) and '.'
// (transparent), for readable comparisons.
func maskToRows(mask *image.Alpha) []string {
	bounds := mask.Rect
	rows := make([]string, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		var builder strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch mask.AlphaAt(x, y).A {
			case 0xFF: builder.WriteByte('#')
			case 0x00: builder.WriteByte('.')
			default:
				builder.WriteByte('?')
			}
		}
		rows = append(rows, builder.String())
	}
	return rows
}

func sameRows(a, b []string) bool {
	if len(a) != len(b) { return false }
	for i := range a {
		if a[i] != b[i] { return false }
	}
	return true
}

func randomRaster(rng *rand.Rand, w, h int, strokeDensity float64) *image.Gray {
	raster := image.NewGray(image.Rect(0, 0, w, h))
	for i := range raster.Pix {
		if rng.Float64() < strokeDensity {
			raster.Pix[i] = uint8(DefaultCutoff + 1 + uint8(rng.Intn(int(255 - DefaultCutoff))))
		} else {
			raster.Pix[i] = uint8(rng.Intn(int(DefaultCutoff) + 1))
		}
	}
	return raster
}

// Reference classification using a recursive depth-first search from
// each border cell. Slow and stack hungry, but obviously correct for
// the small grids used in tests.
func referenceOpaque(raster *image.Gray, cutoff uint8) []bool {
	w, h := raster.Rect.Dx(), raster.Rect.Dy()
	stroke := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			stroke[y*w + x] = raster.Pix[y*raster.Stride + x] > cutoff
		}
	}

	reached := make([]bool, w*h)
	var visit func(x, y int)
	visit = func(x, y int) {
		if x < 0 || y < 0 || x >= w || y >= h { return }
		i := y*w + x
		if stroke[i] || reached[i] { return }
		reached[i] = true
		visit(x + 1, y)
		visit(x - 1, y)
		visit(x, y + 1)
		visit(x, y - 1)
	}
	for x := 0; x < w; x++ {
		visit(x, 0)
		visit(x, h - 1)
	}
	for y := 0; y < h; y++ {
		visit(0, y)
		visit(w - 1, y)
	}

	opaque := make([]bool, w*h)
	for i := range opaque {
		opaque[i] = !reached[i]
	}
	return opaque
}
