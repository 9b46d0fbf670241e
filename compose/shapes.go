package compose

import "image"
import "image/draw"
import "image/color"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphicon/mask"

// Fills the given rectangle with rounded corners of the given radius.
// The radius is clamped to half the smallest side.
func FillRoundedRect(dst draw.Image, rect image.Rectangle, radius int, clr color.Color) {
	if rect.Empty() { return }
	shape := mask.NewShape(10)
	x0, y0, x1, y1 := rectCoords(rect)
	shape.RoundedRect(x0, y0, x1, y1, float64(radius), true)
	paintShape(dst, &shape, clr)
}

// Draws the outline of a rounded rectangle. The outline grows inwards
// from the rectangle edges, width pixels wide. The inner corners use
// the radius minus the width.
func StrokeRoundedRect(dst draw.Image, rect image.Rectangle, radius int, width int, clr color.Color) {
	if rect.Empty() || width <= 0 { return }
	shape := mask.NewShape(20)
	x0, y0, x1, y1 := rectCoords(rect)
	shape.RoundedRect(x0, y0, x1, y1, float64(radius), true)

	inset := float64(width)
	if x1 - x0 > 2*inset && y1 - y0 > 2*inset {
		innerRadius := float64(radius - width)
		if innerRadius < 0 { innerRadius = 0 }
		// the opposite direction cuts the inner area
		shape.RoundedRect(x0 + inset, y0 + inset, x1 - inset, y1 - inset, innerRadius, false)
	}
	paintShape(dst, &shape, clr)
}

func rectCoords(rect image.Rectangle) (float64, float64, float64, float64) {
	return float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y)
}

func paintShape(dst draw.Image, shape *mask.Shape, clr color.Color) {
	var rasterizer mask.DefaultRasterizer
	alpha, err := mask.Rasterize(shape.Segments(), &rasterizer, fixed.Point26_6{})
	if err != nil { panic(err) } // the default rasterizer doesn't fail
	if alpha == nil { return }
	draw.DrawMask(dst, alpha.Rect, image.NewUniform(clr), image.Point{}, alpha, alpha.Rect.Min, draw.Over)
}
