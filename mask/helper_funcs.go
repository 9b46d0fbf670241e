package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the glyph bounds and an origin position, it returns the bounding
// integer width and height, the normalization offset to be applied to
// keep the coordinates in the positive plane, and the offset to be applied
// to the final mask to align its bounds with the origin.
//
// Only the fractional part of the origin affects the normalization; the
// integer part is folded into the mask offset.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	fractX, fractY := origin.X & 0x3F, origin.Y & 0x3F
	minX := floor(bounds.Min.X + fractX)
	minY := floor(bounds.Min.Y + fractY)

	var maskCorrection image.Point
	maskCorrection.X = minX.Floor() + origin.X.Floor()
	maskCorrection.Y = minY.Floor() + origin.Y.Floor()

	var normOffset fixed.Point26_6
	normOffset.X = -minX + fractX
	normOffset.Y = -minY + fractY
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	if width  < 1 { width  = 1 }
	if height < 1 { height = 1 }
	return width, height, normOffset, maskCorrection
}

// Floors the value to a whole pixel, keeping the 26.6 representation.
func floor(value fixed.Int26_6) fixed.Int26_6 {
	return value &^ 0x3F
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64, float32(point.Y)/64
}
