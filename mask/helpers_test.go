package mask

import "golang.org/x/image/font/sfnt"

// Creates a closed polygon outline from pairs of pixel coordinates.
func polySegments(coords ...float64) sfnt.Segments {
	if len(coords) % 2 != 0 || len(coords) < 6 {
		panic("expected at least three (x, y) pairs")
	}
	shape := NewShape(len(coords)/2 + 1)
	shape.MoveTo(coords[0], coords[1])
	for i := 2; i < len(coords); i += 2 {
		shape.LineTo(coords[i], coords[i + 1])
	}
	shape.ClosePath()
	return shape.Segments()
}
