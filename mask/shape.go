package mask

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Control point distance for approximating a quarter circle with a
// single cubic Bézier curve.
const kappa = 0.5522847498

// A helper type to create outlines that aren't glyphs, like icon
// backgrounds, so they can be rasterized with the same [Rasterizer]
// implementations. Coordinates are given in pixels, with y growing
// downwards.
//
// Shapes are not created by "drawing lines", but by defining the
// boundaries that enclose an area. Rasterizers take the direction of
// each contour into account: two nested contours defined in the same
// direction result in the outer area, while contours defined in
// opposite directions result in the difference between the two.
type Shape struct {
	segments []sfnt.Segment
	start fixed.Point26_6
	pen fixed.Point26_6
}

// Creates a new shape. The commandsCount is used as the initial
// capacity of its internal segments buffer.
func NewShape(commandsCount int) Shape {
	return Shape{ segments: make([]sfnt.Segment, 0, commandsCount) }
}

// Gets the shape outline. The underlying data is shared with the
// shape until the next [Shape.Reset]().
func (self *Shape) Segments() sfnt.Segments {
	return sfnt.Segments(self.segments)
}

// Clears the shape outline, keeping the allocated buffer.
func (self *Shape) Reset() { self.segments = self.segments[0 : 0] }

// Starts a new contour at (x, y).
func (self *Shape) MoveTo(x, y float64) {
	self.start = toPoint(x, y)
	self.pen = self.start
	self.segments = append(self.segments, sfnt.Segment {
		Op: sfnt.SegmentOpMoveTo,
		Args: [3]fixed.Point26_6{ self.start },
	})
}

// Creates a straight boundary from the current position to (x, y).
func (self *Shape) LineTo(x, y float64) {
	self.lineToPoint(toPoint(x, y))
}

func (self *Shape) lineToPoint(point fixed.Point26_6) {
	self.pen = point
	self.segments = append(self.segments, sfnt.Segment {
		Op: sfnt.SegmentOpLineTo,
		Args: [3]fixed.Point26_6{ point },
	})
}

// Creates a quadratic Bézier curve to (x, y) with the given control point.
func (self *Shape) QuadTo(ctrlX, ctrlY, x, y float64) {
	self.pen = toPoint(x, y)
	self.segments = append(self.segments, sfnt.Segment {
		Op: sfnt.SegmentOpQuadTo,
		Args: [3]fixed.Point26_6{ toPoint(ctrlX, ctrlY), self.pen },
	})
}

// Creates a cubic Bézier curve to (x, y) with the given control points.
func (self *Shape) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	self.pen = toPoint(x, y)
	self.segments = append(self.segments, sfnt.Segment {
		Op: sfnt.SegmentOpCubeTo,
		Args: [3]fixed.Point26_6{ toPoint(cx1, cy1), toPoint(cx2, cy2), self.pen },
	})
}

// Closes the current contour with a straight boundary back to its
// starting point. Rasterizers don't close contours on their own.
func (self *Shape) ClosePath() {
	if self.pen == self.start { return }
	self.lineToPoint(self.start)
}

// Adds a closed rectangle contour with rounded corners. The radius is
// clamped to half the smallest side. Corners are approximated with
// cubic Bézier curves.
func (self *Shape) RoundedRect(x0, y0, x1, y1, radius float64, clockwise bool) {
	maxRadius := (x1 - x0)/2
	if (y1 - y0)/2 < maxRadius { maxRadius = (y1 - y0)/2 }
	if radius > maxRadius { radius = maxRadius }
	if radius < 0 { radius = 0 }
	r, k := radius, radius*kappa

	self.MoveTo(x0 + r, y0)
	if clockwise {
		self.LineTo(x1 - r, y0)
		self.CubeTo(x1 - r + k, y0, x1, y0 + r - k, x1, y0 + r)
		self.LineTo(x1, y1 - r)
		self.CubeTo(x1, y1 - r + k, x1 - r + k, y1, x1 - r, y1)
		self.LineTo(x0 + r, y1)
		self.CubeTo(x0 + r - k, y1, x0, y1 - r + k, x0, y1 - r)
		self.LineTo(x0, y0 + r)
		self.CubeTo(x0, y0 + r - k, x0 + r - k, y0, x0 + r, y0)
	} else {
		self.CubeTo(x0 + r - k, y0, x0, y0 + r - k, x0, y0 + r)
		self.LineTo(x0, y1 - r)
		self.CubeTo(x0, y1 - r + k, x0 + r - k, y1, x0 + r, y1)
		self.LineTo(x1 - r, y1)
		self.CubeTo(x1 - r + k, y1, x1, y1 - r + k, x1, y1 - r)
		self.LineTo(x1, y0 + r)
		self.CubeTo(x1, y0 + r - k, x1 - r + k, y0, x1 - r, y0)
	}
	self.ClosePath()
}

func toPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{ X: fixed.Int26_6(x*64), Y: fixed.Int26_6(y*64) }
}
