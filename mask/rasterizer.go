package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is an interface for glyph outline rasterization to an
// alpha mask. It exists so the glyph renderer can be tested with and
// extended by rasterizers other than [DefaultRasterizer].
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given origin, which only matters for its fractional
	// part (the integer part is applied as a translation of the returned
	// mask bounds).
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)

	// Returns a value that tells rasterizers with different output
	// apart. Used as part of raster cache keys.
	Signature() uint64
}

type vectorTracer interface {
	MoveTo(fixed.Point26_6)
	LineTo(fixed.Point26_6)
	QuadTo(control, target fixed.Point26_6)
	CubeTo(controlA, controlB, target fixed.Point26_6)
}

// Rasterizes the given outline with the given rasterizer.
//
// The returned mask bounds are expressed relative to the glyph origin,
// already shifted by the integer part of dot. To draw the glyph with
// its origin at dot, draw the mask at its own bounds.
//
// The image returned will be nil if the outline doesn't include any
// lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls the tracer's MoveTo(), LineTo(), QuadTo() and CubeTo() methods
// for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
