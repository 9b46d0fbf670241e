package mask

import "image"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

func TestShapeClosePath(t *testing.T) {
	shape := NewShape(4)
	shape.MoveTo(0, 0)
	shape.LineTo(4, 0)
	shape.LineTo(4, 4)
	shape.ClosePath()
	segments := shape.Segments()
	if len(segments) != 4 { t.Fatalf("expected 4 segments, got %d", len(segments)) }
	last := segments[3]
	if last.Op != sfnt.SegmentOpLineTo || last.Args[0] != (fixed.Point26_6{}) {
		t.Fatalf("expected closing line to the origin, got %v", last)
	}

	shape.ClosePath() // already closed
	if len(shape.Segments()) != 4 { t.Fatalf("expected no extra segment") }
	shape.Reset()
	if len(shape.Segments()) != 0 { t.Fatalf("expected empty shape after reset") }
}

func TestShapeRoundedRect(t *testing.T) {
	shape := NewShape(10)
	shape.RoundedRect(2, 2, 22, 22, 6, true)
	var rasterizer DefaultRasterizer
	mask, err := Rasterize(shape.Segments(), &rasterizer, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.Rect != image.Rect(2, 2, 22, 22) { t.Fatalf("unexpected bounds %v", mask.Rect) }
	if mask.AlphaAt(12, 12).A != 255 { t.Fatalf("expected full center") }
	if mask.AlphaAt(12, 2).A != 255 { t.Fatalf("expected full straight edge") }
	if mask.AlphaAt(2, 2).A != 0 { t.Fatalf("expected empty corner, got %d", mask.AlphaAt(2, 2).A) }
}

func TestShapeHole(t *testing.T) {
	shape := NewShape(20)
	shape.RoundedRect(0, 0, 20, 20, 0, true)
	shape.RoundedRect(5, 5, 15, 15, 0, false)
	var rasterizer DefaultRasterizer
	mask, err := Rasterize(shape.Segments(), &rasterizer, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.AlphaAt(2, 2).A != 255 { t.Fatalf("expected full ring") }
	if mask.AlphaAt(10, 10).A != 0 { t.Fatalf("expected empty hole, got %d", mask.AlphaAt(10, 10).A) }

	// same direction fills the hole
	shape.Reset()
	shape.RoundedRect(0, 0, 20, 20, 0, true)
	shape.RoundedRect(5, 5, 15, 15, 0, true)
	mask, err = Rasterize(shape.Segments(), &rasterizer, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.AlphaAt(10, 10).A != 255 { t.Fatalf("expected filled center, got %d", mask.AlphaAt(10, 10).A) }
}
