package silhouette

import "image"

// Class is the classification state of a single grid cell.
type Class uint8

const (
	// Background that hasn't been classified yet. Every non-stroke
	// cell starts here after [Threshold].
	Background Class = iota

	// Part of the glyph outline. Strokes are never reclassified.
	Stroke

	// Background reachable from the grid border without crossing
	// any stroke.
	Exterior

	// Background enclosed by strokes. Only set by [Grid.Finalize].
	Interior
)

// Returns the name of the class, mostly for debugging and tests.
func (self Class) String() string {
	switch self {
	case Background: return "background"
	case Stroke    : return "stroke"
	case Exterior  : return "exterior"
	case Interior  : return "interior"
	default:
		return "invalid"
	}
}

// Whether cells of this class are part of the solid silhouette.
func (self Class) Opaque() bool {
	return self == Stroke || self == Interior
}

// A classification grid. Cells are stored in row-major order, so the
// cell at (x, y) is Cells[y*Width + x].
//
// Rect records the bounds of the raster the grid was created from, so
// the final alpha mask can keep the same coordinates.
type Grid struct {
	Width  int
	Height int
	Cells  []Class
	Rect   image.Rectangle
}

// Creates a new grid with all cells set to [Background]. Sizes <= 0
// will panic; boundary checks happen in [Extract].
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 { panic("width or height <= 0") }
	return &Grid {
		Width:  width,
		Height: height,
		Cells:  make([]Class, width*height),
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Returns the class of the cell at the given coordinates, which must
// be within [0, Width) x [0, Height).
func (self *Grid) At(x, y int) Class {
	return self.Cells[y*self.Width + x]
}

// Sets the class of the cell at the given coordinates, which must
// be within [0, Width) x [0, Height).
func (self *Grid) Set(x, y int, class Class) {
	self.Cells[y*self.Width + x] = class
}

// Returns the number of cells currently holding each class, indexed
// by [Class].
func (self *Grid) Count() [4]int {
	var counts [4]int
	for _, class := range self.Cells {
		if int(class) < len(counts) { counts[class] += 1 }
	}
	return counts
}
