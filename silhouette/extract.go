package silhouette

import "image"
import "errors"

// Default cutoff for [Threshold]. Anti-aliasing noise at or below this
// intensity is treated as pure background. The value was tuned for
// outline glyph fonts rendered with golang.org/x/image/vector, and other
// fonts or rasterizers may need a different one.
const DefaultCutoff uint8 = 30

// Returned by [Extract] and [ExtractAlpha] when the raster is nil or
// has no pixels.
var ErrInvalidInput = errors.New("silhouette: raster is nil or empty")

// Maps each raster cell to [Stroke] if its intensity is strictly above
// cutoff, or [Background] otherwise. The raster must be non-empty.
func Threshold(raster *image.Gray, cutoff uint8) *Grid {
	bounds := raster.Rect
	grid := NewGrid(bounds.Dx(), bounds.Dy())
	grid.Rect = bounds
	thresholdPix(grid, raster.Pix, raster.Stride, cutoff)
	return grid
}

// Same as [Threshold], but for coverage masks. image.Alpha and
// image.Gray share the same pixel layout.
func ThresholdAlpha(mask *image.Alpha, cutoff uint8) *Grid {
	bounds := mask.Rect
	grid := NewGrid(bounds.Dx(), bounds.Dy())
	grid.Rect = bounds
	thresholdPix(grid, mask.Pix, mask.Stride, cutoff)
	return grid
}

func thresholdPix(grid *Grid, pix []uint8, stride int, cutoff uint8) {
	index := 0
	for y := 0; y < grid.Height; y++ {
		row := pix[y*stride : y*stride + grid.Width]
		for _, value := range row {
			if value > cutoff {
				grid.Cells[index] = Stroke
			} else {
				grid.Cells[index] = Background
			}
			index += 1
		}
	}
}

// Flood fills the exterior of the grid: every [Background] cell that
// can reach the border through 4-connected background cells becomes
// [Exterior]. Strokes act as walls. Cells already marked as exterior
// or interior are left untouched.
//
// The fill is a breadth-first traversal seeded from all background
// border cells at once. Cells are marked when enqueued, so each one
// enters the queue at most once and the work is linear in the number
// of cells.
func (self *Grid) FloodExterior() {
	w, h := self.Width, self.Height
	cells := self.Cells

	// the queue can never hold more than w*h indices, so a single
	// allocation covers the whole traversal
	queue := make([]int32, 0, w*h)
	var push = func(index int) {
		if cells[index] != Background { return }
		cells[index] = Exterior
		queue = append(queue, int32(index))
	}

	// seed from the four borders. corners are offered twice, but
	// push() ignores cells that are already marked
	last := (h - 1)*w
	for x := 0; x < w; x++ {
		push(x)
		push(last + x)
	}
	for y := 0; y < h; y++ {
		push(y*w)
		push(y*w + w - 1)
	}

	// breadth-first expansion through 4-connected neighbors
	for head := 0; head < len(queue); head++ {
		index := int(queue[head])
		x := index % w
		if x > 0      { push(index - 1) }
		if x < w - 1  { push(index + 1) }
		if index >= w { push(index - w) }
		if index < last { push(index + w) }
	}
}

// Reclassifies all remaining [Background] cells as [Interior] and
// returns a new alpha mask where strokes and interior cells are fully
// opaque and everything else is fully transparent.
//
// Finalize should be called after [Grid.FloodExterior]. Calling it
// before would make the whole background opaque.
func (self *Grid) Finalize() *image.Alpha {
	mask := image.NewAlpha(self.Rect)
	index := 0
	for y := 0; y < self.Height; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride + self.Width]
		for x := range row {
			class := self.Cells[index]
			if class == Background {
				class = Interior
				self.Cells[index] = Interior
			}
			if class.Opaque() { row[x] = 0xFF }
			index += 1
		}
	}
	return mask
}

// Converts a grayscale stroke raster into a solid silhouette mask:
// thresholds it with the given cutoff, flood fills the exterior and
// marks everything else as opaque.
//
// The returned mask has the same bounds as the raster and doesn't share
// memory with it. The only possible error is [ErrInvalidInput].
func Extract(raster *image.Gray, cutoff uint8) (*image.Alpha, error) {
	if raster == nil || raster.Rect.Empty() { return nil, ErrInvalidInput }
	grid := Threshold(raster, cutoff)
	grid.FloodExterior()
	return grid.Finalize(), nil
}

// Same as [Extract], but taking a coverage mask as the input raster.
func ExtractAlpha(mask *image.Alpha, cutoff uint8) (*image.Alpha, error) {
	if mask == nil || mask.Rect.Empty() { return nil, ErrInvalidInput }
	grid := ThresholdAlpha(mask, cutoff)
	grid.FloodExterior()
	return grid.Finalize(), nil
}
