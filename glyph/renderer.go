package glyph

import "fmt"
import "image"
import "errors"
import "unsafe"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/glyphicon/cache"
import "github.com/tinne26/glyphicon/mask"
import "github.com/tinne26/glyphicon/internal/logger"

// Returned by [NewRenderer] when the font doesn't have a glyph for
// the requested rune.
var ErrMissingGlyph = errors.New("font has no glyph for rune")

// Returned by [Renderer.Render] when the canvas or the font size are
// not positive.
var ErrInvalidSize = errors.New("canvas and font size must be positive")

// A Renderer draws one specific glyph of one specific font.
type Renderer struct {
	font *sfnt.Font
	codePoint rune
	index sfnt.GlyphIndex
	buffer sfnt.Buffer
	rasterizer mask.Rasterizer
	cache *cache.RasterCache
}

// Creates a new renderer for the given rune. If the font maps the
// rune to the notdef glyph, the returned error wraps [ErrMissingGlyph].
func NewRenderer(font *sfnt.Font, codePoint rune) (*Renderer, error) {
	renderer := &Renderer {
		font: font,
		codePoint: codePoint,
		rasterizer: &mask.DefaultRasterizer{},
	}
	index, err := font.GlyphIndex(&renderer.buffer, codePoint)
	if err != nil { return nil, fmt.Errorf("glyph index for %s: %w", Describe(codePoint), err) }
	if index == 0 { return nil, fmt.Errorf("%w %s", ErrMissingGlyph, Describe(codePoint)) }
	renderer.index = index
	return renderer, nil
}

// Returns the rune drawn by the renderer.
func (self *Renderer) Rune() rune { return self.codePoint }

// Sets the rasterizer used to draw the glyph outline. Passing nil
// restores the default rasterizer.
func (self *Renderer) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { rasterizer = &mask.DefaultRasterizer{} }
	self.rasterizer = rasterizer
}

// Sets the cache used to store and reuse rendered rasters. Passing
// nil disables caching.
func (self *Renderer) SetCache(rasterCache *cache.RasterCache) {
	self.cache = rasterCache
}

// Returns the bounds of the glyph outline at the given size, relative
// to the glyph origin (y grows downwards, so Min.Y is usually negative).
func (self *Renderer) Bounds(ppem int) (fixed.Rectangle26_6, error) {
	outline, err := self.font.LoadGlyph(&self.buffer, self.index, fixed.I(ppem), nil)
	if err != nil { return fixed.Rectangle26_6{}, err }
	return outline.Bounds(), nil
}

// Renders the glyph at ppem pixels per em, centered on a canvas x canvas
// grayscale raster and moved up by lift pixels. Pixel values are the
// glyph coverage, from 0 (empty) to 255 (full).
//
// Centering uses the whole-pixel bounds of the outline. If the glyph has
// no visible segments, the raster is left blank. The returned raster is
// always owned by the caller, even when it comes from the cache.
func (self *Renderer) Render(canvas, ppem, lift int) (*image.Gray, error) {
	if canvas <= 0 || ppem <= 0 {
		return nil, fmt.Errorf("%w (canvas %d, size %d)", ErrInvalidSize, canvas, ppem)
	}

	key := self.cacheKey(canvas, ppem, lift)
	if self.cache != nil {
		cached, found := self.cache.Get(key)
		if found {
			logger.Logger().Debug("glyph raster cache hit", "canvas", canvas, "ppem", ppem)
			return cloneGray(cached), nil
		}
	}

	raster, err := self.render(canvas, ppem, lift)
	if err != nil { return nil, err }
	if self.cache != nil {
		self.cache.Put(key, cloneGray(raster))
	}
	return raster, nil
}

func (self *Renderer) render(canvas, ppem, lift int) (*image.Gray, error) {
	raster := image.NewGray(image.Rect(0, 0, canvas, canvas))
	outline, err := self.font.LoadGlyph(&self.buffer, self.index, fixed.I(ppem), nil)
	if err != nil {
		return nil, fmt.Errorf("loading %s at %dpx: %w", Describe(self.codePoint), ppem, err)
	}

	dot := centerDot(outline.Bounds(), canvas, lift)
	glyphMask, err := mask.Rasterize(outline, self.rasterizer, dot)
	if err != nil { return nil, err }
	if glyphMask == nil {
		logger.Logger().Warn("glyph has no visible outline", "rune", Describe(self.codePoint))
		return raster, nil
	}

	copyAlphaToGray(raster, glyphMask)
	logger.Logger().Debug("glyph rendered", "canvas", canvas, "ppem", ppem, "lift", lift)
	return raster, nil
}

func (self *Renderer) cacheKey(canvas, ppem, lift int) cache.Key {
	return cache.Key {
		Font: uint64(uintptr(unsafe.Pointer(self.font))),
		Signature: self.rasterizer.Signature(),
		Rune: self.codePoint,
		Canvas: int32(canvas),
		PPEM: int32(ppem),
		Lift: int32(lift),
	}
}

// Returns the origin at which the glyph must be drawn so that its
// whole-pixel bounds are centered on the canvas, lift pixels up.
func centerDot(bounds fixed.Rectangle26_6, canvas int, lift int) fixed.Point26_6 {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	x := floorDiv(canvas - (maxX - minX), 2) - minX
	y := floorDiv(canvas - (maxY - minY), 2) - minY - lift
	return fixed.P(x, y)
}

func floorDiv(a, b int) int {
	quotient := a/b
	if (a % b != 0) && ((a < 0) != (b < 0)) { quotient -= 1 }
	return quotient
}

// Copies the mask coverage into the raster, clipping to the raster
// bounds. image.Alpha and image.Gray share their pixel layout.
func copyAlphaToGray(raster *image.Gray, glyphMask *image.Alpha) {
	area := raster.Rect.Intersect(glyphMask.Rect)
	if area.Empty() { return }
	width := area.Dx()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		dst := raster.PixOffset(area.Min.X, y)
		src := glyphMask.PixOffset(area.Min.X, y)
		copy(raster.Pix[dst : dst + width], glyphMask.Pix[src : src + width])
	}
}

func cloneGray(raster *image.Gray) *image.Gray {
	clone := image.NewGray(raster.Rect)
	copy(clone.Pix, raster.Pix)
	return clone
}
