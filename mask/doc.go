// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into alpha masks, and provides a default implementation
// based on [golang.org/x/image/vector].
//
// Font glyphs are stored as outlines (sets of lines and curves). Before
// they can be composed into an icon they have to be rasterized: drawn
// into a grid of pixels where each value is the coverage of the outline
// over that pixel. The result is an *image.Alpha positioned relative to
// the glyph origin, which the glyph subpackage then places on a canvas.
package mask
