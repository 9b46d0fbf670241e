// The glyph subpackage renders a single font glyph into a grayscale
// raster, centered on a square canvas.
//
// This is the first step of every icon: the [Renderer] loads the glyph
// outline at the requested size, centers its bounds on the canvas
// (optionally lifting it a few pixels) and rasterizes it with a
// [mask.Rasterizer]. The resulting *image.Gray holds the coverage of
// the glyph for each pixel, and can be colorized directly or passed
// to the silhouette subpackage to get a solid shape.
//
// Renderers are not safe for concurrent use, but multiple renderers
// can share the same font and the same [cache.RasterCache].
package glyph
