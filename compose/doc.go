// The compose subpackage builds the final icon images out of a glyph
// raster: rounded app icon backgrounds, solid tray silhouettes, colors
// and resampling.
//
// All brand parameters live in an immutable [Style] value that callers
// pass explicitly. Glyph rasters come from any [GlyphSource], which is
// usually a *glyph.Renderer.
//
// Images are composed on *image.RGBA canvases and downsampled with a
// Lanczos-3 kernel.
package compose
