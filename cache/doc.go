// The cache subpackage provides [RasterCache], a concurrent-safe,
// memory-bounded cache for rendered glyph rasters.
//
// Icon generation renders the same glyph at the same size many times:
// the 1024x1024 app icon is needed both as icon.png and inside the
// iconset, the 256x256 one as 128x128@2x.png, inside the iconset and as
// the .ico source, and so on. Glyph rasterization at those sizes is by
// far the most expensive step, so renderers can share a cache.
//
// Sizing the cache is simple in this context: an 8-bit raster takes
// one byte per pixel, so a 1024x1024 glyph takes 1MiB. The default
// plan needs well under 8MiB to cache everything.
package cache
