// The silhouette subpackage turns an outline-rendered glyph into a
// solid shape, as needed for flat monochrome tray icons.
//
// Many fonts (e.g. hieroglyph fonts) draw glyphs as line art: the
// interior regions enclosed by the strokes are left empty. To fill
// them, the raster is first thresholded into a stroke mask. Then, every
// background cell reachable from the border without crossing a stroke
// is flood-filled as exterior. Whatever background remains after that
// must be enclosed by strokes, so it becomes interior:
//   raster --[Threshold]--> Grid --[FloodExterior]--> Grid --[Finalize]--> *image.Alpha
//
// [Extract] performs the three steps in one call. The resulting alpha
// mask is opaque for strokes and interior cells, and transparent for
// exterior cells.
//
// Extraction is a pure, single-threaded computation. Each call owns its
// grid and work queue, so different goroutines can run extractions at
// the same time without any coordination.
package silhouette
