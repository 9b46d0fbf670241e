// glyphicon generates a full set of application icons out of a single
// font glyph.
//
// Common usage only needs a configuration and a [Generator]:
//   cfg, err := config.Load("")
//   if err != nil { ... }
//   generator, err := glyphicon.NewGenerator(cfg)
//   if err != nil { ... }
//   report, err := generator.Generate(context.Background())
//
// The generator produces rounded app icons with the glyph in an accent
// color, a favicon, tray icons with the glyph silhouette filled solid,
// and ICO and ICNS containers. The files to produce are described by an
// [export.Plan]; [Generator.Render] and [Generator.Write] can be used
// separately to render in memory or to write a custom plan.
//
// The subpackages can also be used on their own. The silhouette
// subpackage in particular turns any outline drawing into a solid
// alpha mask.
package glyphicon
