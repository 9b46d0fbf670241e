package compose

import "image"
import "image/color"

import "github.com/tinne26/glyphicon/silhouette"

// A GlyphSource renders a glyph centered on a square canvas. See
// glyph.Renderer.Render for the meaning of the parameters.
type GlyphSource interface {
	Render(canvas, ppem, lift int) (*image.Gray, error)
}

// Style holds the brand colors and proportions used to compose icons.
// Proportions are relative to the icon size.
type Style struct {
	Accent     color.NRGBA // app icon glyph and "recording" tray icon
	Background color.NRGBA // app icon background
	Border     color.NRGBA // app icon inner border
	Idle       color.NRGBA // "idle" tray icon

	GlyphScale        float64 // app icon glyph size
	TrayGlyphScale    float64 // tray icon glyph size
	CornerRadiusRatio float64 // app icon corner radius
	GlyphLift         float64 // upwards shift of the app icon glyph

	Cutoff           uint8 // silhouette threshold, see silhouette.Threshold
	TraySupersample  int   // tray icons are rendered at this factor and downsampled
	SmallSupersample int   // same for app icons below SmallThreshold
	SmallThreshold   int
}

// Returns the default brand style: scribe's amber on papyrus dark.
func DefaultStyle() Style {
	return Style {
		Accent:     color.NRGBA{208, 139,  62, 255},
		Background: color.NRGBA{ 28,  27,  26, 255},
		Border:     color.NRGBA{ 54,  51,  48, 255},
		Idle:       color.NRGBA{  0,   0,   0, 255},

		GlyphScale: 0.66,
		TrayGlyphScale: 0.85,
		CornerRadiusRatio: 0.1875,
		GlyphLift: 0.02,

		Cutoff: silhouette.DefaultCutoff,
		TraySupersample: 8,
		SmallSupersample: 4,
		SmallThreshold: 64,
	}
}
