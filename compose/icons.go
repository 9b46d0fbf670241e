package compose

import "fmt"
import "image"
import "image/draw"
import "image/color"

import "github.com/tinne26/glyphicon/silhouette"
import "github.com/tinne26/glyphicon/internal/logger"

// Creates an app icon: the glyph in the accent color, centered on a
// rounded dark background with a subtle inner border.
//
// Sizes below Style.SmallThreshold are rendered at Style.SmallSupersample
// times the size and downsampled, as rounded corners and thin borders
// look broken when rasterized directly at tiny sizes.
func AppIcon(src GlyphSource, style Style, size int) (*image.RGBA, error) {
	if size <= 0 { return nil, fmt.Errorf("invalid app icon size %d", size) }
	if size < style.SmallThreshold && style.SmallSupersample > 1 {
		big, err := renderAppIcon(src, style, size*style.SmallSupersample)
		if err != nil { return nil, err }
		return Resample(big, size), nil
	}
	return renderAppIcon(src, style, size)
}

func renderAppIcon(src GlyphSource, style Style, size int) (*image.RGBA, error) {
	icon := image.NewRGBA(image.Rect(0, 0, size, size))

	// rounded background
	radius := int(float64(size)*style.CornerRadiusRatio)
	FillRoundedRect(icon, icon.Rect, radius, style.Background)

	// inner border
	inset := maxInt(1, size/32)
	innerRadius := maxInt(1, radius - inset)
	borderRect := image.Rect(inset, inset, size - inset, size - inset)
	StrokeRoundedRect(icon, borderRect, innerRadius, maxInt(1, size/512), style.Border)

	// glyph
	ppem := int(float64(size)*style.GlyphScale)
	lift := int(float64(size)*style.GlyphLift)
	raster, err := src.Render(size, ppem, lift)
	if err != nil { return nil, fmt.Errorf("app icon %dx%d: %w", size, size, err) }
	glyphMask := AsAlpha(raster)
	draw.DrawMask(icon, icon.Rect, image.NewUniform(style.Accent), image.Point{}, glyphMask, glyphMask.Rect.Min, draw.Over)

	logger.Logger().Debug("app icon composed", "size", size, "ppem", ppem, "radius", radius)
	return icon, nil
}

// Creates a tray icon: the solid glyph silhouette in the given color on
// a transparent background.
//
// Outline glyphs are filled through the silhouette subpackage, so menu
// bars that tint template icons show a proper shape instead of thin
// lines. The glyph is rendered at Style.TraySupersample times the size
// and downsampled.
func TrayIcon(src GlyphSource, style Style, size int, clr color.NRGBA) (*image.RGBA, error) {
	if size <= 0 { return nil, fmt.Errorf("invalid tray icon size %d", size) }
	supersample := maxInt(1, style.TraySupersample)
	renderSize := size*supersample
	ppem := int(float64(renderSize)*style.TrayGlyphScale)
	raster, err := src.Render(renderSize, ppem, 0)
	if err != nil { return nil, fmt.Errorf("tray icon %dx%d: %w", size, size, err) }

	solid, err := silhouette.Extract(raster, style.Cutoff)
	if err != nil { return nil, fmt.Errorf("tray icon %dx%d: %w", size, size, err) }

	logger.Logger().Debug("tray icon composed", "size", size, "render_size", renderSize, "ppem", ppem)
	return Resample(Colorize(solid, clr), size), nil
}

// Creates the favicon: the 128x128 app icon downsampled to 32x32.
func Favicon(src GlyphSource, style Style) (*image.RGBA, error) {
	const sourceSize, faviconSize = 128, 32
	icon, err := AppIcon(src, style, sourceSize)
	if err != nil { return nil, err }
	return Resample(icon, faviconSize), nil
}

func maxInt(a, b int) int {
	if a >= b { return a }
	return b
}
