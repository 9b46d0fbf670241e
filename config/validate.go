package config

import "fmt"
import "strings"
import "strconv"
import "image/color"

import "github.com/tinne26/glyphicon/glyph"
import "github.com/tinne26/glyphicon/export"
import "github.com/tinne26/glyphicon/compose"

// Checks every field. The first invalid field is reported with an error
// wrapping [ErrInvalid].
func (self *Config) Validate() error {
	_, err := self.Rune()
	if err != nil { return invalid("glyph", err.Error()) }
	_, err = self.Style()
	if err != nil { return err }
	_, err = export.ParseICNSMode(self.ICNS)
	if err != nil { return invalid("icns", err.Error()) }

	if self.IconsDir == "" { return invalid("icons_dir", "must not be empty") }
	if self.StaticDir == "" { return invalid("static_dir", "must not be empty") }
	if self.CacheBytes < 0 { return invalid("cache_bytes", "must not be negative") }
	return nil
}

// Returns the configured glyph rune.
func (self *Config) Rune() (rune, error) {
	return glyph.ParseRune(self.Glyph)
}

// Returns the configured ICNS mode.
func (self *Config) ICNSMode() (export.ICNSMode, error) {
	return export.ParseICNSMode(self.ICNS)
}

// Converts the colors and proportions into a composition style.
func (self *Config) Style() (compose.Style, error) {
	var style compose.Style
	var err error
	colors := []struct{ field string; hex string; dst *color.NRGBA } {
		{ "colors.accent", self.Colors.Accent, &style.Accent },
		{ "colors.background", self.Colors.Background, &style.Background },
		{ "colors.border", self.Colors.Border, &style.Border },
		{ "colors.idle", self.Colors.Idle, &style.Idle },
	}
	for _, clr := range colors {
		*clr.dst, err = ParseHexColor(clr.hex)
		if err != nil { return style, invalid(clr.field, err.Error()) }
	}

	fractions := []struct{ field string; value float64; min, max float64 } {
		{ "glyph_scale", self.GlyphScale, 0.01, 1.5 },
		{ "tray_glyph_scale", self.TrayGlyphScale, 0.01, 1.5 },
		{ "corner_radius_ratio", self.CornerRadiusRatio, 0, 0.5 },
		{ "glyph_lift", self.GlyphLift, -0.5, 0.5 },
	}
	for _, fraction := range fractions {
		if fraction.value < fraction.min || fraction.value > fraction.max {
			return style, invalid(fraction.field, fmt.Sprintf("%g outside [%g, %g]",
				fraction.value, fraction.min, fraction.max))
		}
	}

	if self.Threshold < 0 || self.Threshold > 254 {
		return style, invalid("threshold", fmt.Sprintf("%d outside [0, 254]", self.Threshold))
	}
	factors := []struct{ field string; value int } {
		{ "tray_supersample", self.TraySupersample },
		{ "small_supersample", self.SmallSupersample },
	}
	for _, factor := range factors {
		if factor.value < 1 || factor.value > 16 {
			return style, invalid(factor.field, fmt.Sprintf("%d outside [1, 16]", factor.value))
		}
	}
	if self.SmallThreshold < 0 { return style, invalid("small_threshold", "must not be negative") }

	style.GlyphScale = self.GlyphScale
	style.TrayGlyphScale = self.TrayGlyphScale
	style.CornerRadiusRatio = self.CornerRadiusRatio
	style.GlyphLift = self.GlyphLift
	style.Cutoff = uint8(self.Threshold)
	style.TraySupersample = self.TraySupersample
	style.SmallSupersample = self.SmallSupersample
	style.SmallThreshold = self.SmallThreshold
	return style, nil
}

func invalid(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, reason)
}

// Parses "#RRGGBB" or "#RRGGBBAA" colors. The leading '#' is optional.
func ParseHexColor(hex string) (color.NRGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil { return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex) }
	if len(digits) == 6 { value = value << 8 | 0xFF }
	return color.NRGBA {
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}
