package config

import "os"
import "fmt"
import "errors"
import "encoding/json"
import "path/filepath"

import "github.com/tinne26/glyphicon/internal/logger"

// Name of the configuration file looked up by [Load].
const FileName = "glyphicon.json"

// Default raster cache size in bytes.
const DefaultCacheBytes = 64*1024*1024

// Returned (wrapped) by [Config.Validate] and [Load] when a field has
// an invalid value.
var ErrInvalid = errors.New("invalid configuration")

// Colors holds hex colors, like "#D08B3E". Alpha can be given as a
// fourth byte.
type Colors struct {
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
	Idle       string `json:"idle,omitempty"`
}

// Config holds every generator setting.
type Config struct {
	Glyph  string   `json:"glyph"`           // "U+1315D", "0x1315D" or a literal character
	Fonts  []string `json:"fonts,omitempty"` // font files or directories, tried in order
	Colors Colors   `json:"colors"`

	GlyphScale        float64 `json:"glyph_scale,omitempty"`
	TrayGlyphScale    float64 `json:"tray_glyph_scale,omitempty"`
	CornerRadiusRatio float64 `json:"corner_radius_ratio,omitempty"`
	GlyphLift         float64 `json:"glyph_lift"`
	Threshold         int     `json:"threshold"`
	TraySupersample   int     `json:"tray_supersample,omitempty"`
	SmallSupersample  int     `json:"small_supersample,omitempty"`
	SmallThreshold    int     `json:"small_threshold,omitempty"`

	IconsDir   string `json:"icons_dir,omitempty"`
	StaticDir  string `json:"static_dir,omitempty"`
	ICNS       string `json:"icns,omitempty"` // "auto", "iconutil" or "native"
	CacheBytes int    `json:"cache_bytes"`
}

// Returns the default configuration: the ibis hieroglyph from Noto Sans
// Egyptian Hieroglyphs in amber on a dark background.
func Default() Config {
	return Config {
		Glyph: "U+1315D",
		Fonts: []string {
			"/System/Library/Fonts/Supplemental/NotoSansEgyptianHieroglyphs-Regular.ttf",
			"/usr/share/fonts/truetype/noto/NotoSansEgyptianHieroglyphs-Regular.ttf",
			"/usr/share/fonts/noto/NotoSansEgyptianHieroglyphs-Regular.ttf",
			"/usr/share/fonts/google-noto/NotoSansEgyptianHieroglyphs-Regular.ttf",
		},
		Colors: Colors {
			Accent: "#D08B3E",
			Background: "#1C1B1A",
			Border: "#363330",
			Idle: "#000000",
		},
		GlyphScale: 0.66,
		TrayGlyphScale: 0.85,
		CornerRadiusRatio: 0.1875,
		GlyphLift: 0.02,
		Threshold: 30,
		TraySupersample: 8,
		SmallSupersample: 4,
		SmallThreshold: 64,
		IconsDir: filepath.Join("src-tauri", "icons"),
		StaticDir: "static",
		ICNS: "auto",
		CacheBytes: DefaultCacheBytes,
	}
}

// UnmarshalJSON sets the defaults and then decodes the JSON data on
// top, so only the fields present in the data are overridden.
func (self *Config) UnmarshalJSON(data []byte) error {
	*self = Default()
	type plainConfig Config
	return json.Unmarshal(data, (*plainConfig)(self))
}

// Loads the configuration. It tries, in order:
//  1. explicitPath, if not empty
//  2. glyphicon.json in the working directory
//  3. glyphicon/glyphicon.json in the user configuration directory
//
// When no file is found, [Default]() is returned. Loaded configurations
// are validated.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" { return readConfig(explicitPath) }

	_, err := os.Stat(FileName)
	if err == nil { return readConfig(FileName) }

	configDir, err := os.UserConfigDir()
	if err == nil {
		path := filepath.Join(configDir, "glyphicon", FileName)
		_, err = os.Stat(path)
		if err == nil { return readConfig(path) }
	}

	logger.Logger().Debug("no configuration file found, using defaults")
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil { return Config{}, fmt.Errorf("reading config: %w", err) }
	var config Config
	err = json.Unmarshal(data, &config)
	if err != nil { return Config{}, fmt.Errorf("parsing config %s: %w", path, err) }
	err = config.Validate()
	if err != nil { return Config{}, fmt.Errorf("config %s: %w", path, err) }
	logger.Logger().Debug("configuration loaded", "path", path)
	return config, nil
}
