package glyphicon

import "fmt"
import "image"
import "context"
import "runtime"
import "log/slog"

import "golang.org/x/sync/errgroup"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/glyphicon/font"
import "github.com/tinne26/glyphicon/glyph"
import "github.com/tinne26/glyphicon/cache"
import "github.com/tinne26/glyphicon/config"
import "github.com/tinne26/glyphicon/export"
import "github.com/tinne26/glyphicon/compose"
import "github.com/tinne26/glyphicon/internal/logger"

// Sets the logger used by all glyphicon packages. Logging is disabled
// by default. Passing nil disables it again.
func SetLogger(log *slog.Logger) { logger.SetLogger(log) }

// A Generator renders and writes the icon assets for a configured glyph.
// Generators are safe for concurrent use.
type Generator struct {
	font *sfnt.Font
	fontName string
	codePoint rune
	style compose.Style
	icnsMode export.ICNSMode
	iconsDir string
	staticDir string
	cache *cache.RasterCache
}

// Creates a new generator. The font is resolved from the configured
// candidates and must contain the configured glyph.
func NewGenerator(cfg config.Config) (*Generator, error) {
	err := cfg.Validate()
	if err != nil { return nil, err }
	codePoint, _ := cfg.Rune()
	style, _ := cfg.Style()
	icnsMode, _ := cfg.ICNSMode()

	sfntFont, fontName, err := font.Resolve(cfg.Fonts, codePoint)
	if err != nil { return nil, err }
	logger.Logger().Info("font resolved", "font", fontName, "glyph", glyph.Describe(codePoint))

	// early check, renderers are created again for each task
	_, err = glyph.NewRenderer(sfntFont, codePoint)
	if err != nil { return nil, err }

	return &Generator {
		font: sfntFont,
		fontName: fontName,
		codePoint: codePoint,
		style: style,
		icnsMode: icnsMode,
		iconsDir: cfg.IconsDir,
		staticDir: cfg.StaticDir,
		cache: cache.NewRasterCache(cfg.CacheBytes),
	}, nil
}

// Returns the name of the resolved font.
func (self *Generator) FontName() string { return self.fontName }

// Returns the glyph rune.
func (self *Generator) Rune() rune { return self.codePoint }

// Returns the composition style.
func (self *Generator) Style() compose.Style { return self.style }

// Returns the raster cache shared by the generator renderers.
func (self *Generator) Cache() *cache.RasterCache { return self.cache }

// Assets holds the images rendered for a plan.
type Assets struct {
	images map[export.ImageKey]*image.RGBA
}

// Returns the image for the given key, or nil if it wasn't rendered.
func (self *Assets) Image(key export.ImageKey) *image.RGBA {
	return self.images[key]
}

// Returns the number of rendered images.
func (self *Assets) Len() int { return len(self.images) }

// Renders every image needed by the plan in memory. Images are rendered
// concurrently, up to one goroutine per CPU.
func (self *Generator) Render(ctx context.Context, plan export.Plan) (*Assets, error) {
	keys := plan.Images()
	results := make([]*image.RGBA, len(keys))
	logger.Logger().Info("rendering icons", "images", len(keys), "glyph", glyph.Describe(self.codePoint))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for i, key := range keys {
		i, key := i, key
		group.Go(func() error {
			err := groupCtx.Err()
			if err != nil { return err }

			// sfnt buffers can't be shared, so each task has its own renderer
			renderer, err := glyph.NewRenderer(self.font, self.codePoint)
			if err != nil { return err }
			renderer.SetCache(self.cache)
			img, err := self.renderImage(renderer, key)
			if err != nil { return fmt.Errorf("%s %dx%d: %w", key.Kind, key.Size, key.Size, err) }
			results[i] = img
			return nil
		})
	}
	err := group.Wait()
	if err != nil { return nil, err }

	assets := &Assets{ images: make(map[export.ImageKey]*image.RGBA, len(keys)) }
	for i, key := range keys { assets.images[key] = results[i] }
	hits, misses := self.cache.Stats()
	logger.Logger().Debug("rendering done", "cache_hits", hits, "cache_misses", misses)
	return assets, nil
}

func (self *Generator) renderImage(renderer *glyph.Renderer, key export.ImageKey) (*image.RGBA, error) {
	switch key.Kind {
	case export.KindApp:
		return compose.AppIcon(renderer, self.style, key.Size)
	case export.KindFavicon:
		if key.Size == 32 { return compose.Favicon(renderer, self.style) }
		icon, err := compose.AppIcon(renderer, self.style, 128)
		if err != nil { return nil, err }
		return compose.Resample(icon, key.Size), nil
	case export.KindTrayIdle:
		return compose.TrayIcon(renderer, self.style, key.Size, self.style.Idle)
	case export.KindTrayRecording:
		return compose.TrayIcon(renderer, self.style, key.Size, self.style.Accent)
	default:
		panic("unexpected image kind " + key.Kind.String())
	}
}
