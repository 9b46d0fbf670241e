// glyphicon generates app, favicon, tray, ICO and ICNS icons from a
// single font glyph.
//
// Usage:
//   glyphicon [-config path] [-glyph U+1315D] [-font path] [-icons dir] [-static dir] [-icns mode] [-v]
package main

import "os"
import "fmt"
import "flag"
import "context"
import "log/slog"
import "os/signal"

import "github.com/tinne26/glyphicon"
import "github.com/tinne26/glyphicon/glyph"
import "github.com/tinne26/glyphicon/config"

func main() {
	configPath := flag.String("config", "", "configuration file (default: glyphicon.json lookup)")
	glyphFlag := flag.String("glyph", "", "glyph to draw, as U+XXXX, 0xXXXX or a literal character")
	fontFlag := flag.String("font", "", "font file or directory, tried before the configured fonts")
	iconsDir := flag.String("icons", "", "output directory for app and tray icons")
	staticDir := flag.String("static", "", "output directory for the favicon")
	icnsMode := flag.String("icns", "", "icns mode: auto, iconutil or native")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose { level = slog.LevelDebug }
	glyphicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level })))

	cfg, err := config.Load(*configPath)
	if err != nil { exitWith(err) }
	if *glyphFlag != "" { cfg.Glyph = *glyphFlag }
	if *fontFlag != "" { cfg.Fonts = append([]string{*fontFlag}, cfg.Fonts...) }
	if *iconsDir != "" { cfg.IconsDir = *iconsDir }
	if *staticDir != "" { cfg.StaticDir = *staticDir }
	if *icnsMode != "" { cfg.ICNS = *icnsMode }

	generator, err := glyphicon.NewGenerator(cfg)
	if err != nil { exitWith(err) }
	fmt.Printf("Generating icons for %s from %s\n", glyph.Describe(generator.Rune()), generator.FontName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	report, err := generator.Generate(ctx)
	if err != nil {
		stop()
		exitWith(err)
	}
	_, err = report.WriteTo(os.Stdout)
	if err != nil { exitWith(err) }
	fmt.Println("\nAll icons generated successfully!")
}

func exitWith(err error) {
	fmt.Fprintf(os.Stderr, "glyphicon: %s\n", err)
	os.Exit(1)
}
