// iconpreview renders the configured icons in memory and shows them in
// a window, without writing any file.
//
// Press space to switch between a dark and a light background, as tray
// icons are meant for both. Press escape to exit.
package main

import "os"
import "fmt"
import "log"
import "flag"
import "context"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/tinne26/glyphicon"
import "github.com/tinne26/glyphicon/glyph"
import "github.com/tinne26/glyphicon/config"
import "github.com/tinne26/glyphicon/export"

const (
	WindowWidth  = 960
	WindowHeight = 720
	IconBox      = 256 // largest icons are scaled down to this size
	Margin       = 24
)

type previewIcon struct {
	name  string
	image *ebiten.Image
	size  int
}

type Game struct {
	title string
	icons []previewIcon
	light bool
}

func (self *Game) Layout(int, int) (int, int) { return WindowWidth, WindowHeight }

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) { return ebiten.Termination }
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) { self.light = !self.light }
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	if self.light {
		screen.Fill(color.RGBA{236, 236, 236, 255})
	} else {
		screen.Fill(color.RGBA{ 40,  40,  44, 255})
	}
	ebitenutil.DebugPrintAt(screen, self.title, Margin, 4)

	// flow layout, row height fixed by the tallest icon
	x, y, rowHeight := Margin, Margin + 8, 0
	for _, icon := range self.icons {
		side := icon.size
		if side > IconBox { side = IconBox }
		if x + side > WindowWidth - Margin {
			x, y, rowHeight = Margin, y + rowHeight + Margin + 16, 0
		}

		var opts ebiten.DrawImageOptions
		scale := float64(side)/float64(icon.size)
		opts.GeoM.Scale(scale, scale)
		opts.GeoM.Translate(float64(x), float64(y))
		opts.Filter = ebiten.FilterLinear
		screen.DrawImage(icon.image, &opts)
		ebitenutil.DebugPrintAt(screen, icon.name, x, y + side + 2)

		if side > rowHeight { rowHeight = side }
		labelWidth := len(icon.name)*6
		if labelWidth < side { labelWidth = side }
		x += labelWidth + Margin
	}
}

func main() {
	configPath := flag.String("config", "", "configuration file (default: glyphicon.json lookup)")
	glyphFlag := flag.String("glyph", "", "glyph to draw, as U+XXXX, 0xXXXX or a literal character")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil { log.Fatal(err) }
	if *glyphFlag != "" { cfg.Glyph = *glyphFlag }
	generator, err := glyphicon.NewGenerator(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "iconpreview: %s\n", err)
		os.Exit(1)
	}

	// only the png targets are previewed
	plan := export.DefaultPlan()
	plan.ICNSName, plan.ICOName = "", ""
	assets, err := generator.Render(context.Background(), plan)
	if err != nil { log.Fatal(err) }

	game := &Game {
		title: fmt.Sprintf("%s from %s (space: background, esc: exit)",
			glyph.Describe(generator.Rune()), generator.FontName()),
	}
	for _, target := range plan.Targets {
		img := assets.Image(target.Image())
		game.icons = append(game.icons, previewIcon {
			name: target.Name,
			image: ebiten.NewImageFromImage(img),
			size: target.Size,
		})
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("glyphicon preview")
	err = ebiten.RunGame(game)
	if err != nil { log.Fatal(err) }
}
