package export

import "fmt"

// Kind identifies the composition used for a target.
type Kind uint8
const (
	KindApp Kind = iota // rounded background, accent glyph
	KindFavicon         // app icon downsampled from 128x128
	KindTrayIdle        // solid silhouette in the idle color
	KindTrayRecording   // solid silhouette in the accent color
)

// Returns the kind name, like "app" or "tray-idle".
func (self Kind) String() string {
	switch self {
	case KindApp: return "app"
	case KindFavicon: return "favicon"
	case KindTrayIdle: return "tray-idle"
	case KindTrayRecording: return "tray-recording"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(self))
	}
}

// Dir identifies the output directory of a target.
type Dir uint8
const (
	IconsDir  Dir = iota
	StaticDir
)

// A Target is a single square image to produce.
type Target struct {
	Name string
	Size int
	Kind Kind
	Dir  Dir
}

// Returns the (kind, size) pair identifying the image contents.
// Different targets can share the same image.
func (self Target) Image() ImageKey {
	return ImageKey{ Kind: self.Kind, Size: self.Size }
}

// ImageKey identifies a rendered image independently of its file name.
type ImageKey struct {
	Kind Kind
	Size int
}

// Plan lists every asset to produce.
type Plan struct {
	Targets     []Target // PNG files
	Iconset     []Target // ICNS members, named as iconutil expects
	IconsetName string   // directory name used for iconutil
	ICNSName    string
	ICOName     string
	ICOSource   int      // app icon size the ICO images are resampled from
	ICOSizes    []int
}

// Returns the default plan.
func DefaultPlan() Plan {
	return Plan {
		Targets: []Target {
			{ Name: "icon.png",       Size: 1024, Kind: KindApp },
			{ Name: "32x32.png",      Size:   32, Kind: KindApp },
			{ Name: "128x128.png",    Size:  128, Kind: KindApp },
			{ Name: "128x128@2x.png", Size:  256, Kind: KindApp },
			{ Name: "favicon.png",    Size:   32, Kind: KindFavicon, Dir: StaticDir },
			{ Name: "tray-idle-22.png",      Size: 22, Kind: KindTrayIdle },
			{ Name: "tray-recording-22.png", Size: 22, Kind: KindTrayRecording },
			{ Name: "tray-idle-44.png",      Size: 44, Kind: KindTrayIdle },
			{ Name: "tray-recording-44.png", Size: 44, Kind: KindTrayRecording },
		},
		Iconset: []Target {
			{ Name: "icon_16x16.png",      Size:   16, Kind: KindApp },
			{ Name: "icon_16x16@2x.png",   Size:   32, Kind: KindApp },
			{ Name: "icon_32x32.png",      Size:   32, Kind: KindApp },
			{ Name: "icon_32x32@2x.png",   Size:   64, Kind: KindApp },
			{ Name: "icon_128x128.png",    Size:  128, Kind: KindApp },
			{ Name: "icon_128x128@2x.png", Size:  256, Kind: KindApp },
			{ Name: "icon_256x256.png",    Size:  256, Kind: KindApp },
			{ Name: "icon_256x256@2x.png", Size:  512, Kind: KindApp },
			{ Name: "icon_512x512.png",    Size:  512, Kind: KindApp },
			{ Name: "icon_512x512@2x.png", Size: 1024, Kind: KindApp },
		},
		IconsetName: "glyphicon.iconset",
		ICNSName: "icon.icns",
		ICOName: "icon.ico",
		ICOSource: 256,
		ICOSizes: []int{16, 32, 48, 64, 128, 256},
	}
}

// Returns the distinct images the plan needs, in first use order.
// The ICO source is included when ICOName is not empty, and the iconset
// members when ICNSName is not empty.
func (self *Plan) Images() []ImageKey {
	seen := make(map[ImageKey]bool)
	keys := make([]ImageKey, 0, len(self.Targets) + len(self.Iconset) + 1)
	add := func(key ImageKey) {
		if seen[key] { return }
		seen[key] = true
		keys = append(keys, key)
	}

	for _, target := range self.Targets { add(target.Image()) }
	if self.ICNSName != "" {
		for _, target := range self.Iconset { add(target.Image()) }
	}
	if self.ICOName != "" && len(self.ICOSizes) > 0 {
		add(ImageKey{ Kind: KindApp, Size: self.ICOSource })
	}
	return keys
}
