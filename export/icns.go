package export

import "io"
import "os"
import "fmt"
import "bytes"
import "image"
import "errors"
import "context"
import "os/exec"
import "path/filepath"
import "encoding/binary"

import "github.com/tinne26/glyphicon/internal/logger"

var ErrIconutil = errors.New("iconutil failed")

// ICNSMode selects how ICNS files are built.
type ICNSMode string
const (
	ICNSAuto     ICNSMode = "auto"     // iconutil when available, native otherwise
	ICNSIconutil ICNSMode = "iconutil" // macOS iconutil only
	ICNSNative   ICNSMode = "native"   // built-in encoder only
)

// Parses an ICNS mode. The empty string is ICNSAuto.
func ParseICNSMode(str string) (ICNSMode, error) {
	switch ICNSMode(str) {
	case "", ICNSAuto: return ICNSAuto, nil
	case ICNSIconutil: return ICNSIconutil, nil
	case ICNSNative: return ICNSNative, nil
	default:
		return ICNSAuto, fmt.Errorf("unknown icns mode %q (expected auto, iconutil or native)", str)
	}
}

// An IconsetImage is an iconset member with its rendered image.
type IconsetImage struct {
	Name  string // e.g. "icon_32x32@2x.png"
	Image image.Image
}

type icnsMember struct {
	osType [4]byte
	size   int
}

// OSTypes of the PNG based ICNS members, by iconset file name.
var icnsMembers = map[string]icnsMember {
	"icon_16x16.png":      { [4]byte{'i', 'c', 'p', '4'},   16 },
	"icon_16x16@2x.png":   { [4]byte{'i', 'c', '1', '1'},   32 },
	"icon_32x32.png":      { [4]byte{'i', 'c', 'p', '5'},   32 },
	"icon_32x32@2x.png":   { [4]byte{'i', 'c', '1', '2'},   64 },
	"icon_64x64.png":      { [4]byte{'i', 'c', 'p', '6'},   64 },
	"icon_128x128.png":    { [4]byte{'i', 'c', '0', '7'},  128 },
	"icon_128x128@2x.png": { [4]byte{'i', 'c', '1', '3'},  256 },
	"icon_256x256.png":    { [4]byte{'i', 'c', '0', '8'},  256 },
	"icon_256x256@2x.png": { [4]byte{'i', 'c', '1', '4'},  512 },
	"icon_512x512.png":    { [4]byte{'i', 'c', '0', '9'},  512 },
	"icon_512x512@2x.png": { [4]byte{'i', 'c', '1', '0'}, 1024 },
}

// Encodes an ICNS file with a PNG payload per member. Members must use
// iconset names and have the matching sizes.
func EncodeICNS(w io.Writer, entries []IconsetImage) error {
	if len(entries) == 0 { return fmt.Errorf("icns: no images given") }

	// encode members first, the header needs the total length
	var body bytes.Buffer
	for _, entry := range entries {
		member, found := icnsMembers[entry.Name]
		if !found { return fmt.Errorf("icns: unsupported iconset member %q", entry.Name) }
		bounds := entry.Image.Bounds()
		if bounds.Dx() != member.size || bounds.Dy() != member.size {
			return fmt.Errorf("icns: %s must be %dx%d, got %dx%d", entry.Name,
				member.size, member.size, bounds.Dx(), bounds.Dy())
		}

		var payload bytes.Buffer
		err := EncodePNG(&payload, entry.Image)
		if err != nil { return fmt.Errorf("icns: %s: %w", entry.Name, err) }
		body.Write(member.osType[:])
		err = binary.Write(&body, binary.BigEndian, uint32(payload.Len() + 8))
		if err != nil { return err }
		body.Write(payload.Bytes())
	}

	_, err := w.Write([]byte("icns"))
	if err != nil { return err }
	err = binary.Write(w, binary.BigEndian, uint32(body.Len() + 8))
	if err != nil { return err }
	_, err = w.Write(body.Bytes())
	return err
}

// Writes the iconset members as PNG files into dir, creating it if needed.
func WriteIconset(dir string, entries []IconsetImage) error {
	for _, entry := range entries {
		_, err := WritePNG(filepath.Join(dir, entry.Name), entry.Image)
		if err != nil { return err }
	}
	return nil
}

// Packages an iconset directory into an ICNS file with macOS iconutil.
// Failures wrap ErrIconutil.
func RunIconutil(ctx context.Context, iconsetDir string, out string) error {
	path, err := exec.LookPath("iconutil")
	if err != nil { return fmt.Errorf("%w: %w", ErrIconutil, err) }
	err = os.MkdirAll(filepath.Dir(out), DirPerm)
	if err != nil { return err }
	cmd := exec.CommandContext(ctx, path, "-c", "icns", iconsetDir, "-o", out)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %w: %s", ErrIconutil, err, bytes.TrimSpace(output))
	}
	return nil
}

// Writes an ICNS file with the given mode and returns the file size.
//
// In auto mode, iconutil failures fall back to the native encoder. In
// iconutil mode, failures are returned wrapping ErrIconutil.
func WriteICNS(ctx context.Context, path string, iconsetName string, entries []IconsetImage, mode ICNSMode) (int64, error) {
	if mode == ICNSNative { return writeNativeICNS(path, entries) }

	if mode == ICNSAuto {
		_, err := exec.LookPath("iconutil")
		if err != nil {
			logger.Logger().Debug("iconutil not found, using native icns encoder")
			return writeNativeICNS(path, entries)
		}
	}

	size, err := writeICNSWithIconutil(ctx, path, iconsetName, entries)
	if err == nil || mode == ICNSIconutil || !errors.Is(err, ErrIconutil) {
		return size, err
	}
	logger.Logger().Warn("iconutil failed, using native icns encoder", "err", err)
	return writeNativeICNS(path, entries)
}

func writeNativeICNS(path string, entries []IconsetImage) (int64, error) {
	var buffer bytes.Buffer
	err := EncodeICNS(&buffer, entries)
	if err != nil { return 0, err }
	err = AtomicWrite(path, buffer.Bytes())
	if err != nil { return 0, err }
	return int64(buffer.Len()), nil
}

func writeICNSWithIconutil(ctx context.Context, path string, iconsetName string, entries []IconsetImage) (int64, error) {
	tempDir, err := os.MkdirTemp("", "glyphicon-")
	if err != nil { return 0, err }
	defer os.RemoveAll(tempDir)

	if iconsetName == "" { iconsetName = "icon.iconset" }
	iconsetDir := filepath.Join(tempDir, iconsetName)
	err = WriteIconset(iconsetDir, entries)
	if err != nil { return 0, err }
	err = RunIconutil(ctx, iconsetDir, path)
	if err != nil { return 0, err }
	info, err := os.Stat(path)
	if err != nil { return 0, err }
	return info.Size(), nil
}
