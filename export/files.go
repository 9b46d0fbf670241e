package export

import "io"
import "os"
import "bytes"
import "image"
import "image/png"
import "path/filepath"

import "github.com/tinne26/glyphicon/compose"

const (
	DirPerm  = 0755
	FilePerm = 0644
)

// Writes data to path through a temporary file and a rename, so
// readers never see partially written icons. The parent directory is
// created if needed.
func AtomicWrite(path string, data []byte) error {
	err := os.MkdirAll(filepath.Dir(path), DirPerm)
	if err != nil { return err }
	tmp := path + ".tmp"
	err = os.WriteFile(tmp, data, FilePerm)
	if err != nil { return err }
	err = os.Rename(tmp, path)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

var pngEncoder = png.Encoder{ CompressionLevel: png.BestCompression }

// Encodes the image as a non-premultiplied PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return pngEncoder.Encode(w, compose.ToNRGBA(img))
}

// Writes the image as a PNG file and returns the file size.
func WritePNG(path string, img image.Image) (int64, error) {
	var buffer bytes.Buffer
	err := EncodePNG(&buffer, img)
	if err != nil { return 0, err }
	err = AtomicWrite(path, buffer.Bytes())
	if err != nil { return 0, err }
	return int64(buffer.Len()), nil
}
