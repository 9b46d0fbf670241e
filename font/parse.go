package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "bytes"
import "errors"
import "path/filepath"
import "strings"

import "golang.org/x/image/font/sfnt"

// Returned when a path doesn't end in one of the supported font
// extensions (.ttf, .otf, .ttc).
var ErrBadExtension = errors.New("unsupported font file extension")

// Similar to [sfnt.Parse](), but also including the font name in the
// returned values and accepting font collections, in which case only
// the first font is returned. The bytes must not be modified while the
// font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	fonts, err := ParseAllFromBytes(fontBytes)
	if err != nil { return nil, "", err }
	name, err := GetName(fonts[0])
	return fonts[0], name, err
}

// Parses all the fonts contained in the given bytes. For regular
// .ttf and .otf data the result has a single element. For collections
// (.ttc) all contained fonts are returned in order.
func ParseAllFromBytes(fontBytes []byte) ([]*sfnt.Font, error) {
	if !isCollection(fontBytes) {
		newFont, err := sfnt.Parse(fontBytes)
		if err != nil { return nil, err }
		return []*sfnt.Font{newFont}, nil
	}

	collection, err := sfnt.ParseCollection(fontBytes)
	if err != nil { return nil, err }
	numFonts := collection.NumFonts()
	if numFonts == 0 { return nil, errors.New("empty font collection") }
	fonts := make([]*sfnt.Font, 0, numFonts)
	for i := 0; i < numFonts; i++ {
		collectionFont, err := collection.Font(i)
		if err != nil { return nil, err }
		fonts = append(fonts, collectionFont)
	}
	return fonts, nil
}

// Attempts to parse the font located at the given filepath and returns
// it along its name and any possible error.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	fonts, err := ParseAllFromPath(path)
	if err != nil { return nil, "", err }
	name, err := GetName(fonts[0])
	return fonts[0], name, err
}

// Like [ParseAllFromBytes](), but reading the given file.
func ParseAllFromPath(path string) ([]*sfnt.Font, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("%w: '%s'", ErrBadExtension, path)
	}

	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w: '%s'", ErrBadExtension, path)
	}

	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	fonts, err := parseFontFileAndClose(file)
	if err != nil { return nil, "", err }
	name, err := GetName(fonts[0])
	return fonts[0], name, err
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) ([]*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseAllFromBytes(fontBytes)
}

func isCollection(fontBytes []byte) bool {
	return len(fontBytes) >= 4 && bytes.Equal(fontBytes[0 : 4], []byte("ttcf"))
}

// Whether the path ends in .ttf, .otf or .ttc (case insensitive).
func hasValidFontExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc":
		return true
	default:
		return false
	}
}
