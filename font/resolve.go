package font

import "os"
import "fmt"
import "sync"
import "errors"
import "io/fs"
import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/glyphicon/internal/logger"

// Returned by [Resolve] when none of the candidates can draw the
// requested rune.
var ErrNoFont = errors.New("no font found for the requested rune")

var defaultFont *sfnt.Font
var defaultFontErr error
var defaultFontOnce sync.Once

// Returns the embedded Go Regular font. The font is parsed only once
// and shared; sfnt fonts are safe for concurrent use as long as each
// goroutine uses its own sfnt.Buffer.
func Default() (*sfnt.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = sfnt.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Returns the first font that has a glyph for the given rune, along
// its name. Candidates are tried in order and can be font files or
// directories, which are scanned non-recursively.
//
// Missing or unparseable candidates are skipped with a warning, as
// font lists usually include paths for multiple operating systems.
// If no candidates are given, [Default]() is tried instead. If nothing
// matches, the returned error wraps [ErrNoFont].
func Resolve(candidates []string, codePoint rune) (*sfnt.Font, string, error) {
	log := logger.Logger()
	if len(candidates) == 0 {
		font, err := Default()
		if err != nil { return nil, "", err }
		if !HasRune(font, codePoint) {
			return nil, "", fmt.Errorf("%w: U+%04X (default font)", ErrNoFont, codePoint)
		}
		return font, "Go Regular", nil
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			log.Debug("font candidate unavailable", "path", path, "err", err)
			continue
		}

		var font *sfnt.Font
		var name string
		if info.IsDir() {
			font, name, err = findInDir(path, codePoint)
		} else {
			font, name, err = findInFile(path, codePoint)
		}
		if err != nil {
			log.Warn("skipping font candidate", "path", path, "err", err)
			continue
		}
		if font != nil {
			log.Debug("font resolved", "path", path, "name", name)
			return font, name, nil
		}
		log.Debug("font candidate lacks rune", "path", path, "rune", fmt.Sprintf("U+%04X", codePoint))
	}
	return nil, "", fmt.Errorf("%w: U+%04X (tried %d candidates)", ErrNoFont, codePoint, len(candidates))
}

// Returns the first font in the file (or collection) that has the
// given rune. A nil font with a nil error means no match.
func findInFile(path string, codePoint rune) (*sfnt.Font, string, error) {
	fonts, err := ParseAllFromPath(path)
	if err != nil { return nil, "", err }
	for _, font := range fonts {
		if !HasRune(font, codePoint) { continue }
		name, err := GetName(font)
		if err == ErrNotFound { name, err = filepath.Base(path), nil }
		return font, name, err
	}
	return nil, "", nil
}

func findInDir(dirName string, codePoint rune) (*sfnt.Font, string, error) {
	entries, err := os.ReadDir(dirName)
	if err != nil { return nil, "", err }
	for _, entry := range entries {
		if entry.IsDir() || !hasValidFontExtension(entry.Name()) { continue }
		path := filepath.Join(dirName, entry.Name())
		font, name, err := findInFile(path, codePoint)
		if err != nil {
			logger.Logger().Debug("skipping unparseable font", "path", path, "err", err)
			continue
		}
		if font != nil { return font, name, nil }
	}
	return nil, "", nil
}

// Same as [Resolve](), but for a single path inside the given
// filesystem. Mainly provided for embedded fonts.
func ResolveFS(filesys fs.FS, path string, codePoint rune) (*sfnt.Font, string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return nil, "", err }
	if !HasRune(font, codePoint) {
		return nil, "", fmt.Errorf("%w: U+%04X in '%s'", ErrNoFont, codePoint, path)
	}
	return font, name, nil
}
