package glyph

import "fmt"
import "errors"
import "strconv"
import "strings"
import "unicode/utf8"

import "golang.org/x/text/unicode/runenames"

// Returned by [ParseRune] when the text can't be interpreted as a
// single rune.
var ErrInvalidRune = errors.New("invalid rune")

// Returns a human readable description of the rune, like
// "U+0041 LATIN CAPITAL LETTER A". Unnamed runes only get the
// code point.
func Describe(codePoint rune) string {
	name := runenames.Name(codePoint)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("U+%04X", codePoint)
	}
	return fmt.Sprintf("U+%04X %s", codePoint, name)
}

// Parses a rune written as "U+1315D", "0x1315D" or as the literal
// character itself.
func ParseRune(text string) (rune, error) {
	text = strings.TrimSpace(text)
	if text == "" { return 0, fmt.Errorf("%w: empty string", ErrInvalidRune) }

	var digits string
	switch {
	case strings.HasPrefix(text, "U+"), strings.HasPrefix(text, "u+"):
		digits = text[2 : ]
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		digits = text[2 : ]
	default:
		codePoint, size := utf8.DecodeRuneInString(text)
		if codePoint == utf8.RuneError || size != len(text) {
			return 0, fmt.Errorf("%w: '%s'", ErrInvalidRune, text)
		}
		return codePoint, nil
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || value > utf8.MaxRune {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidRune, text)
	}
	codePoint := rune(value)
	if !utf8.ValidRune(codePoint) {
		return 0, fmt.Errorf("%w: '%s' is not a valid code point", ErrInvalidRune, text)
	}
	return codePoint, nil
}
