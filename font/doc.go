// The font subpackage contains helper functions to parse fonts, obtain
// information from them (name, family, supported runes...) and pick the
// first usable font out of a list of candidate paths.
//
// Icon generation depends on a single glyph, so fonts are resolved by
// asking "which of these fonts can draw this rune?":
//   sfntFont, name, err := font.Resolve(paths, 0x1315D)
//
// When no candidate paths are given, the embedded Go Regular font is
// used instead (see [Default]). Go Regular only covers Latin, Greek and
// Cyrillic, so it's mostly useful for tests and placeholder icons.
package font
