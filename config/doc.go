// The config subpackage loads the generator settings from JSON files.
//
// Values missing from the file keep their defaults, so a configuration
// file only needs the fields that differ:
//
//	{
//		"glyph": "U+13080",
//		"colors": { "accent": "#3E8BD0" }
//	}
package config
