// The export subpackage describes which icon files must be produced and
// encodes them to disk: PNG files, multi-size ICO files, and ICNS files
// either built natively or packaged through macOS iconutil.
//
// A [Plan] lists the targets. The default plan produces the app icons
// required by desktop bundlers, the web favicon, the tray icons and the
// platform icon containers.
package export
