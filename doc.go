// Package textline is a bidirectional text-line layout and justification engine.
//
// # Overview
//
// textline takes a paragraph of styled text (mixed fonts, embedded graphics,
// multiple baselines, mixed writing direction) and turns it into laid-out
// lines that answer geometry queries: caret placement, point-to-character
// hit testing and selection highlight shapes. Lines can be justified to a
// target width with a priority/limit/absorption model.
//
// # Quick Start
//
//	import "github.com/gogpu/textline/text"
//
//	src, _ := text.NewFontSource(goregular.TTF)
//	para, _ := text.NewParagraph("Hello, world", text.FontStyle(src.Face(16)))
//	cursor, _ := text.NewBreakCursor(para)
//	for {
//	    layout, err := cursor.NextLayout(120)
//	    if err != nil || layout == nil {
//	        break
//	    }
//	    fmt.Println(layout.Advance(), layout.Ascent())
//	}
//
// # Architecture
//
// The library is organized into:
//   - text: paragraphs, the style index, shaping, bidi and break engines,
//     line assembly, the Layout facade and the line break cursor
//   - text/justify: the justification algorithm (a pure function)
//   - internal/cache: LRU caches shared by the shapers
//
// # Coordinate System
//
// Layout coordinates follow the usual computer graphics convention:
//   - Origin (0,0) at the left end of the line on the roman baseline
//   - X increases right
//   - Y increases down, so ascent extends to negative Y
//
// # Logging
//
// The library is silent by default. See [SetLogger].
package textline

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
