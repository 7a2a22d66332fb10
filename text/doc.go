// Package text lays out single lines of bidirectional, multi-style text.
//
// A Paragraph holds the characters and their styles. BuildStyleIndex splits
// it into maximal runs of uniform style, script and embedding level. A
// BreakCursor walks the paragraph, asking a BreakIterator for line break
// opportunities and a Measurer for the widest prefix that fits. Each line is
// assembled from shaped components and wrapped in an immutable Layout.
//
// The pipeline separates fonts from layout:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size
//   - Shaper: converts a run to glyphs (BuiltinShaper, GoTextShaper, CachingShaper)
//   - BidiEngine: resolves embedding levels (XTextBidi)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	para, err := text.NewParagraph("Hello, world", text.FontStyle(source.Face(24)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cursor, err := text.NewBreakCursor(para, text.WithShaper(text.NewGoTextShaper()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := cursor.NextLayout(300)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	site := layout.HitTestChar(42, 0)
//	strong, weak, hasWeak, err := layout.CaretShapes(site.InsertionOffset(), text.Rect{}, nil)
//
// # Coordinates
//
// Layout geometry is relative to the left end of the line on its baseline.
// Y grows downwards, so ascent is negative Y. Positive italic slopes lean
// to the right: a caret at x passes through x - slope*y.
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
