// Command linedemo lays out text with the textline engine, prints the
// resulting lines and renders them to PDF together with a logical selection
// and the carets at one offset.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textline"
	"github.com/gogpu/textline/text"
)

func main() {
	var (
		input    = flag.String("text", "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs.", "text to lay out")
		width    = flag.Float64("width", 240, "wrapping width; 0 disables wrapping")
		fontPath = flag.String("font", "", "TTF/OTF font file (default Go Regular)")
		size     = flag.Float64("size", 16, "font size")
		rtl      = flag.Bool("rtl", false, "force a right-to-left base direction")
		align    = flag.String("align", "left", "alignment: left, center, right or justify")
		shaper   = flag.String("shaper", "gotext", "shaper: builtin, gotext or cached")
		sel      = flag.String("select", "", "logical selection start:end to highlight")
		caret    = flag.Int("caret", -1, "offset to draw the strong and weak carets at")
		output   = flag.String("output", "linedemo.pdf", "output PDF file; empty prints only")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		textline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fontData := goregular.TTF
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		fontData = data
	}
	source, err := text.NewFontSource(fontData)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	s, err := newShaper(*shaper)
	if err != nil {
		log.Fatal(err)
	}
	alignment, err := parseAlignment(*align)
	if err != nil {
		log.Fatal(err)
	}
	opts := text.BlockOptions{
		MaxWidth:    *width,
		LineSpacing: 1.0,
		Alignment:   alignment,
		Direction:   text.BaseAuto,
	}
	if *rtl {
		opts.Direction = text.BaseRTL
	}

	block, err := text.LayoutText(*input, text.FontStyle(source.Face(*size)), opts, text.WithShaper(s))
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}

	selStart, selEnd, err := parseSelection(*sel)
	if err != nil {
		log.Fatal(err)
	}
	marks, err := markLines(block, selStart, selEnd, *caret)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}

	for i, bl := range block.Lines {
		if bl.Layout == nil {
			fmt.Printf("%2d  (empty)\n", i)
			continue
		}
		fmt.Printf("%2d  x=%7.2f y=%7.2f advance=%7.2f visible=%7.2f  %q\n",
			i, bl.X, bl.Y, bl.Layout.Advance(), bl.Layout.VisibleAdvance(), bl.Layout.Line().Text())
	}

	if *output == "" {
		return
	}
	pageWidth := max(*width, block.Width)
	if err := renderPDF(*output, fontData, *size, pageWidth, block, marks); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Layout saved to %s (%d lines)\n", *output, len(block.Lines))
}

func newShaper(name string) (text.Shaper, error) {
	switch name {
	case "builtin":
		return &text.BuiltinShaper{}, nil
	case "gotext":
		return text.NewGoTextShaper(), nil
	case "cached":
		return text.NewCachingShaper(text.NewGoTextShaper(), 0), nil
	}
	return nil, fmt.Errorf("unknown shaper %q", name)
}

func parseAlignment(name string) (text.Alignment, error) {
	for _, a := range []text.Alignment{text.AlignLeft, text.AlignCenter, text.AlignRight, text.AlignJustify} {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return text.AlignLeft, fmt.Errorf("unknown alignment %q", name)
}

// parseSelection parses "start:end". An empty selection is (-1, -1).
func parseSelection(s string) (start, end int, err error) {
	if s == "" {
		return -1, -1, nil
	}
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("selection %q is not start:end", s)
	}
	if start, err = strconv.Atoi(a); err != nil {
		return 0, 0, fmt.Errorf("selection start: %w", err)
	}
	if end, err = strconv.Atoi(b); err != nil {
		return 0, 0, fmt.Errorf("selection end: %w", err)
	}
	if start > end {
		start, end = end, start
	}
	return start, end, nil
}

// lineMarks holds the highlight and carets drawn over one block line, in
// line coordinates.
type lineMarks struct {
	highlight text.Region
	carets    []text.Segment
}

// markLines computes the selection highlight and carets of every line.
// Offsets count characters of the whole text with one per line break.
func markLines(block *text.Block, selStart, selEnd, caret int) ([]lineMarks, error) {
	marks := make([]lineMarks, len(block.Lines))
	base, prevEnd := 0, 0
	for i, bl := range block.Lines {
		if i > 0 && (bl.Layout == nil || bl.Layout.Line().Start() == 0) {
			base += prevEnd + 1
		}
		if bl.Layout == nil {
			prevEnd = 0
			continue
		}
		ln := bl.Layout.Line()
		prevEnd = ln.End()
		start, end := base+ln.Start(), base+ln.End()

		if selStart < end && selEnd > start {
			r, err := bl.Layout.LogicalHighlightShape(max(selStart, start)-start, min(selEnd, end)-start, text.Rect{})
			if err != nil {
				return nil, err
			}
			marks[i].highlight = r
		}
		if caret >= start && caret <= end {
			strong, weak, hasWeak, err := bl.Layout.CaretShapes(caret-start, text.Rect{}, text.DefaultCaretPolicy)
			if err != nil {
				return nil, err
			}
			marks[i].carets = append(marks[i].carets, strong)
			if hasWeak {
				marks[i].carets = append(marks[i].carets, weak)
			}
		}
	}
	return marks, nil
}
