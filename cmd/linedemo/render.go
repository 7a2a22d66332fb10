package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/gogpu/textline/text"
)

// Layout units are points; canvas works in millimetres.
const mmPerPt = 25.4 / 72

const pageMargin = 10.0

var (
	highlightColor = color.RGBA{R: 0x99, G: 0xc2, B: 0xff, A: 0xff}
	caretColor     = color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
)

// renderPDF draws the block, its highlights and carets to a one-page PDF.
func renderPDF(path string, fontData []byte, size, width float64, block *text.Block, marks []lineMarks) error {
	family := canvas.NewFontFamily("linedemo")
	if err := family.LoadFont(fontData, 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	face := family.Face(size, color.Black, canvas.FontRegular, canvas.FontNormal)

	w := (width + 2*pageMargin) * mmPerPt
	h := (block.Height + 2*pageMargin) * mmPerPt

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	for i, bl := range block.Lines {
		if bl.Layout == nil {
			continue
		}
		ox, oy := pageMargin+bl.X, pageMargin+bl.Y
		for _, p := range marks[i].highlight {
			drawPolygon(ctx, ox, oy, p)
		}
		drawLine(ctx, face, ox, oy, bl.Layout.Line())
		for _, s := range marks[i].carets {
			drawSegment(ctx, ox, oy, s)
		}
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// drawLine draws every character at its own position, so the output shows
// the engine's placement rather than the renderer's.
func drawLine(ctx *canvas.Context, face *canvas.FontFace, ox, oy float64, ln *text.Line) {
	runes := []rune(ln.Text())
	for i, r := range runes {
		if ln.IsCharWhitespace(i) {
			continue
		}
		tl := canvas.NewTextLine(face, string(r), canvas.Left)
		ctx.DrawText((ox+ln.CharX(i))*mmPerPt, (oy+ln.CharY(i))*mmPerPt, tl)
	}
}

func drawPolygon(ctx *canvas.Context, ox, oy float64, poly text.Polygon) {
	if len(poly) < 3 {
		return
	}
	p := &canvas.Path{}
	p.MoveTo(poly[0].X*mmPerPt, poly[0].Y*mmPerPt)
	for _, pt := range poly[1:] {
		p.LineTo(pt.X*mmPerPt, pt.Y*mmPerPt)
	}
	p.Close()
	ctx.SetFillColor(highlightColor)
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.DrawPath(ox*mmPerPt, oy*mmPerPt, p)
}

func drawSegment(ctx *canvas.Context, ox, oy float64, s text.Segment) {
	p := &canvas.Path{}
	p.MoveTo(s.A.X*mmPerPt, s.A.Y*mmPerPt)
	p.LineTo(s.B.X*mmPerPt, s.B.Y*mmPerPt)
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(caretColor)
	ctx.SetStrokeWidth(0.2)
	ctx.DrawPath(ox*mmPerPt, oy*mmPerPt, p)
}
