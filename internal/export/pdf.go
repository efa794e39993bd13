package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"TurtleTrace/internal/turtle"
)

// pdfScale maps the 1000-unit canvas onto a 190mm drawing area on A4, with
// a 10mm margin and the turtle origin at the area's center.
const (
	pdfArea   = 190.0
	pdfMargin = 10.0
)

func pdfPoint(x, y float64) (float64, float64) {
	s := pdfArea / float64(turtle.Size)
	return pdfMargin + (x+float64(turtle.Size)/2)*s,
		pdfMargin + (y+float64(turtle.Size)/2)*s
}

// ExportPDF renders a drawing snapshot to a PDF file, one line segment per
// drawn path step. Pen-up repositioning just advances the cursor.
func ExportPDF(path string, d turtle.Drawing) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	if r, g, b, a, err := turtle.DecodeColor(d.BGColor); err == nil && a > 0 {
		p.SetFillColor(int(r), int(g), int(b))
		p.Rect(pdfMargin, pdfMargin, pdfArea, pdfArea, "F")
	}

	for _, mv := range d.Path {
		segs, err := ParseSeq(mv.Seq)
		if err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		r, g, b, a, err := turtle.DecodeColor(mv.Stroke)
		if err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		if a == 0 {
			continue
		}
		p.SetDrawColor(int(r), int(g), int(b))
		p.SetLineWidth(0.5)

		var curX, curY, startX, startY float64
		started := false
		for _, seg := range segs {
			switch seg.Op {
			case turtle.OpMoveTo:
				curX, curY = seg.X, seg.Y
				startX, startY = seg.X, seg.Y
				started = true
			case turtle.OpLineTo:
				x1, y1 := pdfPoint(curX, curY)
				x2, y2 := pdfPoint(seg.X, seg.Y)
				p.Line(x1, y1, x2, y2)
				curX, curY = seg.X, seg.Y
			case turtle.OpClose:
				if started {
					x1, y1 := pdfPoint(curX, curY)
					x2, y2 := pdfPoint(startX, startY)
					p.Line(x1, y1, x2, y2)
					curX, curY = startX, startY
				}
			}
		}
	}
	return p.OutputFileAndClose(path)
}
