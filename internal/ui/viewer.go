package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"TurtleTrace/internal/export"
	"TurtleTrace/internal/turtle"
)

// Window side in pixels; the 1000-unit canvas is scaled to fit with the
// origin at the window center.
const windowSize = float32(700)

func toScreen(x, y float64) fyne.Position {
	scale := windowSize / float32(turtle.Size)
	return fyne.NewPos(float32(x)*scale+windowSize/2, float32(y)*scale+windowSize/2)
}

func strokeNRGBA(token string) (color.NRGBA, bool) {
	r, g, b, a, err := turtle.DecodeColor(token)
	if err != nil || a == 0 {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

// drawingObjects turns a snapshot into canvas objects: a background rect
// plus one line per drawn path step. Pen-up repositioning leaves no object.
func drawingObjects(d turtle.Drawing) []fyne.CanvasObject {
	objects := []fyne.CanvasObject{}

	if bg, ok := strokeNRGBA(d.BGColor); ok {
		rect := canvas.NewRectangle(bg)
		rect.Resize(fyne.NewSize(windowSize, windowSize))
		objects = append(objects, rect)
	}

	for _, mv := range d.Path {
		segs, err := export.ParseSeq(mv.Seq)
		if err != nil {
			log.Printf("[viewer] skipping unreadable move: %v", err)
			continue
		}
		stroke, ok := strokeNRGBA(mv.Stroke)
		if !ok {
			continue
		}

		var cur, start fyne.Position
		started := false
		for _, seg := range segs {
			switch seg.Op {
			case turtle.OpMoveTo:
				cur = toScreen(seg.X, seg.Y)
				start = cur
				started = true
			case turtle.OpLineTo:
				next := toScreen(seg.X, seg.Y)
				line := canvas.NewLine(stroke)
				line.Position1 = cur
				line.Position2 = next
				line.StrokeWidth = 1
				objects = append(objects, line)
				cur = next
			case turtle.OpClose:
				if started {
					line := canvas.NewLine(stroke)
					line.Position1 = cur
					line.Position2 = start
					line.StrokeWidth = 1
					objects = append(objects, line)
					cur = start
				}
			}
		}
	}

	return objects
}

// RunViewer opens a read-only window showing the drawing. Blocks until the
// window closes.
func RunViewer(d turtle.Drawing) {
	viewerApp := app.New()
	window := viewerApp.NewWindow("TurtleTrace")
	window.Resize(fyne.NewSize(windowSize, windowSize))

	content := container.NewWithoutLayout(drawingObjects(d)...)
	window.SetContent(content)
	window.ShowAndRun()
}
