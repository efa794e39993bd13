package export

import (
	"fmt"
	"io"
	"os"

	"TurtleTrace/internal/turtle"
)

// WriteSVG renders a drawing snapshot as an SVG document. The viewBox is the
// canvas surface with the turtle origin at its center. Path seq strings are
// already valid SVG path data, so each move becomes one <path> element.
func WriteSVG(w io.Writer, d turtle.Drawing) error {
	half := turtle.Size / 2
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%d %d %d %d\">\n",
		-half, -half, turtle.Size, turtle.Size); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n",
		-half, -half, turtle.Size, turtle.Size, d.BGColor); err != nil {
		return err
	}
	for _, mv := range d.Path {
		if _, err := fmt.Fprintf(w,
			"  <path d=\"%s\" stroke=\"%s\" fill=\"%s\" stroke-width=\"1\"/>\n",
			mv.Seq, mv.Stroke, mv.Fill); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// ExportSVG writes the snapshot to an SVG file.
func ExportSVG(path string, d turtle.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
