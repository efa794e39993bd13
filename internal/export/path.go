// Package export turns a canvas drawing snapshot into files and pictures:
// SVG and PDF documents, plus the seq re-parsing the renderers share.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"TurtleTrace/internal/turtle"
)

// Segment is one parsed path action. X and Y are meaningful for move-to and
// line-to; close carries none.
type Segment struct {
	Op   string
	X, Y float64
}

// ParseSeq parses an exported path string ("M 0 0 L 10 20 Z ...") back into
// typed segments for renderers. The vocabulary is exactly what the canvas
// emits; anything else is an error.
func ParseSeq(seq string) ([]Segment, error) {
	fields := strings.Fields(seq)
	var segs []Segment
	for i := 0; i < len(fields); {
		op := fields[i]
		switch op {
		case turtle.OpMoveTo, turtle.OpLineTo:
			if i+2 >= len(fields) {
				return nil, fmt.Errorf("path op %q at token %d: missing coordinates", op, i)
			}
			x, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("path op %q: bad x %q: %w", op, fields[i+1], err)
			}
			y, err := strconv.ParseFloat(fields[i+2], 64)
			if err != nil {
				return nil, fmt.Errorf("path op %q: bad y %q: %w", op, fields[i+2], err)
			}
			segs = append(segs, Segment{Op: op, X: x, Y: y})
			i += 3
		case turtle.OpClose:
			segs = append(segs, Segment{Op: turtle.OpClose})
			i++
		default:
			return nil, fmt.Errorf("unknown path op %q at token %d", op, i)
		}
	}
	return segs, nil
}
