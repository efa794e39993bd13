package turtle

import (
	"strconv"
	"strings"
)

// Path action opcodes, SVG path compatible.
const (
	OpMoveTo = "M"
	OpLineTo = "L"
	OpClose  = "Z"
)

// Action is a single path instruction: an opcode plus its coordinates.
type Action struct {
	Op     string
	Params []float64
}

// String renders the action as an SVG path token. Numbers are formatted with
// strconv.FormatFloat(v, 'g', -1, 64): the shortest representation that
// round-trips, locale independent, exponent form for extreme magnitudes.
func (a Action) String() string {
	parts := make([]string, 0, len(a.Params)+1)
	parts = append(parts, a.Op)
	for _, p := range a.Params {
		parts = append(parts, strconv.FormatFloat(p, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// Move is one contiguous path drawn with a single style. The style is fixed
// at creation; only the stroke color may be overwritten, once, right after
// creation by SetColor. Actions only ever grow.
type Move struct {
	stroke    string
	fill      string
	thickness float64
	actions   []Action
}

func newMove(x, y float64) *Move {
	m := &Move{stroke: "black", fill: "transparent", thickness: 1}
	m.actions = append(m.actions, Action{Op: OpMoveTo, Params: []float64{x, y}})
	return m
}

func (m *Move) append(a Action) {
	m.actions = append(m.actions, a)
}

// MoveExport is the renderer-facing projection of one Move.
type MoveExport struct {
	Seq    string `json:"seq"`
	Stroke string `json:"stroke"`
	Fill   string `json:"fill"`
}

func (m *Move) export() MoveExport {
	parts := make([]string, len(m.actions))
	for i, a := range m.actions {
		parts[i] = a.String()
	}
	return MoveExport{
		Seq:    strings.Join(parts, " "),
		Stroke: m.stroke,
		Fill:   m.fill,
	}
}
