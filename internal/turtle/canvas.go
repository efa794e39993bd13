package turtle

import (
	"fmt"
	"math"
	"sync"
)

// Size is the side length of the square drawing surface, in canvas units.
// Both screen_width and screen_height report this value.
const Size = 1000

// Drawing is the renderer-agnostic export of a whole session: every move in
// order plus the background color. It is a deep copy; the canvas may keep
// mutating after Export without affecting it.
type Drawing struct {
	Path    []MoveExport `json:"path"`
	BGColor string       `json:"bgColor"`
}

// Canvas is the turtle state machine. It tracks position, heading, pen state
// and the ordered history of styled moves, and hands the whole history to
// renderers via Export.
//
// The fragile check models an external session flag: while it reports true,
// every mutating operation fails with ErrIrreversible before touching any
// state. Export is a read and never consults it.
//
// All mutators take the write lock; Export takes the read lock only long
// enough to copy, so a caller may hold the returned Drawing through a slow
// render without blocking anyone.
type Canvas struct {
	mu      sync.RWMutex
	fragile func() bool

	x, y     float64
	angle    float64 // degrees, math convention, always in [0,360)
	bgColor  string
	penDown  bool
	sizeUnit float64
	moves    []*Move
}

// NewCanvas builds a canvas wired to the given fragile check (nil means
// never fragile) and puts it in the reset state.
func NewCanvas(fragile func() bool) *Canvas {
	c := &Canvas{fragile: fragile}
	c.resetLocked()
	return c
}

func (c *Canvas) guard() error {
	if c.fragile != nil && c.fragile() {
		return ErrIrreversible
	}
	return nil
}

// checkFinite rejects NaN and infinities. Arity and type checking belong to
// the dispatch layer, but a non-finite float reaching the state machine would
// poison every later coordinate, so it is refused here.
func checkFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: expected a finite number, got %v", ErrBadOperand, v)
		}
	}
	return nil
}

func normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SetColor validates the color token and starts a new Move at the current
// position with it as stroke. A move keeps one color for its whole path, so
// changing color always opens a fresh one.
func (c *Canvas) SetColor(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	color, err := ResolveColor(token)
	if err != nil {
		return err
	}
	m := newMove(c.x, c.y)
	m.stroke = color
	c.moves = append(c.moves, m)
	return nil
}

// MoveTo repositions the turtle. With the pen down it appends a line-to
// action to the active move, with the pen up a move-to. A move onto the
// current position is still recorded; there is no deduplication.
func (c *Canvas) MoveTo(x, y float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkFinite(x, y); err != nil {
		return err
	}
	c.moveLocked(x, y)
	return nil
}

func (c *Canvas) moveLocked(x, y float64) {
	last := c.moves[len(c.moves)-1]
	if c.penDown {
		last.append(Action{Op: OpLineTo, Params: []float64{x, y}})
	} else {
		last.append(Action{Op: OpMoveTo, Params: []float64{x, y}})
	}
	c.x = x
	c.y = y
}

// SetBackground validates and stores the background color.
func (c *Canvas) SetBackground(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	color, err := ResolveColor(token)
	if err != nil {
		return err
	}
	c.bgColor = color
	return nil
}

// Rotate turns the heading by theta degrees (subtracted, so a positive theta
// paired with the command layer's sign flip turns rightward on screen).
func (c *Canvas) Rotate(theta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkFinite(theta); err != nil {
		return err
	}
	c.angle = normalize(c.angle - theta)
	return nil
}

// AbsRotate sets the heading to -theta, normalized. The setheading command
// passes 90-theta so that 0 faces up-screen.
func (c *Canvas) AbsRotate(theta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkFinite(theta); err != nil {
		return err
	}
	c.angle = normalize(-theta)
	return nil
}

// Forward walks dist units along the current heading, drawing if the pen is
// down. Negative dist walks backward.
func (c *Canvas) Forward(dist float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkFinite(dist); err != nil {
		return err
	}
	rad := c.angle * math.Pi / 180
	c.moveLocked(c.x+dist*math.Cos(rad), c.y+dist*math.Sin(rad))
	return nil
}

// PenDown lowers the pen: later position changes draw.
func (c *Canvas) PenDown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	c.penDown = true
	return nil
}

// PenUp lifts the pen: later position changes reposition without drawing.
func (c *Canvas) PenUp() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	c.penDown = false
	return nil
}

// SetSizeUnit stores the pixel-size multiplier. It is kept for export
// consumers; no geometry consumes it yet.
func (c *Canvas) SetSizeUnit(size float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkFinite(size); err != nil {
		return err
	}
	c.sizeUnit = size
	return nil
}

// FillRegion is reserved for raster-fill support and always fails.
func (c *Canvas) FillRegion(x, y float64, color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	return fmt.Errorf("%w: fill region", ErrNotImplemented)
}

// Reset restores every default and replaces the history with a single move
// seeded at the origin.
func (c *Canvas) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(); err != nil {
		return err
	}
	c.resetLocked()
	return nil
}

func (c *Canvas) resetLocked() {
	c.x = 0
	c.y = 0
	// The turtle starts facing up-screen. -90 in math convention, kept
	// normalized so the [0,360) invariant holds from the first command.
	c.angle = normalize(-90)
	c.bgColor = "#ffffff"
	c.penDown = true
	c.sizeUnit = 1
	c.moves = []*Move{newMove(0, 0)}
}

// Export snapshots the session for rendering. Safe to call at any time,
// including while fragile; the result shares nothing with the canvas.
func (c *Canvas) Export() Drawing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	path := make([]MoveExport, len(c.moves))
	for i, m := range c.moves {
		path[i] = m.export()
	}
	return Drawing{Path: path, BGColor: c.bgColor}
}

// Position reports the current turtle coordinates.
func (c *Canvas) Position() (x, y float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.x, c.y
}

// Heading reports the current heading in degrees, math convention, [0,360).
func (c *Canvas) Heading() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.angle
}

// IsPenDown reports whether the pen is drawing.
func (c *Canvas) IsPenDown() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.penDown
}

// SizeUnit reports the stored pixel-size multiplier.
func (c *Canvas) SizeUnit() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sizeUnit
}
