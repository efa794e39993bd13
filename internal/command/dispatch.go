// Package command is the dispatch layer between textual drawing commands and
// the canvas: it owns name aliasing, arity checks and numeric operand
// parsing, then calls exactly one canvas operation per command. Color tokens
// pass through untouched; the canvas validates those itself.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"TurtleTrace/internal/session"
	"TurtleTrace/internal/turtle"
)

// ErrUnknownCommand reports a command name with no table entry.
var ErrUnknownCommand = errors.New("unknown command")

type entry struct {
	name string // canonical name, for diagnostics
	min  int
	max  int
	run  func(d *Dispatcher, args []string) (string, error)
}

// Dispatcher routes parsed command lines onto one session's canvas.
type Dispatcher struct {
	sess  *session.Session
	table map[string]*entry
}

// New builds a dispatcher with the full command table for the session.
func New(sess *session.Session) *Dispatcher {
	d := &Dispatcher{sess: sess, table: make(map[string]*entry)}

	d.register(1, 1, cmdForward, "forward", "fd")
	d.register(1, 1, cmdBackward, "backward", "back", "bk")
	d.register(1, 1, cmdRight, "right", "rt")
	d.register(1, 1, cmdLeft, "left", "lt")
	d.register(1, 1, cmdSetHeading, "setheading", "seth")
	d.register(2, 2, cmdSetPosition, "setposition", "setpos", "goto")
	d.register(0, 0, cmdPenDown, "pendown", "pd")
	d.register(0, 0, cmdPenUp, "penup", "pu")
	d.register(1, 1, cmdColor, "color")
	d.register(1, 1, cmdBGColor, "bgcolor")
	d.register(0, 0, cmdClear, "clear")
	d.register(1, 1, cmdPixelSize, "pixelsize")
	d.register(3, 3, cmdPixel, "pixel")
	d.register(0, 0, cmdBeginFill, "begin_fill")
	d.register(0, 0, cmdEndFill, "end_fill")
	d.register(1, 2, cmdCircle, "circle")
	d.register(3, 3, cmdRGB, "rgb")
	d.register(0, 0, cmdScreenSize, "screen_width", "screen_height")

	return d
}

func (d *Dispatcher) register(min, max int, run func(*Dispatcher, []string) (string, error), names ...string) {
	e := &entry{name: names[0], min: min, max: max, run: run}
	for _, n := range names {
		d.table[n] = e
	}
}

// Dispatch executes one whitespace-separated command line. The returned
// string is the command's textual result, empty for commands that only
// mutate state. Blank input is a no-op.
func (d *Dispatcher) Dispatch(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name := strings.ToLower(fields[0])
	e, ok := d.table[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	args := fields[1:]
	if len(args) < e.min {
		return "", fmt.Errorf("%w: %s expected at least %d operands, received %d",
			turtle.ErrBadOperand, e.name, e.min, len(args))
	}
	if len(args) > e.max {
		return "", fmt.Errorf("%w: %s expected at most %d operands, received %d",
			turtle.ErrBadOperand, e.name, e.max, len(args))
	}
	return e.run(d, args)
}

func number(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected operand to be a number, not %q", turtle.ErrBadOperand, tok)
	}
	return v, nil
}

func cmdForward(d *Dispatcher, args []string) (string, error) {
	v, err := number(args[0])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.Forward(v)
}

func cmdBackward(d *Dispatcher, args []string) (string, error) {
	v, err := number(args[0])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.Forward(-v)
}

// right turns clockwise on screen: the sign flip pairs with Rotate's
// subtraction so the net visual direction matches turtle convention.
func cmdRight(d *Dispatcher, args []string) (string, error) {
	v, err := number(args[0])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.Rotate(-v)
}

func cmdLeft(d *Dispatcher, args []string) (string, error) {
	v, err := number(args[0])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.Rotate(v)
}

// setheading speaks compass degrees (0 faces up-screen); the canvas speaks
// math degrees, hence the 90-theta shift.
func cmdSetHeading(d *Dispatcher, args []string) (string, error) {
	v, err := number(args[0])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.AbsRotate(90 - v)
}

func cmdSetPosition(d *Dispatcher, args []string) (string, error) {
	x, err := number(args[0])
	if err != nil {
		return "", err
	}
	y, err := number(args[1])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.MoveTo(x, y)
}

func cmdPenDown(d *Dispatcher, args []string) (string, error) {
	return "", d.sess.Canvas.PenDown()
}

func cmdPenUp(d *Dispatcher, args []string) (string, error) {
	return "", d.sess.Canvas.PenUp()
}

func cmdColor(d *Dispatcher, args []string) (string, error) {
	return "", d.sess.Canvas.SetColor(args[0])
}

func cmdBGColor(d *Dispatcher, args []string) (string, error) {
	return "", d.sess.Canvas.SetBackground(args[0])
}

func cmdClear(d *Dispatcher, args []string) (string, error) {
	return "", d.sess.Canvas.Reset()
}

func cmdPixelSize(d *Dispatcher, args []string) (string, error) {
	v, err := number(args[0])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.SetSizeUnit(v)
}

func cmdPixel(d *Dispatcher, args []string) (string, error) {
	x, err := number(args[0])
	if err != nil {
		return "", err
	}
	y, err := number(args[1])
	if err != nil {
		return "", err
	}
	color, err := turtle.ResolveColor(args[2])
	if err != nil {
		return "", err
	}
	return "", d.sess.Canvas.FillRegion(x, y, color)
}

func cmdBeginFill(d *Dispatcher, args []string) (string, error) {
	return "", fmt.Errorf("%w: fill", turtle.ErrNotImplemented)
}

func cmdEndFill(d *Dispatcher, args []string) (string, error) {
	return "", fmt.Errorf("%w: fill", turtle.ErrNotImplemented)
}

func cmdCircle(d *Dispatcher, args []string) (string, error) {
	for _, a := range args {
		if _, err := number(a); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: circle", turtle.ErrNotImplemented)
}

func cmdRGB(d *Dispatcher, args []string) (string, error) {
	var comps [3]float64
	for i, a := range args {
		v, err := number(a)
		if err != nil {
			return "", err
		}
		comps[i] = v
	}
	return turtle.RGB(comps[0], comps[1], comps[2])
}

func cmdScreenSize(d *Dispatcher, args []string) (string, error) {
	return strconv.Itoa(turtle.Size), nil
}
