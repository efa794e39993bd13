package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurtleTrace/internal/session"
	"TurtleTrace/internal/turtle"
)

func newDispatcher(t *testing.T) (*session.Session, *Dispatcher) {
	t.Helper()
	sess := session.New()
	return sess, New(sess)
}

func run(t *testing.T, d *Dispatcher, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := d.Dispatch(line)
		require.NoError(t, err, line)
	}
}

func TestForwardAndAliases(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "forward 50", "fd 50")
	x, y := sess.Canvas.Position()
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -100, y, 1e-9)
}

func TestBackward(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "backward 100")
	x, y := sess.Canvas.Position()
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	run(t, d, "bk 50", "back 50")
	_, y = sess.Canvas.Position()
	assert.InDelta(t, 200, y, 1e-9)
}

func TestRightTurnsClockwiseOnScreen(t *testing.T) {
	sess, d := newDispatcher(t)
	// Facing up-screen, a right turn faces east; forward then moves +x.
	run(t, d, "rt 90", "fd 100")
	x, y := sess.Canvas.Position()
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestLeftTurnsCounterClockwiseOnScreen(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "lt 90", "fd 100")
	x, y := sess.Canvas.Position()
	assert.InDelta(t, -100, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestSetHeadingCompass(t *testing.T) {
	sess, d := newDispatcher(t)

	run(t, d, "seth 90", "fd 100")
	x, y := sess.Canvas.Position()
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	run(t, d, "setheading 0", "fd 100")
	x, y = sess.Canvas.Position()
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, -100, y, 1e-9)
}

func TestSetPosition(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "goto 3 4")
	x, y := sess.Canvas.Position()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	run(t, d, "setpos 5 6", "setposition 7 8")
	x, y = sess.Canvas.Position()
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 8.0, y)
}

func TestPenUpDown(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "pu", "goto 1 1", "pd", "goto 2 2")
	seq := sess.Canvas.Export().Path[0].Seq
	assert.Equal(t, "M 0 0 M 1 1 L 2 2", seq)
}

func TestColorCommands(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "color RED", "bgcolor #ABC")
	drawing := sess.Canvas.Export()
	require.Len(t, drawing.Path, 2)
	assert.Equal(t, "red", drawing.Path[1].Stroke)
	assert.Equal(t, "#abc", drawing.BGColor)

	_, err := d.Dispatch("color notacolor")
	assert.ErrorIs(t, err, turtle.ErrInvalidColor)
	_, err = d.Dispatch("bgcolor nope")
	assert.ErrorIs(t, err, turtle.ErrInvalidColor)
}

func TestClear(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "color red", "fd 10", "clear")
	drawing := sess.Canvas.Export()
	require.Len(t, drawing.Path, 1)
	assert.Equal(t, "M 0 0", drawing.Path[0].Seq)
}

func TestPixelSize(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "pixelsize 3")
	assert.Equal(t, 3.0, sess.Canvas.SizeUnit())
}

func TestRGBCommand(t *testing.T) {
	_, d := newDispatcher(t)
	out, err := d.Dispatch("rgb 1 0 0")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", out)

	_, err = d.Dispatch("rgb 1.1 0 0")
	assert.ErrorIs(t, err, turtle.ErrRGBRange)
}

func TestScreenSize(t *testing.T) {
	_, d := newDispatcher(t)
	for _, cmd := range []string{"screen_width", "screen_height"} {
		out, err := d.Dispatch(cmd)
		require.NoError(t, err)
		assert.Equal(t, "1000", out)
	}
}

func TestNotImplementedCommands(t *testing.T) {
	_, d := newDispatcher(t)
	for _, cmd := range []string{"begin_fill", "end_fill", "circle 5", "circle 5 90", "pixel 1 2 red"} {
		_, err := d.Dispatch(cmd)
		assert.ErrorIs(t, err, turtle.ErrNotImplemented, cmd)
	}
}

func TestPixelValidatesColorFirst(t *testing.T) {
	_, d := newDispatcher(t)
	_, err := d.Dispatch("pixel 1 2 nope")
	assert.ErrorIs(t, err, turtle.ErrInvalidColor)
}

func TestArityErrors(t *testing.T) {
	_, d := newDispatcher(t)
	for _, cmd := range []string{"fd", "fd 1 2", "goto 1", "goto 1 2 3", "pendown 1", "circle", "circle 1 2 3", "rgb 1 0"} {
		_, err := d.Dispatch(cmd)
		assert.ErrorIs(t, err, turtle.ErrBadOperand, cmd)
	}
}

func TestBadNumericOperand(t *testing.T) {
	_, d := newDispatcher(t)
	for _, cmd := range []string{"fd abc", "rt x", "goto 1 y", "rgb 1 0 z", "pixel a 2 red"} {
		_, err := d.Dispatch(cmd)
		assert.ErrorIs(t, err, turtle.ErrBadOperand, cmd)
	}
}

func TestUnknownCommand(t *testing.T) {
	_, d := newDispatcher(t)
	_, err := d.Dispatch("frobnicate 1")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommandNameCaseInsensitive(t *testing.T) {
	sess, d := newDispatcher(t)
	run(t, d, "FD 100", "Seth 90")
	_, y := sess.Canvas.Position()
	assert.InDelta(t, -100, y, 1e-9)
	assert.Equal(t, 0.0, sess.Canvas.Heading())
}

func TestBlankLineIsNoOp(t *testing.T) {
	_, d := newDispatcher(t)
	out, err := d.Dispatch("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFragileSessionSurfacesError(t *testing.T) {
	sess, d := newDispatcher(t)
	sess.SetFragile(true)
	_, err := d.Dispatch("fd 10")
	assert.ErrorIs(t, err, turtle.ErrIrreversible)
}
