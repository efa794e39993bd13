package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurtleTrace/internal/turtle"
)

func TestNewSession(t *testing.T) {
	a := New()
	b := New()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Fragile())
	require.NotNil(t, a.Canvas)
	assert.Len(t, a.Canvas.Export().Path, 1)
}

func TestFragileGatesCanvas(t *testing.T) {
	s := New()
	require.NoError(t, s.Canvas.Forward(10))

	s.SetFragile(true)
	err := s.Canvas.Forward(10)
	assert.ErrorIs(t, err, turtle.ErrIrreversible)

	s.SetFragile(false)
	assert.NoError(t, s.Canvas.Forward(10))
}
