package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TurtleTrace/internal/turtle"
)

func sampleDrawing(t *testing.T) turtle.Drawing {
	t.Helper()
	c := turtle.NewCanvas(nil)
	require.NoError(t, c.SetBackground("#abc"))
	require.NoError(t, c.MoveTo(100, 100))
	require.NoError(t, c.SetColor("red"))
	require.NoError(t, c.Forward(50))
	return c.Export()
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sampleDrawing(t)))

	out := buf.String()
	assert.Contains(t, out, `viewBox="-500 -500 1000 1000"`)
	assert.Contains(t, out, `fill="#abc"`)
	assert.Contains(t, out, `<path d="M 0 0 L 100 100"`)
	assert.Contains(t, out, `stroke="red"`)
	assert.Contains(t, out, `stroke="black"`)
	assert.Contains(t, out, "</svg>")
}

func TestExportSVGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawing.svg")
	require.NoError(t, ExportSVG(path, sampleDrawing(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
