package threedocs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threedocs/threedocs"
)

func makeLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestPaginate_Math(t *testing.T) {
	t.Parallel()

	lines := makeLines(23)

	first := threedocs.Paginate(lines, 0)
	assert.Len(t, first.Lines, 10)
	assert.Equal(t, 3, first.Total)

	second := threedocs.Paginate(lines, 1)
	assert.Len(t, second.Lines, 10)
	assert.Equal(t, "line 10", second.Lines[0])

	third := threedocs.Paginate(lines, 2)
	assert.Len(t, third.Lines, 3)
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	lines := makeLines(23)

	p := threedocs.Paginate(lines, 5)
	assert.Equal(t, 2, p.Index)

	p = threedocs.Paginate(lines, -3)
	assert.Equal(t, 0, p.Index)
}

func TestPaginate_Empty(t *testing.T) {
	t.Parallel()

	p := threedocs.Paginate(nil, 0)
	assert.Empty(t, p.Lines)
	assert.Zero(t, p.Total)
	assert.False(t, p.Paged())
}

func TestPage_Footer(t *testing.T) {
	t.Parallel()

	p := threedocs.Paginate(makeLines(23), 0)
	assert.Equal(t, "Page 1 of 3", p.Footer())
}

func TestPage_BoundaryDisabling(t *testing.T) {
	t.Parallel()

	lines := makeLines(23)

	first := threedocs.Paginate(lines, 0)
	assert.True(t, first.Disabled(threedocs.ControlFirst))
	assert.True(t, first.Disabled(threedocs.ControlPrevious))
	assert.False(t, first.Disabled(threedocs.ControlNext))
	assert.False(t, first.Disabled(threedocs.ControlLast))

	last := threedocs.Paginate(lines, 2)
	assert.False(t, last.Disabled(threedocs.ControlFirst))
	assert.False(t, last.Disabled(threedocs.ControlPrevious))
	assert.True(t, last.Disabled(threedocs.ControlNext))
	assert.True(t, last.Disabled(threedocs.ControlLast))
}

func TestPage_SinglePageNotPaged(t *testing.T) {
	t.Parallel()

	p := threedocs.Paginate(makeLines(7), 0)
	require.Equal(t, 1, p.Total)
	assert.False(t, p.Paged())
}

func TestPage_Targets(t *testing.T) {
	t.Parallel()

	p := threedocs.Paginate(makeLines(45), 2)

	assert.Equal(t, 0, p.Target(threedocs.ControlFirst))
	assert.Equal(t, 1, p.Target(threedocs.ControlPrevious))
	assert.Equal(t, 3, p.Target(threedocs.ControlNext))
	assert.Equal(t, 4, p.Target(threedocs.ControlLast))
}
