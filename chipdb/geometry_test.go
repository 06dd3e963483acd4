package chipdb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/chipdb"
)

func TestCoord_AddSubManhattan(t *testing.T) {
	a := chipdb.Coord{X: 10, Y: 20}
	b := chipdb.Coord{X: 3, Y: 7}

	require.Equal(t, chipdb.Coord{X: 13, Y: 27}, a.Add(b))
	require.Equal(t, chipdb.Coord{X: 7, Y: 13}, a.Sub(b))
	require.Equal(t, int64(20), a.Manhattan(b))
}

func TestCoord_RotationsAreInverses(t *testing.T) {
	c := chipdb.Coord{X: 5, Y: 2}

	require.Equal(t, chipdb.Coord{X: -2, Y: 5}, c.Rotate90())
	require.Equal(t, chipdb.Coord{X: -5, Y: -2}, c.Rotate180())
	require.Equal(t, chipdb.Coord{X: 2, Y: -5}, c.Rotate270())

	// four quarter-turns return to the start.
	quarter := c
	for i := 0; i < 4; i++ {
		quarter = quarter.Rotate90()
	}
	require.Equal(t, c, quarter)
}

func TestRect_WidthHeightAreaCenter(t *testing.T) {
	r := chipdb.NewRect(chipdb.Coord{X: 10, Y: 10}, 100, 50)

	require.Equal(t, int64(100), r.Width())
	require.Equal(t, int64(50), r.Height())
	require.Equal(t, float64(5000), r.Area())
	require.Equal(t, chipdb.Coord{X: 60, Y: 35}, r.Center())
}

func TestRect_TranslateAndExpand(t *testing.T) {
	r := chipdb.NewRect(chipdb.Coord{X: 0, Y: 0}, 100, 100)

	moved := r.Translate(chipdb.Coord{X: 5, Y: -5})
	require.Equal(t, chipdb.Coord{X: 5, Y: -5}, moved.LL)
	require.Equal(t, chipdb.Coord{X: 105, Y: 95}, moved.UR)

	grown := r.Expand(chipdb.Margins{Top: 1, Bottom: 2, Left: 3, Right: 4})
	require.Equal(t, chipdb.Coord{X: -3, Y: -2}, grown.LL)
	require.Equal(t, chipdb.Coord{X: 104, Y: 101}, grown.UR)
}

func TestRect_ContainsAndContainsPoint(t *testing.T) {
	outer := chipdb.NewRect(chipdb.Coord{X: 0, Y: 0}, 100, 100)
	inner := chipdb.NewRect(chipdb.Coord{X: 10, Y: 10}, 20, 20)
	straddling := chipdb.NewRect(chipdb.Coord{X: 90, Y: 90}, 20, 20)

	require.True(t, outer.Contains(inner))
	require.False(t, outer.Contains(straddling))

	require.True(t, outer.ContainsPoint(chipdb.Coord{X: 0, Y: 0}))
	require.True(t, outer.ContainsPoint(chipdb.Coord{X: 100, Y: 100}))
	require.False(t, outer.ContainsPoint(chipdb.Coord{X: 101, Y: 0}))
}

func TestRect_IntersectOverlapAndDisjoint(t *testing.T) {
	a := chipdb.NewRect(chipdb.Coord{X: 0, Y: 0}, 100, 100)
	b := chipdb.NewRect(chipdb.Coord{X: 50, Y: 50}, 100, 100)

	overlap, ok := a.Intersect(b)
	require.True(t, ok)
	require.Equal(t, chipdb.NewRect(chipdb.Coord{X: 50, Y: 50}, 50, 50), overlap)

	c := chipdb.NewRect(chipdb.Coord{X: 200, Y: 200}, 10, 10)
	_, ok = a.Intersect(c)
	require.False(t, ok)
}

func TestRect_IntersectTouchingEdgesIsEmpty(t *testing.T) {
	a := chipdb.NewRect(chipdb.Coord{X: 0, Y: 0}, 10, 10)
	b := chipdb.NewRect(chipdb.Coord{X: 10, Y: 0}, 10, 10)

	_, ok := a.Intersect(b)
	require.False(t, ok, "edge-adjacent rects share no interior area")
}
