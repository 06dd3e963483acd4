package chipdb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/chipdb"
)

// TestContainer_HoldsLayerInfo exercises Container against the real Named
// implementations (rather than a local stub type) to confirm LayerInfo
// and SiteInfo satisfy the generic container contract end to end.
func TestContainer_HoldsLayerInfo(t *testing.T) {
	c := chipdb.NewContainer[*chipdb.LayerInfo]()

	metal1 := &chipdb.LayerInfo{
		Name:       "metal1",
		Direction:  chipdb.DirectionHorizontal,
		Type:       chipdb.LayerRouting,
		PitchX:     140,
		PitchY:     140,
		MinWidth:   70,
		MinSpacing: 70,
	}
	key, err := c.Add(metal1)
	require.NoError(t, err)

	got, ok := c.Lookup(key)
	require.True(t, ok)
	require.Equal(t, "metal1", got.GetName())
	require.Equal(t, chipdb.DirectionHorizontal, got.Direction)

	byNameKey, byName, ok := c.LookupByName("metal1")
	require.True(t, ok)
	require.Equal(t, key, byNameKey)
	require.Same(t, metal1, byName)
}

func TestContainer_HoldsSiteInfo(t *testing.T) {
	c := chipdb.NewContainer[*chipdb.SiteInfo]()

	core := &chipdb.SiteInfo{
		Name:   "core",
		Width:  460,
		Height: 2720,
		Class:  chipdb.SiteCore,
		Symmetry: chipdb.SiteSymmetry{
			Y: true,
		},
	}
	key, err := c.Add(core)
	require.NoError(t, err)

	got, ok := c.Lookup(key)
	require.True(t, ok)
	require.Equal(t, "core", got.GetName())
	require.True(t, got.Symmetry.Y)
	require.False(t, got.Symmetry.X)
}
