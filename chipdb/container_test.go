package chipdb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edacore/pnrcore/chipdb"
)

type namedThing struct{ name string }

func (n *namedThing) GetName() string { return n.name }

func TestContainer_AddLookup(t *testing.T) {
	c := chipdb.NewContainer[*namedThing]()
	key, err := c.Add(&namedThing{name: "a"})
	require.NoError(t, err)

	got, ok := c.Lookup(key)
	require.True(t, ok)
	require.Equal(t, "a", got.name)

	keyByName, gotByName, ok := c.LookupByName("a")
	require.True(t, ok)
	require.Equal(t, key, keyByName)
	require.Equal(t, "a", gotByName.name)
}

func TestContainer_DuplicateName(t *testing.T) {
	c := chipdb.NewContainer[*namedThing]()
	_, err := c.Add(&namedThing{name: "a"})
	require.NoError(t, err)

	_, err = c.Add(&namedThing{name: "a"})
	require.ErrorIs(t, err, chipdb.ErrDuplicateName)
}

func TestContainer_RemoveRetiresKey(t *testing.T) {
	c := chipdb.NewContainer[*namedThing]()
	key, err := c.Add(&namedThing{name: "a"})
	require.NoError(t, err)

	require.True(t, c.Remove(key))
	_, ok := c.Lookup(key)
	require.False(t, ok)

	// name is free again, but the retired key itself is never reused.
	key2, err := c.Add(&namedThing{name: "a"})
	require.NoError(t, err)
	require.NotEqual(t, key, key2)
}

func TestContainer_RemoveUnknownIsNoop(t *testing.T) {
	c := chipdb.NewContainer[*namedThing]()
	require.False(t, c.Remove(chipdb.ObjectKey(999)))
}

func TestContainer_ListenerOrderAndKinds(t *testing.T) {
	c := chipdb.NewContainer[*namedThing]()
	var events []chipdb.ChangeKind
	c.AddListener(chipdb.ListenerFunc(func(key chipdb.ObjectKey, kind chipdb.ChangeKind) {
		events = append(events, kind)
	}))

	key, err := c.Add(&namedThing{name: "a"})
	require.NoError(t, err)
	c.Touch(key)
	c.Remove(key)

	require.Equal(t, []chipdb.ChangeKind{chipdb.Add, chipdb.ContentsChanged, chipdb.Remove}, events)
}

func TestContainer_RemoveListener(t *testing.T) {
	c := chipdb.NewContainer[*namedThing]()
	calls := 0
	l := chipdb.ListenerFunc(func(chipdb.ObjectKey, chipdb.ChangeKind) { calls++ })
	c.AddListener(l)
	c.RemoveListener(l)

	_, err := c.Add(&namedThing{name: "a"})
	require.NoError(t, err)
	require.Equal(t, 0, calls)
}
