package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orbview/orbgl"
)

func TestStoreAddPreservesOrder(t *testing.T) {
	s := NewStore()
	a := s.Add(orbgl.V3(1, 0, 0))
	b := s.Add(orbgl.V3(0, 1, 0))
	c := s.Add(orbgl.V3(0, 0, 1))

	require.Equal(t, 3, s.Len())
	pts := s.Points()
	require.Equal(t, []Point{a, b, c}, pts)
}

func TestStoreNoDeduplication(t *testing.T) {
	s := NewStore()
	p := orbgl.V3(0, 0, 1)
	a := s.Add(p)
	b := s.Add(p)

	require.Equal(t, 2, s.Len())
	require.NotEqual(t, a.ID, b.ID, "same position must mint distinct identities")
	require.Equal(t, a.Pos, b.Pos)
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Add(orbgl.V3(1, 0, 0))
	s.Add(orbgl.V3(0, 1, 0))

	v := s.Version()
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.Greater(t, s.Version(), v, "clear must bump the version")

	v = s.Version()
	s.Clear()
	require.Equal(t, v, s.Version(), "clearing an empty store is a no-op")
}

func TestStoreSnapshotIsolated(t *testing.T) {
	s := NewStore()
	s.Add(orbgl.V3(1, 0, 0))

	snap := s.Points()
	s.Add(orbgl.V3(0, 1, 0))
	require.Len(t, snap, 1, "snapshot must not see later mutations")

	snap[0].Pos = orbgl.V3(9, 9, 9)
	require.Equal(t, orbgl.V3(1, 0, 0), s.Points()[0].Pos, "snapshot writes must not reach the store")
}

func TestStoreVersionAdvancesPerAdd(t *testing.T) {
	s := NewStore()
	v0 := s.Version()
	s.Add(orbgl.V3(1, 0, 0))
	v1 := s.Version()
	s.Add(orbgl.V3(0, 1, 0))
	require.Greater(t, v1, v0)
	require.Greater(t, s.Version(), v1)
}
