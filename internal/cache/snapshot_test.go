package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSnapshotValidityWindow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSnapshot[string](15 * time.Minute)
	s.now = func() time.Time { return now }

	require.False(t, s.Valid(), "empty snapshot must be invalid")

	s.Put([]string{"a", "b"})
	require.True(t, s.Valid())

	now = now.Add(14 * time.Minute)
	require.True(t, s.Valid())

	now = now.Add(2 * time.Minute)
	require.False(t, s.Valid(), "snapshot must expire after the TTL elapses")

	// Records are still physically held after expiry.
	require.Equal(t, []string{"a", "b"}, s.Records())

	// A fresh Put makes the snapshot valid again.
	s.Put([]string{"c"})
	require.True(t, s.Valid())
	require.Equal(t, []string{"c"}, s.Records())
}

func TestSnapshotInvalidateIdempotent(t *testing.T) {
	s := NewSnapshot[int](time.Minute)
	s.Put([]int{1, 2, 3})

	s.Invalidate()
	require.False(t, s.Valid())
	require.Nil(t, s.Records())

	s.Invalidate()
	require.False(t, s.Valid())
	require.Nil(t, s.Records())
}

func TestSnapshotEvictKeepsValidity(t *testing.T) {
	s := NewSnapshot[int](time.Minute)
	s.Put([]int{1, 2, 3})

	s.Evict(func(v int) bool { return v == 2 })

	require.True(t, s.Valid(), "targeted eviction must not expire the snapshot")
	require.Equal(t, []int{1, 3}, s.Records())

	// Evicting a record that is not there changes nothing.
	s.Evict(func(v int) bool { return v == 42 })
	require.Equal(t, []int{1, 3}, s.Records())
}

func TestSnapshotEvictOnEmpty(t *testing.T) {
	s := NewSnapshot[int](time.Minute)
	s.Evict(func(int) bool { return true })
	require.False(t, s.Valid())
	require.Nil(t, s.Records())
}

func TestSnapshotRecordsIsACopy(t *testing.T) {
	s := NewSnapshot[int](time.Minute)
	s.Put([]int{1, 2})

	got := s.Records()
	got[0] = 99

	require.Equal(t, []int{1, 2}, s.Records())
}

func TestSnapshotPutOverwrites(t *testing.T) {
	s := NewSnapshot[int](time.Minute)
	s.Put([]int{1})
	s.Put([]int{2, 3})
	require.Equal(t, []int{2, 3}, s.Records())
	require.Equal(t, 2, s.Len())
}

func TestSnapshotFind(t *testing.T) {
	s := NewSnapshot[string](time.Minute)
	s.Put([]string{"x", "y"})

	v, ok := s.Find(func(r string) bool { return r == "y" })
	require.True(t, ok)
	require.Equal(t, "y", v)

	_, ok = s.Find(func(r string) bool { return r == "z" })
	require.False(t, ok)
}
