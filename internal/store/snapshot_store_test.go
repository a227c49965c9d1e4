package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyInOrder(t *testing.T) {
	s := NewSnapshotStore[int]()

	seq := s.Begin()
	assert.True(t, s.Loading())
	assert.True(t, s.Apply(seq, []int{1, 2, 3}))

	assert.False(t, s.Loading())
	assert.Equal(t, []int{1, 2, 3}, s.Items())
}

func TestStaleResponseDiscarded(t *testing.T) {
	s := NewSnapshotStore[string]()

	first := s.Begin()
	second := s.Begin()

	// The later-issued load completes first; the earlier response must
	// not clobber it when it finally arrives.
	assert.True(t, s.Apply(second, []string{"fresh"}))
	assert.False(t, s.Apply(first, []string{"stale"}))

	assert.Equal(t, []string{"fresh"}, s.Items())
	assert.False(t, s.Loading())
}

func TestFailKeepsPriorSnapshot(t *testing.T) {
	s := NewSnapshotStore[int]()

	seq := s.Begin()
	assert.True(t, s.Apply(seq, []int{42}))

	failed := s.Begin()
	s.Fail(failed)

	assert.Equal(t, []int{42}, s.Items())
	assert.False(t, s.Loading())
}

func TestLoadingTracksInflight(t *testing.T) {
	s := NewSnapshotStore[int]()

	a := s.Begin()
	b := s.Begin()
	assert.True(t, s.Loading())

	s.Fail(a)
	assert.True(t, s.Loading())

	assert.True(t, s.Apply(b, nil))
	assert.False(t, s.Loading())
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewSnapshotStore[int]()
	seq := s.Begin()
	s.Apply(seq, []int{1, 2})

	items := s.Items()
	items[0] = 99

	assert.Equal(t, []int{1, 2}, s.Items())
}

func TestConcurrentLoads(t *testing.T) {
	s := NewSnapshotStore[uint64]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq := s.Begin()
			s.Apply(seq, []uint64{seq})
		}()
	}
	wg.Wait()

	// Whatever interleaving occurred, the surviving snapshot carries the
	// highest applied sequence and the store settles out of loading.
	items := s.Items()
	assert.Len(t, items, 1)
	assert.False(t, s.Loading())

	seq := s.Begin()
	assert.True(t, s.Apply(seq, []uint64{seq}))
	assert.Greater(t, seq, items[0])
}
