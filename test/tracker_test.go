package test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerDrainFollowsCleanupOrder(t *testing.T) {
	tr := NewTracker()
	// tracked in creation order, the reverse of deletion order
	tr.Track(Users, "u1")
	tr.Track(Establishments, "e1")
	tr.Track(Customers, "cu1")
	tr.Track(Coupons, "co1")
	tr.Track(Tables, "t1")
	tr.Track(Categories, "ca1")
	tr.Track(Products, "p1")
	tr.Track(Products, "p2")
	tr.Track(Orders, "o1")

	require.Equal(t, 9, tr.Len())
	assert.Equal(t, []string{"p1", "p2"}, tr.IDs(Products))

	got := tr.Drain()
	want := []TrackedID{
		{Orders, "o1"},
		{Products, "p1"},
		{Products, "p2"},
		{Categories, "ca1"},
		{Tables, "t1"},
		{Coupons, "co1"},
		{Customers, "cu1"},
		{Establishments, "e1"},
		{Users, "u1"},
	}
	assert.Equal(t, want, got)
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Drain())
}

func TestTrackerIgnoresEmptyIDs(t *testing.T) {
	tr := NewTracker()
	tr.Track(Orders, "")
	assert.Zero(t, tr.Len())
}

func TestTrackerIDsReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.Track(Orders, "o1")
	ids := tr.IDs(Orders)
	ids[0] = "changed"
	assert.Equal(t, []string{"o1"}, tr.IDs(Orders))
}

func TestTrackerConcurrentTrack(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.Track(Products, fmt.Sprintf("p%d", i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, tr.Len())
}
