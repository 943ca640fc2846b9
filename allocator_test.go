package radix32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorFreeList(t *testing.T) {
	a, err := newArena(1, 0)
	require.NoError(t, err)
	alloc := newAllocator(a)

	ref, n, err := alloc.allocateNode()
	require.NoError(t, err)
	assert.Len(t, n, nodeSlots)
	n[0], n[parentSlot], n[valueSlot], n[flagsSlot] = 9, 9, 9, hasValue

	alloc.retireNode(ref)
	assert.Equal(t, []nodeRef{ref}, alloc.free)
	assert.True(t, isEmpty(a.slots(ref)))
	assert.Equal(t, uint64(0), a.slots(ref)[parentSlot])

	// the retired node comes back zeroed
	again, n, err := alloc.allocateNode()
	require.NoError(t, err)
	assert.Equal(t, ref, again)
	assert.Equal(t, make([]uint64, nodeSlots), n)
	assert.Equal(t, uint64(1), alloc.nodesAllocated)
	assert.Equal(t, uint64(1), alloc.nodesReused)
	assert.Equal(t, uint64(1), alloc.nodesReleased)
}

func TestAllocatorPrealloc(t *testing.T) {
	// 511 usable slots hold 73 nodes
	a, err := newArena(1, pageSize)
	require.NoError(t, err)
	alloc := newAllocator(a)
	alloc.prealloc(100)
	assert.Len(t, alloc.free, 73)
	assert.Equal(t, uint64(73), alloc.nodesAllocated)

	for range alloc.free {
		_, _, err := alloc.allocateNode()
		require.NoError(t, err)
	}
	_, _, err = alloc.allocateNode()
	assert.ErrorIs(t, err, ErrOutOfMemory)
}
