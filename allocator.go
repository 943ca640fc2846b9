package radix32

import (
	"fmt"
	"io"
)

// allocator hands out fixed size trie nodes. Retired nodes are kept on a free
// list and never go back to the arena, so repeated insert/delete cycles on the
// same key space don't touch the arena at all.
type allocator struct {
	arena *arena
	free  []nodeRef

	nodesAllocated uint64
	nodesReused    uint64
	nodesReleased  uint64
}

func newAllocator(a *arena) *allocator {
	return &allocator{
		arena: a,
	}
}

// prealloc carves n nodes from the arena straight onto the free list.
// It stops early, without error, when the arena can't grow.
func (a *allocator) prealloc(n int) {
	if cap(a.free) < n {
		free := make([]nodeRef, len(a.free), len(a.free)+n)
		copy(free, a.free)
		a.free = free
	}
	for i := 0; i < n; i++ {
		ref, err := a.arena.alloc(nodeBytes)
		if err != nil {
			return
		}
		a.nodesAllocated++
		a.free = append(a.free, ref)
	}
}

// allocateNode returns a zeroed node, taken from the free list if possible.
func (a *allocator) allocateNode() (nodeRef, []uint64, error) {
	if l := len(a.free); l > 0 {
		ref := a.free[l-1]
		a.free = a.free[:l-1]
		n := a.arena.slots(ref)
		clearNode(n)
		a.nodesReused++
		return ref, n[:nodeSlots], nil
	}
	ref, err := a.arena.alloc(nodeBytes)
	if err != nil {
		return 0, nil, err
	}
	a.nodesAllocated++
	n := a.arena.slots(ref)
	clearNode(n)
	return ref, n[:nodeSlots], nil
}

// retireNode clears the node and pushes it on the free list.
func (a *allocator) retireNode(ref nodeRef) {
	clearNode(a.arena.slots(ref))
	a.free = append(a.free, ref)
	a.nodesReleased++
}

func (a *allocator) printStats(out io.Writer) {
	fmt.Fprintf(out, "Free list - %d nodes (cap %d)\n", len(a.free), cap(a.free))
	fmt.Fprintf(out, "    allocated %d, reused %d, released %d\n", a.nodesAllocated, a.nodesReused, a.nodesReleased)
}
