// Package radix32 implements a fixed stride radix trie mapping uint32 keys to uint64 values.
//
// Keys are consumed 2 bits at a time, most significant bits first, so every key is stored
// 16 levels down from the root and every node has 4 children. Nodes live in a ring of
// fixed size memory pools and are addressed by index rather than by pointer, which keeps
// garbage collection overhead minimal. Deleted nodes are recycled through a free list.
//
// Limitations
//
// 1. A Tree is not safe for concurrent use. Wrap it in a Locked or use a Sharded tree when
// it needs to be shared between goroutines.
//
// 2. Deleting a key retires its leaf node only. Internal nodes left without children stay
// in place until Prune is called.
//
// 3. Memory is only returned to the runtime when the tree is closed.
package radix32

import (
	"fmt"
	"io"
)

// Options are used when creating a new Tree.
type Options struct {
	// PoolPages is the size of each arena pool in 4 KiB pages (default is 2)
	PoolPages int
	// PreallocNodes is the number of nodes put on the free list when the tree is created.
	// The default fills half of the first pool, a negative value disables it.
	PreallocNodes int
	// MemoryLimit caps the total size of all pools in bytes, 0 means no limit.
	// Growing past it fails with ErrOutOfMemory.
	MemoryLimit int
}

func setDefaultOptions(options *Options) {
	if options.PoolPages <= 0 {
		options.PoolPages = defaultPoolPages
	}
	if options.PreallocNodes == 0 {
		options.PreallocNodes = options.PoolPages * pageSize / 2 / nodeBytes
	}
	if options.MemoryLimit < 0 {
		options.MemoryLimit = 0
	}
}

// A Tree is a radix trie over uint32 keys. It owns all of its nodes and pools.
type Tree struct {
	root   nodeRef
	arena  *arena
	alloc  *allocator
	closed bool

	liveObjects int
	ops         opStats
}

// NewTree creates a new Tree. It fails with ErrOutOfMemory if the first pool
// doesn't fit in options.MemoryLimit.
func NewTree(options *Options) (*Tree, error) {
	if options == nil {
		options = new(Options)
	}
	setDefaultOptions(options)

	a, err := newArena(options.PoolPages, options.MemoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed creating tree : %w", err)
	}
	idx := &Tree{
		arena: a,
		alloc: newAllocator(a),
	}
	idx.root, _, err = idx.alloc.allocateNode()
	if err != nil {
		a.release()
		return nil, fmt.Errorf("failed creating tree : %w", err)
	}
	if options.PreallocNodes > 0 {
		idx.alloc.prealloc(options.PreallocNodes)
	}
	return idx, nil
}

// Len returns the number of keys stored in the tree.
func (idx *Tree) Len() int {
	return idx.liveObjects
}

// Close releases all pools and with them every node. The tree must not be used afterwards,
// Insert and Delete will return ErrClosed and Lookup finds nothing.
func (idx *Tree) Close() {
	if idx.closed {
		return
	}
	idx.closed = true
	idx.arena.release()
	idx.alloc.free = nil
	idx.root = 0
	idx.liveObjects = 0
}

func (idx *Tree) node(ref nodeRef) []uint64 {
	return idx.arena.slots(ref)[:nodeSlots]
}

// Lookup searches the tree for key and returns the value stored with it.
func (idx *Tree) Lookup(key uint32) (value uint64, found bool) {
	if idx.closed {
		return 0, false
	}
	ref := idx.search(key)
	if ref == 0 {
		return 0, false
	}
	n := idx.node(ref)
	if n[flagsSlot]&hasValue == 0 {
		return 0, false
	}
	return n[valueSlot], true
}

// search descends along key and returns the leaf, or 0 if the path is incomplete.
func (idx *Tree) search(key uint32) nodeRef {
	ref := idx.root
	for i := 0; i < treeHeight; i++ {
		ref = nodeRef(idx.node(ref)[chunk(key, i)])
		if ref == 0 {
			return 0
		}
	}
	return ref
}

// Print writes every stored value in pre-order, one hex value per line.
func (idx *Tree) Print(out io.Writer) {
	i := idx.NewIterator()
	for i.Next() {
		fmt.Fprintf(out, "%x\n", i.Value())
	}
}
