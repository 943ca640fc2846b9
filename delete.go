package radix32

// Delete removes key from the tree. It returns ErrKeyNotFound if the key isn't stored.
//
// Only the leaf is detached and retired to the free list. Ancestors left without
// children stay in the tree, see Prune.
func (idx *Tree) Delete(key uint32) error {
	if idx.closed {
		return ErrClosed
	}
	ref := idx.search(key)
	if ref == 0 {
		idx.ops.deleteMiss++
		return ErrKeyNotFound
	}
	n := idx.node(ref)
	if n[flagsSlot]&hasValue == 0 {
		idx.ops.deleteMiss++
		return ErrKeyNotFound
	}
	parent := idx.node(nodeRef(n[parentSlot]))
	parent[chunk(key, treeHeight-1)] = 0
	idx.alloc.retireNode(ref)
	idx.liveObjects--
	idx.ops.delete++
	return nil
}

// Prune retires every node, except the root, that has neither children nor a value.
// These are left behind by Delete and by inserts that ran out of memory.
// It returns the number of nodes retired.
func (idx *Tree) Prune() (retired int) {
	if idx.closed {
		return 0
	}
	// collect nodes in pre-order, then visit them backwards so that
	// children are always handled before their parent
	var (
		order []nodeRef
		stack = []nodeRef{idx.root}
	)
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, ref)
		n := idx.node(ref)
		for k := fanout - 1; k >= 0; k-- {
			if n[k] != 0 {
				stack = append(stack, nodeRef(n[k]))
			}
		}
	}
	for i := len(order) - 1; i > 0; i-- {
		ref := order[i]
		n := idx.node(ref)
		if !isEmpty(n) {
			continue
		}
		parent := idx.node(nodeRef(n[parentSlot]))
		for k := 0; k < fanout; k++ {
			if nodeRef(parent[k]) == ref {
				parent[k] = 0
				break
			}
		}
		idx.alloc.retireNode(ref)
		retired++
	}
	idx.ops.pruned += uint64(retired)
	return retired
}
