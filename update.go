package radix32

// Insert stores value under key.
//
// It returns ErrDuplicateValue if key already holds value and ErrSlotOccupied if it holds
// another value, in both cases nothing is changed. If the arena can't grow while creating
// the path, ErrOutOfMemory is returned and the nodes created so far are left in place
// without a value. They are reused by later inserts along the same path, or reclaimed by Prune.
func (idx *Tree) Insert(key uint32, value uint64) error {
	if idx.closed {
		return ErrClosed
	}
	ref := idx.root
	n := idx.node(ref)
	for i := 0; i < treeHeight; i++ {
		k := chunk(key, i)
		child := nodeRef(n[k])
		if child == 0 {
			var (
				c   []uint64
				err error
			)
			child, c, err = idx.alloc.allocateNode()
			if err != nil {
				idx.ops.insertOutOfMemory++
				return err
			}
			c[parentSlot] = uint64(ref)
			n[k] = uint64(child)
			idx.ops.nodesCreated++
			n = c
		} else {
			n = idx.node(child)
		}
		ref = child
	}
	if n[flagsSlot]&hasValue != 0 {
		if n[valueSlot] == value {
			idx.ops.insertDuplicate++
			return ErrDuplicateValue
		}
		idx.ops.insertOccupied++
		return ErrSlotOccupied
	}
	n[valueSlot] = value
	n[flagsSlot] |= hasValue
	idx.liveObjects++
	idx.ops.insert++
	return nil
}
