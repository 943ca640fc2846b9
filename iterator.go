package radix32

import (
	"sync"
)

type position struct {
	node   nodeRef
	depth  int
	prefix uint32
}

// An Iterator walks a Tree in pre-order: a node's own value is visited before its
// children, and children in slot order 0 to 3. Since values are only stored at the
// bottom level this is ascending key order.
//
// The tree must not be modified during the iteration. Iterator is not safe for concurrent use.
type Iterator struct {
	idx   *Tree
	key   uint32
	value uint64
	stack []position
}

var iteratorPool = sync.Pool{
	New: func() interface{} { return &Iterator{} },
}

// NewIterator returns an Iterator on tree listing all stored keys.
// To recycle the Iterator struct, call Iterator.Close once you are done with it.
func NewIterator(tree *Tree) *Iterator {
	i := iteratorPool.Get().(*Iterator)
	i.idx = tree
	i.Reset()
	return i
}

// NewIterator returns an Iterator for listing all keys in the tree.
func (idx *Tree) NewIterator() *Iterator {
	return NewIterator(idx)
}

// Next prepares the next item for reading with the Key and Value methods. It
// returns true on success, or false if there are no more items.
//
// Every call to Value, even the first one, must be preceded by a call to Next.
func (i *Iterator) Next() bool {
	for len(i.stack) > 0 {
		var pos position
		pos, i.stack = i.stack[len(i.stack)-1], i.stack[:len(i.stack)-1]
		n := i.idx.node(pos.node)
		if pos.depth < treeHeight {
			// push in reverse so that child 0 is popped first
			for k := fanout - 1; k >= 0; k-- {
				if n[k] != 0 {
					i.stack = append(i.stack, position{nodeRef(n[k]), pos.depth + 1, keyAppend(pos.prefix, k)})
				}
			}
		}
		if n[flagsSlot]&hasValue != 0 {
			i.key = pos.prefix
			i.value = n[valueSlot]
			return true
		}
	}
	return false
}

// Key returns the key of the current item.
func (i *Iterator) Key() uint32 {
	return i.key
}

// Value returns the value stored at the current item.
func (i *Iterator) Value() uint64 {
	return i.value
}

// Reset restarts the iteration from the root. This permits reusing Iterators.
func (i *Iterator) Reset() {
	i.stack = i.stack[:0]
	i.key = 0
	i.value = 0
	if i.idx != nil && !i.idx.closed {
		i.stack = append(i.stack, position{node: i.idx.root})
	}
}

// Close returns the Iterator to the pool. It must not be used after this call.
func (i *Iterator) Close() {
	i.idx = nil
	i.stack = i.stack[:0]
	iteratorPool.Put(i)
}
