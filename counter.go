package radix32

import (
	"time"
)

// A Counter counts nodes and values in a Tree
type Counter struct {
	// NodesPerLevel[d] is the number of nodes d levels below the root
	NodesPerLevel [treeHeight + 1]int
	// EmptyNodes are nodes, root excluded, without children or value. Prune retires them.
	EmptyNodes int
	Elapsed    time.Duration

	idx   *Tree
	stack []position
}

// NewCounter returns a counter on tree
func NewCounter(tree *Tree) *Counter {
	return &Counter{
		idx: tree,
	}
}

func (c *Counter) reset() {
	c.stack = c.stack[:0]
	c.EmptyNodes = 0
	for i := range c.NodesPerLevel {
		c.NodesPerLevel[i] = 0
	}
}

// Count counts all nodes (root included) and stored values
func (c *Counter) Count() (nodes, values int) {
	start := time.Now()
	c.reset()
	if c.idx.closed {
		return
	}
	c.stack = append(c.stack, position{node: c.idx.root})
	for len(c.stack) > 0 {
		var p position
		p, c.stack = c.stack[len(c.stack)-1], c.stack[:len(c.stack)-1]
		n := c.idx.node(p.node)
		nodes++
		c.NodesPerLevel[p.depth]++
		if n[flagsSlot]&hasValue != 0 {
			values++
		}
		if p.depth > 0 && isEmpty(n) {
			c.EmptyNodes++
		}
		for k := 0; k < fanout; k++ {
			if n[k] != 0 {
				c.stack = append(c.stack, position{node: nodeRef(n[k]), depth: p.depth + 1})
			}
		}
	}
	c.Elapsed = time.Since(start)
	return nodes, values
}

// Count returns the number of nodes and stored values in the whole tree.
func (idx *Tree) Count() (nodes, values int) {
	return NewCounter(idx).Count()
}
