package radix32

import (
	"fmt"
)

const (
	pageSize  = 4096
	slotBytes = 8
	poolShift = 32
	slotMask  = 1<<poolShift - 1
)

// A pool is one block of the arena. Pools form a circular doubly linked ring
// through next and prev, which hold pool indices.
type pool struct {
	data []uint64

	next, prev int

	// cursor is the first unused slot, remaining the number of unused slots
	cursor    int
	remaining int
}

// arena hands out slot ranges from a ring of pools. There is no per allocation
// free, space is only reclaimed when the whole arena is released.
type arena struct {
	pools  []*pool
	active int

	pages int // default pool size in pages
	limit int // max bytes across all pools, 0 means no limit
	bytes int

	poolsAllocated uint64
}

// newArena creates the initial pool as the sole, self linked element of the ring.
func newArena(pages, limit int) (*arena, error) {
	a := &arena{
		pages: pages,
		limit: limit,
	}
	p, err := a.newPool(pages)
	if err != nil {
		return nil, err
	}
	// avoid the 0 slot in pool 0, a zero reference means no node
	p.cursor = 1
	p.remaining--
	a.pools = append(a.pools, p)
	return a, nil
}

func (a *arena) newPool(pages int) (*pool, error) {
	size := pages * pageSize
	if a.limit > 0 && a.bytes+size > a.limit {
		return nil, fmt.Errorf("%w: pool of %d pages would exceed limit of %d bytes (%d in use)", ErrOutOfMemory, pages, a.limit, a.bytes)
	}
	a.bytes += size
	a.poolsAllocated++
	n := len(a.pools)
	return &pool{
		data:      make([]uint64, size/slotBytes),
		next:      n,
		prev:      n,
		remaining: size / slotBytes,
	}, nil
}

// grow allocates a new pool, splices it into the ring after the active pool
// and makes it active.
func (a *arena) grow(pages int) error {
	p, err := a.newPool(pages)
	if err != nil {
		return err
	}
	n := len(a.pools)
	cur := a.pools[a.active]
	p.next = cur.next
	p.prev = a.active
	a.pools[cur.next].prev = n
	cur.next = n
	a.pools = append(a.pools, p)
	a.active = n
	return nil
}

// alloc bump allocates size bytes (rounded up to whole slots) from the active
// pool, growing the arena first if it's short on room.
func (a *arena) alloc(size int) (ref nodeRef, err error) {
	slots := (size + slotBytes - 1) / slotBytes
	p := a.pools[a.active]
	if p.remaining < slots {
		pages := a.pages
		if need := (slots*slotBytes + pageSize - 1) / pageSize; need > pages {
			pages = need
		}
		if err = a.grow(pages); err != nil {
			return 0, err
		}
		p = a.pools[a.active]
	}
	ref = nodeRef(uint64(a.active)<<poolShift | uint64(p.cursor))
	p.cursor += slots
	p.remaining -= slots
	return ref, nil
}

// slots returns the data starting at ref
func (a *arena) slots(ref nodeRef) []uint64 {
	return a.pools[ref>>poolShift].data[ref&slotMask:]
}

// release walks the ring from the active pool and drops every pool.
func (a *arena) release() {
	if len(a.pools) == 0 {
		return
	}
	i := a.active
	for {
		p := a.pools[i]
		next := p.next
		p.data = nil
		a.pools[i] = nil
		if next == a.active {
			break
		}
		i = next
	}
	a.pools = nil
	a.bytes = 0
}
