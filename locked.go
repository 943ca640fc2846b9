package radix32

import (
	"runtime"
	"sync"

	"github.com/zeebo/xxh3"
)

// Locked guards a Tree with a read/write mutex so it can be shared between goroutines.
// Lookups run concurrently, Insert, Delete and Prune are exclusive.
type Locked struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewLocked creates a new Tree wrapped in a Locked.
func NewLocked(options *Options) (*Locked, error) {
	tree, err := NewTree(options)
	if err != nil {
		return nil, err
	}
	return &Locked{tree: tree}, nil
}

// Insert stores value under key, see Tree.Insert.
func (l *Locked) Insert(key uint32, value uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(key, value)
}

// Delete removes key, see Tree.Delete.
func (l *Locked) Delete(key uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Delete(key)
}

// Lookup returns the value stored under key.
func (l *Locked) Lookup(key uint32) (uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Lookup(key)
}

// Prune retires empty internal nodes, see Tree.Prune.
func (l *Locked) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Prune()
}

// Len returns the number of stored keys.
func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// Do runs fn with exclusive access to the underlying tree.
func (l *Locked) Do(fn func(t *Tree)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.tree)
}

// Close closes the underlying tree.
func (l *Locked) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Close()
}

// Sharded spreads keys over a number of independently locked trees, so writers
// on different shards don't contend. Keys are assigned to shards by hash, which
// spreads dense key ranges evenly.
type Sharded struct {
	shards []*Locked
}

// NewSharded creates n shards, each a Tree created with options.
// If n <= 0, runtime.NumCPU() shards are used. A MemoryLimit applies per shard.
func NewSharded(n int, options *Options) (*Sharded, error) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	s := &Sharded{shards: make([]*Locked, n)}
	for i := range s.shards {
		var o Options
		if options != nil {
			o = *options
		}
		l, err := NewLocked(&o)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.shards[i] = l
	}
	return s, nil
}

func (s *Sharded) shard(key uint32) *Locked {
	b := [4]byte{byte(key >> 24), byte(key >> 16), byte(key >> 8), byte(key)}
	return s.shards[xxh3.Hash(b[:])%uint64(len(s.shards))]
}

// Insert stores value under key, see Tree.Insert.
func (s *Sharded) Insert(key uint32, value uint64) error {
	return s.shard(key).Insert(key, value)
}

// Delete removes key, see Tree.Delete.
func (s *Sharded) Delete(key uint32) error {
	return s.shard(key).Delete(key)
}

// Lookup returns the value stored under key.
func (s *Sharded) Lookup(key uint32) (uint64, bool) {
	return s.shard(key).Lookup(key)
}

// Len returns the number of stored keys across all shards.
func (s *Sharded) Len() (count int) {
	for _, l := range s.shards {
		count += l.Len()
	}
	return
}

// Prune prunes every shard and returns the total number of nodes retired.
func (s *Sharded) Prune() (retired int) {
	for _, l := range s.shards {
		retired += l.Prune()
	}
	return
}

// Close closes all shards.
func (s *Sharded) Close() {
	for _, l := range s.shards {
		if l != nil {
			l.Close()
		}
	}
}
