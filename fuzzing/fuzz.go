package fuzzing

import (
	"encoding/binary"
	"fmt"

	"github.com/jayloop/radix32"
)

// Fuzz builds a tree based on the input data which is treated as a list of 12 byte records,
// a big endian uint32 key followed by a big endian uint64 value.
// It checks every operation against a map and tries to cover as much code as possible.
func Fuzz(data []byte) int {
	if len(data) < 12 || len(data)%12 != 0 {
		return -1
	}
	trie, err := radix32.NewTree(&radix32.Options{
		PoolPages:     1,
		PreallocNodes: -1,
	})
	if err != nil {
		panic(err)
	}
	// Close it so pools are dropped right away
	defer trie.Close()

	db := make(map[uint32]uint64)

	// Build the tree
	for ; len(data) >= 12; data = data[12:] {
		key := binary.BigEndian.Uint32(data)
		value := binary.BigEndian.Uint64(data[4:])
		err := trie.Insert(key, value)
		present, exists := db[key]
		switch {
		case !exists:
			if err != nil {
				panic(fmt.Sprintf("Insert %d failed: %v", key, err))
			}
			db[key] = value
		case present == value:
			if err != radix32.ErrDuplicateValue {
				panic(fmt.Sprintf("Insert %d expected duplicate, got %v", key, err))
			}
		default:
			if err != radix32.ErrSlotOccupied {
				panic(fmt.Sprintf("Insert %d expected occupied, got %v", key, err))
			}
		}
	}
	if trie.Len() != len(db) {
		panic(fmt.Sprintf("Len %d, expected %d", trie.Len(), len(db)))
	}

	// Lookup all items
	for key, value := range db {
		v, found := trie.Lookup(key)
		if !found {
			panic(fmt.Sprintf("Key %d not found", key))
		}
		if v != value {
			panic(fmt.Sprintf("Wrong result for lookup %d", key))
		}
	}

	// Iterate it, keys must come in ascending order
	i := trie.NewIterator()
	var (
		count int
		last  uint32
	)
	for i.Next() {
		if count > 0 && i.Key() <= last {
			panic(fmt.Sprintf("Iterator returned %d after %d", i.Key(), last))
		}
		last = i.Key()
		count++
	}
	i.Close()
	if count != len(db) {
		panic(fmt.Sprintf("Iterated %d items, expected %d", count, len(db)))
	}

	// Delete it
	for key := range db {
		if err := trie.Delete(key); err != nil {
			panic(fmt.Sprintf("Key %d not found during delete", key))
		}
		if _, found := trie.Lookup(key); found {
			panic(fmt.Sprintf("Key %d found after delete", key))
		}
	}

	// Prune it, only the root should be left
	trie.Prune()
	if nodes, values := trie.Count(); nodes != 1 || values != 0 {
		panic(fmt.Sprintf("Tree not empty after prune: %d nodes, %d values", nodes, values))
	}
	return 1
}
