package radix32

import "errors"

var (
	// ErrOutOfMemory is returned when a new pool would exceed Options.MemoryLimit.
	// Pools already in the ring stay usable.
	ErrOutOfMemory = errors.New("radix32: out of memory")
	// ErrSlotOccupied is returned by Insert when the key already holds a different value.
	ErrSlotOccupied = errors.New("radix32: key holds a different value")
	// ErrDuplicateValue is returned by Insert when the key already holds the same value.
	ErrDuplicateValue = errors.New("radix32: key already holds this value")
	// ErrKeyNotFound is returned by Delete for an absent key.
	ErrKeyNotFound = errors.New("radix32: key not found")
	// ErrClosed is returned by operations on a closed Tree.
	ErrClosed = errors.New("radix32: tree is closed")
)
