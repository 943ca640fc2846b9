package radix32

// Node layout, 7 slots of 8 bytes:
// [ child 0 | child 1 | child 2 | child 3 | parent | value | flags ]
//
// Children and parent are node references, 0 means none.
// Bit 0 of flags tells if the value slot is set, so 0 is a valid value.

const (
	bitsPerLevel = 2
	fanout       = 1 << bitsPerLevel
	treeHeight   = 32 / bitsPerLevel
	chunkMask    = fanout - 1

	parentSlot = fanout
	valueSlot  = fanout + 1
	flagsSlot  = fanout + 2
	nodeSlots  = fanout + 3
	nodeBytes  = nodeSlots * slotBytes

	hasValue uint64 = 1
)

// nodeRef is a pool index (high 32 bits) and slot offset (low 32 bits)
type nodeRef uint64

// chunk returns the 2 bit slice of key consumed at level i, most significant first
func chunk(key uint32, level int) int {
	return int(key>>(32-(level+1)*bitsPerLevel)) & chunkMask
}

// keyAppend shifts the chunk k for the next level into a key prefix
func keyAppend(prefix uint32, k int) uint32 {
	return prefix<<bitsPerLevel | uint32(k)
}

func clearNode(n []uint64) {
	for i := range n[:nodeSlots] {
		n[i] = 0
	}
}

func isEmpty(n []uint64) bool {
	if n[flagsSlot]&hasValue != 0 {
		return false
	}
	for _, c := range n[:fanout] {
		if c != 0 {
			return false
		}
	}
	return true
}
