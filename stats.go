package radix32

// operation stats, kept per tree since a tree is single threaded
type opStats struct {
	insert            uint64
	insertDuplicate   uint64
	insertOccupied    uint64
	insertOutOfMemory uint64
	nodesCreated      uint64

	delete     uint64
	deleteMiss uint64
	pruned     uint64
}

// Stats updates the given map with tree info and operation stats
func (idx *Tree) Stats(stats map[string]interface{}) {
	a := idx.arena
	stats["index_kind"] = "radix32"
	stats["objects"] = idx.liveObjects
	stats["pool_pages"] = a.pages
	stats["pools"] = len(a.pools)
	stats["pools_allocated"] = a.poolsAllocated
	stats["bytes_allocated"] = a.bytes
	stats["memory_limit"] = a.limit
	if idx.liveObjects > 0 {
		stats["bytes_per_key"] = float64(a.bytes) / float64(idx.liveObjects)
	}
	stats["node_bytes"] = nodeBytes
	stats["free_nodes"] = len(idx.alloc.free)
	stats["nodes_allocated"] = idx.alloc.nodesAllocated
	stats["nodes_released"] = idx.alloc.nodesReleased
	stats["nodes_reused"] = idx.alloc.nodesReused

	stats["op_insert"] = idx.ops.insert
	stats["op_insert_duplicate"] = idx.ops.insertDuplicate
	stats["op_insert_occupied"] = idx.ops.insertOccupied
	stats["op_insert_out_of_memory"] = idx.ops.insertOutOfMemory
	stats["op_insert_nodes_created"] = idx.ops.nodesCreated
	stats["op_delete"] = idx.ops.delete
	stats["op_delete_miss"] = idx.ops.deleteMiss
	stats["op_pruned"] = idx.ops.pruned
}
