package radix32

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jayloop/table"
)

// Admin provides some tree debug and admin functions for use by a CLI or terminal.
// It takes a writer and a slice with the command and arguments.
func (idx *Tree) Admin(out io.Writer, argv []string) {
	if len(argv) == 0 {
		fmt.Fprint(out, "available commands for tree:\ninfo\npools\nfree\ncount\nprint\nlookup <key>\n")
		return
	}
	if idx.closed {
		fmt.Fprint(out, "Tree is closed\n")
		return
	}
	switch argv[0] {
	case "info":
		t := table.New("NAME", "VALUE")
		stats := make(map[string]interface{})
		idx.Stats(stats)
		t.Precision(1, 2)
		for k, v := range stats {
			t.Row(k, v)
		}
		t.Sort(0)
		t.Print(out)

	case "pools":
		// walk the ring starting at the active pool
		a := idx.arena
		t := table.New("POOL", "PAGES", "USED", "REMAINING", "NEXT", "PREV")
		t.FormatHeader(table.Format(table.Yellow))
		i := a.active
		for {
			p := a.pools[i]
			status := strconv.Itoa(i)
			if i == a.active {
				status += " (active)"
			}
			t.Row(status, len(p.data)*slotBytes/pageSize, p.cursor*slotBytes, p.remaining*slotBytes, p.next, p.prev)
			i = p.next
			if i == a.active {
				break
			}
		}
		t.Print(out)

	case "free":
		idx.alloc.printStats(out)

	case "count":
		c := NewCounter(idx)
		nodes, values := c.Count()
		fmt.Fprintf(out, "%d nodes, %d values, %d empty nodes (counted in %v)\n", nodes, values, c.EmptyNodes, c.Elapsed)
		t := table.New("LEVEL", "NODES")
		for level, n := range c.NodesPerLevel {
			t.Row(level, n)
		}
		t.Print(out)

	case "print":
		idx.Print(out)

	case "lookup":
		if len(argv) != 2 {
			fmt.Fprint(out, "usage: lookup <key>\n")
			return
		}
		key, err := parseKey(argv[1])
		if err != nil {
			fmt.Fprintf(out, "Invalid key '%s' : %v\n", argv[1], err)
			return
		}
		if v, found := idx.Lookup(key); found {
			fmt.Fprintf(out, "%d => %d (0x%x)\n", key, v, v)
		} else {
			fmt.Fprintf(out, "%d not found\n", key)
		}

	default:
		fmt.Fprintf(out, "Unknown command '%s'\n", argv[0])
	}
}

// parseKey accepts decimal, 0x hex, 0o octal and 0b binary keys
func parseKey(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	return uint32(v), err
}
