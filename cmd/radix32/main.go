// Command radix32 is an interactive shell around a radix32 tree.
//
// Run with -demo to replay the classic driver: insert two keys, print, delete one,
// look up the other.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jayloop/radix32"
)

var (
	demo        = flag.Bool("demo", false, "run the demo and exit")
	poolPages   = flag.Int("pool-pages", 0, "pool size in 4 KiB pages (0 for default)")
	memoryLimit = flag.Int("memory-limit", 0, "max bytes of pool memory (0 for no limit)")
	history     = flag.String("history", "", "readline history file")
)

func main() {
	flag.Parse()

	tree, err := radix32.NewTree(&radix32.Options{
		PoolPages:   *poolPages,
		MemoryLimit: *memoryLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer tree.Close()

	if *demo {
		runDemo(os.Stdout, tree)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "radix32> ",
		HistoryFile: *history,
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("insert"),
			readline.PcItem("delete"),
			readline.PcItem("find"),
			readline.PcItem("prune"),
			readline.PcItem("admin",
				readline.PcItem("info"),
				readline.PcItem("pools"),
				readline.PcItem("free"),
				readline.PcItem("count"),
				readline.PcItem("print"),
				readline.PcItem("lookup"),
			),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	out := rl.Stdout()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		argv := strings.Fields(line)
		if len(argv) == 0 {
			continue
		}
		if argv[0] == "exit" || argv[0] == "quit" {
			break
		}
		execute(out, tree, argv)
	}
}

func runDemo(out io.Writer, tree *radix32.Tree) {
	report(out, "insert 32", tree.Insert(32, 2048))
	report(out, "insert 9999", tree.Insert(9999, 2049))
	tree.Print(out)
	report(out, "delete 9999", tree.Delete(9999))
	tree.Print(out)
	if v, found := tree.Lookup(32); found {
		fmt.Fprintf(out, "%x\n", v)
	}
}

func execute(out io.Writer, tree *radix32.Tree, argv []string) {
	switch argv[0] {
	case "insert":
		if len(argv) != 3 {
			fmt.Fprint(out, "usage: insert <key> <value>\n")
			return
		}
		key, err := strconv.ParseUint(argv[1], 0, 32)
		if err != nil {
			fmt.Fprintf(out, "bad key: %v\n", err)
			return
		}
		value, err := strconv.ParseUint(argv[2], 0, 64)
		if err != nil {
			fmt.Fprintf(out, "bad value: %v\n", err)
			return
		}
		report(out, "insert", tree.Insert(uint32(key), value))

	case "delete":
		if len(argv) != 2 {
			fmt.Fprint(out, "usage: delete <key>\n")
			return
		}
		key, err := strconv.ParseUint(argv[1], 0, 32)
		if err != nil {
			fmt.Fprintf(out, "bad key: %v\n", err)
			return
		}
		report(out, "delete", tree.Delete(uint32(key)))

	case "find":
		if len(argv) != 2 {
			fmt.Fprint(out, "usage: find <key>\n")
			return
		}
		tree.Admin(out, []string{"lookup", argv[1]})

	case "prune":
		fmt.Fprintf(out, "%d nodes retired\n", tree.Prune())

	case "admin":
		tree.Admin(out, argv[1:])

	case "help":
		fmt.Fprint(out, "commands:\ninsert <key> <value>\ndelete <key>\nfind <key>\nprune\nadmin [command]\nexit\n")

	default:
		fmt.Fprintf(out, "Unknown command '%s', try help\n", argv[0])
	}
}

func report(out io.Writer, op string, err error) {
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s: ok\n", op)
	case errors.Is(err, radix32.ErrOutOfMemory):
		fmt.Fprintf(out, "%s: out of memory (%v)\n", op, err)
	default:
		fmt.Fprintf(out, "%s: %v\n", op, err)
	}
}
