package radix32_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/jayloop/radix32"
)

func Example() {
	tree, err := radix32.NewTree(nil)
	if err != nil {
		panic(err)
	}
	defer tree.Close()

	_ = tree.Insert(32, 2048)
	_ = tree.Insert(9999, 2049)
	tree.Print(os.Stdout)

	_ = tree.Delete(9999)
	v, found := tree.Lookup(32)
	fmt.Println(v, found)
	_, found = tree.Lookup(9999)
	fmt.Println(found)
	// Output:
	// 800
	// 801
	// 2048 true
	// false
}

func ExampleTree_Insert() {
	tree, _ := radix32.NewTree(nil)
	defer tree.Close()

	fmt.Println(tree.Insert(5, 100))
	fmt.Println(errors.Is(tree.Insert(5, 100), radix32.ErrDuplicateValue))
	fmt.Println(errors.Is(tree.Insert(5, 200), radix32.ErrSlotOccupied))
	// Output:
	// <nil>
	// true
	// true
}

func ExampleNewTree() {
	tree, err := radix32.NewTree(&radix32.Options{
		PoolPages:   16,
		MemoryLimit: 1 << 20,
	})
	if err != nil {
		panic(err)
	}
	tree.Close()
}

func ExampleNewSharded() {
	s, err := radix32.NewSharded(4, nil)
	if err != nil {
		panic(err)
	}
	defer s.Close()
	_ = s.Insert(1, 1)
	fmt.Println(s.Len())
	// Output: 1
}
