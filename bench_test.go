package radix32

import (
	"testing"

	"golang.org/x/exp/rand"
)

func treeInsert(b *testing.B, keys []uint32) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		trie, err := NewTree(nil)
		if err != nil {
			b.Fatal(err)
		}
		for i, key := range keys {
			_ = trie.Insert(key, uint64(i))
		}
		trie.Close()
	}
}

func treeLookup(b *testing.B, keys []uint32) {
	trie, err := NewTree(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer trie.Close()
	for i, key := range keys {
		_ = trie.Insert(key, uint64(i))
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, key := range keys {
			trie.Lookup(key)
		}
	}
}

func BenchmarkDenseInsert(b *testing.B) {
	treeInsert(b, fillIntegers(100000))
}

func BenchmarkSparseInsert(b *testing.B) {
	treeInsert(b, generateRandomIntegers(rand.New(rand.NewSource(0)), 100000))
}

func BenchmarkDenseLookup(b *testing.B) {
	treeLookup(b, fillIntegers(100000))
}

func BenchmarkSparseLookup(b *testing.B) {
	treeLookup(b, generateRandomIntegers(rand.New(rand.NewSource(0)), 100000))
}

// insert/delete cycles on the same keys are served from the free list
func BenchmarkInsertDeleteCycle(b *testing.B) {
	trie, err := NewTree(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer trie.Close()
	keys := generateRandomIntegers(rand.New(rand.NewSource(0)), 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, key := range keys {
			_ = trie.Insert(key, 1)
		}
		for _, key := range keys {
			_ = trie.Delete(key)
		}
	}
}
