package radix32

import (
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocked(t *testing.T) {
	l, err := NewLocked(nil)
	require.NoError(t, err)
	defer l.Close()

	const workers, perWorker = 8, 2000
	var wg conc.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Go(func() {
			for i := 0; i < perWorker; i++ {
				key := uint32(w*perWorker + i)
				if err := l.Insert(key, uint64(key)); err != nil {
					t.Errorf("Insert %d: %v", key, err)
				}
				if v, found := l.Lookup(key); !found || v != uint64(key) {
					t.Errorf("Lookup %d: got %d (found %v)", key, v, found)
				}
			}
		})
	}
	wg.Wait()
	assert.Equal(t, workers*perWorker, l.Len())

	for w := 0; w < workers; w++ {
		w := w
		wg.Go(func() {
			// whole groups of 4 keys, so their parents are left empty
			for i := 0; i < perWorker; i++ {
				if (i/4)%2 == 1 {
					continue
				}
				key := uint32(w*perWorker + i)
				if err := l.Delete(key); err != nil {
					t.Errorf("Delete %d: %v", key, err)
				}
			}
		})
	}
	wg.Wait()
	assert.Equal(t, workers*perWorker/2, l.Len())
	assert.Greater(t, l.Prune(), 0)

	l.Do(func(tree *Tree) {
		_, values := tree.Count()
		assert.Equal(t, workers*perWorker/2, values)
	})
}

func TestSharded(t *testing.T) {
	s, err := NewSharded(4, &Options{PoolPages: 1})
	require.NoError(t, err)
	defer s.Close()
	assert.Len(t, s.shards, 4)

	const N = 10000
	var wg conc.WaitGroup
	for w := 0; w < 4; w++ {
		w := w
		wg.Go(func() {
			for key := uint32(w); key < N; key += 4 {
				if err := s.Insert(key, uint64(key)+1); err != nil {
					t.Errorf("Insert %d: %v", key, err)
				}
			}
		})
	}
	wg.Wait()
	assert.Equal(t, N, s.Len())

	// dense keys spread over all shards
	for _, l := range s.shards {
		assert.Greater(t, l.Len(), N/8)
	}

	for key := uint32(0); key < N; key++ {
		v, found := s.Lookup(key)
		require.True(t, found)
		require.Equal(t, uint64(key)+1, v)
	}
	assert.ErrorIs(t, s.Insert(7, 1), ErrSlotOccupied)
	require.NoError(t, s.Delete(7))
	assert.ErrorIs(t, s.Delete(7), ErrKeyNotFound)
	assert.Equal(t, N-1, s.Len())
	s.Prune()
	for key := uint32(0); key < N; key++ {
		_, found := s.Lookup(key)
		require.Equal(t, key != 7, found)
	}
}
