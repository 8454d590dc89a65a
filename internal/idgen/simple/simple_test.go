package simple

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialIDs(t *testing.T) {
	g := New("BK")
	ctx := context.Background()

	first, err := g.GetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BK-001", first)

	second, err := g.GetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BK-002", second)
}

func TestConcurrentIDsAreUnique(t *testing.T) {
	g := New("EV")
	ctx := context.Background()

	const n = 64

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			id, err := g.GetID(ctx)
			assert.NoError(t, err)

			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, ids, n)
}
