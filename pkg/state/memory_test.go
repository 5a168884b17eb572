package state

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryScoreKeeper_Record(t *testing.T) {
	ctx := context.Background()
	k := NewInMemoryScoreKeeper()

	_, ok, err := k.Best(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	improved, err := k.Record(ctx, -5)
	require.NoError(t, err)
	assert.True(t, improved, "first score is always the best")

	improved, err = k.Record(ctx, 20)
	require.NoError(t, err)
	assert.True(t, improved)

	improved, err = k.Record(ctx, 20)
	require.NoError(t, err)
	assert.False(t, improved, "ties do not replace the best")

	improved, err = k.Record(ctx, 10)
	require.NoError(t, err)
	assert.False(t, improved)

	best, ok, err := k.Best(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 20, best)
}

func TestInMemoryScoreKeeper_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	k := NewInMemoryScoreKeeper()

	_, err := k.Record(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)

	_, _, err = k.Best(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInMemoryScoreKeeper_concurrentRecords(t *testing.T) {
	ctx := context.Background()
	k := NewInMemoryScoreKeeper()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := k.Record(ctx, score)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	best, ok, err := k.Best(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 99, best)
}
