package state

import (
	"context"
	"sync"
)

type InMemoryScoreKeeper struct {
	lock     sync.RWMutex
	best     int
	recorded bool
}

var _ ScoreKeeper = &InMemoryScoreKeeper{}

func NewInMemoryScoreKeeper() *InMemoryScoreKeeper {
	return &InMemoryScoreKeeper{}
}

func (k *InMemoryScoreKeeper) Best(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	k.lock.RLock()
	defer k.lock.RUnlock()
	return k.best, k.recorded, nil
}

// Record keeps the highest score seen. Scores can be negative, so the first
// recorded score always becomes the best.
func (k *InMemoryScoreKeeper) Record(ctx context.Context, score int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	k.lock.Lock()
	defer k.lock.Unlock()
	if k.recorded && score <= k.best {
		return false, nil
	}
	k.best = score
	k.recorded = true
	return true, nil
}
