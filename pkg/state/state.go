package state

import (
	"context"
)

// ScoreKeeper tracks the best score reached across game sessions.
// Implementations must be thread-safe.
type ScoreKeeper interface {
	// Best returns the best score recorded so far and whether any score was recorded.
	Best(ctx context.Context) (int, bool, error)
	// Record stores score if it beats the current best and reports whether it did.
	Record(ctx context.Context, score int) (bool, error)
}
