package engine

import (
	"context"

	"github.com/sporelab/fungal-evolution/internal/domain/game"
)

// SaveRepository is the persistence gateway: a one-shot loader and a snapshot
// writer keyed by a fixed namespace. Load returns (nil, nil) when no save
// exists yet.
type SaveRepository interface {
	Load(ctx context.Context) (*game.State, error)
	Save(ctx context.Context, state *game.State) error
}
