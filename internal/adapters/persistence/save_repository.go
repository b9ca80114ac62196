package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sporelab/fungal-evolution/internal/domain/game"
)

// DefaultSaveKey is the fixed namespace the game state blob is stored under
const DefaultSaveKey = "fungal_evolution_save_v1"

// GormSaveRepository implements the engine's save gateway using GORM. The
// state aggregate is stored as a single JSON blob keyed by namespace.
type GormSaveRepository struct {
	db  *gorm.DB
	key string
}

// NewGormSaveRepository creates a save repository under the default namespace
func NewGormSaveRepository(db *gorm.DB) *GormSaveRepository {
	return &GormSaveRepository{db: db, key: DefaultSaveKey}
}

// NewGormSaveRepositoryWithKey creates a save repository under a custom
// namespace (used by tests to isolate fixtures)
func NewGormSaveRepositoryWithKey(db *gorm.DB, key string) *GormSaveRepository {
	return &GormSaveRepository{db: db, key: key}
}

// Load retrieves the last snapshot. Returns (nil, nil) when no save exists.
func (r *GormSaveRepository) Load(ctx context.Context) (*game.State, error) {
	var model SaveModel
	result := r.db.WithContext(ctx).Where("key = ?", r.key).First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load save: %w", result.Error)
	}

	var state game.State
	if err := json.Unmarshal([]byte(model.StateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to decode save blob: %w", err)
	}
	return &state, nil
}

// Save writes a snapshot, replacing the previous blob under the namespace
func (r *GormSaveRepository) Save(ctx context.Context, state *game.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	model := SaveModel{
		Key:       r.key,
		StateJSON: string(blob),
		UpdatedAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to write save: %w", result.Error)
	}
	return nil
}
