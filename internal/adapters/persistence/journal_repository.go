package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sporelab/fungal-evolution/internal/domain/shared"
)

// GormJournalRepository persists engine events. It implements the
// application's GameLogger port so notable transitions survive restarts.
type GormJournalRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormJournalRepository creates a journal repository. The clock parameter
// is optional - if nil, defaults to RealClock for production use.
func NewGormJournalRepository(db *gorm.DB, clock shared.Clock) *GormJournalRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormJournalRepository{db: db, clock: clock}
}

// Log appends one journal row. Write failures are swallowed: journaling is
// best effort and must never block a game transition.
func (r *GormJournalRepository) Log(level, message string, metadata map[string]interface{}) {
	var metaJSON string
	if len(metadata) > 0 {
		if encoded, err := json.Marshal(metadata); err == nil {
			metaJSON = string(encoded)
		}
	}

	r.db.Create(&JournalModel{
		Timestamp: r.clock.Now(),
		Level:     level,
		Message:   message,
		Metadata:  metaJSON,
	})
}

// JournalEntry is one decoded journal row
type JournalEntry struct {
	Timestamp time.Time
	Level     string
	Message   string
	Metadata  map[string]interface{}
}

// Recent returns the newest n journal entries, newest first
func (r *GormJournalRepository) Recent(n int) ([]JournalEntry, error) {
	var models []JournalModel
	result := r.db.Order("id DESC").Limit(n).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read journal: %w", result.Error)
	}

	entries := make([]JournalEntry, 0, len(models))
	for _, model := range models {
		entry := JournalEntry{
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
		}
		if model.Metadata != "" {
			_ = json.Unmarshal([]byte(model.Metadata), &entry.Metadata)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
