package persistence

import (
	"time"
)

// SaveModel represents the saves table: one serialized state blob per
// namespace key
type SaveModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	StateJSON string    `gorm:"column:state;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (SaveModel) TableName() string {
	return "saves"
}

// JournalModel represents the journal table holding engine event history
type JournalModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	Level     string    `gorm:"column:level;not null;default:'INFO'"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Metadata  string    `gorm:"column:metadata;type:text"` // JSON as text
}

func (JournalModel) TableName() string {
	return "journal"
}
