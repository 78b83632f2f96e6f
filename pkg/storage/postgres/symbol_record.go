package postgres

import "time"

// SymbolRecord is one symbol of the snapshot taken by the most recent
// successful poll cycle. The table as a whole is the snapshot; it is
// replaced wholesale, never mutated row by row.
type SymbolRecord struct {
	ID uint `gorm:"primaryKey"`

	Symbol string `gorm:"type:text;not null;uniqueIndex:idx_snapshot_symbol"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (SymbolRecord) TableName() string {
	return "snapshot_symbol"
}

// ChangeLogRecord is one added or dropped symbol observed by a poll cycle.
// Kept as history; never read back by the monitor itself.
type ChangeLogRecord struct {
	ID uint `gorm:"primaryKey"`

	Symbol string `gorm:"type:text;not null;index:idx_change_symbol"`

	// Kind is either ChangeAdded or ChangeDropped.
	Kind string `gorm:"type:varchar(10);not null"`

	ObservedAt time.Time `gorm:"not null;index:idx_change_observed"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (ChangeLogRecord) TableName() string {
	return "change_log"
}

const (
	ChangeAdded   = "added"
	ChangeDropped = "dropped"
)
