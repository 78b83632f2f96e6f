package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotStore persists the monitor's symbol snapshot in Postgres. It
// satisfies the monitor's SnapshotStore contract: Load returns the set
// committed by the last successful cycle, ReplaceAll swaps it wholesale.
type SnapshotStore struct {
	db *gorm.DB
}

func NewSnapshotStore(client *PostgresClient) *SnapshotStore {
	return &SnapshotStore{db: client.DB}
}

// Load returns the stored symbol set. Empty on first-ever run.
func (s *SnapshotStore) Load(ctx context.Context) (map[string]struct{}, error) {
	var symbols []string
	err := s.db.WithContext(ctx).
		Model(&SymbolRecord{}).
		Pluck("symbol", &symbols).Error
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	set := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		set[symbol] = struct{}{}
	}
	return set, nil
}

// ReplaceAll swaps the stored snapshot for the given set inside a single
// transaction, so a reader never observes a partially replaced set.
func (s *SnapshotStore) ReplaceAll(ctx context.Context, symbols map[string]struct{}) error {
	records := make([]SymbolRecord, 0, len(symbols))
	for symbol := range symbols {
		records = append(records, SymbolRecord{Symbol: symbol})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&SymbolRecord{}).Error; err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(records, 500).Error; err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		return nil
	})
}
