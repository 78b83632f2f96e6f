package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"screenerwatch/internal/monitor"
)

// InsertChanges records one cycle's added and dropped symbols.
func (p *PostgresClient) InsertChanges(ctx context.Context, observedAt time.Time, added, dropped []string) error {
	records := make([]ChangeLogRecord, 0, len(added)+len(dropped))
	for _, symbol := range added {
		records = append(records, ChangeLogRecord{
			Symbol:     symbol,
			Kind:       ChangeAdded,
			ObservedAt: observedAt,
		})
	}
	for _, symbol := range dropped {
		records = append(records, ChangeLogRecord{
			Symbol:     symbol,
			Kind:       ChangeDropped,
			ObservedAt: observedAt,
		})
	}
	if len(records) == 0 {
		return nil
	}

	return p.DB.WithContext(ctx).Create(&records).Error
}

// RecentChanges returns the latest change-log entries, newest first.
func (p *PostgresClient) RecentChanges(ctx context.Context, limit int) ([]ChangeLogRecord, error) {
	var records []ChangeLogRecord
	err := p.DB.WithContext(ctx).
		Order("observed_at DESC").
		Limit(limit).
		Find(&records).Error

	if err != nil {
		return nil, err
	}
	return records, nil
}

func (p *PostgresClient) DeleteOldChanges(ctx context.Context, before time.Time) error {
	return p.DB.WithContext(ctx).
		Where("observed_at < ?", before).
		Delete(&ChangeLogRecord{}).Error
}

// ChangeLogReporter persists each cycle's changes as history rows.
// Best-effort: a failed write is logged and never fails the cycle.
type ChangeLogReporter struct {
	client *PostgresClient
	logger *zap.Logger
}

func NewChangeLogReporter(client *PostgresClient, logger *zap.Logger) *ChangeLogReporter {
	return &ChangeLogReporter{client: client, logger: logger}
}

func (r *ChangeLogReporter) Report(rep monitor.ChangeReport) {
	if !rep.HasChanges() {
		return
	}

	// context for DB insert (short timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.InsertChanges(ctx, rep.Timestamp, rep.Added, rep.Dropped); err != nil {
		r.logger.Warn("failed to persist change log", zap.Error(err))
	}
}
