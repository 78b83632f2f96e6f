package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"screenerwatch/pkg/finviz"
)

// Fetcher acquires the raw screener page.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// SnapshotStore holds the symbol set observed by the last successful cycle.
// ReplaceAll must be atomic: a concurrent Load never observes a partially
// replaced set.
type SnapshotStore interface {
	Load(ctx context.Context) (map[string]struct{}, error)
	ReplaceAll(ctx context.Context, symbols map[string]struct{}) error
}

// Config holds monitor configuration.
type Config struct {
	Interval   time.Duration // poll interval (default: 5m)
	Timeout    time.Duration // per-fetch timeout (default: 10s)
	MinColumns int           // minimum cells for a valid listing row
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:   5 * time.Minute,
		Timeout:    10 * time.Second,
		MinColumns: finviz.MinColumns,
	}
}

// Monitor periodically fetches the screener listing and reports symbols that
// were added or dropped since the last successful cycle.
type Monitor struct {
	cfg      Config
	fetcher  Fetcher
	store    SnapshotStore
	reporter Reporter
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Monitor with explicit collaborators.
func New(cfg Config, fetcher Fetcher, store SnapshotStore, reporter Reporter, logger *zap.Logger) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MinColumns <= 0 {
		cfg.MinColumns = finviz.MinColumns
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		cfg:      cfg,
		fetcher:  fetcher,
		store:    store,
		reporter: reporter,
		logger:   logger,
	}
}

// Start begins the polling loop.
func (m *Monitor) Start(ctx context.Context) error {
	m.ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.run()

	m.logger.Info("screener monitor started",
		zap.Duration("interval", m.cfg.Interval),
		zap.Duration("timeout", m.cfg.Timeout),
	)

	return nil
}

// Stop gracefully shuts down the monitor, waiting for an in-flight cycle to
// reach a terminal state.
func (m *Monitor) Stop(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("screener monitor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop. Cycles execute sequentially on this
// goroutine, so no two cycles ever touch the snapshot store concurrently; a
// cycle that outlives the interval simply delays the next tick.
func (m *Monitor) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	m.cycle()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cycle()
		}
	}
}

func (m *Monitor) cycle() {
	start := time.Now()

	report, err := m.RunCycle(m.ctx)
	if err != nil {
		m.logger.Warn("poll cycle failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return
	}

	m.logger.Info("poll cycle complete",
		zap.Int("observed", report.TotalObserved),
		zap.Int("added", len(report.Added)),
		zap.Int("dropped", len(report.Dropped)),
		zap.Duration("duration", time.Since(start)),
	)
}

// RunCycle executes one full fetch -> parse -> diff -> report -> commit
// sequence. Fetch and parse failures, including an empty listing, abort the
// cycle before the diff so the stored snapshot is never cleared by a
// transient outage. The report is handed to the reporter before the commit,
// so a failed commit still surfaces that cycle's changes; the next cycle
// then re-diffs against whatever was last durably committed.
func (m *Monitor) RunCycle(ctx context.Context) (ChangeReport, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	page, err := m.fetcher.Fetch(fetchCtx)
	cancel()
	if err != nil {
		return ChangeReport{}, fmt.Errorf("fetch: %w", err)
	}

	records, err := finviz.ParseRows(page, m.cfg.MinColumns)
	if err != nil {
		// An empty or unparseable listing is indistinguishable from a
		// blocked request; treated like a fetch failure.
		return ChangeReport{}, fmt.Errorf("parse: %w", err)
	}

	current := finviz.Symbols(records)

	previous, err := m.store.Load(ctx)
	if err != nil {
		return ChangeReport{}, fmt.Errorf("load snapshot: %w", err)
	}

	added, dropped := Diff(previous, current)

	details := make(map[string]finviz.TickerRecord, len(records))
	for _, record := range records {
		details[record.Symbol] = record
	}

	report := ChangeReport{
		Timestamp:      time.Now(),
		Added:          added,
		Dropped:        dropped,
		TotalObserved:  len(current),
		EstimatedTotal: finviz.EstimateTotal(page),
		Details:        details,
	}

	if m.reporter != nil {
		m.reporter.Report(report)
	}

	// Committed unconditionally on success, even when the diff is empty, so
	// the store always reflects the most recent successful fetch.
	if err := m.store.ReplaceAll(ctx, current); err != nil {
		return report, fmt.Errorf("commit snapshot: %w", err)
	}

	return report, nil
}
