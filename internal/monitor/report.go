package monitor

import (
	"time"

	"go.uber.org/zap"

	"screenerwatch/pkg/finviz"
)

// ChangeReport is the result of one poll cycle. It is never persisted as-is;
// it only exists to be handed to reporters.
type ChangeReport struct {
	Timestamp      time.Time
	Added          []string // sorted
	Dropped        []string // sorted
	TotalObserved  int
	EstimatedTotal int // advertised source total, 0 when unknown

	// Details holds the current fetch's records keyed by symbol. Dropped
	// symbols have no entry because the source no longer lists them.
	Details map[string]finviz.TickerRecord
}

func (r ChangeReport) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Dropped) > 0
}

// Reporter receives a ChangeReport. Delivery is best-effort; a reporter must
// never fail the cycle that produced the report.
type Reporter interface {
	Report(r ChangeReport)
}

// MultiReporter fans a report out to several reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(r ChangeReport) {
	for _, reporter := range m {
		reporter.Report(r)
	}
}

// LogReporter writes change reports to the application log.
type LogReporter struct {
	logger   *zap.Logger
	pageSize int // rows per source page, logged with the coverage warning
}

func NewLogReporter(logger *zap.Logger, pageSize int) *LogReporter {
	return &LogReporter{logger: logger, pageSize: pageSize}
}

func (l *LogReporter) Report(r ChangeReport) {
	if len(r.Added) > 0 {
		l.logger.Info("tickers added",
			zap.Int("count", len(r.Added)),
			zap.Strings("symbols", r.Added),
		)
		for _, symbol := range r.Added {
			record, ok := r.Details[symbol]
			if !ok {
				continue
			}
			l.logger.Info("added ticker detail",
				zap.String("symbol", record.Symbol),
				zap.String("company", record.Company),
				zap.String("sector", record.Sector),
				zap.String("price", record.Price),
				zap.String("change", record.ChangePercent),
			)
		}
	}

	if len(r.Dropped) > 0 {
		// Details are not available for dropped symbols.
		l.logger.Info("tickers dropped",
			zap.Int("count", len(r.Dropped)),
			zap.Strings("symbols", r.Dropped),
		)
	}

	if !r.HasChanges() {
		l.logger.Info("no ticker changes detected", zap.Int("total", r.TotalObserved))
	}

	// The advertised total exceeding the rows actually retrieved means the
	// listing spills past the one page being fetched.
	if r.EstimatedTotal > r.TotalObserved {
		l.logger.Warn("only the first screener page is monitored",
			zap.Int("observed", r.TotalObserved),
			zap.Int("estimated_total", r.EstimatedTotal),
			zap.Int("page_size", l.pageSize),
		)
	}
}
