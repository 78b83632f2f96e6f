package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"screenerwatch/config"
	"screenerwatch/internal/monitor"
	"screenerwatch/logger"
	"screenerwatch/pkg/finviz"
	"screenerwatch/pkg/storage/postgres"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize PostgreSQL client and snapshot tables
	postgresClient, err := postgres.InitializeAndMigrate(cfg.Postgres, true, cfg.Log.Environment)
	if err != nil {
		log.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer postgresClient.Close()

	fetcher := finviz.NewFetcher(cfg.Screener.URL, cfg.Screener.UserAgent, cfg.Screener.Timeout)
	store := postgres.NewSnapshotStore(postgresClient)
	reporter := monitor.MultiReporter{
		monitor.NewLogReporter(log, cfg.Screener.PageSize),
		postgres.NewChangeLogReporter(postgresClient, log),
	}

	mon := monitor.New(monitor.Config{
		Interval:   cfg.Screener.Interval,
		Timeout:    cfg.Screener.Timeout,
		MinColumns: cfg.Screener.MinColumns,
	}, fetcher, store, reporter, log)

	if err := mon.Start(context.Background()); err != nil {
		log.Fatal("monitor failed to start", zap.Error(err))
	}

	// Block until interrupted, then let the in-flight cycle finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := mon.Stop(ctx); err != nil {
		log.Warn("monitor did not stop cleanly", zap.Error(err))
	}
}
