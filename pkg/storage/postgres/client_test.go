package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"screenerwatch/config"
	"screenerwatch/pkg/storage/postgres"
)

func testConfig() config.PostgresConfig {
	return config.PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "yourpw",
		DBName:   "screenerwatch",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// skipWithoutDB skips tests that need a live local Postgres.
func skipWithoutDB(t *testing.T) {
	t.Helper()
	if os.Getenv("POSTGRES_TEST") == "" {
		t.Skip("set POSTGRES_TEST=1 to run against a local postgres")
	}
}

// go test -v --run ^TestPostgresInvalidDSN$
func TestPostgresInvalidDSN(t *testing.T) {
	invalidDSN := "host=invalid port=5432 user=fail password=fail dbname=fail sslmode=disable"

	_, err := postgres.NewClient(invalidDSN)
	if err == nil {
		t.Fatal("expected error for invalid DSN, got nil")
	}
}

// go test -v --run ^TestPostgresClientWithConfig$
func TestPostgresClientWithConfig(t *testing.T) {
	skipWithoutDB(t)

	cfg := testConfig()

	client, err := postgres.NewClient(cfg.DSN("dev"))
	if err != nil {
		t.Fatalf("failed to create Postgres client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if !client.IsHealthy(ctx) {
		t.Fatal("expected healthy DB connection")
	}

	if err := client.AutoMigrateMonitorTables(); err != nil {
		t.Fatalf("auto migration failed: %v", err)
	}
}

// go test -v --run TestCreateDatabase
func TestCreateDatabase(t *testing.T) {
	skipWithoutDB(t)

	cfg := testConfig()
	cfg.DBName = "test_screenerwatch_db"

	if err := postgres.CreateDatabase(cfg); err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
}
