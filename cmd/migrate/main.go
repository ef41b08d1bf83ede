package main

import (
	"context"
	"log"
	"os"

	"launchdash/adapters/excel"
	"launchdash/adapters/postgres"
	"launchdash/internal"
	"launchdash/internal/migration"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <database_url> <launch_file> [table]")
	}

	databaseURL := os.Args[1]
	launchFile := os.Args[2]
	table := "launch_records"
	if len(os.Args) > 3 {
		table = os.Args[3]
	}

	logger := internal.NewDefaultLogger()
	defer logger.Sync()

	runner, err := migration.NewRunner(table)
	if err != nil {
		log.Fatalf("Invalid table: %v", err)
	}

	ctx := context.Background()

	// Validate the file completely before touching the database
	cfg := excel.DefaultExcelConfig()
	cfg.FilePath = launchFile
	launches, err := excel.NewLaunchSource(cfg, logger).Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", launchFile, err)
	}

	db, err := postgres.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	n, err := runner.Seed(ctx, db, launches)
	if err != nil {
		log.Fatalf("Seeding %s failed: %v", table, err)
	}
	logger.Info("Seeded %d launches from %s into %s (schema %s)", n, launchFile, table, runner.Version())
}
