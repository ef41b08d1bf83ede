package migration

import (
	"context"
	"fmt"
	"strings"

	"launchdash/adapters/postgres"
	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner creates the launch records schema
type MigrationRunner struct {
	version string
	table   string
}

// NewRunner creates a migration runner for the named launch table
func NewRunner(table string) (*MigrationRunner, error) {
	if err := postgres.ValidateTableName(table); err != nil {
		return nil, err
	}
	return &MigrationRunner{
		version: "1.0.0",
		table:   table,
	}, nil
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Table returns the table the runner manages
func (r *MigrationRunner) Table() string {
	return r.table
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, r.createTableSQL()); err != nil {
		return errors.DatabaseError("failed to create "+r.table+" table", err)
	}
	if _, err := db.ExecContext(ctx, r.createIndexSQL()); err != nil {
		return errors.DatabaseError("failed to create indexes", err)
	}
	return nil
}

func (r *MigrationRunner) createTableSQL() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			flight_number INTEGER,
			launch_site VARCHAR(100) NOT NULL CHECK (launch_site <> ''),
			payload_mass_kg DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
			class SMALLINT NOT NULL CHECK (class IN (0, 1)),
			booster_version VARCHAR(100),
			booster_version_category VARCHAR(50) NOT NULL
		)
	`, r.table)
}

// createIndexSQL names the index after the table; index names cannot be schema-qualified
func (r *MigrationRunner) createIndexSQL() string {
	name := "idx_" + strings.ReplaceAll(r.table, ".", "_") + "_launch_site"
	return fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s(launch_site)`, name, r.table)
}

func (r *MigrationRunner) insertSQL() string {
	return fmt.Sprintf(`
		INSERT INTO %s (flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category)
		VALUES (:flight_number, :launch_site, :payload_mass_kg, :class, :booster_version, :booster_version_category)
	`, r.table)
}

// Seed replaces the table contents with the given table's records in one transaction
func (r *MigrationRunner) Seed(ctx context.Context, db *sqlx.DB, table *launch.Table) (int, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.DatabaseError("failed to begin seed transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`TRUNCATE %s RESTART IDENTITY`, r.table)); err != nil {
		return 0, errors.DatabaseError("failed to truncate "+r.table, err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, r.insertSQL())
	if err != nil {
		return 0, errors.DatabaseError("failed to prepare insert", err)
	}
	defer stmt.Close()

	for i, rec := range table.Records() {
		if _, err := stmt.ExecContext(ctx, seedRow(rec)); err != nil {
			return i, errors.DatabaseError(fmt.Sprintf("failed to insert row %d", i+1), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.DatabaseError("failed to commit seed", err)
	}
	return table.Len(), nil
}

// seedRow stores zero flight numbers and empty booster versions as NULL
func seedRow(rec launch.Record) map[string]interface{} {
	row := map[string]interface{}{
		"flight_number":            nil,
		"launch_site":              rec.LaunchSite,
		"payload_mass_kg":          rec.PayloadMassKg,
		"class":                    int(rec.Class),
		"booster_version":          nil,
		"booster_version_category": rec.BoosterVersionCategory,
	}
	if rec.FlightNumber != 0 {
		row["flight_number"] = rec.FlightNumber
	}
	if rec.BoosterVersion != "" {
		row["booster_version"] = rec.BoosterVersion
	}
	return row
}
