package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
	"launchdash/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// launchRow mirrors one row of the launch table; nullable columns use sql.Null types
type launchRow struct {
	LaunchSite             string          `db:"launch_site"`
	PayloadMassKg          sql.NullFloat64 `db:"payload_mass_kg"`
	Class                  sql.NullInt64   `db:"class"`
	BoosterVersionCategory string          `db:"booster_version_category"`
	FlightNumber           sql.NullInt64   `db:"flight_number"`
	BoosterVersion         sql.NullString  `db:"booster_version"`
}

// launchRepository reads the launch table from PostgreSQL. It never writes.
type launchRepository struct {
	db     *sqlx.DB
	table  string
	logger *internal.Logger
}

// NewLaunchRepository creates a Postgres-backed launch source reading from table
func NewLaunchRepository(db *sqlx.DB, table string, logger *internal.Logger) (ports.LaunchSource, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &launchRepository{db: db, table: table, logger: logger}, nil
}

// ValidateTableName accepts a plain or schema-qualified identifier such as launch_records or spacex.launches
func ValidateTableName(table string) error {
	if !identifierPattern.MatchString(table) {
		return errors.ConfigInvalid(fmt.Sprintf("invalid launch table name %q", table))
	}
	return nil
}

// Connect opens and pings the database
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}
	return db, nil
}

// Describe names the source table
func (r *launchRepository) Describe() string {
	return "postgres:" + r.table
}

// Load selects every launch in flight order and builds the table
func (r *launchRepository) Load(ctx context.Context) (*launch.Table, error) {
	start := time.Now()
	query := fmt.Sprintf(`SELECT
		launch_site, payload_mass_kg, class, booster_version_category,
		flight_number, booster_version
	FROM %s
	ORDER BY flight_number NULLS LAST`, r.table)

	var rows []launchRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.IOError(r.Describe(), err)
	}

	records, err := toRecords(rows)
	if err != nil {
		return nil, errors.SchemaViolation(err)
	}

	table, err := launch.NewTable(records)
	if err != nil {
		if stderrors.Is(err, core.ErrEmptyTable) || stderrors.Is(err, core.ErrInvalidRecord) {
			return nil, errors.SchemaViolation(err)
		}
		return nil, errors.Wrap(err, "failed to build launch table")
	}

	r.logger.Info("[LaunchRepository] Loaded %d launches from %s in %s",
		table.Len(), r.table, time.Since(start).Round(time.Millisecond))
	return table, nil
}

// toRecords converts scanned rows, rejecting NULLs in required columns
func toRecords(rows []launchRow) ([]launch.Record, error) {
	records := make([]launch.Record, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.LaunchSite) == "" {
			return nil, core.NewInvalidRecordError(i+1, launch.ColumnLaunchSite, "empty value")
		}
		if !row.PayloadMassKg.Valid {
			return nil, core.NewInvalidRecordError(i+1, launch.ColumnPayloadMass, "NULL value")
		}
		if !row.Class.Valid {
			return nil, core.NewInvalidRecordError(i+1, launch.ColumnClass, "NULL value")
		}
		rec := launch.Record{
			LaunchSite:             row.LaunchSite,
			PayloadMassKg:          row.PayloadMassKg.Float64,
			Class:                  launch.Outcome(row.Class.Int64),
			BoosterVersionCategory: row.BoosterVersionCategory,
			FlightNumber:           int(row.FlightNumber.Int64),
			BoosterVersion:         row.BoosterVersion.String,
		}
		if err := rec.Validate(); err != nil {
			return nil, core.NewInvalidRecordError(i+1, launch.ColumnClass+"/"+launch.ColumnPayloadMass, err.Error())
		}
		records = append(records, rec)
	}
	return records, nil
}
