package excel

import (
	"context"
	stderrors "errors"
	"time"

	"launchdash/adapters/datareadiness/coercer"
	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
	"launchdash/ports"
)

// LaunchSource loads the launch table from a CSV or XLSX file
type LaunchSource struct {
	config  ExcelConfig
	coercer *coercer.TypeCoercer
	logger  *internal.Logger
}

var _ ports.LaunchSource = (*LaunchSource)(nil)

// NewLaunchSource creates a file-backed launch source
func NewLaunchSource(config ExcelConfig, logger *internal.Logger) *LaunchSource {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &LaunchSource{
		config:  config,
		coercer: coercer.NewTypeCoercer(config.CoercionConfig),
		logger:  logger,
	}
}

// Describe returns the file path
func (s *LaunchSource) Describe() string {
	return s.config.FilePath
}

// Load reads the file, checks the required columns and builds the table
func (s *LaunchSource) Load(ctx context.Context) (*launch.Table, error) {
	start := time.Now()
	reader := NewDataReader(s.config.FilePath, s.config.Sheet, s.logger)
	data, err := reader.ReadData()
	if err != nil {
		return nil, errors.IOError(s.config.FilePath, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := s.BuildTable(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("[LaunchSource] Loaded %d launches from %d sites in %s (%s)",
		table.Len(), len(table.Sites()), time.Since(start).Round(time.Millisecond), s.config.FilePath)
	return table, nil
}

// BuildTable converts raw rows into a validated launch table
func (s *LaunchSource) BuildTable(data *ExcelData) (*launch.Table, error) {
	var missing []string
	for _, col := range launch.RequiredColumns {
		if !data.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.SchemaViolation(core.NewMissingColumnsError(missing))
	}

	hasFlight := data.HasColumn(launch.ColumnFlightNumber)
	records := make([]launch.Record, 0, len(data.Rows))
	for i, row := range data.Rows {
		rowNum := i + 2 // header is row 1
		rec, err := s.parseRow(row, rowNum, hasFlight)
		if err != nil {
			return nil, errors.SchemaViolation(err)
		}
		records = append(records, rec)
	}

	table, err := launch.NewTable(records)
	if err != nil {
		if stderrors.Is(err, core.ErrEmptyTable) || stderrors.Is(err, core.ErrInvalidRecord) {
			return nil, errors.SchemaViolation(err)
		}
		return nil, errors.Wrap(err, "failed to build launch table")
	}
	return table, nil
}

func (s *LaunchSource) parseRow(row RawRowData, rowNum int, hasFlight bool) (launch.Record, error) {
	payload, err := s.coercer.ParseNumeric(row[launch.ColumnPayloadMass])
	if err != nil {
		return launch.Record{}, core.NewInvalidRecordError(rowNum, launch.ColumnPayloadMass, err.Error())
	}
	class, err := s.coercer.ParseInteger(row[launch.ColumnClass])
	if err != nil {
		return launch.Record{}, core.NewInvalidRecordError(rowNum, launch.ColumnClass, err.Error())
	}

	rec := launch.Record{
		LaunchSite:             s.coercer.NormalizeString(row[launch.ColumnLaunchSite]),
		PayloadMassKg:          payload,
		Class:                  launch.Outcome(class),
		BoosterVersionCategory: s.coercer.NormalizeString(row[launch.ColumnBoosterVersionCategory]),
		BoosterVersion:         s.coercer.NormalizeString(row[launch.ColumnBoosterVersion]),
	}
	if rec.LaunchSite == "" {
		return launch.Record{}, core.NewInvalidRecordError(rowNum, launch.ColumnLaunchSite, "empty value")
	}
	if err := rec.Validate(); err != nil {
		return launch.Record{}, core.NewInvalidRecordError(rowNum, launch.ColumnClass+"/"+launch.ColumnPayloadMass, err.Error())
	}

	if hasFlight && row[launch.ColumnFlightNumber] != "" {
		flight, err := s.coercer.ParseInteger(row[launch.ColumnFlightNumber])
		if err != nil {
			return launch.Record{}, core.NewInvalidRecordError(rowNum, launch.ColumnFlightNumber, err.Error())
		}
		rec.FlightNumber = flight
	}
	return rec, nil
}
