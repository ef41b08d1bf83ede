package testkit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"launchdash/domain/launch"
)

// TestKit provides launch fixtures for tests and demos
type TestKit struct {
	table *launch.Table
}

// NewTestKit creates a kit over a seeded synthetic table
func NewTestKit() (*TestKit, error) {
	return NewTestKitWithConfig(DefaultLaunchConfig())
}

// NewTestKitWithConfig creates a kit over a synthetic table generated from config
func NewTestKitWithConfig(config LaunchGeneratorConfig) (*TestKit, error) {
	records, err := NewLaunchDataGenerator(config).GenerateRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to generate launches: %w", err)
	}
	table, err := launch.NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("failed to build launch table: %w", err)
	}
	return &TestKit{table: table}, nil
}

// Table returns the kit's launch table
func (t *TestKit) Table() *launch.Table {
	return t.table
}

// SiteScenarioRecords is the two-site table used by the pie scenarios:
// site A launches 1,0,1 and site B launches 0,0.
func SiteScenarioRecords() []launch.Record {
	return []launch.Record{
		{LaunchSite: "A", PayloadMassKg: 500, Class: launch.Success, BoosterVersionCategory: "v1.0", FlightNumber: 1},
		{LaunchSite: "A", PayloadMassKg: 1500, Class: launch.Failure, BoosterVersionCategory: "v1.1", FlightNumber: 2},
		{LaunchSite: "B", PayloadMassKg: 2500, Class: launch.Failure, BoosterVersionCategory: "v1.1", FlightNumber: 3},
		{LaunchSite: "A", PayloadMassKg: 3500, Class: launch.Success, BoosterVersionCategory: "FT", FlightNumber: 4},
		{LaunchSite: "B", PayloadMassKg: 4500, Class: launch.Failure, BoosterVersionCategory: "FT", FlightNumber: 5},
	}
}

// PayloadScenarioRecords holds payloads 500, 2000 and 8000 kg
func PayloadScenarioRecords() []launch.Record {
	return []launch.Record{
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 500, Class: launch.Failure, BoosterVersionCategory: "v1.0", FlightNumber: 1},
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 2000, Class: launch.Success, BoosterVersionCategory: "FT", FlightNumber: 2},
		{LaunchSite: "CCAFS LC-40", PayloadMassKg: 8000, Class: launch.Success, BoosterVersionCategory: "B5", FlightNumber: 3},
	}
}

// MustTable builds a table or panics; for fixtures only
func MustTable(records []launch.Record) *launch.Table {
	table, err := launch.NewTable(records)
	if err != nil {
		panic(err)
	}
	return table
}

// csvHeader follows the public dataset, including its unnamed index column
var csvHeader = []string{
	"",
	launch.ColumnFlightNumber,
	launch.ColumnLaunchSite,
	launch.ColumnClass,
	launch.ColumnPayloadMass,
	launch.ColumnBoosterVersion,
	launch.ColumnBoosterVersionCategory,
}

// WriteCSV writes records to path in the launch records file layout
func WriteCSV(path string, records []launch.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(r.FlightNumber),
			r.LaunchSite,
			strconv.Itoa(int(r.Class)),
			strconv.FormatFloat(r.PayloadMassKg, 'f', 1, 64),
			r.BoosterVersion,
			r.BoosterVersionCategory,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
