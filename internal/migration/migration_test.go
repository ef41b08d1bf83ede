package migration

import (
	"strings"
	"testing"

	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunner(t *testing.T) {
	r, err := NewRunner("launch_records")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", r.Version())
	assert.Equal(t, "launch_records", r.Table())

	_, err = NewRunner("launch records")
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestNewRunner_SchemaQualifiedTable(t *testing.T) {
	r, err := NewRunner("spacex.launches")
	require.NoError(t, err)
	assert.Equal(t, "spacex.launches", r.Table())

	assert.Contains(t, r.createTableSQL(), "CREATE TABLE IF NOT EXISTS spacex.launches")
	assert.Contains(t, r.createIndexSQL(), "idx_spacex_launches_launch_site ON spacex.launches(launch_site)")
	assert.NotContains(t, r.createIndexSQL(), "idx_spacex.launches")
}

func TestRunner_SQLUsesTable(t *testing.T) {
	r, err := NewRunner("spacex_launches")
	require.NoError(t, err)

	assert.Contains(t, r.createTableSQL(), "CREATE TABLE IF NOT EXISTS spacex_launches")
	assert.Contains(t, r.createTableSQL(), "CHECK (class IN (0, 1))")
	assert.Contains(t, r.createTableSQL(), "launch_site VARCHAR(100) NOT NULL CHECK (launch_site <> '')")
	assert.Contains(t, r.createIndexSQL(), "idx_spacex_launches_launch_site ON spacex_launches(launch_site)")

	insert := r.insertSQL()
	for _, col := range []string{"flight_number", "launch_site", "payload_mass_kg", "class", "booster_version", "booster_version_category"} {
		assert.True(t, strings.Contains(insert, ":"+col), "missing bind for %s", col)
	}
}

func TestSeedRow(t *testing.T) {
	row := seedRow(launch.Record{LaunchSite: "A", PayloadMassKg: 500, Class: launch.Success, BoosterVersionCategory: "FT"})
	assert.Nil(t, row["flight_number"])
	assert.Nil(t, row["booster_version"])
	assert.Equal(t, 1, row["class"])

	row = seedRow(launch.Record{LaunchSite: "A", PayloadMassKg: 500, BoosterVersionCategory: "FT", FlightNumber: 4, BoosterVersion: "F9 v1.0 B0003"})
	assert.Equal(t, 4, row["flight_number"])
	assert.Equal(t, "F9 v1.0 B0003", row["booster_version"])
	assert.Equal(t, 0, row["class"])
}
