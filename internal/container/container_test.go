package container

import (
	"context"
	"path/filepath"
	"testing"

	"launchdash/domain/launch"
	"launchdash/internal/callbacks"
	"launchdash/internal/config"
	"launchdash/internal/errors"
	"launchdash/internal/testkit"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileConfig(path string) *config.Config {
	return &config.Config{Data: config.DataConfig{File: path, Sheet: "Sheet1", Table: "launch_records"}}
}

func TestContainer_InitFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches.csv")
	require.NoError(t, testkit.WriteCSV(path, testkit.SiteScenarioRecords()))

	c, err := New(fileConfig(path), nil)
	require.NoError(t, err)
	require.NoError(t, c.Init(context.Background()))
	defer c.Shutdown(context.Background())

	assert.Nil(t, c.DB)
	assert.Equal(t, path, c.Source.Describe())
	assert.Equal(t, 5, c.Table.Len())
	assert.Equal(t, c.Table.PayloadBounds(), c.Registry.Defaults().Payload)
	assert.Equal(t, []callbacks.OutputID{callbacks.SuccessPayloadScatterChart, callbacks.SuccessPieChart}, c.Dispatcher.Outputs())
}

func TestContainer_InitMissingFile(t *testing.T) {
	c, err := New(fileConfig(filepath.Join(t.TempDir(), "missing.csv")), nil)
	require.NoError(t, err)

	err = c.Init(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeIOError, errors.GetCode(err))
	assert.Nil(t, c.Table)
}

type failingSource struct{ err error }

func (s failingSource) Load(context.Context) (*launch.Table, error) { return nil, s.err }
func (s failingSource) Describe() string { return "failing" }

func TestContainer_InitLoadFailureClosesDB(t *testing.T) {
	db, err := sqlx.Open("postgres", "postgres://localhost/launches?sslmode=disable")
	require.NoError(t, err)

	c, err := New(fileConfig("unused.csv"), nil)
	require.NoError(t, err)
	c.DB = db
	c.Source = failingSource{err: errors.DatabaseError("failed to query launch_records", nil)}

	err = c.Init(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
	assert.Nil(t, c.DB)
	assert.Nil(t, c.Table)
	assert.ErrorContains(t, db.Ping(), "database is closed")
	assert.NoError(t, c.Shutdown(context.Background()))
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}
