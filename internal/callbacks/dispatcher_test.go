package callbacks

import (
	"context"
	"errors"
	"testing"

	"launchdash/domain/chart"
	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/analysis"
	"launchdash/internal/controls"
	"launchdash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioDispatcher() (*Dispatcher, *controls.Registry, *launch.Table) {
	table := testkit.MustTable(testkit.SiteScenarioRecords())
	registry := controls.NewRegistry(table)
	return NewDispatcher(table, registry, nil), registry, table
}

func TestDispatcher_Outputs(t *testing.T) {
	d, _, _ := newScenarioDispatcher()

	assert.Equal(t, []OutputID{SuccessPayloadScatterChart, SuccessPieChart}, d.Outputs())
	require.Len(t, d.Bindings(), 2)
	assert.Equal(t, SuccessPieChart, d.Bindings()[0].Output)
}

func TestDispatcher_SiteChangeTriggersBoth(t *testing.T) {
	d, registry, _ := newScenarioDispatcher()
	state := registry.Defaults()
	state.Site = "A"

	out, err := d.Dispatch(context.Background(), []controls.ID{controls.SiteDropdown}, state)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Total Success Launches for Site A", out[SuccessPieChart].Title)
	assert.Len(t, out[SuccessPayloadScatterChart].Points(), 3)
}

func TestDispatcher_SliderChangeTriggersScatterOnly(t *testing.T) {
	d, registry, table := newScenarioDispatcher()
	state := registry.Defaults()
	state.Payload = launch.PayloadRange{Low: 0, High: 2000}

	out, err := d.Dispatch(context.Background(), []controls.ID{controls.PayloadSlider}, state)
	require.NoError(t, err)
	require.Len(t, out, 1)

	scatter, ok := out[SuccessPayloadScatterChart]
	require.True(t, ok)
	assert.Equal(t, analysis.PayloadScatter(table, launch.AllSites, state.Payload), scatter)
}

func TestDispatcher_UnknownControl(t *testing.T) {
	d, registry, _ := newScenarioDispatcher()

	_, err := d.Dispatch(context.Background(), []controls.ID{"rocket-picker"}, registry.Defaults())
	assert.True(t, errors.Is(err, core.ErrUnknownControl))
}

func TestDispatcher_NoChangeTriggersNothing(t *testing.T) {
	d, registry, _ := newScenarioDispatcher()

	out, err := d.Dispatch(context.Background(), nil, registry.Defaults())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDispatcher_RenderAllAndRender(t *testing.T) {
	d, registry, table := newScenarioDispatcher()
	state := registry.Defaults()

	out, err := d.RenderAll(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, analysis.SuccessPie(table, launch.AllSites), out[SuccessPieChart])
	assert.Len(t, out[SuccessPayloadScatterChart].Points(), table.Len())

	pie, err := d.Render(context.Background(), SuccessPieChart, state)
	require.NoError(t, err)
	assert.Equal(t, out[SuccessPieChart], pie)

	_, err = d.Render(context.Background(), "launch-table", state)
	assert.True(t, errors.Is(err, core.ErrUnknownOutput))
}

func TestDispatcher_TraceLogging(t *testing.T) {
	logger, err := internal.NewLogger(internal.LogLevelTrace, "production")
	require.NoError(t, err)
	table := testkit.MustTable(testkit.SiteScenarioRecords())
	registry := controls.NewRegistry(table)
	d := NewDispatcher(table, registry, logger)

	out, err := d.RenderAll(context.Background(), registry.Defaults())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestDispatcher_HandlerFailures(t *testing.T) {
	d, registry, _ := newScenarioDispatcher()
	d.Register(Binding{
		Output: "broken",
		Inputs: []controls.ID{controls.PayloadSlider},
		Handler: func(context.Context, controls.State) (chart.Spec, error) {
			panic("boom")
		},
	})

	_, err := d.Dispatch(context.Background(), []controls.ID{controls.PayloadSlider}, registry.Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	d.Register(Binding{
		Output: "failing",
		Inputs: []controls.ID{controls.SiteDropdown},
		Handler: func(context.Context, controls.State) (chart.Spec, error) {
			return chart.Spec{}, errors.New("no data")
		},
	})
	_, err = d.Render(context.Background(), "failing", registry.Defaults())
	assert.EqualError(t, err, "handler for failing: no data")
}

func TestDispatcher_CancelledContext(t *testing.T) {
	d, registry, _ := newScenarioDispatcher()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.RenderAll(ctx, registry.Defaults())
	assert.ErrorIs(t, err, context.Canceled)
}
