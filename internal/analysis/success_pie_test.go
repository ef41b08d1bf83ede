package analysis

import (
	"testing"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
	"launchdash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessPie_AllSitesUsesPerSiteMean(t *testing.T) {
	table := testkit.MustTable(testkit.SiteScenarioRecords())

	spec := SuccessPie(table, launch.AllSites)

	assert.Equal(t, chart.KindPie, spec.Kind)
	assert.Equal(t, TitleAllSitesPie, spec.Title)
	require.Len(t, spec.Slices, 2)

	a, ok := spec.SliceValue("A")
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, a, 1e-9)
	b, ok := spec.SliceValue("B")
	require.True(t, ok)
	assert.Equal(t, 0.0, b)

	assert.Equal(t, 3, spec.Slices[0].Count)
	assert.Equal(t, 2, spec.Slices[1].Count)
	assert.Len(t, spec.Colors, 2)
	assert.Equal(t, 5, spec.Summary.Rows)
	assert.InDelta(t, 0.4, spec.Summary.SuccessRate, 1e-9)
}

func TestSuccessPie_SingleSiteSplitsOutcomes(t *testing.T) {
	table := testkit.MustTable(testkit.SiteScenarioRecords())

	spec := SuccessPie(table, "A")

	assert.Equal(t, "Total Success Launches for Site A", spec.Title)
	require.Len(t, spec.Slices, 2)
	assert.Equal(t, "1", spec.Slices[0].Key)
	assert.Equal(t, "success", spec.Slices[0].Label)
	assert.InDelta(t, 2.0/3.0, spec.Slices[0].Value, 1e-9)
	assert.Equal(t, "0", spec.Slices[1].Key)
	assert.Equal(t, "failure", spec.Slices[1].Label)
	assert.InDelta(t, 1.0/3.0, spec.Slices[1].Value, 1e-9)
	assert.False(t, spec.Empty)
}

func TestSuccessPie_SiteWithoutSuccessKeepsZeroSlice(t *testing.T) {
	table := testkit.MustTable(testkit.SiteScenarioRecords())

	spec := SuccessPie(table, "B")

	require.Len(t, spec.Slices, 2)
	assert.Equal(t, 0.0, spec.Slices[0].Value)
	assert.Equal(t, 1.0, spec.Slices[1].Value)
}

func TestSuccessPie_UnknownSiteIsEmpty(t *testing.T) {
	table := testkit.MustTable(testkit.SiteScenarioRecords())

	var spec chart.Spec
	assert.NotPanics(t, func() { spec = SuccessPie(table, "nowhere") })
	assert.True(t, spec.Empty)
	assert.NotEmpty(t, spec.Placeholder)
	assert.Empty(t, spec.Slices)
}

func TestSuccessPie_Properties(t *testing.T) {
	kit, err := testkit.NewTestKit()
	require.NoError(t, err)
	table := kit.Table()

	all := SuccessPie(table, launch.AllSites)
	require.Len(t, all.Slices, len(table.Sites()))
	for _, sl := range all.Slices {
		assert.GreaterOrEqual(t, sl.Value, 0.0)
		assert.LessOrEqual(t, sl.Value, 1.0)

		var sum float64
		rows := table.Select(launch.SiteSelection(sl.Key).Matches)
		for _, r := range rows {
			sum += float64(r.Class)
		}
		assert.InDelta(t, sum/float64(len(rows)), sl.Value, 1e-9, "site %s", sl.Key)
	}

	for _, site := range table.Sites() {
		spec := SuccessPie(table, launch.SiteSelection(site))
		require.Len(t, spec.Slices, 2)
		assert.InDelta(t, 1.0, spec.Slices[0].Value+spec.Slices[1].Value, 1e-9, "site %s", site)
	}
}

func TestSuccessPie_Idempotent(t *testing.T) {
	table := testkit.MustTable(testkit.SiteScenarioRecords())

	assert.Equal(t, SuccessPie(table, launch.AllSites), SuccessPie(table, launch.AllSites))
	assert.Equal(t, SuccessPie(table, "A"), SuccessPie(table, "A"))
}
