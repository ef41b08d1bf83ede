package analysis

import (
	"fmt"
	"strconv"

	"launchdash/domain/chart"
	"launchdash/domain/launch"

	"github.com/montanaflynn/stats"
)

// Chart titles shown above the pie
const (
	TitleAllSitesPie = "Total Success Launches by Site"
	titleSitePie     = "Total Success Launches for Site %s"
)

// SuccessPie builds the success-proportion pie for the selected site.
//
// For All Sites there is one slice per launch site whose value is the site's mean class,
// i.e. its success rate. For a single site there are two slices, success then failure,
// holding the share of each outcome among that site's launches.
func SuccessPie(table *launch.Table, site launch.SiteSelection) chart.Spec {
	if site.IsAll() {
		return allSitesPie(table)
	}
	return sitePie(table, site)
}

func allSitesPie(table *launch.Table) chart.Spec {
	bySite := make(map[string][]float64)
	all := make([]float64, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		bySite[r.LaunchSite] = append(bySite[r.LaunchSite], float64(r.Class))
		all = append(all, float64(r.Class))
	}

	sites := table.Sites()
	slices := make([]chart.Slice, 0, len(sites))
	for _, site := range sites {
		classes := bySite[site]
		slices = append(slices, chart.Slice{
			Key:   site,
			Label: site,
			Value: meanOrZero(classes),
			Count: len(classes),
		})
	}

	return chart.Spec{
		Kind:       chart.KindPie,
		Title:      TitleAllSitesPie,
		Slices:     slices,
		Colors:     chart.AssignColors(len(slices)),
		ShowLegend: true,
		Summary: chart.Summary{
			Rows:        len(all),
			SuccessRate: meanOrZero(all),
		},
	}
}

func sitePie(table *launch.Table, site launch.SiteSelection) chart.Spec {
	spec := chart.Spec{
		Kind:       chart.KindPie,
		Title:      fmt.Sprintf(titleSitePie, site),
		ShowLegend: true,
	}

	rows := table.Select(site.Matches)
	if len(rows) == 0 {
		spec.Empty = true
		spec.Placeholder = fmt.Sprintf("No launches recorded for site %s", site)
		return spec
	}

	counts := map[launch.Outcome]int{}
	classes := make([]float64, len(rows))
	for i, r := range rows {
		counts[r.Class]++
		classes[i] = float64(r.Class)
	}

	n := float64(len(rows))
	for _, outcome := range []launch.Outcome{launch.Success, launch.Failure} {
		spec.Slices = append(spec.Slices, chart.Slice{
			Key:   strconv.Itoa(int(outcome)),
			Label: outcome.Label(),
			Value: float64(counts[outcome]) / n,
			Count: counts[outcome],
		})
	}
	spec.Colors = []string{chart.Palette[1], chart.Palette[3]}
	spec.Summary = chart.Summary{
		Rows:        len(rows),
		SuccessRate: meanOrZero(classes),
	}
	return spec
}

// meanOrZero returns the arithmetic mean, or 0 for an empty input
func meanOrZero(values []float64) float64 {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}
