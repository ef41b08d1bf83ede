package analysis

import (
	"fmt"
	"math"

	"launchdash/domain/chart"
	"launchdash/domain/launch"

	"gonum.org/v1/gonum/stat"
)

// TitleScatter is used for every site selection, including single sites
const TitleScatter = "Correlation Between Payload and Success for All Sites"

// Axis labels of the scatter
const (
	AxisPayload = launch.ColumnPayloadMass
	AxisClass   = launch.ColumnClass
)

// PayloadScatter builds the payload/outcome scatter. It keeps the rows whose payload lies in
// the inclusive range and, unless site is All Sites, whose launch site matches. Points are
// grouped into one series per booster version category in first-seen order.
func PayloadScatter(table *launch.Table, site launch.SiteSelection, payload launch.PayloadRange) chart.Spec {
	spec := chart.Spec{
		Kind:       chart.KindScatter,
		Title:      TitleScatter,
		XAxis:      AxisPayload,
		YAxis:      AxisClass,
		ShowLegend: true,
	}

	rows := table.Select(func(r launch.Record) bool {
		return site.Matches(r) && payload.Contains(r.PayloadMassKg)
	})
	if len(rows) == 0 {
		spec.Empty = true
		spec.Placeholder = emptyScatterText(site, payload)
		return spec
	}

	index := make(map[string]int)
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = r.PayloadMassKg
		ys[i] = float64(r.Class)

		pos, ok := index[r.BoosterVersionCategory]
		if !ok {
			pos = len(spec.Series)
			index[r.BoosterVersionCategory] = pos
			spec.Series = append(spec.Series, chart.Series{
				Name:  r.BoosterVersionCategory,
				Color: chart.Palette[pos%len(chart.Palette)],
			})
		}
		spec.Series[pos].Points = append(spec.Series[pos].Points, chart.Point{
			X:              r.PayloadMassKg,
			Y:              float64(r.Class),
			Category:       r.BoosterVersionCategory,
			Site:           r.LaunchSite,
			FlightNumber:   r.FlightNumber,
			BoosterVersion: r.BoosterVersion,
		})
	}

	spec.Colors = chart.AssignColors(len(spec.Series))
	spec.Summary = chart.Summary{
		Rows:        len(rows),
		SuccessRate: meanOrZero(ys),
		Correlation: correlation(xs, ys),
	}
	return spec
}

// correlation returns Pearson's r, or nil when it is undefined
func correlation(xs, ys []float64) *float64 {
	if len(xs) < 2 {
		return nil
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	return &r
}

func emptyScatterText(site launch.SiteSelection, payload launch.PayloadRange) string {
	text := fmt.Sprintf("No launches with payload between %g and %g kg", payload.Low, payload.High)
	if !site.IsAll() {
		text += fmt.Sprintf(" at site %s", site)
	}
	return text
}
