package ui

import (
	"html/template"
	"net/http"

	"launchdash/internal/controls"
)

type indexPage struct {
	Title       string
	Records     int
	SuccessRate float64
	Sites       []string
	Site        controls.Dropdown
	Payload     controls.RangeSlider
	About       template.HTML
}

// handleIndex renders the dashboard shell; charts are filled in by the page script
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	successes := 0
	for _, rec := range a.table.Records() {
		successes += int(rec.Class)
	}

	a.renderTemplate(w, "index.html", indexPage{
		Title:       DashboardTitle,
		Records:     a.table.Len(),
		SuccessRate: float64(successes) / float64(a.table.Len()),
		Sites:       a.table.Sites(),
		Site:        a.registry.Site,
		Payload:     a.registry.Payload,
		About:       a.about,
	})
}
