package controls

import (
	"math"
	"strconv"
	"strings"

	"launchdash/domain/core"
	"launchdash/domain/launch"
)

// ID names a control on the dashboard page
type ID string

const (
	SiteDropdown  ID = "site-dropdown"
	PayloadSlider ID = "payload-slider"
)

// Slider bounds fixed by the page layout
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// Option is one dropdown entry
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown describes the site selector
type Dropdown struct {
	ID          ID       `json:"id"`
	Options     []Option `json:"options"`
	Default     string   `json:"default"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Mark is a labelled tick on the slider
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider describes the payload range selector
type RangeSlider struct {
	ID      ID         `json:"id"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Step    float64    `json:"step"`
	Marks   []Mark     `json:"marks"`
	Default [2]float64 `json:"default"`
}

// State is the current value of every control
type State struct {
	Site    launch.SiteSelection `json:"site"`
	Payload launch.PayloadRange  `json:"payload"`
}

// Registry declares the dashboard controls and parses values sent back by the page
type Registry struct {
	Site    Dropdown    `json:"site"`
	Payload RangeSlider `json:"payload"`

	table *launch.Table
}

// NewRegistry derives the controls from the loaded table
func NewRegistry(table *launch.Table) *Registry {
	options := []Option{{Label: string(launch.AllSites), Value: string(launch.AllSites)}}
	for _, site := range table.Sites() {
		options = append(options, Option{Label: site, Value: site})
	}

	marks := make([]Mark, 0, SliderMax/SliderStep+1)
	for v := SliderMin; v <= SliderMax; v += SliderStep {
		marks = append(marks, Mark{Value: float64(v), Label: strconv.Itoa(v)})
	}

	return &Registry{
		Site: Dropdown{
			ID:          SiteDropdown,
			Options:     options,
			Default:     string(launch.AllSites),
			Placeholder: "Select a Launch Site Here",
			Searchable:  true,
		},
		Payload: RangeSlider{
			ID:      PayloadSlider,
			Min:     SliderMin,
			Max:     SliderMax,
			Step:    SliderStep,
			Marks:   marks,
			Default: table.PayloadBounds().Pair(),
		},
		table: table,
	}
}

// IDs lists every registered control
func (r *Registry) IDs() []ID {
	return []ID{SiteDropdown, PayloadSlider}
}

// Known reports whether id names a registered control
func (r *Registry) Known(id ID) bool {
	for _, known := range r.IDs() {
		if id == known {
			return true
		}
	}
	return false
}

// Defaults returns the initial state: All Sites and the table's payload bounds
func (r *Registry) Defaults() State {
	return State{
		Site:    launch.SiteSelection(r.Site.Default),
		Payload: r.table.PayloadBounds(),
	}
}

// ParseSite validates a dropdown value. An empty value means the default.
func (r *Registry) ParseSite(value string) (launch.SiteSelection, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return launch.SiteSelection(r.Site.Default), nil
	}
	site := launch.SiteSelection(value)
	if site.IsAll() || r.table.HasSite(value) {
		return site, nil
	}
	return "", core.NewUnknownSiteError(value)
}

// ParsePayload validates a slider value. Bounds outside [0, 10000] are accepted;
// only non-finite values and an inverted range are rejected.
func (r *Registry) ParsePayload(low, high float64) (launch.PayloadRange, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		return launch.PayloadRange{}, core.NewInvalidRangeError(low, high)
	}
	return launch.PayloadRange{Low: low, High: high}, nil
}

// ParsePayloadText parses slider bounds sent as text; an empty bound takes its default
func (r *Registry) ParsePayloadText(low, high string) (launch.PayloadRange, error) {
	def := r.table.PayloadBounds()
	lo, hi := def.Low, def.High
	var err error
	if s := strings.TrimSpace(low); s != "" {
		if lo, err = strconv.ParseFloat(s, 64); err != nil {
			return launch.PayloadRange{}, core.NewInvalidRangeError(math.NaN(), def.High)
		}
	}
	if s := strings.TrimSpace(high); s != "" {
		if hi, err = strconv.ParseFloat(s, 64); err != nil {
			return launch.PayloadRange{}, core.NewInvalidRangeError(lo, math.NaN())
		}
	}
	return r.ParsePayload(lo, hi)
}
