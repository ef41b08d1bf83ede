package launch

import (
	"fmt"
	"math"
	"strings"
)

// Column names of the launch records file
const (
	ColumnLaunchSite             = "Launch Site"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnClass                  = "class"
	ColumnBoosterVersionCategory = "Booster Version Category"

	// Optional columns, carried into hover metadata when present
	ColumnFlightNumber   = "Flight Number"
	ColumnBoosterVersion = "Booster Version"
)

// RequiredColumns lists the columns every launch source must provide
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersionCategory,
}

// Outcome is the binary launch result stored in the class column
type Outcome int

const (
	Failure Outcome = 0
	Success Outcome = 1
)

// Valid reports whether the outcome is 0 or 1
func (o Outcome) Valid() bool {
	return o == Failure || o == Success
}

// Label returns the display label used on pie slices
func (o Outcome) Label() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Record represents one launch row
type Record struct {
	LaunchSite             string  `json:"launch_site" db:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	Class                  Outcome `json:"class" db:"class"`
	BoosterVersionCategory string  `json:"booster_version_category" db:"booster_version_category"`
	FlightNumber           int     `json:"flight_number,omitempty" db:"flight_number"`
	BoosterVersion         string  `json:"booster_version,omitempty" db:"booster_version"`
}

// Validate checks the record invariants: a named site, class in {0,1} and non-negative payload
func (r Record) Validate() error {
	if strings.TrimSpace(r.LaunchSite) == "" {
		return fmt.Errorf("launch site must not be empty")
	}
	if !r.Class.Valid() {
		return fmt.Errorf("class must be 0 or 1, got %d", r.Class)
	}
	if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
		return fmt.Errorf("payload mass must be finite")
	}
	if r.PayloadMassKg < 0 {
		return fmt.Errorf("payload mass must be non-negative, got %g", r.PayloadMassKg)
	}
	return nil
}

// SiteSelection is the value of the site dropdown
type SiteSelection string

// AllSites selects every launch site
const AllSites SiteSelection = "All Sites"

// IsAll reports whether the selection covers every site
func (s SiteSelection) IsAll() bool {
	return s == AllSites
}

// Matches reports whether a record belongs to the selection
func (s SiteSelection) Matches(r Record) bool {
	return s.IsAll() || r.LaunchSite == string(s)
}

// PayloadRange is the inclusive [Low, High] window of the payload slider
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies within the range, both ends inclusive.
// An inverted range contains nothing.
func (p PayloadRange) Contains(mass float64) bool {
	return mass >= p.Low && mass <= p.High
}

// Pair returns the range as the [low, high] pair the slider uses
func (p PayloadRange) Pair() [2]float64 {
	return [2]float64{p.Low, p.High}
}
