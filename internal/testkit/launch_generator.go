package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"launchdash/domain/launch"
)

// LaunchGeneratorConfig configures the synthetic launch generator
type LaunchGeneratorConfig struct {
	LaunchCount     int      `json:"launch_count"`
	Sites           []string `json:"sites"`
	Categories      []string `json:"categories"`
	MaxPayloadKg    float64  `json:"max_payload_kg"`
	SuccessRateBase float64  `json:"success_rate_base"`
	Seed            int64    `json:"seed"`
}

// DefaultLaunchConfig mirrors the shape of the public launch records dataset
func DefaultLaunchConfig() LaunchGeneratorConfig {
	return LaunchGeneratorConfig{
		LaunchCount:     56,
		Sites:           []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"},
		Categories:      []string{"v1.0", "v1.1", "FT", "B4", "B5"},
		MaxPayloadKg:    9600,
		SuccessRateBase: 0.6,
		Seed:            42,
	}
}

// LaunchDataGenerator generates seeded launch records
type LaunchDataGenerator struct {
	config LaunchGeneratorConfig
	rng    *rand.Rand
}

// NewLaunchDataGenerator creates a new launch generator
func NewLaunchDataGenerator(config LaunchGeneratorConfig) *LaunchDataGenerator {
	return &LaunchDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateRecords returns LaunchCount valid records. Later flights use newer boosters
// and succeed more often, so payload and outcome are loosely correlated.
func (g *LaunchDataGenerator) GenerateRecords() ([]launch.Record, error) {
	if g.config.LaunchCount <= 0 {
		return nil, fmt.Errorf("launch count must be positive")
	}
	if len(g.config.Sites) == 0 || len(g.config.Categories) == 0 {
		return nil, fmt.Errorf("sites and categories are required")
	}

	records := make([]launch.Record, 0, g.config.LaunchCount)
	for i := 0; i < g.config.LaunchCount; i++ {
		progress := float64(i) / float64(g.config.LaunchCount)
		catIdx := int(progress * float64(len(g.config.Categories)))
		if catIdx >= len(g.config.Categories) {
			catIdx = len(g.config.Categories) - 1
		}

		// Payloads are rounded to whole kilograms; a few flights carry none.
		payload := 0.0
		if g.rng.Float64() > 0.05 {
			payload = math.Round(g.rng.Float64() * g.config.MaxPayloadKg)
		}

		successP := math.Min(0.98, g.config.SuccessRateBase+0.3*progress)
		class := launch.Failure
		if g.rng.Float64() < successP {
			class = launch.Success
		}

		category := g.config.Categories[catIdx]
		records = append(records, launch.Record{
			LaunchSite:             g.config.Sites[g.rng.Intn(len(g.config.Sites))],
			PayloadMassKg:          payload,
			Class:                  class,
			BoosterVersionCategory: category,
			FlightNumber:           i + 1,
			BoosterVersion:         fmt.Sprintf("F9 %s B%04d", category, 1000+i),
		})
	}
	return records, nil
}
