package chart

// Kind identifies how a spec is drawn
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Spec is a declarative, renderer-agnostic chart description.
// Pie specs fill Slices, scatter specs fill Series; an Empty spec carries a Placeholder instead.
type Spec struct {
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	XAxis       string   `json:"xAxis,omitempty"`
	YAxis       string   `json:"yAxis,omitempty"`
	Slices      []Slice  `json:"slices,omitempty"`
	Series      []Series `json:"series,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	ShowLegend  bool     `json:"showLegend"`
	Empty       bool     `json:"empty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Summary     Summary  `json:"summary"`
}

// Slice is one wedge of a pie
type Slice struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Series is one colored trace of a scatter
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points"`
}

// Point is a single scatter marker. Site and the flight fields are hover metadata.
type Point struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Category       string  `json:"category"`
	Site           string  `json:"site"`
	FlightNumber   int     `json:"flightNumber,omitempty"`
	BoosterVersion string  `json:"boosterVersion,omitempty"`
}

// Summary holds headline numbers shown next to a chart
type Summary struct {
	Rows        int      `json:"rows"`
	SuccessRate float64  `json:"successRate"`
	Correlation *float64 `json:"correlation,omitempty"`
}

// Points flattens every series in series order
func (s Spec) Points() []Point {
	var out []Point
	for _, series := range s.Series {
		out = append(out, series.Points...)
	}
	return out
}

// SliceValue returns the value of the slice with the given key
func (s Spec) SliceValue(key string) (float64, bool) {
	for _, sl := range s.Slices {
		if sl.Key == key {
			return sl.Value, true
		}
	}
	return 0, false
}

// Palette is the color cycle assigned to series and slices
var Palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// AssignColors returns count colors cycling through Palette
func AssignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = Palette[i%len(Palette)]
	}
	return colors
}
