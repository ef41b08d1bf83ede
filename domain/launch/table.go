package launch

import (
	"fmt"
	"sort"

	"launchdash/domain/core"

	"github.com/montanaflynn/stats"
)

// Table is the immutable in-memory launch dataset.
// It is built once at startup and only read afterwards, so concurrent readers need no locking.
type Table struct {
	records    []Record
	sites      []string
	minPayload float64
	maxPayload float64
}

// NewTable validates the records and derives the site list and payload bounds.
// The input slice is copied; later changes by the caller do not leak into the table.
func NewTable(records []Record) (*Table, error) {
	if len(records) == 0 {
		return nil, core.ErrEmptyTable
	}

	owned := make([]Record, len(records))
	copy(owned, records)

	payloads := make([]float64, len(owned))
	siteSet := make(map[string]struct{})
	for i, r := range owned {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", core.ErrInvalidRecord, i, err)
		}
		payloads[i] = r.PayloadMassKg
		siteSet[r.LaunchSite] = struct{}{}
	}

	sites := make([]string, 0, len(siteSet))
	for s := range siteSet {
		sites = append(sites, s)
	}
	sort.Strings(sites)

	minPayload, err := stats.Min(payloads)
	if err != nil {
		return nil, fmt.Errorf("failed to compute minimum payload: %w", err)
	}
	maxPayload, err := stats.Max(payloads)
	if err != nil {
		return nil, fmt.Errorf("failed to compute maximum payload: %w", err)
	}

	return &Table{
		records:    owned,
		sites:      sites,
		minPayload: minPayload,
		maxPayload: maxPayload,
	}, nil
}

// Len returns the number of records
func (t *Table) Len() int { return len(t.records) }

// At returns the record at index i
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns a copy of all records in table order
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Select returns the records matching keep, in table order
func (t *Table) Select(keep func(Record) bool) []Record {
	var out []Record
	for _, r := range t.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sites returns the distinct launch site names, sorted
func (t *Table) Sites() []string {
	out := make([]string, len(t.sites))
	copy(out, t.sites)
	return out
}

// HasSite reports whether name is one of the table's launch sites
func (t *Table) HasSite(name string) bool {
	i := sort.SearchStrings(t.sites, name)
	return i < len(t.sites) && t.sites[i] == name
}

// MinPayload is the smallest payload mass in the table
func (t *Table) MinPayload() float64 { return t.minPayload }

// MaxPayload is the largest payload mass in the table
func (t *Table) MaxPayload() float64 { return t.maxPayload }

// PayloadBounds returns (minPayload, maxPayload), the default slider range
func (t *Table) PayloadBounds() PayloadRange {
	return PayloadRange{Low: t.minPayload, High: t.maxPayload}
}
