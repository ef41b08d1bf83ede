package callbacks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"launchdash/domain/chart"
	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/analysis"
	"launchdash/internal/controls"

	"golang.org/x/sync/errgroup"
)

// OutputID names a chart region on the page
type OutputID string

const (
	SuccessPieChart            OutputID = "success-pie-chart"
	SuccessPayloadScatterChart OutputID = "success-payload-scatter-chart"
)

// Handler recomputes one output from the current control state
type Handler func(ctx context.Context, state controls.State) (chart.Spec, error)

// Binding ties an output to the controls that trigger it
type Binding struct {
	Output  OutputID
	Inputs  []controls.ID
	Handler Handler
}

func (b Binding) triggeredBy(changed map[controls.ID]bool) bool {
	for _, in := range b.Inputs {
		if changed[in] {
			return true
		}
	}
	return false
}

// Dispatcher is the dispatch table from control changes to chart handlers
type Dispatcher struct {
	registry *controls.Registry
	bindings []Binding
	logger   *internal.Logger
}

// NewDispatcher registers the pie and scatter bindings over table
func NewDispatcher(table *launch.Table, registry *controls.Registry, logger *internal.Logger) *Dispatcher {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	d := &Dispatcher{registry: registry, logger: logger.With("component", "dispatcher")}

	d.Register(Binding{
		Output: SuccessPieChart,
		Inputs: []controls.ID{controls.SiteDropdown},
		Handler: func(_ context.Context, state controls.State) (chart.Spec, error) {
			return analysis.SuccessPie(table, state.Site), nil
		},
	})
	d.Register(Binding{
		Output: SuccessPayloadScatterChart,
		Inputs: []controls.ID{controls.SiteDropdown, controls.PayloadSlider},
		Handler: func(_ context.Context, state controls.State) (chart.Spec, error) {
			return analysis.PayloadScatter(table, state.Site, state.Payload), nil
		},
	})
	return d
}

// Register adds a binding. Registration happens during startup only.
func (d *Dispatcher) Register(b Binding) {
	d.bindings = append(d.bindings, b)
}

// Bindings returns the registered bindings in registration order
func (d *Dispatcher) Bindings() []Binding {
	out := make([]Binding, len(d.bindings))
	copy(out, d.bindings)
	return out
}

// Outputs lists every output id, sorted
func (d *Dispatcher) Outputs() []OutputID {
	ids := make([]OutputID, 0, len(d.bindings))
	for _, b := range d.bindings {
		ids = append(ids, b.Output)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Dispatch recomputes every output whose inputs include a changed control
func (d *Dispatcher) Dispatch(ctx context.Context, changed []controls.ID, state controls.State) (map[OutputID]chart.Spec, error) {
	set := make(map[controls.ID]bool, len(changed))
	for _, id := range changed {
		if !d.registry.Known(id) {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownControl, id)
		}
		set[id] = true
	}

	var triggered []Binding
	for _, b := range d.bindings {
		if b.triggeredBy(set) {
			triggered = append(triggered, b)
		}
	}
	d.logger.Debug("[Dispatcher] %d control(s) changed, %d output(s) triggered", len(changed), len(triggered))
	return d.run(ctx, triggered, state)
}

// RenderAll recomputes every output, as on first page load
func (d *Dispatcher) RenderAll(ctx context.Context, state controls.State) (map[OutputID]chart.Spec, error) {
	return d.run(ctx, d.bindings, state)
}

// Render recomputes a single output
func (d *Dispatcher) Render(ctx context.Context, output OutputID, state controls.State) (chart.Spec, error) {
	for _, b := range d.bindings {
		if b.Output == output {
			results, err := d.run(ctx, []Binding{b}, state)
			if err != nil {
				return chart.Spec{}, err
			}
			return results[output], nil
		}
	}
	return chart.Spec{}, fmt.Errorf("%w: %q", core.ErrUnknownOutput, output)
}

// run evaluates bindings concurrently; the table they read is immutable
func (d *Dispatcher) run(ctx context.Context, bindings []Binding, state controls.State) (map[OutputID]chart.Spec, error) {
	results := make(map[OutputID]chart.Spec, len(bindings))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, b := range bindings {
		b := b
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					d.logger.Error("[Dispatcher] handler for %s panicked: %v", b.Output, rec)
					err = fmt.Errorf("handler for %s failed: %v", b.Output, rec)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			spec, err := b.Handler(gctx, state)
			if err != nil {
				return fmt.Errorf("handler for %s: %w", b.Output, err)
			}
			d.logger.Trace("[Dispatcher] %s rendered in %s", b.Output, time.Since(start))
			mu.Lock()
			results[b.Output] = spec
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
