package harness

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/handle"
	"github.com/roach88/rfn/internal/testutil"
)

// Options configures a run. Zero values select defaults.
type Options struct {
	// Logger receives per-step logs. Defaults to a discarding logger.
	Logger *slog.Logger

	// RunIDs issues run identifiers when the scenario does not fix one.
	// Defaults to UUIDv7.
	RunIDs testutil.RunIDs

	// Registry resolves fixture names. Defaults to the built-in fixtures.
	Registry *Registry
}

// Harness executes scenarios. It is not safe for concurrent use: leak
// detection reads the process-wide handle table.
type Harness struct {
	registry *Registry
	runIDs   testutil.RunIDs
	logger   *slog.Logger
}

// New returns a harness configured by opts.
func New(opts Options) *Harness {
	h := &Harness{
		registry: opts.Registry,
		runIDs:   opts.RunIDs,
		logger:   opts.Logger,
	}
	if h.registry == nil {
		h.registry = NewRegistry()
	}
	if h.runIDs == nil {
		h.runIDs = testutil.UUIDv7RunIDs{}
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return h
}

// Run executes a scenario with default options.
func Run(scenario *Scenario) (*Result, error) {
	return New(Options{}).Run(scenario)
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Resolve the fixture and wrap it per the scenario's ownership
//  2. Make each call through the representation, comparing results
//  3. Release the representation when asked
//  4. Check the release count and that no handle outlived the run
//
// An error is returned only when the scenario cannot be executed.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	fx, ok := h.registry.Lookup(scenario.Fixture)
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q", scenario.Fixture)
	}

	runID := scenario.RunID
	if runID == "" {
		runID = h.runIDs.Generate()
	}
	log := h.logger.With("scenario", scenario.Name, "run_id", runID)

	seq := testutil.NewSequence()
	probe := testutil.NewReleaseProbe()
	liveBefore := handle.Live()

	inst, err := fx.New(scenario.Capture, scenario.Ownership, probe)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", fx.Name, err)
	}
	// Scenarios that skip the release step still must not leak into the next run.
	defer inst.Release()

	result := NewResult(scenario.Name, runID)
	result.addEvent(TraceEvent{
		Type:       EventCreate,
		Seq:        seq.Next(),
		Fixture:    fx.Name,
		Discipline: fx.Discipline.String(),
		Ownership:  scenario.Ownership,
	})
	log.Debug("fixture wrapped", "fixture", fx.Name, "ownership", scenario.Ownership)

	for i, step := range scenario.Calls {
		if len(step.Args) != fx.Arity {
			result.AddError(fmt.Sprintf("call %d: fixture %s takes %d argument(s), got %d",
				i, fx.Name, fx.Arity, len(step.Args)))
			continue
		}
		got, err := inst.Invoke(step.Args)
		if err != nil {
			result.AddError(fmt.Sprintf("call %d: %v", i, err))
			continue
		}
		result.addEvent(TraceEvent{
			Type:   EventCall,
			Seq:    seq.Next(),
			Args:   step.Args,
			Result: got,
		})
		if step.Expect != nil {
			want := normalize(step.Expect)
			if !reflect.DeepEqual(want, normalize(got)) {
				result.AddError(fmt.Sprintf("call %d: expected %v, got %v", i, step.Expect, got))
			}
		}
		log.Debug("call completed", "step", i, "result", got)
	}

	if scenario.Release {
		inst.Release()
		result.addEvent(TraceEvent{Type: EventRelease, Seq: seq.Next()})
		log.Debug("representation released")
	}
	result.Releases = probe.Count()

	if scenario.ExpectReleases != nil && result.Releases != *scenario.ExpectReleases {
		result.AddError(fmt.Sprintf("expected %d release(s), got %d", *scenario.ExpectReleases, result.Releases))
	}
	if scenario.Release || (fx.Discipline == call.Once && len(result.Trace) > 1) {
		if leaked := handle.Live() - liveBefore; leaked != 0 {
			result.AddError(fmt.Sprintf("%d handle(s) still live after release", leaked))
		}
	}

	log.Info("scenario completed", "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

// RunAll executes scenarios in order, stopping at the first one that cannot run.
func (h *Harness) RunAll(scenarios []*Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := h.Run(s)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// normalize widens integers to int64 so YAML-decoded expectations compare
// equal to fixture results and serialize canonically.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case []any:
		return normalizeSlice(x)
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = normalize(e)
		}
		return m
	default:
		return v
	}
}

func normalizeSlice(vs []any) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = normalize(v)
	}
	return out
}
