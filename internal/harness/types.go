package harness

// Trace event types.
const (
	EventCreate  = "create"
	EventCall    = "call"
	EventRelease = "release"
)

// TraceEvent is one step of a run.
type TraceEvent struct {
	Type string `json:"type"`
	Seq  int64  `json:"seq"`

	// Set on create events.
	Fixture    string `json:"fixture,omitempty"`
	Discipline string `json:"discipline,omitempty"`
	Ownership  string `json:"ownership,omitempty"`

	// Set on call events.
	Args   []any `json:"args,omitempty"`
	Result any   `json:"result,omitempty"`
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario string       `json:"scenario"`
	RunID    string       `json:"run_id"`
	Pass     bool         `json:"pass"`
	Trace    []TraceEvent `json:"trace"`
	Releases int64        `json:"releases"`
	Errors   []string     `json:"errors,omitempty"`
}

// NewResult returns a passing result with an empty trace.
func NewResult(scenario, runID string) *Result {
	return &Result{
		Scenario: scenario,
		RunID:    runID,
		Pass:     true,
		Trace:    []TraceEvent{},
		Errors:   []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

func (r *Result) addEvent(e TraceEvent) {
	r.Trace = append(r.Trace, e)
}

// snapshot is the deterministic part of a result, for golden comparison.
// RunID and Pass are left out: the former varies, the latter is asserted directly.
func (r *Result) snapshot() map[string]any {
	trace := make([]any, len(r.Trace))
	for i, e := range r.Trace {
		m := map[string]any{
			"type": e.Type,
			"seq":  e.Seq,
		}
		switch e.Type {
		case EventCreate:
			m["fixture"] = e.Fixture
			m["discipline"] = e.Discipline
			m["ownership"] = e.Ownership
		case EventCall:
			m["args"] = normalizeSlice(e.Args)
			if e.Result != nil {
				m["result"] = normalize(e.Result)
			}
		}
		trace[i] = m
	}
	return map[string]any{
		"scenario": r.Scenario,
		"releases": r.Releases,
		"trace":    trace,
	}
}
