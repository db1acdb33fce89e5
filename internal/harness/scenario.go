package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/rfn/internal/repr"
)

// Scenario defines one conformance run against a fixture.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description"`

	// Fixture is the registered fixture to wrap.
	Fixture string `yaml:"fixture"`

	// Capture seeds the fixture's captured state (a start value, a string to
	// own). Fixtures that capture nothing ignore it.
	Capture any `yaml:"capture,omitempty"`

	// Ownership is "owned" (default) or "borrowed".
	Ownership string `yaml:"ownership,omitempty"`

	// Calls are made in order through the representation.
	Calls []CallStep `yaml:"calls"`

	// Release destroys the representation after the calls.
	Release bool `yaml:"release,omitempty"`

	// ExpectReleases, when set, is the exact number of captured-state releases.
	ExpectReleases *int64 `yaml:"expect_releases,omitempty"`

	// RunID fixes the run identifier; a UUIDv7 is generated when empty.
	RunID string `yaml:"run_id,omitempty"`
}

// CallStep is one invocation.
type CallStep struct {
	// Args are the call arguments; they are packed for the fixture's arity.
	Args []any `yaml:"args"`

	// Expect is the expected result. Nil skips the comparison.
	Expect any `yaml:"expect,omitempty"`
}

// LoadScenario reads, strictly decodes, and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario document. Unknown keys are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// LoadScenarios loads every *.yaml and *.yml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Fixture == "" {
		return fmt.Errorf("fixture is required")
	}
	switch s.Ownership {
	case "":
		s.Ownership = repr.Owned
	case repr.Owned, repr.Borrowed:
	default:
		return fmt.Errorf("ownership %q: must be %s or %s", s.Ownership, repr.Owned, repr.Borrowed)
	}
	for i := range s.Calls {
		if s.Calls[i].Args == nil {
			s.Calls[i].Args = []any{}
		}
	}
	if s.ExpectReleases != nil && *s.ExpectReleases < 0 {
		return fmt.Errorf("expect_releases must not be negative")
	}
	return nil
}
