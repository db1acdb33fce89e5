package call

import "fmt"

// Discipline identifies how often, and with what access, a callable may be invoked.
type Discipline uint8

const (
	// Read callables may be invoked any number of times and never mutate
	// their captured state.
	Read Discipline = iota + 1

	// Mut callables may be invoked any number of times with exclusive,
	// mutable access to their captured state. Calls are not concurrency-safe.
	Mut

	// Once callables may be invoked exactly one time. The call consumes and
	// releases the captured state.
	Once
)

// String returns the lower-case discipline name used in layouts and scenarios.
func (d Discipline) String() string {
	switch d {
	case Read:
		return "read"
	case Mut:
		return "mut"
	case Once:
		return "once"
	default:
		return fmt.Sprintf("discipline(%d)", uint8(d))
	}
}

// Repeatable reports whether more than one call is permitted.
func (d Discipline) Repeatable() bool {
	return d == Read || d == Mut
}

// Consuming reports whether the call itself releases the captured state.
func (d Discipline) Consuming() bool {
	return d == Once
}

// Valid reports whether d is one of the declared disciplines.
func (d Discipline) Valid() bool {
	return d >= Read && d <= Once
}

// ParseDiscipline converts a discipline name back to its value.
func ParseDiscipline(s string) (Discipline, error) {
	switch s {
	case "read":
		return Read, nil
	case "mut":
		return Mut, nil
	case "once":
		return Once, nil
	}
	return 0, fmt.Errorf("unknown call discipline %q: must be one of read, mut, once", s)
}
