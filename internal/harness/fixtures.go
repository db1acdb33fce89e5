package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/rfn/internal/adapt"
	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/repr"
	"github.com/roach88/rfn/internal/testutil"
	"github.com/roach88/rfn/internal/tuple"
)

// Instance is a fixture wrapped in a representation, driven with dynamic arguments.
type Instance interface {
	// Invoke unpacks args for the fixture's arity and calls the representation.
	Invoke(args []any) (any, error)

	// Release destroys the representation. Borrowed instances have nothing to release.
	Release()
}

// Fixture is a callable with known behavior.
type Fixture struct {
	Name        string
	Discipline  call.Discipline
	Arity       int
	Description string

	// New wraps the fixture. probe counts captured-state releases.
	New func(capture any, ownership string, probe *testutil.ReleaseProbe) (Instance, error)
}

// Registry maps fixture names to fixtures.
type Registry struct {
	fixtures map[string]Fixture
}

// NewRegistry returns a registry holding the built-in fixtures.
func NewRegistry() *Registry {
	r := &Registry{fixtures: make(map[string]Fixture)}
	for _, f := range builtinFixtures() {
		r.Register(f)
	}
	return r
}

// Register adds or replaces a fixture.
func (r *Registry) Register(f Fixture) {
	r.fixtures[f.Name] = f
}

// Lookup finds a fixture by name.
func (r *Registry) Lookup(name string) (Fixture, bool) {
	f, ok := r.fixtures[name]
	return f, ok
}

// Names lists registered fixtures in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fixtures))
	for name := range r.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type instance struct {
	invoke  func(args []any) (any, error)
	release func()
}

func (i *instance) Invoke(args []any) (any, error) { return i.invoke(args) }

func (i *instance) Release() { i.release() }

// readInstance holds c as a RefFn or BoxFn and calls it through Call.
func readInstance[P, R any](c call.Closure[P, R], ownership string, unpack func([]any) (P, error)) Instance {
	var fn call.Fn[P, R]
	release := func() {}
	if ownership == repr.Borrowed {
		fn = repr.BorrowFn[P, R](&c)
	} else {
		b := repr.NewBoxFn[P, R](c)
		fn = b
		release = b.Release
	}
	return &instance{
		invoke: func(args []any) (any, error) {
			p, err := unpack(args)
			if err != nil {
				return nil, err
			}
			return fn.Call(p), nil
		},
		release: release,
	}
}

// mutInstance holds c as a RefFnMut or BoxFnMut and calls it through CallMut.
func mutInstance[P, R any](c call.Closure[P, R], ownership string, unpack func([]any) (P, error)) Instance {
	var fn call.FnMut[P, R]
	release := func() {}
	if ownership == repr.Borrowed {
		r := repr.BorrowFnMut[P, R](&c)
		fn = &r
	} else {
		b := repr.NewBoxFnMut[P, R](c)
		fn = &b
		release = b.Release
	}
	return &instance{
		invoke: func(args []any) (any, error) {
			p, err := unpack(args)
			if err != nil {
				return nil, err
			}
			return fn.CallMut(p), nil
		},
		release: release,
	}
}

// onceInstance holds c as a BoxFnOnce. One-shot state cannot be borrowed.
func onceInstance[P, R any](c call.Closure[P, R], ownership string, unpack func([]any) (P, error)) (Instance, error) {
	if ownership == repr.Borrowed {
		return nil, fmt.Errorf("once fixtures cannot be borrowed")
	}
	b := repr.NewBoxFnOnce[P, R](c)
	return &instance{
		invoke: func(args []any) (any, error) {
			p, err := unpack(args)
			if err != nil {
				return nil, err
			}
			if b.Consumed() {
				return nil, fmt.Errorf("once callable already consumed")
			}
			return b.CallOnce(p), nil
		},
		release: b.Release,
	}, nil
}

func captureInt(capture any) (int, error) {
	switch v := capture.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("capture: want integer, got %T", capture)
	}
}

func captureString(capture any) (string, error) {
	switch v := capture.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("capture: want string, got %T", capture)
	}
}

func builtinFixtures() []Fixture {
	return []Fixture{
		{
			Name:        "const42",
			Discipline:  call.Read,
			Arity:       0,
			Description: "returns 42 without touching its state",
			New: func(_ any, ownership string, probe *testutil.ReleaseProbe) (Instance, error) {
				c := call.Closure[tuple.Unit, int]{
					Fn:        func(tuple.Unit) int { return 42 },
					OnRelease: probe.Hook(),
				}
				return readInstance(c, ownership, tuple.From0), nil
			},
		},
		{
			Name:        "describe",
			Discipline:  call.Read,
			Arity:       3,
			Description: "formats (int, string, bool) through the arity-3 adapters",
			New: func(_ any, ownership string, _ *testutil.ReleaseProbe) (Instance, error) {
				if ownership == repr.Borrowed {
					return nil, fmt.Errorf("describe is only available owned")
				}
				b := adapt.Func3(func(n int, s string, ok bool) string {
					return fmt.Sprintf("%d/%s/%t", n, s, ok)
				})
				f := adapt.Unwrap3[int, string, bool, string](b)
				return &instance{
					invoke: func(args []any) (any, error) {
						t, err := tuple.From3[int, string, bool](args)
						if err != nil {
							return nil, err
						}
						return f(t.Unpack()), nil
					},
					release: b.Release,
				}, nil
			},
		},
		{
			Name:        "counter",
			Discipline:  call.Mut,
			Arity:       0,
			Description: "increments a captured counter and returns it",
			New: func(capture any, ownership string, probe *testutil.ReleaseProbe) (Instance, error) {
				n, err := captureInt(capture)
				if err != nil {
					return nil, err
				}
				c := call.Closure[tuple.Unit, int]{
					Fn: func(tuple.Unit) int {
						n++
						return n
					},
					OnRelease: probe.Hook(),
				}
				return mutInstance(c, ownership, tuple.From0), nil
			},
		},
		{
			Name:        "append",
			Discipline:  call.Mut,
			Arity:       1,
			Description: "appends its argument to a captured string and returns the result",
			New: func(capture any, ownership string, probe *testutil.ReleaseProbe) (Instance, error) {
				s, err := captureString(capture)
				if err != nil {
					return nil, err
				}
				var sb strings.Builder
				sb.WriteString(s)
				c := call.Closure[string, string]{
					Fn: func(in string) string {
						sb.WriteString(in)
						return sb.String()
					},
					OnRelease: probe.Hook(),
				}
				return mutInstance(c, ownership, tuple.From1[string]), nil
			},
		},
		{
			Name:        "strlen",
			Discipline:  call.Once,
			Arity:       0,
			Description: "moves its captured string out and returns its length",
			New: func(capture any, ownership string, probe *testutil.ReleaseProbe) (Instance, error) {
				s, err := captureString(capture)
				if err != nil {
					return nil, err
				}
				c := call.Closure[tuple.Unit, int]{
					Fn: func(tuple.Unit) int {
						moved := s
						s = ""
						return len(moved)
					},
					OnRelease: probe.Hook(),
				}
				return onceInstance(c, ownership, tuple.From0)
			},
		},
	}
}
