package adapt

import (
	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/repr"
	"github.com/roach88/rfn/internal/tuple"
)

// MutFunc0 wraps a zero-argument function that mutates what it captures.
// Captured variables are shared with the caller, as with any Go closure.
func MutFunc0[R any](f func() R) repr.BoxFnMut[tuple.Unit, R] {
	return repr.NewBoxFnMut[tuple.Unit, R](call.MutFunc[tuple.Unit, R](func(tuple.Unit) R {
		return f()
	}))
}

// MutFunc1 wraps a one-argument function that mutates what it captures.
func MutFunc1[A, R any](f func(A) R) repr.BoxFnMut[A, R] {
	return repr.NewBoxFnMut[A, R](call.MutFunc[A, R](f))
}

// MutFunc2 wraps a two-argument mutating function; arguments travel as a T2.
func MutFunc2[A, B, R any](f func(A, B) R) repr.BoxFnMut[tuple.T2[A, B], R] {
	return repr.NewBoxFnMut[tuple.T2[A, B], R](call.MutFunc[tuple.T2[A, B], R](func(t tuple.T2[A, B]) R {
		return f(t.Unpack())
	}))
}

// MutFunc3 wraps a three-argument mutating function; arguments travel as a T3.
func MutFunc3[A, B, C, R any](f func(A, B, C) R) repr.BoxFnMut[tuple.T3[A, B, C], R] {
	return repr.NewBoxFnMut[tuple.T3[A, B, C], R](call.MutFunc[tuple.T3[A, B, C], R](func(t tuple.T3[A, B, C]) R {
		return f(t.Unpack())
	}))
}

// UnwrapMut0 presents a zero-argument mutable callable as a plain function.
// The returned function inherits the callable's rule: calls must be serialized.
func UnwrapMut0[R any](f call.FnMut[tuple.Unit, R]) func() R {
	return func() R { return f.CallMut(tuple.Unit{}) }
}

// UnwrapMut1 presents a one-argument mutable callable as a plain function.
func UnwrapMut1[A, R any](f call.FnMut[A, R]) func(A) R {
	return f.CallMut
}

// UnwrapMut2 presents a mutable callable over T2 as a two-argument function.
func UnwrapMut2[A, B, R any](f call.FnMut[tuple.T2[A, B], R]) func(A, B) R {
	return func(a A, b B) R { return f.CallMut(tuple.Pack2(a, b)) }
}

// UnwrapMut3 presents a mutable callable over T3 as a three-argument function.
func UnwrapMut3[A, B, C, R any](f call.FnMut[tuple.T3[A, B, C], R]) func(A, B, C) R {
	return func(a A, b B, c C) R { return f.CallMut(tuple.Pack3(a, b, c)) }
}
