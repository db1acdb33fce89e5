package adapt

import (
	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/repr"
	"github.com/roach88/rfn/internal/tuple"
)

// OnceFunc0 wraps a zero-argument function that may run only once.
func OnceFunc0[R any](f func() R) repr.BoxFnOnce[tuple.Unit, R] {
	return repr.NewBoxFnOnce[tuple.Unit, R](call.OnceFunc[tuple.Unit, R](func(tuple.Unit) R {
		return f()
	}))
}

// OnceFunc1 wraps a one-argument function that may run only once.
func OnceFunc1[A, R any](f func(A) R) repr.BoxFnOnce[A, R] {
	return repr.NewBoxFnOnce[A, R](call.OnceFunc[A, R](f))
}

// OnceFunc2 wraps a two-argument one-shot function; arguments travel as a T2.
func OnceFunc2[A, B, R any](f func(A, B) R) repr.BoxFnOnce[tuple.T2[A, B], R] {
	return repr.NewBoxFnOnce[tuple.T2[A, B], R](call.OnceFunc[tuple.T2[A, B], R](func(t tuple.T2[A, B]) R {
		return f(t.Unpack())
	}))
}

// OnceFunc3 wraps a three-argument one-shot function; arguments travel as a T3.
func OnceFunc3[A, B, C, R any](f func(A, B, C) R) repr.BoxFnOnce[tuple.T3[A, B, C], R] {
	return repr.NewBoxFnOnce[tuple.T3[A, B, C], R](call.OnceFunc[tuple.T3[A, B, C], R](func(t tuple.T3[A, B, C]) R {
		return f(t.Unpack())
	}))
}

// UnwrapOnce0 presents a zero-argument one-shot callable as a plain function.
// The returned function may be called once; it consumes f.
func UnwrapOnce0[R any](f call.FnOnce[tuple.Unit, R]) func() R {
	return func() R { return f.CallOnce(tuple.Unit{}) }
}

// UnwrapOnce1 presents a one-argument one-shot callable as a plain function.
func UnwrapOnce1[A, R any](f call.FnOnce[A, R]) func(A) R {
	return f.CallOnce
}

// UnwrapOnce2 presents a one-shot callable over T2 as a two-argument function.
func UnwrapOnce2[A, B, R any](f call.FnOnce[tuple.T2[A, B], R]) func(A, B) R {
	return func(a A, b B) R { return f.CallOnce(tuple.Pack2(a, b)) }
}

// UnwrapOnce3 presents a one-shot callable over T3 as a three-argument function.
func UnwrapOnce3[A, B, C, R any](f call.FnOnce[tuple.T3[A, B, C], R]) func(A, B, C) R {
	return func(a A, b B, c C) R { return f.CallOnce(tuple.Pack3(a, b, c)) }
}
