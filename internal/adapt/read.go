package adapt

import (
	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/repr"
	"github.com/roach88/rfn/internal/tuple"
)

// Func0 wraps a zero-argument function as an owned read-only callable.
func Func0[R any](f func() R) repr.BoxFn[tuple.Unit, R] {
	return repr.NewBoxFn[tuple.Unit, R](call.Func[tuple.Unit, R](func(tuple.Unit) R {
		return f()
	}))
}

// Func1 wraps a one-argument function as an owned read-only callable.
func Func1[A, R any](f func(A) R) repr.BoxFn[A, R] {
	return repr.NewBoxFn[A, R](call.Func[A, R](f))
}

// Func2 wraps a two-argument function; arguments travel as a T2.
func Func2[A, B, R any](f func(A, B) R) repr.BoxFn[tuple.T2[A, B], R] {
	return repr.NewBoxFn[tuple.T2[A, B], R](call.Func[tuple.T2[A, B], R](func(t tuple.T2[A, B]) R {
		return f(t.Unpack())
	}))
}

// Func3 wraps a three-argument function; arguments travel as a T3.
func Func3[A, B, C, R any](f func(A, B, C) R) repr.BoxFn[tuple.T3[A, B, C], R] {
	return repr.NewBoxFn[tuple.T3[A, B, C], R](call.Func[tuple.T3[A, B, C], R](func(t tuple.T3[A, B, C]) R {
		return f(t.Unpack())
	}))
}

// Unwrap0 presents a zero-argument read callable as a plain function.
func Unwrap0[R any](f call.Fn[tuple.Unit, R]) func() R {
	return func() R { return f.Call(tuple.Unit{}) }
}

// Unwrap1 presents a one-argument read-only callable as a plain function.
func Unwrap1[A, R any](f call.Fn[A, R]) func(A) R {
	return f.Call
}

// Unwrap2 presents a read-only callable over T2 as a two-argument function.
func Unwrap2[A, B, R any](f call.Fn[tuple.T2[A, B], R]) func(A, B) R {
	return func(a A, b B) R { return f.Call(tuple.Pack2(a, b)) }
}

// Unwrap3 presents a read-only callable over T3 as a three-argument function.
func Unwrap3[A, B, C, R any](f call.Fn[tuple.T3[A, B, C], R]) func(A, B, C) R {
	return func(a A, b B, c C) R { return f.Call(tuple.Pack3(a, b, c)) }
}
