package call

// Fn is a repeatable callable that only reads its captured state.
// Concurrent calls are safe when the captured state tolerates concurrent reads.
type Fn[P, R any] interface {
	Call(p P) R
}

// FnMut is a repeatable callable with exclusive mutable access to its captured
// state. Mutations made by one call are visible to the next. Callers must
// serialize calls; nothing in this module arbitrates concurrent CallMut.
type FnMut[P, R any] interface {
	CallMut(p P) R
}

// FnOnce is a callable that may be invoked a single time.
//
// Go cannot move a value out from under its owner, so the interface alone does
// not stop a second call. Representations that cross a boundary enforce the
// contract by clearing their state on the first call (see package repr).
type FnOnce[P, R any] interface {
	CallOnce(p P) R
}

// Releaser is implemented by captured state that must be torn down when the
// callable holding it is destroyed. Release is invoked exactly once by owned
// representations: on Release of the representation, or as part of the
// consuming call for one-shot callables.
type Releaser interface {
	Release()
}

// Func adapts a plain function to every discipline. A function that is safe to
// call repeatedly without mutation is also safe to call mutably or once.
type Func[P, R any] func(P) R

// Call implements Fn.
func (f Func[P, R]) Call(p P) R { return f(p) }

// CallMut implements FnMut.
func (f Func[P, R]) CallMut(p P) R { return f(p) }

// CallOnce implements FnOnce.
func (f Func[P, R]) CallOnce(p P) R { return f(p) }

// MutFunc adapts a function that mutates what it closes over.
// It satisfies FnMut and FnOnce but deliberately not Fn.
type MutFunc[P, R any] func(P) R

// CallMut implements FnMut.
func (f MutFunc[P, R]) CallMut(p P) R { return f(p) }

// CallOnce implements FnOnce.
func (f MutFunc[P, R]) CallOnce(p P) R { return f(p) }

// OnceFunc adapts a function that may only run once.
type OnceFunc[P, R any] func(P) R

// CallOnce implements FnOnce.
func (f OnceFunc[P, R]) CallOnce(p P) R { return f(p) }

// Closure pairs a function with a hook that releases what it captured.
// OnRelease may be nil.
type Closure[P, R any] struct {
	Fn        func(P) R
	OnRelease func()
}

// Call implements Fn.
func (c Closure[P, R]) Call(p P) R { return c.Fn(p) }

// CallMut implements FnMut.
func (c Closure[P, R]) CallMut(p P) R { return c.Fn(p) }

// CallOnce implements FnOnce.
func (c Closure[P, R]) CallOnce(p P) R { return c.Fn(p) }

// Release runs OnRelease if one was supplied.
func (c Closure[P, R]) Release() {
	if c.OnRelease != nil {
		c.OnRelease()
	}
}

// ReleaseState runs v's Release hook when it has one and reports whether it did.
func ReleaseState(v any) bool {
	r, ok := v.(Releaser)
	if !ok {
		return false
	}
	r.Release()
	return true
}
