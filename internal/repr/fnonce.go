package repr

import (
	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/handle"
	"github.com/roach88/rfn/internal/layout"
)

// BoxFnOnce owns a callable that runs at most once.
type BoxFnOnce[P, R any] struct {
	call    func(handle.Handle, P) R
	destroy func(handle.Handle)
	data    handle.Handle
}

// NewBoxFnOnce moves f behind a handle. Never fails.
func NewBoxFnOnce[P, R any, F call.FnOnce[P, R]](f F) BoxFnOnce[P, R] {
	return BoxFnOnce[P, R]{
		call:    boxFnOnceEntry[P, R, F],
		destroy: destroyEntry,
		data:    handle.New(f),
	}
}

// boxFnOnceEntry takes the state out of the table before calling, so the
// state is released by the call itself, then runs the release hook.
func boxFnOnceEntry[P, R any, F call.FnOnce[P, R]](h handle.Handle, p P) R {
	f := h.Take().(F)
	defer call.ReleaseState(f)
	return f.CallOnce(p)
}

// CallOnce invokes and consumes the callable. f is cleared before the call
// runs; a later Release is a no-op and a later CallOnce is invalid.
func (f *BoxFnOnce[P, R]) CallOnce(p P) R {
	if checkConsumed && f.data == 0 {
		panic(ErrConsumed)
	}
	h := f.data
	f.data = 0
	return f.call(h, p)
}

// Release destroys the state of a callable that was never called.
func (f *BoxFnOnce[P, R]) Release() {
	if f.data == 0 {
		return
	}
	h := f.data
	f.data = 0
	f.destroy(h)
}

// Consumed reports whether f has been called or released.
func (f BoxFnOnce[P, R]) Consumed() bool {
	return f.data == 0
}

// Discipline reports the call discipline the representation supports.
func (BoxFnOnce[P, R]) Discipline() call.Discipline { return call.Once }

// Owned reports whether the representation owns its captured state.
func (BoxFnOnce[P, R]) Owned() bool { return true }

// StableLayout declares the fixed layout of the representation.
func (f BoxFnOnce[P, R]) StableLayout() layout.Descriptor {
	return layout.Describe(f, call.Once.String(), Owned)
}
