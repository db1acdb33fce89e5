package repr

import (
	"unsafe"

	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/handle"
	"github.com/roach88/rfn/internal/layout"
)

// RefFn is a borrowed, repeatable, read-only callable.
type RefFn[P, R any] struct {
	call func(unsafe.Pointer, P) R
	data unsafe.Pointer
}

// BorrowFn references f without copying it. The result must not outlive *f.
//
// Type arguments P and R must be given; T is inferred: repr.BorrowFn[int, int](&f).
func BorrowFn[P, R, T any, PT interface {
	*T
	call.Fn[P, R]
}](f *T) RefFn[P, R] {
	return RefFn[P, R]{
		call: refFnEntry[P, R, T, PT],
		data: unsafe.Pointer(f),
	}
}

func refFnEntry[P, R, T any, PT interface {
	*T
	call.Fn[P, R]
}](data unsafe.Pointer, p P) R {
	return PT((*T)(data)).Call(p)
}

// Call invokes the borrowed callable.
func (f RefFn[P, R]) Call(p P) R {
	return f.call(f.data, p)
}

// Discipline reports the call discipline the representation supports.
func (RefFn[P, R]) Discipline() call.Discipline { return call.Read }

// Owned reports whether the representation owns its captured state.
func (RefFn[P, R]) Owned() bool { return false }

// StableLayout declares the fixed layout of the representation.
func (f RefFn[P, R]) StableLayout() layout.Descriptor {
	return layout.Describe(f, call.Read.String(), Borrowed)
}

// BoxFn owns a repeatable, read-only callable.
type BoxFn[P, R any] struct {
	call    func(handle.Handle, P) R
	destroy func(handle.Handle)
	data    handle.Handle
}

// NewBoxFn moves f behind a handle. Never fails.
func NewBoxFn[P, R any, F call.Fn[P, R]](f F) BoxFn[P, R] {
	return BoxFn[P, R]{
		call:    boxFnEntry[P, R, F],
		destroy: destroyEntry,
		data:    handle.New(f),
	}
}

func boxFnEntry[P, R any, F call.Fn[P, R]](h handle.Handle, p P) R {
	return h.Value().(F).Call(p)
}

// Call invokes the owned callable. Safe for concurrent use when the wrapped
// callable's state is.
func (f BoxFn[P, R]) Call(p P) R {
	return f.call(f.data, p)
}

// Release destroys the owned state. Further calls on f are invalid; further
// Release calls on f are no-ops.
func (f *BoxFn[P, R]) Release() {
	if f.data == 0 {
		return
	}
	h := f.data
	f.data = 0
	f.destroy(h)
}

// Discipline reports the call discipline the representation supports.
func (BoxFn[P, R]) Discipline() call.Discipline { return call.Read }

// Owned reports whether the representation owns its captured state.
func (BoxFn[P, R]) Owned() bool { return true }

// StableLayout declares the fixed layout of the representation.
func (f BoxFn[P, R]) StableLayout() layout.Descriptor {
	return layout.Describe(f, call.Read.String(), Owned)
}
