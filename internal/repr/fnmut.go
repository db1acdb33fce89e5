package repr

import (
	"unsafe"

	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/handle"
	"github.com/roach88/rfn/internal/layout"
)

// RefFnMut is a borrowed callable that mutates its captured state.
type RefFnMut[P, R any] struct {
	call func(unsafe.Pointer, P) R
	data unsafe.Pointer
}

// BorrowFnMut references f without copying it; mutations land in *f.
// The result must not outlive *f.
func BorrowFnMut[P, R, T any, PT interface {
	*T
	call.FnMut[P, R]
}](f *T) RefFnMut[P, R] {
	return RefFnMut[P, R]{
		call: refFnMutEntry[P, R, T, PT],
		data: unsafe.Pointer(f),
	}
}

func refFnMutEntry[P, R, T any, PT interface {
	*T
	call.FnMut[P, R]
}](data unsafe.Pointer, p P) R {
	return PT((*T)(data)).CallMut(p)
}

// CallMut invokes the borrowed callable. Calls must be serialized.
func (f *RefFnMut[P, R]) CallMut(p P) R {
	return f.call(f.data, p)
}

// Discipline reports the call discipline the representation supports.
func (RefFnMut[P, R]) Discipline() call.Discipline { return call.Mut }

// Owned reports whether the representation owns its captured state.
func (RefFnMut[P, R]) Owned() bool { return false }

// StableLayout declares the fixed layout of the representation.
func (f RefFnMut[P, R]) StableLayout() layout.Descriptor {
	return layout.Describe(f, call.Mut.String(), Borrowed)
}

// BoxFnMut owns a callable that mutates its captured state.
type BoxFnMut[P, R any] struct {
	call    func(handle.Handle, P) R
	destroy func(handle.Handle)
	data    handle.Handle
}

// NewBoxFnMut moves a copy of f behind a handle. The copy is addressable, so
// pointer-receiver CallMut methods mutate the owned state across calls.
// Pass the value, not a pointer to it; NewBoxFnMutFrom takes pointers.
func NewBoxFnMut[P, R, T any, PT interface {
	*T
	call.FnMut[P, R]
}](f T) BoxFnMut[P, R] {
	owned := new(T)
	*owned = f
	return BoxFnMut[P, R]{
		call:    boxFnMutEntry[P, R, T, PT],
		destroy: destroyEntry,
		data:    handle.New(PT(owned)),
	}
}

func boxFnMutEntry[P, R, T any, PT interface {
	*T
	call.FnMut[P, R]
}](h handle.Handle, p P) R {
	return h.Value().(PT).CallMut(p)
}

// NewBoxFnMutFrom moves f behind a handle as is. When f is a pointer the
// caller keeps seeing its mutations; the representation still releases it.
func NewBoxFnMutFrom[P, R any, F call.FnMut[P, R]](f F) BoxFnMut[P, R] {
	return BoxFnMut[P, R]{
		call:    boxFnMutFromEntry[P, R, F],
		destroy: destroyEntry,
		data:    handle.New(f),
	}
}

func boxFnMutFromEntry[P, R any, F call.FnMut[P, R]](h handle.Handle, p P) R {
	return h.Value().(F).CallMut(p)
}

// CallMut invokes the owned callable. Calls must be serialized.
func (f *BoxFnMut[P, R]) CallMut(p P) R {
	return f.call(f.data, p)
}

// Release destroys the owned state; later Release calls on f are no-ops.
func (f *BoxFnMut[P, R]) Release() {
	if f.data == 0 {
		return
	}
	h := f.data
	f.data = 0
	f.destroy(h)
}

// Discipline reports the call discipline the representation supports.
func (BoxFnMut[P, R]) Discipline() call.Discipline { return call.Mut }

// Owned reports whether the representation owns its captured state.
func (BoxFnMut[P, R]) Owned() bool { return true }

// StableLayout declares the fixed layout of the representation.
func (f BoxFnMut[P, R]) StableLayout() layout.Descriptor {
	return layout.Describe(f, call.Mut.String(), Owned)
}
