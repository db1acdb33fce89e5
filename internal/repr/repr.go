package repr

import (
	"errors"

	"github.com/roach88/rfn/internal/call"
	"github.com/roach88/rfn/internal/handle"
	"github.com/roach88/rfn/internal/layout"
)

// Ownership names for layout descriptors.
const (
	Borrowed = "borrowed"
	Owned    = "owned"
)

// ErrConsumed is the panic value for a second CallOnce in rfndebug builds.
var ErrConsumed = errors.New("repr: one-shot callable invoked after it was consumed")

// destroyEntry releases owned state: the handle is taken out of the table and
// the state's release hook, if any, runs.
func destroyEntry(h handle.Handle) {
	call.ReleaseState(h.Take())
}

// Catalog returns the layout of every representation type.
func Catalog() []layout.Descriptor {
	type unit = struct{}
	return []layout.Descriptor{
		RefFn[unit, unit]{}.StableLayout(),
		RefFnMut[unit, unit]{}.StableLayout(),
		BoxFn[unit, unit]{}.StableLayout(),
		BoxFnMut[unit, unit]{}.StableLayout(),
		BoxFnOnce[unit, unit]{}.StableLayout(),
	}
}

var (
	_ call.Fn[int, int]     = RefFn[int, int]{}
	_ call.FnMut[int, int]  = (*RefFnMut[int, int])(nil)
	_ call.Fn[int, int]     = BoxFn[int, int]{}
	_ call.FnMut[int, int]  = (*BoxFnMut[int, int])(nil)
	_ call.FnOnce[int, int] = (*BoxFnOnce[int, int])(nil)

	_ layout.Certifiable = RefFn[int, int]{}
	_ layout.Certifiable = RefFnMut[int, int]{}
	_ layout.Certifiable = BoxFn[int, int]{}
	_ layout.Certifiable = BoxFnMut[int, int]{}
	_ layout.Certifiable = BoxFnOnce[int, int]{}
)
