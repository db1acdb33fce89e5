package handle

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Handle identifies a value held by a Table. The zero Handle is never issued.
type Handle uintptr

// Table maps handles to the values they pin.
// All methods are safe for concurrent use.
type Table struct {
	values sync.Map // Handle -> any
	next   atomic.Uintptr
	live   atomic.Int64
	total  atomic.Int64
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// New stores v and returns a fresh handle for it.
func (t *Table) New(v any) Handle {
	h := Handle(t.next.Add(1))
	t.values.Store(h, v)
	t.live.Add(1)
	t.total.Add(1)
	slog.Debug("handle allocated", "handle", uintptr(h))
	return h
}

// Value returns the value pinned by h. It panics if h is not live.
func (t *Table) Value(h Handle) any {
	v, ok := t.values.Load(h)
	if !ok {
		panic(errInvalid)
	}
	return v
}

// Take removes h from the table and returns the value it pinned.
// It panics if h is not live, so a handle can be taken at most once.
func (t *Table) Take(h Handle) any {
	v, ok := t.values.LoadAndDelete(h)
	if !ok {
		panic(errInvalid)
	}
	t.live.Add(-1)
	slog.Debug("handle released", "handle", uintptr(h))
	return v
}

// Delete releases h without returning its value.
func (t *Table) Delete(h Handle) {
	t.Take(h)
}

// Live reports how many handles are allocated and not yet released.
func (t *Table) Live() int64 {
	return t.live.Load()
}

// Allocated reports how many handles the table has ever issued.
func (t *Table) Allocated() int64 {
	return t.total.Load()
}

// errInvalid is the panic value for use of a handle that is not live.
const errInvalid = "handle: misuse of an invalid Handle"

var global = NewTable()

// New pins v in the process-wide table.
func New(v any) Handle { return global.New(v) }

// Value returns the value h pins in the process-wide table.
func (h Handle) Value() any { return global.Value(h) }

// Take releases h from the process-wide table and returns its value.
func (h Handle) Take() any { return global.Take(h) }

// Delete releases h from the process-wide table.
func (h Handle) Delete() { global.Delete(h) }

// Live reports outstanding handles in the process-wide table.
func Live() int64 { return global.Live() }

// Allocated reports how many handles the process-wide table has issued.
func Allocated() int64 { return global.Allocated() }
