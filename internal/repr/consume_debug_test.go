//go:build rfndebug

package repr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/rfn/internal/call"
)

func TestBoxFnOnceSecondCallPanicsConsumed(t *testing.T) {
	calls := 0
	b := NewBoxFnOnce[int, int](call.OnceFunc[int, int](func(x int) int {
		calls++
		return x
	}))
	assert.Equal(t, 1, b.CallOnce(1))
	assert.PanicsWithValue(t, ErrConsumed, func() { b.CallOnce(2) })
	assert.Equal(t, 1, calls)
}

func TestBoxFnOnceCallAfterReleasePanicsConsumed(t *testing.T) {
	b := NewBoxFnOnce[int, int](call.OnceFunc[int, int](func(x int) int { return x }))
	b.Release()

	assert.PanicsWithValue(t, ErrConsumed, func() { b.CallOnce(1) })
}
