package call

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adder struct{ base int }

func (a adder) Call(n int) int { return a.base + n }

type accumulator struct{ total int }

func (a *accumulator) CallMut(n int) int {
	a.total += n
	return a.total
}

type tracked struct{ releases *int }

func (t tracked) Release() { *t.releases++ }

func TestDisciplineString(t *testing.T) {
	assert.Equal(t, "read", Read.String())
	assert.Equal(t, "mut", Mut.String())
	assert.Equal(t, "once", Once.String())
	assert.Equal(t, "discipline(9)", Discipline(9).String())
}

func TestDisciplineProperties(t *testing.T) {
	tests := []struct {
		d          Discipline
		repeatable bool
		consuming  bool
	}{
		{Read, true, false},
		{Mut, true, false},
		{Once, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.True(t, tt.d.Valid())
			assert.Equal(t, tt.repeatable, tt.d.Repeatable())
			assert.Equal(t, tt.consuming, tt.d.Consuming())
		})
	}
	assert.False(t, Discipline(0).Valid())
}

func TestParseDiscipline(t *testing.T) {
	for _, d := range []Discipline{Read, Mut, Once} {
		parsed, err := ParseDiscipline(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseDiscipline("twice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twice")
}

func TestStructuralConformance(t *testing.T) {
	var fn Fn[int, int] = adder{base: 40}
	assert.Equal(t, 42, fn.Call(2))
	assert.Equal(t, 42, fn.Call(2), "read calls do not change the result")

	acc := &accumulator{}
	var mut FnMut[int, int] = acc
	assert.Equal(t, 1, mut.CallMut(1))
	assert.Equal(t, 3, mut.CallMut(2))
	assert.Equal(t, 3, acc.total)
}

func TestFuncAdapters(t *testing.T) {
	upper := Func[string, string](strings.ToUpper)
	var (
		r Fn[string, string]     = upper
		m FnMut[string, string]  = upper
		o FnOnce[string, string] = upper
	)
	assert.Equal(t, "A", r.Call("a"))
	assert.Equal(t, "B", m.CallMut("b"))
	assert.Equal(t, "C", o.CallOnce("c"))

	n := 0
	counter := MutFunc[struct{}, int](func(struct{}) int {
		n++
		return n
	})
	assert.Equal(t, 1, counter.CallMut(struct{}{}))
	assert.Equal(t, 2, counter.CallOnce(struct{}{}))

	once := OnceFunc[int, int](func(x int) int { return x * 2 })
	assert.Equal(t, 8, once.CallOnce(4))
}

func TestClosureRelease(t *testing.T) {
	released := 0
	c := Closure[int, int]{
		Fn:        func(x int) int { return x + 1 },
		OnRelease: func() { released++ },
	}
	assert.Equal(t, 2, c.Call(1))
	assert.Equal(t, 0, released)

	assert.True(t, ReleaseState(c))
	assert.Equal(t, 1, released)

	// A nil hook is allowed.
	assert.True(t, ReleaseState(Closure[int, int]{Fn: func(x int) int { return x }}))
}

func TestReleaseState(t *testing.T) {
	count := 0
	assert.True(t, ReleaseState(tracked{releases: &count}))
	assert.Equal(t, 1, count)

	assert.False(t, ReleaseState(adder{}))
	assert.False(t, ReleaseState(nil))
}
