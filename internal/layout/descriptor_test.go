package layout

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type owned[P, R any] struct {
	call    func(uintptr, P) R
	destroy func(uintptr)
	data    uintptr
}

type borrowed[P, R any] struct {
	call func(unsafe.Pointer, P) R
	data unsafe.Pointer
}

type padded struct {
	flag bool
	data uintptr
}

func TestDescribeOwned(t *testing.T) {
	d := Describe(owned[int, string]{}, "read", "owned")

	assert.Equal(t, "owned", d.Name)
	assert.Equal(t, "read", d.Discipline)
	assert.Equal(t, "owned", d.Ownership)
	assert.Equal(t, Word, d.Word)
	assert.Equal(t, 3*Word, d.Size)
	assert.Equal(t, Word, d.Align)

	require.Len(t, d.Fields, 3)
	assert.Equal(t, Field{Name: "call", Kind: KindCode, Offset: 0, Size: Word}, d.Fields[0])
	assert.Equal(t, Field{Name: "destroy", Kind: KindCode, Offset: Word, Size: Word}, d.Fields[1])
	assert.Equal(t, Field{Name: "data", Kind: KindHandle, Offset: 2 * Word, Size: Word}, d.Fields[2])
	assert.True(t, d.WordAligned())
}

func TestDescribeBorrowed(t *testing.T) {
	d := Describe(&borrowed[string, []byte]{}, "mut", "borrowed")

	assert.Equal(t, "borrowed", d.Name, "pointer is dereferenced and type arguments dropped")
	require.Len(t, d.Fields, 2)
	assert.Equal(t, KindCode, d.Fields[0].Kind)
	assert.Equal(t, KindData, d.Fields[1].Kind)
	assert.True(t, d.WordAligned())
}

func TestDescribeIndependentOfTypeArguments(t *testing.T) {
	a := Describe(owned[int, int]{}, "read", "owned")
	b := Describe(owned[struct{ x, y, z int64 }, []string]{}, "read", "owned")

	assert.Equal(t, a, b)
	assert.Equal(t, a.MustFingerprint(), b.MustFingerprint())
}

func TestDescribeNonStructPanics(t *testing.T) {
	assert.Panics(t, func() { Describe(42, "read", "owned") })
	assert.Panics(t, func() { Describe(nil, "read", "owned") })
}

func TestWordAlignedRejectsPadding(t *testing.T) {
	d := Describe(padded{}, "read", "owned")
	assert.Equal(t, KindOther, d.Fields[0].Kind)
	assert.False(t, d.WordAligned())
}

func TestCompare(t *testing.T) {
	want := Describe(owned[int, int]{}, "read", "owned")

	assert.Empty(t, want.Compare(want))

	got := Describe(borrowed[int, int]{}, "once", "owned")
	diffs := want.Compare(got)
	require.NotEmpty(t, diffs)

	paths := make([]string, len(diffs))
	for i, m := range diffs {
		paths[i] = m.Path
	}
	assert.Contains(t, paths, "discipline")
	assert.Contains(t, paths, "size")
	assert.Contains(t, paths, "fields")
	assert.Contains(t, paths, "fields[1].name")
	assert.NotContains(t, paths, "fields[0].name")

	for _, m := range diffs {
		if m.Path == "discipline" {
			assert.Equal(t, "discipline: want read, got once", m.String())
		}
	}
}
