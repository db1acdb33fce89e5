package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalKeyOrder(t *testing.T) {
	data, err := MarshalCanonical(map[string]any{
		"b": 1,
		"a": "x",
		"c": []any{true, false},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":1,"c":[true,false]}`, string(data))
}

func TestMarshalCanonicalUTF16Order(t *testing.T) {
	// U+1F600 encodes as a surrogate pair (0xD83D...) and sorts before U+FFFD
	// by UTF-16 code units, although its UTF-8 bytes sort after.
	data, err := MarshalCanonical(map[string]any{
		"\uFFFD":     1,
		"\U0001F600": 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":2,\"\uFFFD\":1}", string(data))
}

func TestMarshalCanonicalStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "call", `"call"`},
		{"no html escaping", "<a&b>", `"<a&b>"`},
		{"quote and backslash", `a"b\c`, `"a\"b\\c"`},
		{"short escapes", "\n\t", `"\n\t"`},
		{"control", "\x01", `"\u0001"`},
		{"nfc", "e\u0301", "\"\u00e9\""},
		{"line separator literal", "\u2028", "\"\u2028\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalCanonical(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMarshalCanonicalRejects(t *testing.T) {
	_, err := MarshalCanonical(1.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are forbidden")

	_, err = MarshalCanonical(map[string]any{"k": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `object["k"]`)

	_, err = MarshalCanonical(struct{}{})
	assert.Error(t, err)
}

func TestMarshalCanonicalDescriptor(t *testing.T) {
	d := Descriptor{
		Name:       "RefFn",
		Discipline: "read",
		Ownership:  "borrowed",
		Word:       8,
		Size:       16,
		Align:      8,
		Fields: []Field{
			{Name: "call", Kind: KindCode, Offset: 0, Size: 8},
			{Name: "data", Kind: KindData, Offset: 8, Size: 8},
		},
	}
	data, err := MarshalCanonical(d)
	require.NoError(t, err)
	assert.Equal(t,
		`{"align":8,"discipline":"read","fields":[{"kind":"code","name":"call","offset":0,"size":8},`+
			`{"kind":"data","name":"data","offset":8,"size":8}],"name":"RefFn","ownership":"borrowed","size":16,"word":8}`,
		string(data))
}

func TestFingerprint(t *testing.T) {
	d := Describe(owned[int, int]{}, "read", "owned")

	fp1, err := d.Fingerprint()
	require.NoError(t, err)
	fp2, err := d.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2, "fingerprint must be deterministic")
	assert.Len(t, fp1, 64, "SHA-256 hex is 64 characters")

	other := d
	other.Discipline = "mut"
	assert.NotEqual(t, fp1, other.MustFingerprint())
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte("same")
	assert.NotEqual(t, hashWithDomain("a", data), hashWithDomain("b", data))
	assert.NotEqual(t, hashWithDomain("ab", []byte("c")), hashWithDomain("a", []byte("bc")))
}
