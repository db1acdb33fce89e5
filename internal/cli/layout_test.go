package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/rfn/internal/contract"
	"github.com/roach88/rfn/internal/layout"
	"github.com/roach88/rfn/internal/repr"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestLayoutCommand_JSONGolden(t *testing.T) {
	if layout.Word != 8 {
		t.Skip("golden layout is recorded for 64-bit words")
	}
	out, err := executeRoot(t, "layout", "--format", "json")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "layout_json", []byte(out))
}

func TestLayoutCommand_JSONMatchesCatalog(t *testing.T) {
	out, err := executeRoot(t, "layout", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   LayoutResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, layout.Word, resp.Data.Word)

	catalog := repr.Catalog()
	require.Len(t, resp.Data.Layouts, len(catalog))
	for i, d := range catalog {
		assert.Equal(t, d, resp.Data.Layouts[i].Descriptor)
		assert.Equal(t, d.MustFingerprint(), resp.Data.Layouts[i].Fingerprint)
		assert.True(t, resp.Data.Layouts[i].WordAligned, d.Name)
	}
}

func TestLayoutCommand_YAMLInlinesDescriptor(t *testing.T) {
	out, err := executeRoot(t, "layout", "--format", "yaml")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Layouts []map[string]any `yaml:"layouts"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Data.Layouts)
	first := resp.Data.Layouts[0]
	assert.Equal(t, "RefFn", first["name"])
	assert.Contains(t, first, "fingerprint")
	assert.NotContains(t, first, "descriptor")
}

func TestLayoutCommand_Text(t *testing.T) {
	out, err := executeRoot(t, "layout")
	require.NoError(t, err)

	for _, name := range []string{"RefFn", "RefFnMut", "BoxFn", "BoxFnMut", "BoxFnOnce"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "fingerprint ")
	assert.Contains(t, out, "destroy:code@")
}

func TestLayoutCommand_EmitRoundTrips(t *testing.T) {
	out, err := executeRoot(t, "layout", "--emit")
	require.NoError(t, err)

	c, err := contract.Parse([]byte(out), "emitted.cue")
	require.NoError(t, err)
	assert.Equal(t, layout.Word, c.Word)
	assert.NoError(t, c.Check(repr.Catalog()))
}

func TestLayoutCommand_RejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "layout", "extra")
	require.Error(t, err)
}

func TestBuildLayoutResult_ReportsMisaligned(t *testing.T) {
	padded := layout.Descriptor{
		Name:       "Padded",
		Discipline: "read",
		Ownership:  "owned",
		Word:       layout.Word,
		Size:       3 * layout.Word,
		Align:      layout.Word,
		Fields: []layout.Field{
			{Name: "call", Kind: layout.KindCode, Offset: 0, Size: layout.Word},
			{Name: "data", Kind: layout.KindHandle, Offset: 2 * layout.Word, Size: layout.Word},
		},
	}
	descs := append(repr.Catalog(), padded)

	result, err := buildLayoutResult(descs)
	require.NoError(t, err)
	require.Len(t, result.Layouts, len(descs))
	assert.False(t, result.Layouts[len(descs)-1].WordAligned)
	assert.Equal(t, []string{"Padded"}, result.Misaligned())

	var buf bytes.Buffer
	writeLayoutText(&buf, result)
	assert.Contains(t, buf.String(), "not word-aligned")
}

func TestBuildLayoutResult_CatalogAligned(t *testing.T) {
	result, err := buildLayoutResult(repr.Catalog())
	require.NoError(t, err)
	assert.Empty(t, result.Misaligned())
}
