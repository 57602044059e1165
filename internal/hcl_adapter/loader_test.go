package hcl_adapter

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/biometree/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadBytes(t *testing.T) {
	src := `
label "ocean" { reset = 0 }
label "plains" {}
label "sunflower_plains" { code = label.plains + 128 }
`
	model, err := NewLoader().LoadBytes(testContext(), "inline.hcl", []byte(src))
	require.NoError(t, err)
	require.Len(t, model.Entries, 3)
	assert.Equal(t, []string{"inline.hcl"}, model.Sources)

	ocean := model.Entries[0]
	assert.Equal(t, "ocean", ocean.Name)
	assert.Nil(t, ocean.Code)
	require.NotNil(t, ocean.Reset)
	v, diags := ocean.Reset.Value(nil)
	require.False(t, diags.HasErrors())
	assert.True(t, v.Type().Equals(cty.Number))
	n, _ := v.AsBigFloat().Int64()
	assert.Equal(t, int64(0), n)

	plains := model.Entries[1]
	assert.True(t, plains.IsAuto())
	assert.Nil(t, plains.Reset)

	sunflower := model.Entries[2]
	require.NotNil(t, sunflower.Code)
	assert.False(t, sunflower.IsAuto())
	assert.Equal(t, 4, sunflower.DeclRange.Start.Line)
}

func TestLoadBytes_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: `label "a" {`},
		{name: "unexpected top-level attribute", src: `version = 2`},
		{name: "unexpected block attribute", src: `label "a" { alias = "b" }`},
		{name: "missing name", src: `label {}`},
		{name: "code and reset together", src: `label "a" { code = 1
reset = 2 }`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().LoadBytes(testContext(), "bad.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad.hcl")
		})
	}
}

func TestLoad_Paths(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`label "ocean" {}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "b.hcl"), []byte(`label "plains" {}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte(`# not hcl`), 0600))

	// --- Act ---
	model, err := NewLoader().Load(testContext(), dir, filepath.Join(dir, "a.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Entries, 2)
	assert.Equal(t, "ocean", model.Entries[0].Name)
	assert.Equal(t, "plains", model.Entries[1].Name)
	assert.Len(t, model.Sources, 2)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(testContext(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestLoad_NoDocuments(t *testing.T) {
	_, err := NewLoader().Load(testContext(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl label documents")
}
