package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/biometree/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.c")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, errOut, nil)

	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Usage:")
	assert.Contains(t, errOut.String(), "nptree-bin [options] FILE")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-dump", "tree.c"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

// A lone root leaf labelled ocean packs to a one-point catalog and a single
// label word.
func TestRun_SingleOceanLeaf(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := writeInput(t, "0,0,0,0,0,0,0,0,0,0,0,0,ocean\n")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{input})

	// --- Assert ---
	require.NoError(t, err)
	expected := "" +
		"{     0,     0}, // 00-00\n" +
		"\n" +
		"0xFF00000000000000,\n"
	assert.Equal(t, expected, out.String())
}

func TestRun_Header(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "/*0*/{{},{1},none},\n/*1*/{{1,2,1,2,1,2,1,2,1,2,1,2},{},plains},\n\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-format", "header", "-name", "overworld", input})

	require.NoError(t, err)
	expected := "" +
		"static const int32_t overworld_param[][2] =\n" +
		"{\n" +
		"    {     0,     0},{     1,     2}, // 00-01\n" +
		"};\n" +
		"\n" +
		"static const uint64_t overworld_nodes[] =\n" +
		"{\n" +
		"    0x0001000000000000,0xFF01010101010101,\n" +
		"};\n"
	assert.Equal(t, expected, out.String())
}

func TestRun_UnknownLabel(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "/*0*/{{},{},atlantis},\n")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{input})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "atlantis")
	assert.Empty(t, out.String())
}
