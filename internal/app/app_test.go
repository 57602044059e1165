package app

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/biometree/internal/hcl_adapter"
	"github.com/specialistvlad/biometree/internal/labels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transcript = `biomeEntries = {Climate$ParameterList@900}
 0 = {MultiNoiseUtil$RTree$SubTree@901} "SubTree{parameterSpace=[[-10000-10000], [-10000-10000], [-10000--1900], [-10000-10000], 0, [-10000-10000], 0]}"
   0 = {MultiNoiseUtil$RTree$Leaf@902} "Leaf{parameterSpace=[[-10000-10000], [-10000--4500], [-10000--1900], [-10000-10000], 0, [-10000-10000], 0]}"
     value = {ResourceKey@903} "ResourceKey[minecraft:worldgen/biome / minecraft:frozen_ocean]"
   1 = {MultiNoiseUtil$RTree$Leaf@904} "Leaf{parameterSpace=[[-10000-10000], [-4500-10000], [-10000--1900], [-10000-10000], 0, [-10000-10000], 0]}"
     value = {ResourceKey@905} "ResourceKey[minecraft:worldgen/biome / minecraft:ocean]"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func setupApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	t.Cleanup(func() {
		if os.Getenv("BIOMETREE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return NewApp(out, logs, validated, hcl_adapter.NewLoader()), out, logs
}

func TestRun_TreeMode(t *testing.T) {
	// --- Arrange ---
	input := writeFile(t, "dump.txt", transcript)
	a, out, logs := setupApp(t, Config{Mode: ModeTree, InputPath: input})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	expected := "" +
		"/*0*/{{},{1},none},\n" +
		"/*1*/{{-10000,10000,-10000,10000,-10000,-1900,-10000,10000,0,0,-10000,10000},{2,3},none},\n" +
		"/*2*/{{-10000,10000,-10000,-4500,-10000,-1900,-10000,10000,0,0,-10000,10000},{},frozen_ocean},\n" +
		"/*3*/{{-10000,10000,-4500,10000,-10000,-1900,-10000,10000,0,0,-10000,10000},{},ocean},\n" +
		"\n"
	assert.Equal(t, expected, out.String())
	assert.Contains(t, logs.String(), "Climate tree built.")
}

func TestRun_TreeDump(t *testing.T) {
	input := writeFile(t, "dump.txt", transcript)
	a, out, _ := setupApp(t, Config{Mode: ModeTree, InputPath: input, Dump: true})

	require.NoError(t, a.Run(context.Background()))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[2], ": frozen_ocean"))
}

func TestRun_TreeThenTable(t *testing.T) {
	// --- Arrange ---
	treeIn := writeFile(t, "dump.txt", transcript)
	treeApp, treeOut, _ := setupApp(t, Config{Mode: ModeTree, InputPath: treeIn})
	require.NoError(t, treeApp.Run(context.Background()))

	tableIn := writeFile(t, "tree.c", treeOut.String())
	tableApp, tableOut, _ := setupApp(t, Config{Mode: ModeTable, InputPath: tableIn})

	// --- Act ---
	err := tableApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	// Catalog: (-10000,-4500)=0 (-10000,-1900)=1 (-10000,10000)=2 (-4500,10000)=3 (0,0)=4
	expected := "" +
		"{-10000, -4500},{-10000, -1900},{-10000, 10000},{ -4500, 10000}, // 00-03\n" +
		"{     0,     0}, // 04-04\n" +
		"\n" +
		"0x0001040404040404,0x0002020402010202,0xFF0A020402010002,0xFF00020402010302,\n"
	assert.Equal(t, expected, tableOut.String())
}

func TestRun_TableBinaryToFile(t *testing.T) {
	input := writeFile(t, "tree.c", "/*0*/{{},{},ocean},\n")
	output := filepath.Join(t.TempDir(), "btree.bin")
	a, out, _ := setupApp(t, Config{Mode: ModeTable, InputPath: input, OutputPath: output, Format: FormatBinary})

	require.NoError(t, a.Run(context.Background()))
	assert.Zero(t, out.Len())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, data, 8)
	assert.Equal(t, uint64(0xFF00000000000000), binary.LittleEndian.Uint64(data))
}

func TestRun_TableHeader(t *testing.T) {
	input := writeFile(t, "tree.c", "/*0*/{{},{},ocean},\n")
	a, out, _ := setupApp(t, Config{Mode: ModeTable, InputPath: input, Format: FormatHeader, TableName: "btree"})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "static const uint64_t btree_nodes[] =")
	assert.Contains(t, out.String(), "    0xFF00000000000000,\n")
}

func TestRun_CustomLabels(t *testing.T) {
	labelsPath := writeFile(t, "labels.hcl", `label "ocean" { reset = 42 }`)
	input := writeFile(t, "tree.c", "/*0*/{{},{},ocean},\n")
	a, out, _ := setupApp(t, Config{Mode: ModeTable, InputPath: input, LabelsPaths: []string{labelsPath}})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "0xFF2A000000000000,")
}

func TestRun_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		content string
		errPart string
	}{
		{
			name:    "unknown label",
			cfg:     Config{Mode: ModeTable},
			content: "/*0*/{{},{},atlantis},\n",
			errPart: `unknown biome label "atlantis"`,
		},
		{
			name:    "malformed range",
			cfg:     Config{Mode: ModeTree},
			content: ` 0 = {MultiNoiseUtil$RTree$Leaf@1} "[[9-1], 0, 0, 0, 0, 0, 0]"`,
			errPart: "malformed range",
		},
		{
			name:    "malformed row",
			cfg:     Config{Mode: ModeTable},
			content: "/*0*/{{1,2},{},ocean},\n",
			errPart: "malformed row",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			cfg.InputPath = writeFile(t, "input", tc.content)
			a, out, _ := setupApp(t, cfg)

			err := a.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
			assert.Zero(t, out.Len(), "no partial output on failure")
		})
	}

	t.Run("unknown label is typed", func(t *testing.T) {
		input := writeFile(t, "tree.c", "/*0*/{{},{},atlantis},\n")
		a, _, _ := setupApp(t, Config{Mode: ModeTable, InputPath: input})
		var ule *labels.UnknownLabelError
		assert.ErrorAs(t, a.Run(context.Background()), &ule)
	})
}

func TestRun_MissingInput(t *testing.T) {
	a, _, _ := setupApp(t, Config{Mode: ModeTree, InputPath: filepath.Join(t.TempDir(), "absent.txt")})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{Mode: ModeTable, InputPath: "x"})
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)

	_, err = NewConfig(Config{Mode: ModeTable, InputPath: "x", Format: FormatHeader})
	assert.Error(t, err)

	_, err = NewConfig(Config{Mode: ModeTable, InputPath: "x", Format: "yaml"})
	assert.Error(t, err)

	_, err = NewConfig(Config{Mode: Mode(9), InputPath: "x"})
	assert.Error(t, err)
}

func TestRun_PlaceholdersSurviveTable(t *testing.T) {
	// --- Arrange ---
	dump := strings.Join([]string{
		` 0 = {MultiNoiseUtil$RTree$SubTree@1} "SubTree{parameterSpace=[[-5-5], 0, 0, 0, 0, 0, 0]}"`,
		`   3 = {MultiNoiseUtil$RTree$Leaf@2} "Leaf{parameterSpace=[[1-2], 0, 0, 0, 0, 0, 0]}"`,
		`     value = {ResourceKey@3} "ResourceKey[minecraft:worldgen/biome / minecraft:river]"`,
	}, "\n")
	treeApp, treeOut, _ := setupApp(t, Config{Mode: ModeTree, InputPath: writeFile(t, "dump.txt", dump)})
	require.NoError(t, treeApp.Run(context.Background()))
	require.Contains(t, treeOut.String(), "/*2*/{{},{},none},\n")

	tableApp, tableOut, _ := setupApp(t, Config{Mode: ModeTable, InputPath: writeFile(t, "tree.c", treeOut.String())})

	// --- Act ---
	err := tableApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	// Catalog: (-5,5)=0 (0,0)=1 (1,2)=2. Placeholders 2-4 point at themselves.
	expected := "" +
		"{    -5,     5},{     0,     0},{     1,     2}, // 00-02\n" +
		"\n" +
		"0x0001010101010101,0x0002010101010100,0x0002010101010101,0x0003010101010101,\n" +
		"0x0004010101010101,0xFF07010101010102,\n"
	assert.Equal(t, expected, tableOut.String())
}
