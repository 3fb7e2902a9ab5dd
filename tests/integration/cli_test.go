package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edatools/kicadio/internal/cli"
	"github.com/edatools/kicadio/internal/paths"
	"github.com/edatools/kicadio/pkg/board"
	"github.com/edatools/kicadio/pkg/codec"
)

// runCLI executes the root command in-process with isolated config and
// data directories.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func isolateDirs(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	configDir = t.TempDir()
	dataDir = t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvDataDir, dataDir)
	return configDir, dataDir
}

func writeBoard(t *testing.T, dir string) string {
	t.Helper()
	b := board.NewBoard()
	b.Nets = []*board.Net{{Number: 0, Name: ""}}
	b.Segments = []*board.Segment{board.NewSegment("F.Cu", 0.25)}
	path := filepath.Join(dir, "demo.kicad_pcb")
	require.NoError(t, board.SaveBoard(path, b))
	return path
}

func TestCLI_Version(t *testing.T) {
	isolateDirs(t)

	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kicadio v")
	assert.Contains(t, out, "github.com/edatools/kicadio")
}

func TestCLI_FirstRunWritesDefaultConfig(t *testing.T) {
	configDir, _ := isolateDirs(t)

	_, err := runCLI(t, "version")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "strictness: failsafe")
}

func TestCLI_Check(t *testing.T) {
	isolateDirs(t)
	dir := t.TempDir()
	good := writeBoard(t, dir)

	t.Run("clean file passes", func(t *testing.T) {
		out, err := runCLI(t, "check", good)
		require.NoError(t, err)
		assert.Contains(t, out, "ok")
	})

	t.Run("file with unknown section fails the check", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.kicad_pcb")
		text := `(kicad_pcb (version 20240101) (generator "kicadio") (mystery 1))` + "\n"
		require.NoError(t, os.WriteFile(bad, []byte(text), 0o644))

		out, err := runCLI(t, "check", bad)
		require.Error(t, err)
		assert.Contains(t, out, "unused-token")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runCLI(t, "--json", "check", good)
		require.NoError(t, err)

		var reports []struct {
			File string `json:"file"`
			OK   bool   `json:"ok"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 1)
		assert.True(t, reports[0].OK)
	})
}

func TestCLI_CheckByLeadToken(t *testing.T) {
	isolateDirs(t)
	dir := t.TempDir()
	src := writeBoard(t, dir)

	// A board saved under a foreign extension is still recognized by
	// its lead token.
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	renamed := filepath.Join(dir, "demo.sexp")
	require.NoError(t, os.WriteFile(renamed, data, 0o644))

	out, err := runCLI(t, "check", renamed)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	t.Run("unrecognized lead token", func(t *testing.T) {
		odd := filepath.Join(dir, "odd.sexp")
		require.NoError(t, os.WriteFile(odd, []byte("(mystery 1)\n"), 0o644))

		out, err := runCLI(t, "check", odd)
		require.Error(t, err)
		assert.Contains(t, out, "FAIL")
		assert.Contains(t, out, "unknown file type")
	})
}

func TestCLI_Fmt(t *testing.T) {
	isolateDirs(t)
	dir := t.TempDir()

	messy := filepath.Join(dir, "messy.kicad_pcb")
	text := "(kicad_pcb    (version   20240101)\n\n(generator \"kicadio\"))"
	require.NoError(t, os.WriteFile(messy, []byte(text), 0o644))

	t.Run("prints canonical form", func(t *testing.T) {
		out, err := runCLI(t, "fmt", messy)
		require.NoError(t, err)
		assert.Contains(t, out, "\t(version 20240101)")
	})

	t.Run("write flag rewrites in place", func(t *testing.T) {
		_, err := runCLI(t, "fmt", "--write", messy)
		require.NoError(t, err)

		data, err := os.ReadFile(messy)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\t(generator \"kicadio\")")

		// Formatting is idempotent.
		out, err := runCLI(t, "fmt", messy)
		require.NoError(t, err)
		assert.Equal(t, string(data), out)
	})
}

func TestCLI_IndexAndSearch(t *testing.T) {
	isolateDirs(t)

	libDir := t.TempDir()
	fp := board.NewFootprint("Resistor_SMD:R_0603")
	fp.Pads = []*board.Pad{board.NewPad("1", board.PadTypeSMD, board.PadShapeRect)}
	require.NoError(t, board.SaveFootprint(filepath.Join(libDir, "R_0603.kicad_mod"), fp))

	out, err := runCLI(t, "index", libDir)
	require.NoError(t, err)
	assert.Contains(t, out, "indexed 1 footprints")

	out, err = runCLI(t, "search", "0603")
	require.NoError(t, err)
	assert.Contains(t, out, "Resistor_SMD:R_0603")
	assert.Contains(t, out, "1 footprints")

	out, err = runCLI(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "footprints: 1")
}

func TestCLI_StrictnessFlag(t *testing.T) {
	isolateDirs(t)
	dir := t.TempDir()

	lax := filepath.Join(dir, "lax.kicad_pcb")
	text := `(kicad_pcb (version 20240101) (generator "kicadio") (mystery 1))` + "\n"
	require.NoError(t, os.WriteFile(lax, []byte(text), 0o644))

	t.Run("silent suppresses the issues", func(t *testing.T) {
		out, err := runCLI(t, "--strictness", "silent", "check", lax)
		require.NoError(t, err)
		assert.Contains(t, out, "ok")
	})

	t.Run("strict aborts the decode", func(t *testing.T) {
		out, err := runCLI(t, "--strictness", "strict", "check", lax)
		require.Error(t, err)
		assert.Contains(t, out, "FAIL")
	})

	t.Run("unknown strictness is rejected", func(t *testing.T) {
		_, err := runCLI(t, "--strictness", "fuzzy", "check", lax)
		require.Error(t, err)
		assert.ErrorIs(t, err, codec.ErrUnknownStrictness)
	})
}

func TestFileRoundTripThroughDisk(t *testing.T) {
	dir := t.TempDir()

	b1 := board.NewBoard()
	b1.Nets = []*board.Net{{Number: 0, Name: ""}, {Number: 1, Name: "GND"}}
	seg := board.NewSegment("F.Cu", 0.25)
	seg.End.X = 10.0
	seg.Net = 1
	b1.Segments = []*board.Segment{seg}
	via := board.NewVia(0.8, 0.4)
	via.Net = 1
	b1.Vias = []*board.Via{via}
	fp := board.NewFootprint("Resistor_SMD:R_0603")
	fp.Pads = []*board.Pad{board.NewPad("1", board.PadTypeSMD, board.PadShapeRoundrect)}
	b1.Footprints = []*board.Footprint{fp}

	path := filepath.Join(dir, "full.kicad_pcb")
	require.NoError(t, board.SaveBoard(path, b1))

	b2, issues, err := board.LoadBoard(path, codec.Strict)
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Equal(t, b1, b2)

	// A second write of the reloaded board is byte-identical.
	second := filepath.Join(dir, "full2.kicad_pcb")
	require.NoError(t, board.SaveBoard(second, b2))

	d1, err := os.ReadFile(path)
	require.NoError(t, err)
	d2, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(d1), string(d2))
}
