package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edatools/kicadio/pkg/codec"
)

const footprintText = `(footprint "Resistor_SMD:R_0603"
	(layer "F.Cu")
	(at 10.0 20.0 90.0)
	(descr "Chip resistor 0603")
	(tags "resistor")
	(property "Reference" "R1")
	(property "Value" "10k")
	(pad "1" smd roundrect
		(at -0.8 0.0)
		(size 0.8 0.9)
		(layers "F.Cu" "F.Paste" "F.Mask")
		(roundrect_rratio 0.25)
		(net 1 "GND")
	)
	(pad "2" smd roundrect
		(at 0.8 0.0)
		(size 0.8 0.9)
		(layers "F.Cu" "F.Paste" "F.Mask")
		(roundrect_rratio 0.25)
	)
	(uuid "0d0ae2ae-04a1-4a34-9a64-0ba8d3e5fb2d")
)`

func TestDecodeFootprint(t *testing.T) {
	fp := &Footprint{}
	issues, err := codec.DecodeString(footprintText, fp, codec.Strict)
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, "Resistor_SMD:R_0603", fp.LibraryID)
	assert.Equal(t, "F.Cu", fp.Layer.Name)
	assert.Equal(t, 10.0, fp.At.X)
	require.NotNil(t, fp.At.Angle)
	assert.Equal(t, 90.0, *fp.At.Angle)
	require.NotNil(t, fp.Descr)
	assert.Equal(t, "Chip resistor 0603", *fp.Descr)

	require.Len(t, fp.Properties, 2)
	assert.Equal(t, "Reference", fp.Properties[0].Key)
	assert.Equal(t, "R1", fp.Properties[0].Value)

	require.Len(t, fp.Pads, 2)
	p1 := fp.Pads[0]
	assert.Equal(t, "1", p1.Number)
	assert.Equal(t, PadTypeSMD, p1.Type)
	assert.Equal(t, PadShapeRoundrect, p1.Shape)
	assert.Equal(t, -0.8, p1.At.X)
	assert.Equal(t, 0.8, p1.Size.Width)
	assert.Equal(t, 0.9, p1.Size.Height)
	assert.Equal(t, []string{"F.Cu", "F.Paste", "F.Mask"}, p1.Layers.Names)
	require.NotNil(t, p1.RoundrectRratio)
	assert.Equal(t, 0.25, *p1.RoundrectRratio)
	require.NotNil(t, p1.Net)
	assert.Equal(t, 1, p1.Net.Number)
	assert.Equal(t, "GND", p1.Net.Name)

	assert.Nil(t, fp.Pads[1].Net)
}

func TestFootprintRoundTrip(t *testing.T) {
	fp1 := &Footprint{}
	issues, err := codec.DecodeString(footprintText, fp1, codec.Strict)
	require.NoError(t, err)
	require.Empty(t, issues)

	text, err := codec.EncodeString(fp1)
	require.NoError(t, err)

	fp2 := &Footprint{}
	issues, err = codec.DecodeString(text, fp2, codec.Strict)
	require.NoError(t, err)
	require.Empty(t, issues)

	assert.Equal(t, fp1, fp2)
}

func TestDecodeFootprint_ModuleAlias(t *testing.T) {
	text := `(module "Old:Lib"
	(layer "F.Cu")
	(at 0.0 0.0)
)`
	fp := &Footprint{}
	issues, err := codec.DecodeString(text, fp, codec.Strict)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "Old:Lib", fp.LibraryID)

	// The canonical token is what gets written back.
	out, err := codec.EncodeString(fp)
	require.NoError(t, err)
	assert.Contains(t, out, "(footprint")
}

func TestDecodeDrill(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOval bool
		wantDia  float64
		wantW    *float64
	}{
		{
			name:    "round drill",
			text:    `(drill 0.8)`,
			wantDia: 0.8,
		},
		{
			name:     "oval drill with width",
			text:     `(drill oval 0.6 1.2)`,
			wantOval: true,
			wantDia:  0.6,
			wantW:    ptr(1.2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Drill{}
			issues, err := codec.DecodeString(tt.text, d, codec.Strict)
			require.NoError(t, err)
			assert.Empty(t, issues)

			assert.Equal(t, tt.wantOval, d.Oval.Present)
			assert.Equal(t, tt.wantDia, d.Diameter)
			assert.Equal(t, tt.wantW, d.Width)
		})
	}
}

func TestPadByNumber(t *testing.T) {
	fp := NewFootprint("Lib:Part")
	fp.Pads = []*Pad{
		NewPad("1", PadTypeThruHole, PadShapeCircle),
		NewPad("2", PadTypeThruHole, PadShapeCircle),
	}

	require.NotNil(t, fp.PadByNumber("2"))
	assert.Equal(t, "2", fp.PadByNumber("2").Number)
	assert.Nil(t, fp.PadByNumber("3"))
}

func TestSaveLoadBoardFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("board round trip through disk", func(t *testing.T) {
		b1 := NewBoard()
		b1.Nets = []*Net{{Number: 0, Name: ""}}
		b1.Segments = []*Segment{NewSegment("F.Cu", 0.25)}

		path := filepath.Join(dir, "test.kicad_pcb")
		require.NoError(t, SaveBoard(path, b1))

		b2, issues, err := LoadBoard(path, codec.Strict)
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.Equal(t, b1, b2)
	})

	t.Run("footprint round trip through disk", func(t *testing.T) {
		fp1 := NewFootprint("Lib:Part")
		fp1.Pads = []*Pad{NewPad("1", PadTypeSMD, PadShapeRect)}

		path := filepath.Join(dir, "part.kicad_mod")
		require.NoError(t, SaveFootprint(path, fp1))

		fp2, issues, err := LoadFootprint(path, codec.Strict)
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.Equal(t, fp1, fp2)
	})

	t.Run("wrong extension rejected", func(t *testing.T) {
		_, _, err := LoadBoard(filepath.Join(dir, "test.kicad_mod"), codec.Strict)
		assert.ErrorIs(t, err, ErrFileExtension)

		err = SaveFootprint(filepath.Join(dir, "part.kicad_pcb"), NewFootprint("x"))
		assert.ErrorIs(t, err, ErrFileExtension)
	})

	t.Run("missing file surfaces the os error", func(t *testing.T) {
		_, _, err := LoadBoard(filepath.Join(dir, "absent.kicad_pcb"), codec.Strict)
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func ptr[T any](v T) *T { return &v }
