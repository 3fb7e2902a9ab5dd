package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAtom(t *testing.T) {
	tests := []struct {
		name string
		atom any
		want string
	}{
		{name: "symbol is bare", atom: Symbol("F.Cu"), want: "F.Cu"},
		{name: "string is quoted", atom: "GND", want: `"GND"`},
		{name: "string escapes quotes", atom: `say "hi"`, want: `"say \"hi\""`},
		{name: "string escapes backslashes", atom: `a\b`, want: `"a\\b"`},
		{name: "int", atom: int64(42), want: "42"},
		{name: "negative int", atom: int64(-7), want: "-7"},
		{name: "float keeps fraction", atom: 2.54, want: "2.54"},
		{name: "whole float gets trailing zero", atom: 1.0, want: "1.0"},
		{name: "negative whole float", atom: -3.0, want: "-3.0"},
		{name: "true is yes", atom: true, want: "yes"},
		{name: "false is no", atom: false, want: "no"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAtom(tt.atom))
		})
	}
}

func TestFormat_SingleLine(t *testing.T) {
	tests := []struct {
		name string
		list List
		want string
	}{
		{
			name: "token only",
			list: List{Symbol("locked")},
			want: "(locked)",
		},
		{
			name: "short atom list",
			list: List{Symbol("at"), 1.5, -2.0},
			want: "(at 1.5 -2.0)",
		},
		{
			name: "four elements stay inline",
			list: List{Symbol("at"), 1.0, 2.0, 90.0},
			want: "(at 1.0 2.0 90.0)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.list))
		})
	}
}

func TestFormat_MultiLine(t *testing.T) {
	list := List{
		Symbol("segment"),
		List{Symbol("start"), 1.0, 1.0},
		List{Symbol("end"), 2.0, 2.0},
		List{Symbol("width"), 0.25},
	}
	want := "(segment\n" +
		"\t(start 1.0 1.0)\n" +
		"\t(end 2.0 2.0)\n" +
		"\t(width 0.25)\n" +
		")"
	assert.Equal(t, want, Format(list))
}

func TestFormat_LongAtomListBreaks(t *testing.T) {
	// More than four elements forces the multi-line layout even with no
	// nested lists.
	list := List{Symbol("layers"), Symbol("F.Cu"), Symbol("B.Cu"), Symbol("F.Mask"), Symbol("B.Mask")}
	want := "(layers F.Cu B.Cu F.Mask B.Mask\n)"
	assert.Equal(t, want, Format(list))
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	list := List{
		Symbol("kicad_pcb"),
		List{Symbol("version"), int64(20240101)},
		List{Symbol("generator"), "kicadio"},
		List{
			Symbol("segment"),
			List{Symbol("start"), 1.0, 1.0},
			List{Symbol("end"), 2.5, 2.5},
			List{Symbol("net"), int64(0)},
		},
	}

	parsed, err := Parse(Format(list))
	require.NoError(t, err)
	assert.Equal(t, list, parsed)
}
