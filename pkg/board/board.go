// Package board defines the board-layout entity schemas: the kicad_pcb
// document, its header sections, nets, tracks, vias, pads and
// footprints. The field bindings mirror the KiCad file format
// documentation; decoding and encoding are delegated to package codec.
package board

import (
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/primitives"
)

// FileVersion is the format version written into new boards.
const FileVersion = 20240101

// Generator is the generator name written into new boards.
const Generator = "kicadio"

// Net declares a net in the board net section: (net ORDINAL "NAME").
type Net struct {
	Number int
	Name   string
}

func (n *Net) Token() string { return "net" }

func (n *Net) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("number", &n.Number),
		codec.Scalar("name", &n.Name),
	}
}

// Property is a board-level key/value pair: (property "KEY" "VALUE").
type Property struct {
	Key   string
	Value string
}

func (p *Property) Token() string { return "property" }

func (p *Property) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("key", &p.Key),
		codec.Scalar("value", &p.Value),
	}
}

// General holds the general board settings section.
type General struct {
	Thickness       float64
	LegacyTeardrops codec.Flag
}

func (g *General) Token() string { return "general" }

func (g *General) Fields() []codec.Field {
	return []codec.Field{
		codec.Named("thickness", "thickness", &g.Thickness),
		codec.FlagField("legacy_teardrops", "legacy_teardrops", &g.LegacyTeardrops),
	}
}

// KicadPcb is a complete board file: header values followed by the
// repeated element sections in file order.
type KicadPcb struct {
	Version          int
	Generator        string
	GeneratorVersion *string
	General          *General
	Paper            *string
	Layers           *primitives.Layers
	Properties       []*Property
	Nets             []*Net
	Footprints       []*Footprint
	Segments         []*Segment
	Vias             []*Via
}

func (b *KicadPcb) Token() string { return "kicad_pcb" }

func (b *KicadPcb) Fields() []codec.Field {
	return []codec.Field{
		codec.Named("version", "version", &b.Version),
		codec.Named("generator", "generator", &b.Generator),
		codec.NamedOpt("generator_version", "generator_version", &b.GeneratorVersion),
		codec.ChildOpt("general", &b.General),
		codec.NamedOpt("paper", "paper", &b.Paper),
		codec.ChildOpt("layers", &b.Layers),
		codec.Group("properties", &b.Properties),
		codec.Group("nets", &b.Nets),
		codec.Group("footprints", &b.Footprints),
		codec.Group("segments", &b.Segments),
		codec.Group("vias", &b.Vias),
	}
}

// NewBoard returns an empty board with the current format version and
// this library as generator.
func NewBoard() *KicadPcb {
	return &KicadPcb{
		Version:   FileVersion,
		Generator: Generator,
	}
}

// NetByNumber returns the net with the given ordinal, or nil.
func (b *KicadPcb) NetByNumber(number int) *Net {
	for _, n := range b.Nets {
		if n.Number == number {
			return n
		}
	}
	return nil
}

func init() {
	codec.MustRegister(
		&Net{},
		&Property{},
		&General{},
		&KicadPcb{},
	)
}
