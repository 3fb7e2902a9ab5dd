package board

import (
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/primitives"
)

// Pad types and shapes as written in footprint files.
const (
	PadTypeThruHole   = "thru_hole"
	PadTypeSMD        = "smd"
	PadTypeConnect    = "connect"
	PadTypeNPThruHole = "np_thru_hole"

	PadShapeCircle    = "circle"
	PadShapeRect      = "rect"
	PadShapeOval      = "oval"
	PadShapeTrapezoid = "trapezoid"
	PadShapeRoundrect = "roundrect"
	PadShapeCustom    = "custom"
)

// PadNet is the net binding inside a pad: (net ORDINAL "NAME"). It is
// the same wire shape as the board-level Net but lives on the pad.
type PadNet struct {
	Number int
	Name   string
}

func (n *PadNet) Token() string { return "net" }

func (n *PadNet) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("number", &n.Number),
		codec.Scalar("name", &n.Name),
	}
}

// Drill describes a pad's drill: (drill [oval] DIAMETER [WIDTH]
// [(offset X Y)]). The oval keyword precedes the diameter in the file,
// so it is declared first.
type Drill struct {
	Oval     codec.SimpleFlag
	Diameter float64
	Width    *float64
	Offset   *primitives.Offset
}

func (d *Drill) Token() string { return "drill" }

func (d *Drill) Fields() []codec.Field {
	return []codec.Field{
		codec.SimpleFlagField("oval", "oval", &d.Oval),
		codec.Scalar("diameter", &d.Diameter),
		codec.ScalarOpt("width", &d.Width),
		codec.ChildOpt("offset", &d.Offset),
	}
}

// Pad is one footprint pad:
//
//	(pad "NUMBER" TYPE SHAPE (at X Y [A]) [(locked)] (size X Y)
//	     [(drill ...)] (layers ...) [(roundrect_rratio R)] [(net N "NAME")]
//	     [(pinfunction "F")] [(pintype "T")] ... [(uuid "...")])
type Pad struct {
	Number            string
	Type              string
	Shape             string
	At                primitives.At
	Locked            codec.Flag
	Size              primitives.Size
	Drill             *Drill
	Layers            primitives.Layers
	RoundrectRratio   *float64
	Net               *PadNet
	Pinfunction       *string
	Pintype           *string
	DieLength         *float64
	SolderMaskMargin  *float64
	SolderPasteMargin *float64
	Clearance         *float64
	ZoneConnect       *int
	ThermalWidth      *float64
	ThermalGap        *float64
	Uuid              *primitives.Uuid
}

func (p *Pad) Token() string { return "pad" }

func (p *Pad) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("number", &p.Number),
		codec.Scalar("type", &p.Type).AsSymbol(),
		codec.Scalar("shape", &p.Shape).AsSymbol(),
		codec.Child("at", &p.At),
		codec.FlagField("locked", "locked", &p.Locked),
		codec.Child("size", &p.Size),
		codec.ChildOpt("drill", &p.Drill),
		codec.Child("layers", &p.Layers),
		codec.NamedOpt("roundrect_rratio", "roundrect_rratio", &p.RoundrectRratio),
		codec.ChildOpt("net", &p.Net),
		codec.NamedOpt("pinfunction", "pinfunction", &p.Pinfunction),
		codec.NamedOpt("pintype", "pintype", &p.Pintype),
		codec.NamedOpt("die_length", "die_length", &p.DieLength),
		codec.NamedOpt("solder_mask_margin", "solder_mask_margin", &p.SolderMaskMargin),
		codec.NamedOpt("solder_paste_margin", "solder_paste_margin", &p.SolderPasteMargin),
		codec.NamedOpt("clearance", "clearance", &p.Clearance),
		codec.NamedOpt("zone_connect", "zone_connect", &p.ZoneConnect),
		codec.NamedOpt("thermal_width", "thermal_width", &p.ThermalWidth),
		codec.NamedOpt("thermal_gap", "thermal_gap", &p.ThermalGap),
		codec.ChildOpt("uuid", &p.Uuid),
	}
}

// NewPad returns a pad of the given number, type and shape on the
// standard through-hole layer set, with a fresh identifier.
func NewPad(number, padType, shape string) *Pad {
	return &Pad{
		Number: number,
		Type:   padType,
		Shape:  shape,
		Layers: primitives.Layers{Names: []string{"*.Cu", "*.Mask"}},
		Uuid:   primitives.NewUuid(),
	}
}

func init() {
	codec.MustRegister(
		&PadNet{},
		&Drill{},
		&Pad{},
	)
}
