package board

import (
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/primitives"
)

// Via types for blind and micro vias. A plain through via carries no
// type symbol at all.
const (
	ViaTypeBlind = "blind"
	ViaTypeMicro = "micro"
)

// Segment is one straight track piece:
//
//	(segment (start X Y) (end X Y) (width W) (layer "L") [(locked)]
//	         (net N) (uuid "...") )
type Segment struct {
	Start  primitives.Start
	End    primitives.End
	Width  float64
	Layer  primitives.Layer
	Locked codec.Flag
	Net    int
	Tstamp *string
	Uuid   *primitives.Uuid
}

func (s *Segment) Token() string { return "segment" }

func (s *Segment) Fields() []codec.Field {
	return []codec.Field{
		codec.Child("start", &s.Start),
		codec.Child("end", &s.End),
		codec.Named("width", "width", &s.Width),
		codec.Child("layer", &s.Layer),
		codec.FlagField("locked", "locked", &s.Locked),
		codec.Named("net", "net", &s.Net),
		codec.NamedOpt("tstamp", "tstamp", &s.Tstamp),
		codec.ChildOpt("uuid", &s.Uuid),
	}
}

// NewSegment returns a segment on the given layer with a fresh
// identifier.
func NewSegment(layer string, width float64) *Segment {
	return &Segment{
		Width: width,
		Layer: primitives.Layer{Name: layer},
		Uuid:  primitives.NewUuid(),
	}
}

// Via is a track via:
//
//	(via [TYPE] [(locked)] (at X Y) (size D) (drill D) (layers ...)
//	     [(remove_unused_layers)] [(keep_end_layers)] [(free)]
//	     (net N) (uuid "...") )
type Via struct {
	Type               *string
	Locked             codec.Flag
	At                 primitives.At
	Size               float64
	Drill              float64
	Layers             primitives.Layers
	RemoveUnusedLayers codec.Flag
	KeepEndLayers      codec.Flag
	Free               codec.Flag
	Net                int
	Tstamp             *string
	Uuid               *primitives.Uuid
}

func (v *Via) Token() string { return "via" }

func (v *Via) Fields() []codec.Field {
	return []codec.Field{
		codec.ScalarOpt("type", &v.Type).AsSymbol(),
		codec.FlagField("locked", "locked", &v.Locked),
		codec.Child("at", &v.At),
		codec.Named("size", "size", &v.Size),
		codec.Named("drill", "drill", &v.Drill),
		codec.Child("layers", &v.Layers),
		codec.FlagField("remove_unused_layers", "remove_unused_layers", &v.RemoveUnusedLayers),
		codec.FlagField("keep_end_layers", "keep_end_layers", &v.KeepEndLayers),
		codec.FlagField("free", "free", &v.Free),
		codec.Named("net", "net", &v.Net),
		codec.NamedOpt("tstamp", "tstamp", &v.Tstamp),
		codec.ChildOpt("uuid", &v.Uuid),
	}
}

// NewVia returns a through via spanning the outer copper layers with a
// fresh identifier.
func NewVia(size, drill float64) *Via {
	return &Via{
		Size:   size,
		Drill:  drill,
		Layers: primitives.Layers{Names: []string{"F.Cu", "B.Cu"}},
		Uuid:   primitives.NewUuid(),
	}
}

func init() {
	codec.MustRegister(
		&Segment{},
		&Via{},
	)
}
