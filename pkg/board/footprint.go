package board

import (
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/primitives"
)

// Footprint is a placed footprint instance, or a standalone footprint
// in a .kicad_mod library file:
//
//	(footprint "LIB:NAME" [locked] [placed] (layer "L") (at X Y [A])
//	           [(descr "...")] [(tags "...")] [(path "/...")]
//	           (property ...)* (pad ...)* [(uuid "...")])
type Footprint struct {
	LibraryID  string
	Locked     codec.SimpleFlag
	Placed     codec.SimpleFlag
	Layer      primitives.Layer
	At         primitives.At
	Descr      *string
	Tags       *string
	Path       *string
	Properties []*Property
	Pads       []*Pad
	Uuid       *primitives.Uuid
}

func (fp *Footprint) Token() string { return "footprint" }

// TokenAliases accepts the pre-v6 lead token so old library files
// still decode.
func (fp *Footprint) TokenAliases() []string { return []string{"module"} }

func (fp *Footprint) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("library_id", &fp.LibraryID),
		codec.SimpleFlagField("locked", "locked", &fp.Locked),
		codec.SimpleFlagField("placed", "placed", &fp.Placed),
		codec.Child("layer", &fp.Layer),
		codec.Child("at", &fp.At),
		codec.NamedOpt("descr", "descr", &fp.Descr),
		codec.NamedOpt("tags", "tags", &fp.Tags),
		codec.NamedOpt("path", "path", &fp.Path),
		codec.Group("properties", &fp.Properties),
		codec.Group("pads", &fp.Pads),
		codec.ChildOpt("uuid", &fp.Uuid),
	}
}

// NewFootprint returns a footprint with the given library identifier on
// the front copper layer, with a fresh identifier.
func NewFootprint(libraryID string) *Footprint {
	return &Footprint{
		LibraryID: libraryID,
		Layer:     primitives.Layer{Name: "F.Cu"},
		Uuid:      primitives.NewUuid(),
	}
}

// PadByNumber returns the first pad with the given number, or nil.
func (fp *Footprint) PadByNumber(number string) *Pad {
	for _, p := range fp.Pads {
		if p.Number == number {
			return p
		}
	}
	return nil
}

func init() {
	codec.MustRegister(&Footprint{})
}
