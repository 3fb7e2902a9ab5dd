// Package primitives defines the small positional entities shared by
// every KiCad file type: coordinates, sizes, layer references and
// unique identifiers.
package primitives

import (
	"github.com/google/uuid"

	"github.com/edatools/kicadio/pkg/codec"
)

// At is a position with an optional rotation: (at X Y [ANGLE]).
type At struct {
	X     float64
	Y     float64
	Angle *float64
}

func (a *At) Token() string { return "at" }

func (a *At) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("x", &a.X),
		codec.Scalar("y", &a.Y),
		codec.ScalarOpt("angle", &a.Angle),
	}
}

// Rotated returns a copy of a with the given rotation angle set.
func (a At) Rotated(angle float64) At {
	a.Angle = &angle
	return a
}

// Start is the first coordinate of a line-like element: (start X Y).
type Start struct {
	X float64
	Y float64
}

func (s *Start) Token() string { return "start" }

func (s *Start) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("x", &s.X),
		codec.Scalar("y", &s.Y),
	}
}

// End is the last coordinate of a line-like element: (end X Y).
type End struct {
	X float64
	Y float64
}

func (e *End) Token() string { return "end" }

func (e *End) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("x", &e.X),
		codec.Scalar("y", &e.Y),
	}
}

// Size is a two-dimensional extent: (size WIDTH HEIGHT).
type Size struct {
	Width  float64
	Height float64
}

func (s *Size) Token() string { return "size" }

func (s *Size) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("width", &s.Width),
		codec.Scalar("height", &s.Height),
	}
}

// Offset is a relative displacement: (offset X Y).
type Offset struct {
	X float64
	Y float64
}

func (o *Offset) Token() string { return "offset" }

func (o *Offset) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("x", &o.X),
		codec.Scalar("y", &o.Y),
	}
}

// Layer names a single canonical layer: (layer "F.Cu").
type Layer struct {
	Name string
}

func (l *Layer) Token() string { return "layer" }

func (l *Layer) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("name", &l.Name),
	}
}

// Layers is a layer set: (layers "F.Cu" "B.Cu"). Every remaining bare
// atom in the region belongs to the set, in file order.
type Layers struct {
	Names []string
}

func (l *Layers) Token() string { return "layers" }

func (l *Layers) Fields() []codec.Field {
	return []codec.Field{
		codec.RestScalars("names", &l.Names),
	}
}

// Uuid is the unique identifier attached to board and schematic
// elements: (uuid "VALUE").
type Uuid struct {
	Value string
}

func (u *Uuid) Token() string { return "uuid" }

func (u *Uuid) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("value", &u.Value),
	}
}

// NewUuid returns an identifier with a freshly generated random UUID.
func NewUuid() *Uuid {
	return &Uuid{Value: uuid.NewString()}
}

// Valid reports whether the identifier parses as a UUID.
func (u *Uuid) Valid() bool {
	_, err := uuid.Parse(u.Value)
	return err == nil
}

func init() {
	codec.MustRegister(
		&At{},
		&Start{},
		&End{},
		&Size{},
		&Offset{},
		&Layer{},
		&Layers{},
		&Uuid{},
	)
}
