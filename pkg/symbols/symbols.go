// Package symbols defines the schematic symbol library schemas: the
// kicad_symbol_lib document, symbols, their pins and properties.
package symbols

import (
	"github.com/edatools/kicadio/pkg/codec"
	"github.com/edatools/kicadio/pkg/primitives"
)

// FileVersion is the format version written into new libraries.
const FileVersion = 20240101

// Generator is the generator name written into new libraries.
const Generator = "kicadio"

// Pin electrical types as written in symbol files.
const (
	PinInput       = "input"
	PinOutput      = "output"
	PinBidirection = "bidirectional"
	PinTristate    = "tri_state"
	PinPassive     = "passive"
	PinFree        = "free"
	PinUnspecified = "unspecified"
	PinPowerIn     = "power_in"
	PinPowerOut    = "power_out"
	PinOpenCollect = "open_collector"
	PinOpenEmitter = "open_emitter"
	PinNoConnect   = "no_connect"
)

// Pin graphic styles.
const (
	PinStyleLine     = "line"
	PinStyleInverted = "inverted"
	PinStyleClock    = "clock"
)

// PinName is the label half of a pin: (name "VCC").
type PinName struct {
	Text string
}

func (p *PinName) Token() string { return "name" }

func (p *PinName) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("text", &p.Text),
	}
}

// PinNumber is the designator half of a pin: (number "1").
type PinNumber struct {
	Text string
}

func (p *PinNumber) Token() string { return "number" }

func (p *PinNumber) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("text", &p.Text),
	}
}

// PinNames holds the symbol-wide pin-name settings:
// (pin_names [(offset D)] [hide]).
type PinNames struct {
	Offset *float64
	Hide   codec.Flag
}

func (p *PinNames) Token() string { return "pin_names" }

func (p *PinNames) Fields() []codec.Field {
	return []codec.Field{
		codec.NamedOpt("offset", "offset", &p.Offset),
		codec.FlagField("hide", "hide", &p.Hide),
	}
}

// PinNumbers holds the symbol-wide pin-number settings:
// (pin_numbers [hide]).
type PinNumbers struct {
	Hide codec.Flag
}

func (p *PinNumbers) Token() string { return "pin_numbers" }

func (p *PinNumbers) Fields() []codec.Field {
	return []codec.Field{
		codec.FlagField("hide", "hide", &p.Hide),
	}
}

// Pin is one symbol pin:
//
//	(pin TYPE STYLE (at X Y A) (length L) [hide]
//	     (name "NAME") (number "N"))
type Pin struct {
	ElectricalType string
	GraphicStyle   string
	At             primitives.At
	Length         float64
	Hide           codec.Flag
	Name           *PinName
	Number         *PinNumber
}

func (p *Pin) Token() string { return "pin" }

func (p *Pin) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("electrical_type", &p.ElectricalType).AsSymbol(),
		codec.Scalar("graphic_style", &p.GraphicStyle).AsSymbol(),
		codec.Child("at", &p.At),
		codec.Named("length", "length", &p.Length),
		codec.FlagField("hide", "hide", &p.Hide),
		codec.ChildOpt("name", &p.Name),
		codec.ChildOpt("number", &p.Number),
	}
}

// NewPin returns a passive line-style pin with the given name and
// number.
func NewPin(name, number string) *Pin {
	return &Pin{
		ElectricalType: PinPassive,
		GraphicStyle:   PinStyleLine,
		Name:           &PinName{Text: name},
		Number:         &PinNumber{Text: number},
	}
}

// SymbolProperty is a symbol property: (property "KEY" "VALUE"
// [(at X Y A)]).
type SymbolProperty struct {
	Key   string
	Value string
	At    *primitives.At
}

func (p *SymbolProperty) Token() string { return "property" }

func (p *SymbolProperty) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("key", &p.Key),
		codec.Scalar("value", &p.Value),
		codec.ChildOpt("at", &p.At),
	}
}

// Symbol is a library symbol. Units nest as child symbols with the
// same lead token, so the type is recursive:
//
//	(symbol "LIB:NAME" [(extends "OTHER")] [(pin_numbers hide)]
//	        [(pin_names (offset D))] [(in_bom yes)] [(on_board yes)]
//	        [(exclude_from_sim no)] [(power)]
//	        (property ...)* (pin ...)* (symbol ...)*)
type Symbol struct {
	LibraryID      string
	Extends        *string
	PinNumbers     *PinNumbers
	PinNames       *PinNames
	InBom          codec.Flag
	OnBoard        codec.Flag
	ExcludeFromSim codec.Flag
	Power          codec.Flag
	Properties     []*SymbolProperty
	Pins           []*Pin
	Units          []*Symbol
}

func (s *Symbol) Token() string { return "symbol" }

func (s *Symbol) Fields() []codec.Field {
	return []codec.Field{
		codec.Scalar("library_id", &s.LibraryID),
		codec.NamedOpt("extends", "extends", &s.Extends),
		codec.ChildOpt("pin_numbers", &s.PinNumbers),
		codec.ChildOpt("pin_names", &s.PinNames),
		codec.FlagField("in_bom", "in_bom", &s.InBom),
		codec.FlagField("on_board", "on_board", &s.OnBoard),
		codec.FlagField("exclude_from_sim", "exclude_from_sim", &s.ExcludeFromSim),
		codec.FlagField("power", "power", &s.Power),
		codec.Group("properties", &s.Properties),
		codec.Group("pins", &s.Pins),
		codec.Group("units", &s.Units),
	}
}

// NewSymbol returns a symbol marked for BOM and board inclusion.
func NewSymbol(libraryID string) *Symbol {
	return &Symbol{
		LibraryID: libraryID,
		InBom:     codec.FlagWith("yes"),
		OnBoard:   codec.FlagWith("yes"),
	}
}

// PropertyValue returns the value of the property with the given key,
// or the empty string.
func (s *Symbol) PropertyValue(key string) string {
	for _, p := range s.Properties {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// AllPins returns the symbol's own pins followed by the pins of every
// unit, in declaration order.
func (s *Symbol) AllPins() []*Pin {
	pins := make([]*Pin, 0, len(s.Pins))
	pins = append(pins, s.Pins...)
	for _, u := range s.Units {
		pins = append(pins, u.AllPins()...)
	}
	return pins
}

// SymbolLib is a complete symbol library file.
type SymbolLib struct {
	Version          int
	Generator        string
	GeneratorVersion *string
	Symbols          []*Symbol
}

func (l *SymbolLib) Token() string { return "kicad_symbol_lib" }

func (l *SymbolLib) Fields() []codec.Field {
	return []codec.Field{
		codec.Named("version", "version", &l.Version),
		codec.Named("generator", "generator", &l.Generator),
		codec.NamedOpt("generator_version", "generator_version", &l.GeneratorVersion),
		codec.Group("symbols", &l.Symbols),
	}
}

// NewLibrary returns an empty library with the current format version
// and this library as generator.
func NewLibrary() *SymbolLib {
	return &SymbolLib{
		Version:   FileVersion,
		Generator: Generator,
	}
}

// SymbolByID returns the top-level symbol with the given library
// identifier, or nil.
func (l *SymbolLib) SymbolByID(libraryID string) *Symbol {
	for _, s := range l.Symbols {
		if s.LibraryID == libraryID {
			return s
		}
	}
	return nil
}

func init() {
	codec.MustRegister(
		&PinName{},
		&PinNumber{},
		&PinNames{},
		&PinNumbers{},
		&Pin{},
		&SymbolProperty{},
		&Symbol{},
		&SymbolLib{},
	)
}
