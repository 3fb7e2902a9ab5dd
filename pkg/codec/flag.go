package codec

// Flag is a presence marker that may carry one auxiliary scalar:
// (token), (token value), or the bare token symbol. Absence is the
// zero value. When a decoded payload has more than one element, or a
// nested list where the scalar belongs, the payload is dropped and only
// the token survives (Strict mode rejects such input instead).
type Flag struct {
	Present  bool
	HasValue bool
	Value    string
}

// PresentFlag returns a set flag without an auxiliary value.
func PresentFlag() Flag {
	return Flag{Present: true}
}

// FlagWith returns a set flag carrying the given auxiliary value.
func FlagWith(value string) Flag {
	return Flag{Present: true, HasValue: true, Value: value}
}

// Bool interprets the flag the way KiCad files do: presence alone is
// true, and an auxiliary value of yes/true/1 is true while anything
// else is false.
func (f Flag) Bool() bool {
	if !f.Present {
		return false
	}
	if !f.HasValue {
		return true
	}
	switch f.Value {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

// SimpleFlag is a bare symbol whose presence signals a boolean
// attribute, such as the oval keyword inside a drill definition. It is
// never written with parentheses.
type SimpleFlag struct {
	Present bool
}
