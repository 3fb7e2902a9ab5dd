package codec

import (
	"errors"
	"fmt"

	"github.com/edatools/kicadio/pkg/sexpr"
)

// Encode produces the nested-list form of e: the lead token first, then
// every present field in schema order. Absent optional fields emit
// nothing; a repeated group with zero members emits no placeholder.
// Encode never fails for structurally valid in-memory objects; errors
// indicate API misuse such as a nil group entry or a schema defect.
func Encode(e Entity) (sexpr.List, error) {
	desc, err := descriptorFor(e)
	if err != nil {
		return nil, err
	}

	out := sexpr.List{sexpr.Symbol(desc.token)}
	for _, f := range e.Fields() {
		out, err = encodeField(out, f)
		if err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", desc.token, f.Name, err)
		}
	}
	return out, nil
}

// EncodeString encodes e and renders it as KiCad-style text.
func EncodeString(e Entity) (string, error) {
	list, err := Encode(e)
	if err != nil {
		return "", err
	}
	return sexpr.Format(list), nil
}

// flagValueAtom renders a flag payload. The yes/no words stay bare
// symbols; any other value is emitted as a quoted string so it
// re-tokenizes as a single atom.
func flagValueAtom(v string) any {
	if v == "yes" || v == "no" {
		return sexpr.Symbol(v)
	}
	return v
}

func encodeField(out sexpr.List, f Field) (sexpr.List, error) {
	switch f.Class {
	case ClassAtomic:
		v, present := f.getScalar()
		if !present {
			return out, nil
		}
		return append(out, encodeScalar(v, f.asSymbol)), nil

	case ClassNamedValue, ClassOptionalNamedValue:
		v, present := f.getScalar()
		if !present {
			return out, nil
		}
		return append(out, sexpr.List{sexpr.Symbol(f.Token), encodeScalar(v, f.asSymbol)}), nil

	case ClassEntity, ClassOptionalEntity:
		child := f.child()
		if child == nil {
			if f.Class == ClassEntity {
				return out, fmt.Errorf("required entity is nil: %w", ErrNotEncodable)
			}
			return out, nil
		}
		sub, err := Encode(child)
		if err != nil {
			return out, err
		}
		return append(out, sub), nil

	case ClassFlag:
		flag := f.getFlag()
		if !flag.Present {
			return out, nil
		}
		if flag.HasValue {
			return append(out, sexpr.List{sexpr.Symbol(f.Token), flagValueAtom(flag.Value)}), nil
		}
		return append(out, sexpr.List{sexpr.Symbol(f.Token)}), nil

	case ClassSimpleFlag:
		if f.getSimple() {
			return append(out, sexpr.Symbol(f.Token)), nil
		}
		return out, nil

	case ClassRepeatedGroup:
		if f.eachScalar != nil {
			f.eachScalar(func(v any) {
				if f.Token == "" {
					out = append(out, encodeScalar(v, f.asSymbol))
					return
				}
				out = append(out, sexpr.List{sexpr.Symbol(f.Token), encodeScalar(v, f.asSymbol)})
			})
			return out, nil
		}
		err := f.eachChild(func(child Entity) error {
			sub, cerr := Encode(child)
			if cerr != nil {
				return cerr
			}
			out = append(out, sub)
			return nil
		})
		if errors.Is(err, errNilGroupEntry) {
			return out, fmt.Errorf("%v: %w", err, ErrNotEncodable)
		}
		return out, err

	default:
		return out, fmt.Errorf("unclassifiable field: %w", ErrSchemaDefect)
	}
}
