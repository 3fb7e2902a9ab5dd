package codec

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/edatools/kicadio/pkg/sexpr"
)

var errNilGroupEntry = errors.New("nil entry in repeated group")

// convertScalar coerces a raw input atom to the field's Go type.
// Conversions are deliberately lenient the way KiCad readers are:
// numbers arrive as int64 or float64 from the tokenizer but also as
// text, and booleans are spelled yes/true/1.
func convertScalar[T ScalarValue](raw any) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		switch v := raw.(type) {
		case string:
			*p = v
		case sexpr.Symbol:
			*p = string(v)
		case int64:
			*p = strconv.FormatInt(v, 10)
		case float64:
			*p = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			*p = boolWord(v)
		default:
			return out, fmt.Errorf("cannot convert %T to string", raw)
		}
	case *int:
		switch v := raw.(type) {
		case int64:
			*p = int(v)
		case float64:
			if v != float64(int64(v)) {
				return out, fmt.Errorf("cannot convert %v to int", v)
			}
			*p = int(v)
		case string, sexpr.Symbol:
			n, err := strconv.Atoi(sexpr.AtomText(raw))
			if err != nil {
				return out, fmt.Errorf("cannot convert %q to int", sexpr.AtomText(raw))
			}
			*p = n
		default:
			return out, fmt.Errorf("cannot convert %T to int", raw)
		}
	case *float64:
		switch v := raw.(type) {
		case float64:
			*p = v
		case int64:
			*p = float64(v)
		case string, sexpr.Symbol:
			f, err := strconv.ParseFloat(sexpr.AtomText(raw), 64)
			if err != nil {
				return out, fmt.Errorf("cannot convert %q to float", sexpr.AtomText(raw))
			}
			*p = f
		default:
			return out, fmt.Errorf("cannot convert %T to float", raw)
		}
	case *bool:
		switch v := raw.(type) {
		case bool:
			*p = v
		case string, sexpr.Symbol:
			switch sexpr.AtomText(raw) {
			case "yes", "true", "1":
				*p = true
			default:
				*p = false
			}
		case int64:
			*p = v == 1
		default:
			return out, fmt.Errorf("cannot convert %T to bool", raw)
		}
	}
	return out, nil
}

func boolWord(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// encodeScalar renders a field value as an output atom. Strings become
// quoted strings unless the field is marked AsSymbol; ints normalize to
// int64 so encoded lists match what the tokenizer produces.
func encodeScalar(v any, asSymbol bool) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case string:
		if asSymbol {
			return sexpr.Symbol(t)
		}
		return t
	default:
		return v
	}
}
