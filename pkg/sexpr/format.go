package sexpr

import (
	"strconv"
	"strings"
)

// Format renders v as KiCad-style text. Short lists without nested
// children go on one line; anything else puts the lead token and atoms
// on the first line with each nested list indented below using tabs.
func Format(v any) string {
	return formatValue(v, 0)
}

// FormatAtom renders a single atom the way it would appear inside a
// list: symbols bare, strings quoted and escaped, booleans as yes/no,
// reals always with a decimal point.
func FormatAtom(v any) string {
	switch a := v.(type) {
	case Symbol:
		return string(a)
	case bool:
		if a {
			return "yes"
		}
		return "no"
	case string:
		escaped := strings.ReplaceAll(a, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		return `"` + escaped + `"`
	case int:
		return strconv.Itoa(a)
	case int64:
		return strconv.FormatInt(a, 10)
	case float64:
		s := strconv.FormatFloat(a, 'f', -1, 64)
		if !strings.ContainsAny(s, ".") {
			s += ".0"
		}
		return s
	default:
		return ""
	}
}

func formatValue(v any, indent int) string {
	list, ok := v.(List)
	if !ok {
		return FormatAtom(v)
	}
	if len(list) == 0 {
		return "()"
	}

	pad := strings.Repeat("\t", indent)
	token := AtomText(list[0])
	if len(list) == 1 {
		return pad + "(" + token + ")"
	}

	var atoms []string
	var nested []List
	for _, item := range list[1:] {
		if sub, ok := item.(List); ok {
			nested = append(nested, sub)
		} else {
			atoms = append(atoms, FormatAtom(item))
		}
	}

	if len(nested) == 0 && len(list) <= 4 {
		return pad + "(" + strings.Join(append([]string{token}, atoms...), " ") + ")"
	}

	head := pad + "(" + token
	if len(atoms) > 0 {
		head += " " + strings.Join(atoms, " ")
	}
	lines := []string{head}
	for _, sub := range nested {
		lines = append(lines, formatValue(sub, indent+1))
	}
	lines = append(lines, pad+")")
	return strings.Join(lines, "\n")
}
