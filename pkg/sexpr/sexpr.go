// Package sexpr reads and writes the parenthesized list notation used by
// KiCad design files. Text is parsed into nested List values whose atoms
// are Symbol, string, int64 or float64; Format produces KiCad-style text
// with tab indentation and quoted strings.
package sexpr

// Symbol is a bare (unquoted) token such as a lead token name, a layer
// keyword or a yes/no value. It is distinct from string, which is always
// written with surrounding quotes.
type Symbol string

// List is one parenthesized group. Elements are Symbol, string, int64,
// float64, bool or nested List values.
type List []any

// Head returns the lead token of the list, or the empty string if the
// list is empty or does not start with an atom.
func (l List) Head() string {
	if len(l) == 0 {
		return ""
	}
	switch v := l[0].(type) {
	case Symbol:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

// IsList reports whether v is a nested list.
func IsList(v any) bool {
	_, ok := v.(List)
	return ok
}

// AtomText returns the textual form of an atom for comparisons against
// token names. Lists and nil return the empty string.
func AtomText(v any) string {
	switch a := v.(type) {
	case Symbol:
		return string(a)
	case string:
		return a
	default:
		return ""
	}
}
