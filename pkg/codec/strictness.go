package codec

import (
	"errors"
	"fmt"
)

// Strictness selects how Decode responds to problems in the input text.
// It is chosen once per top-level Decode call and threaded unchanged
// through all recursion.
type Strictness int

const (
	// Strict aborts the whole decode on the first issue. No partial
	// entity is returned.
	Strict Strictness = iota
	// Failsafe substitutes the field's default, records the issue and
	// continues. The full issue list is returned from Decode.
	Failsafe
	// Silent behaves like Failsafe but records nothing.
	Silent
)

// String returns the strictness name as used in config files and flags.
func (s Strictness) String() string {
	switch s {
	case Strict:
		return "strict"
	case Failsafe:
		return "failsafe"
	case Silent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseStrictness converts a config or flag value to a Strictness.
func ParseStrictness(name string) (Strictness, error) {
	switch name {
	case "strict":
		return Strict, nil
	case "failsafe":
		return Failsafe, nil
	case "silent":
		return Silent, nil
	default:
		return Strict, fmt.Errorf("unknown strictness %q: %w", name, ErrUnknownStrictness)
	}
}

// ErrUnknownStrictness is returned by ParseStrictness for names other
// than strict, failsafe and silent.
var ErrUnknownStrictness = errors.New("unknown strictness")

// IssueKind classifies a decode issue.
type IssueKind int

const (
	IssueWrongToken IssueKind = iota
	IssueMissingField
	IssueMalformedScalar
	IssueOversizedFlag
	IssueUnusedToken
)

// String returns a short name for the issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueWrongToken:
		return "wrong-token"
	case IssueMissingField:
		return "missing-field"
	case IssueMalformedScalar:
		return "malformed-scalar"
	case IssueOversizedFlag:
		return "oversized-flag"
	case IssueUnusedToken:
		return "unused-token"
	default:
		return "unknown"
	}
}

// Issue is one non-fatal problem recorded during a Failsafe decode.
type Issue struct {
	Kind    IssueKind
	Path    string // lead tokens from the root down to the affected entity
	Field   string // declared field name, empty for entity-level issues
	Message string
}

// String renders the issue for log output.
func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s: %s", i.Kind, i.Path, i.Message)
	}
	return fmt.Sprintf("%s: %s: field %s: %s", i.Kind, i.Path, i.Field, i.Message)
}
