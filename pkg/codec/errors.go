package codec

import "errors"

// Registration-time errors. A schema defect is a programming error in an
// entity's field bindings and is never triaged by strictness.
var ErrSchemaDefect = errors.New("schema defect")

// Decode errors, produced only under Strict. Under Failsafe and Silent
// the same conditions are absorbed via defaults.
var (
	ErrWrongToken      = errors.New("token mismatch")
	ErrMissingField    = errors.New("missing required field")
	ErrMalformedScalar = errors.New("malformed scalar")
	ErrOversizedFlag   = errors.New("oversized flag payload")
	ErrUnusedToken     = errors.New("unused input token")
)

// ErrNotEncodable reports API misuse during Encode, such as a nil entry
// in a repeated group. Strictness does not apply to encoding; a
// structurally broken in-memory object always fails.
var ErrNotEncodable = errors.New("entity not encodable")

// sentinelFor maps an issue kind to the error Strict mode raises.
func sentinelFor(kind IssueKind) error {
	switch kind {
	case IssueWrongToken:
		return ErrWrongToken
	case IssueMissingField:
		return ErrMissingField
	case IssueMalformedScalar:
		return ErrMalformedScalar
	case IssueOversizedFlag:
		return ErrOversizedFlag
	case IssueUnusedToken:
		return ErrUnusedToken
	default:
		return ErrMalformedScalar
	}
}
