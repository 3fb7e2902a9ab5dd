package codec

import (
	"strconv"

	"github.com/edatools/kicadio/pkg/sexpr"
)

// Decode fills e from one nested-list region. The lead token of the
// list must match e's token (or one of its aliases); under Failsafe and
// Silent a mismatch is tolerated and the list is consumed as-is.
//
// The returned issue list is non-empty only under Failsafe. Under
// Strict the first issue aborts the whole decode and e must be
// considered unusable.
func Decode(list sexpr.List, e Entity, mode Strictness) ([]Issue, error) {
	return decodeRoot(list, e, mode, true)
}

// DecodeMatched is Decode for callers that already verified the lead
// token, such as dispatchers that peeked it to select the entity type.
func DecodeMatched(list sexpr.List, e Entity, mode Strictness) ([]Issue, error) {
	return decodeRoot(list, e, mode, false)
}

// DecodeString tokenizes text and decodes it into e.
func DecodeString(text string, e Entity, mode Strictness) ([]Issue, error) {
	list, err := sexpr.Parse(text)
	if err != nil {
		return nil, err
	}
	return Decode(list, e, mode)
}

func decodeRoot(list sexpr.List, e Entity, mode Strictness, checkToken bool) ([]Issue, error) {
	desc, err := descriptorFor(e)
	if err != nil {
		return nil, err
	}
	var issues []Issue
	cur := newCursor(list, []string{desc.token}, mode, &issues)
	if err := decodeEntity(cur, e, checkToken); err != nil {
		return nil, err
	}
	return issues, nil
}

// decodeEntity decodes the cursor's list into e: lead token check,
// declared fields in schema order, then leftover reporting.
func decodeEntity(c *cursor, e Entity, checkToken bool) error {
	desc, err := descriptorFor(e)
	if err != nil {
		return err
	}

	if len(c.list) == 0 {
		if err := c.report(IssueWrongToken, "", "empty list, expected %q", desc.token); err != nil {
			return err
		}
	} else {
		if checkToken {
			head := sexpr.AtomText(c.list[0])
			if !desc.accepts(head) {
				if err := c.report(IssueWrongToken, "", "expected token %q, got %q", desc.token, head); err != nil {
					return err
				}
			}
		}
		c.markUsed(0)
	}

	for _, f := range e.Fields() {
		if err := decodeField(c, f); err != nil {
			return err
		}
	}

	for _, idx := range c.unused() {
		if err := c.report(IssueUnusedToken, "", "unused token %s at index %d", preview(c.list[idx]), idx); err != nil {
			return err
		}
	}
	return nil
}

func decodeField(c *cursor, f Field) error {
	switch f.Class {
	case ClassAtomic:
		return decodeAtomic(c, f)
	case ClassNamedValue, ClassOptionalNamedValue:
		return decodeNamed(c, f)
	case ClassEntity, ClassOptionalEntity:
		return decodeChild(c, f)
	case ClassFlag:
		return decodeFlag(c, f)
	case ClassSimpleFlag:
		if idx := c.findBareSymbol(f.Token); idx >= 0 {
			f.setSimple(true)
		}
		return nil
	case ClassRepeatedGroup:
		return decodeGroup(c, f)
	default:
		return nil
	}
}

func decodeAtomic(c *cursor, f Field) error {
	idx := c.nextUnusedAtom()
	if idx < 0 {
		if f.Optional {
			return nil
		}
		return c.report(IssueMissingField, f.Name, "no positional value left")
	}
	if err := f.setScalar(c.list[idx]); err != nil {
		return c.report(IssueMalformedScalar, f.Name, "%v", err)
	}
	return nil
}

func decodeNamed(c *cursor, f Field) error {
	idx, sub := c.findList(f.Token)
	if idx < 0 {
		if f.Optional {
			return nil
		}
		return c.report(IssueMissingField, f.Name, "required token %q not found", f.Token)
	}
	if len(sub) < 2 {
		return c.report(IssueMalformedScalar, f.Name, "token %q carries no value", f.Token)
	}
	if err := f.setScalar(sub[1]); err != nil {
		return c.report(IssueMalformedScalar, f.Name, "%v", err)
	}
	return nil
}

func decodeChild(c *cursor, f Field) error {
	idx, sub := c.findList(f.Token)
	if idx < 0 {
		if f.Optional {
			return nil
		}
		// The default-constructed child stays in place.
		return c.report(IssueMissingField, f.Name, "required token %q not found", f.Token)
	}

	child := f.child()
	if f.Class == ClassOptionalEntity {
		child = f.ensure()
	}
	return decodeEntity(c.enter(sub, f.Token), child, false)
}

func decodeFlag(c *cursor, f Field) error {
	idx, match := c.findFlag(f.Token)
	if idx < 0 {
		return nil
	}

	sub, ok := match.(sexpr.List)
	if !ok {
		// Bare symbol form.
		f.setFlag(PresentFlag())
		return nil
	}

	switch {
	case len(sub) == 1:
		f.setFlag(PresentFlag())
	case len(sub) == 2 && !sexpr.IsList(sub[1]):
		value, err := convertScalar[string](sub[1])
		if err != nil {
			return c.report(IssueMalformedScalar, f.Name, "%v", err)
		}
		f.setFlag(FlagWith(value))
	default:
		// Payload beyond (token value) is structurally invalid. The
		// tolerant modes keep only the token.
		if err := c.report(IssueOversizedFlag, f.Name, "flag %q carries %d payload elements", f.Token, len(sub)-1); err != nil {
			return err
		}
		f.setFlag(PresentFlag())
	}
	return nil
}

func decodeGroup(c *cursor, f Field) error {
	f.resetGroup()

	// Rest scalars: claim every remaining bare atom in order.
	if f.appendScalar != nil && f.Token == "" {
		for {
			idx := c.nextUnusedAtom()
			if idx < 0 {
				return nil
			}
			if err := f.appendScalar(c.list[idx]); err != nil {
				if rerr := c.report(IssueMalformedScalar, f.Name, "%v", err); rerr != nil {
					return rerr
				}
			}
		}
	}

	n := 0
	for {
		idx, sub := c.findList(f.Token)
		if idx < 0 {
			return nil
		}
		if f.appendScalar != nil {
			if len(sub) < 2 {
				if err := c.report(IssueMalformedScalar, f.Name, "token %q carries no value", f.Token); err != nil {
					return err
				}
				continue
			}
			if err := f.appendScalar(sub[1]); err != nil {
				if rerr := c.report(IssueMalformedScalar, f.Name, "%v", err); rerr != nil {
					return rerr
				}
			}
			continue
		}

		child := f.appendNew()
		if err := decodeEntity(c.enter(sub, f.Token+"["+strconv.Itoa(n)+"]"), child, false); err != nil {
			return err
		}
		n++
	}
}
