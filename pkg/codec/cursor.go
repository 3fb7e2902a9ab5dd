package codec

import (
	"fmt"
	"strings"

	"github.com/edatools/kicadio/pkg/sexpr"
)

// cursor is the per-decode-level bookkeeping: the input list, which of
// its elements have been claimed, the path for diagnostics and the
// shared issue collector. Each recursion level owns its cursor; only
// strictness, path prefix and the collector are inherited, so consumed
// state never leaks across levels.
type cursor struct {
	list   sexpr.List
	used   []bool
	path   []string
	mode   Strictness
	issues *[]Issue
}

func newCursor(list sexpr.List, path []string, mode Strictness, issues *[]Issue) *cursor {
	return &cursor{
		list:   list,
		used:   make([]bool, len(list)),
		path:   path,
		mode:   mode,
		issues: issues,
	}
}

// enter creates the cursor for a nested decode of sub.
func (c *cursor) enter(sub sexpr.List, name string) *cursor {
	path := make([]string, 0, len(c.path)+1)
	path = append(path, c.path...)
	path = append(path, name)
	return newCursor(sub, path, c.mode, c.issues)
}

func (c *cursor) pathString() string {
	return strings.Join(c.path, " > ")
}

// markUsed claims an element. Idempotent.
func (c *cursor) markUsed(i int) {
	if i >= 0 && i < len(c.used) {
		c.used[i] = true
	}
}

// unused returns the unclaimed indices in original order.
func (c *cursor) unused() []int {
	var out []int
	for i, u := range c.used {
		if !u {
			out = append(out, i)
		}
	}
	return out
}

// findList returns the first unconsumed nested list whose lead token is
// token, claiming it. Returns -1 when there is none.
func (c *cursor) findList(token string) (int, sexpr.List) {
	for i := 1; i < len(c.list); i++ {
		if c.used[i] {
			continue
		}
		if sub, ok := c.list[i].(sexpr.List); ok && sub.Head() == token {
			c.markUsed(i)
			return i, sub
		}
	}
	return -1, nil
}

// findFlag returns the first unconsumed element matching a flag with
// the given token: either the bare symbol or a list led by it.
func (c *cursor) findFlag(token string) (int, any) {
	for i := 1; i < len(c.list); i++ {
		if c.used[i] {
			continue
		}
		switch v := c.list[i].(type) {
		case sexpr.List:
			if v.Head() == token {
				c.markUsed(i)
				return i, v
			}
		default:
			if sexpr.AtomText(v) == token {
				c.markUsed(i)
				return i, v
			}
		}
	}
	return -1, nil
}

// findBareSymbol returns the first unconsumed bare atom equal to token.
func (c *cursor) findBareSymbol(token string) int {
	for i := 1; i < len(c.list); i++ {
		if c.used[i] || sexpr.IsList(c.list[i]) {
			continue
		}
		if sexpr.AtomText(c.list[i]) == token {
			c.markUsed(i)
			return i
		}
	}
	return -1
}

// nextUnusedAtom returns the next unconsumed non-list element, the
// positional fallback for bare scalars. First-by-list-order wins.
func (c *cursor) nextUnusedAtom() int {
	for i := 1; i < len(c.list); i++ {
		if !c.used[i] && !sexpr.IsList(c.list[i]) {
			c.markUsed(i)
			return i
		}
	}
	return -1
}

// report triages one decode issue. Strict converts it into an error
// that aborts the whole decode; Failsafe records it and continues;
// Silent continues quietly.
func (c *cursor) report(kind IssueKind, field, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch c.mode {
	case Strict:
		if field != "" {
			return fmt.Errorf("%s: field %s: %s: %w", c.pathString(), field, msg, sentinelFor(kind))
		}
		return fmt.Errorf("%s: %s: %w", c.pathString(), msg, sentinelFor(kind))
	case Failsafe:
		*c.issues = append(*c.issues, Issue{Kind: kind, Path: c.pathString(), Field: field, Message: msg})
	}
	return nil
}

// preview renders an input element for diagnostics.
func preview(v any) string {
	if l, ok := v.(sexpr.List); ok {
		if len(l) == 1 {
			return "(" + l.Head() + ")"
		}
		return "(" + l.Head() + " ...)"
	}
	return sexpr.FormatAtom(v)
}
