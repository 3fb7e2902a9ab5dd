package sexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scan errors.
var (
	ErrUnbalanced        = errors.New("unbalanced parentheses")
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
	ErrEmptyInput        = errors.New("empty input")
	ErrTrailingInput     = errors.New("trailing input after top-level list")
)

// Parse reads one top-level parenthesized list from text. Atoms are
// classified as int64 when they look like integers, float64 when they
// look like reals, string when quoted and Symbol otherwise. Whitespace
// between elements is not preserved.
func Parse(text string) (List, error) {
	s := &scanner{src: text}
	s.skipSpace()
	if s.eof() {
		return nil, ErrEmptyInput
	}
	if s.peek() != '(' {
		return nil, fmt.Errorf("expected '(' at offset %d: %w", s.pos, ErrUnbalanced)
	}
	list, err := s.readList()
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if !s.eof() {
		return nil, fmt.Errorf("offset %d: %w", s.pos, ErrTrailingInput)
	}
	return list, nil
}

// scanner walks the input byte by byte. KiCad files are UTF-8 but all
// structural characters are ASCII, so multi-byte runes only ever appear
// inside atoms and pass through untouched.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool  { return s.pos >= len(s.src) }
func (s *scanner) peek() byte { return s.src[s.pos] }
func (s *scanner) advance()   { s.pos++ }

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

func (s *scanner) readList() (List, error) {
	// Caller guarantees the opening paren.
	s.advance()
	list := List{}
	for {
		s.skipSpace()
		if s.eof() {
			return nil, fmt.Errorf("offset %d: %w", s.pos, ErrUnbalanced)
		}
		switch s.peek() {
		case ')':
			s.advance()
			return list, nil
		case '(':
			sub, err := s.readList()
			if err != nil {
				return nil, err
			}
			list = append(list, sub)
		case '"':
			str, err := s.readQuoted()
			if err != nil {
				return nil, err
			}
			list = append(list, str)
		default:
			list = append(list, s.readAtom())
		}
	}
}

func (s *scanner) readQuoted() (string, error) {
	start := s.pos
	s.advance()
	var b strings.Builder
	for !s.eof() {
		c := s.peek()
		s.advance()
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if s.eof() {
				return "", fmt.Errorf("offset %d: %w", start, ErrUnterminatedQuote)
			}
			e := s.peek()
			s.advance()
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				// \" and \\ and anything else: literal character.
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	return "", fmt.Errorf("offset %d: %w", start, ErrUnterminatedQuote)
}

// readAtom consumes a bare token and classifies it as int64, float64 or
// Symbol. yes/no and true/false stay symbols; boolean interpretation is
// the schema layer's concern.
func (s *scanner) readAtom() any {
	start := s.pos
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n', '(', ')', '"':
			goto done
		}
		s.advance()
	}
done:
	tok := s.src[start:s.pos]
	if looksNumeric(tok) {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return f
		}
	}
	return Symbol(tok)
}

// looksNumeric filters out symbols before the strconv round trip so that
// tokens like "3V3" or "-PAD" are not half-parsed as numbers.
func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	i := 0
	if tok[0] == '+' || tok[0] == '-' {
		if len(tok) == 1 {
			return false
		}
		i = 1
	}
	digits := false
	for ; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
			// Accepted positions are validated by strconv afterwards.
		default:
			return false
		}
	}
	return digits
}
