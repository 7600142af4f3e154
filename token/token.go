// Package token classifies text-proto lines. It knows nothing about
// document structure; the parse package consumes its line events and
// builds the tree.
package token

import (
	"errors"
	"fmt"
	"strings"
)

var ErrGrammar = errors.New("text-proto grammar error")

type LineType int

const (
	Blank LineType = iota
	BlockOpen
	BlockClose
	Scalar
)

func (t LineType) String() string {
	switch t {
	case Blank:
		return "Blank"
	case BlockOpen:
		return "BlockOpen"
	case BlockClose:
		return "BlockClose"
	case Scalar:
		return "Scalar"
	}
	return "<unknown line type>"
}

// Line is one classified input line. Field is set for BlockOpen and
// Scalar lines; Value only for Scalar lines and may be empty.
type Line struct {
	Type  LineType
	Field string
	Value string
}

// Classify recognizes the three line forms of the channel-set text
// surface:
//
//	<field> {     block open (a trailing colon before the brace,
//	              as some text-proto printers emit, is tolerated)
//	}             block close
//	<field>: <v>  scalar
//
// plus blank lines. Anything else is a grammar error.
func Classify(ln string) (Line, error) {
	ln = strings.TrimSpace(ln)
	if ln == "" {
		return Line{Type: Blank}, nil
	}
	if ln == "}" {
		return Line{Type: BlockClose}, nil
	}
	if strings.HasSuffix(ln, "{") {
		field := strings.TrimSpace(ln[:len(ln)-1])
		field = strings.TrimSuffix(field, ":")
		if field == "" || strings.ContainsAny(field, " \t:{}") {
			return Line{}, fmt.Errorf("%w: malformed block open %q", ErrGrammar, ln)
		}
		return Line{Type: BlockOpen, Field: field}, nil
	}
	field, value, ok := strings.Cut(ln, ":")
	if !ok {
		return Line{}, fmt.Errorf("%w: unrecognized line %q", ErrGrammar, ln)
	}
	field = strings.TrimSpace(field)
	if field == "" || strings.ContainsAny(field, " \t{}") {
		return Line{}, fmt.Errorf("%w: malformed scalar line %q", ErrGrammar, ln)
	}
	return Line{Type: Scalar, Field: field, Value: strings.TrimSpace(value)}, nil
}
