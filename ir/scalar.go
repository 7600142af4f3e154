package ir

import (
	"strconv"
	"strings"
)

// FromScalar converts one text-proto value token to a typed node. The
// precedence is fixed: a quoted token is a string, bare true/false is a
// bool, then integer, then float, and anything else is kept as a literal
// string. FromScalar never fails.
func FromScalar(tok string) *Node {
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return FromString(tok[1 : len(tok)-1])
	}
	switch tok {
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return FromFloat(f)
	}
	return FromString(tok)
}

// Literal renders a scalar node as a bare token: booleans lowercase,
// numbers in their natural decimal form, strings verbatim without quotes.
// Floats always carry a decimal point or exponent so that re-inference
// keeps them floats.
func (y *Node) Literal() string {
	switch y.Type {
	case BoolType:
		if y.Bool {
			return "true"
		}
		return "false"
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			s := strconv.FormatFloat(*y.Float64, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eE") {
				s += ".0"
			}
			return s
		}
		return "0"
	case StringType:
		return y.String
	case NullType:
		return "null"
	}
	return ""
}
