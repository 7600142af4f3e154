// Package parse builds a channel-set document from text-proto input.
package parse

import (
	"fmt"
	"strings"

	"github.com/meshkit/chanset/debug"
	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/names"
	"github.com/meshkit/chanset/psk"
	"github.com/meshkit/chanset/token"
)

// Parse consumes the text-proto dump of one channel set and returns the
// document tree. The result has parse order; canonical reordering is a
// separate pass owned by the caller.
func Parse(d []byte) (*ir.Node, error) {
	st := &state{root: ir.Document()}
	for i, ln := range strings.Split(string(d), "\n") {
		lt, err := token.Classify(ln)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if debug.Parse() {
			debug.Logf("parse line %d: %s %q", i+1, lt.Type, lt.Field)
		}
		switch lt.Type {
		case token.Blank:
		case token.BlockOpen:
			err = st.open(lt.Field)
		case token.BlockClose:
			err = st.close()
		case token.Scalar:
			err = st.scalar(lt.Field, lt.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	if len(st.stack) != 0 {
		return nil, fmt.Errorf("%w: %d unclosed block(s) at end of input", token.ErrGrammar, len(st.stack))
	}
	return st.root, nil
}

// frame is one open block. A frame is either a channel under
// construction, a generic nested map, or the document's fixed LoRa map;
// only the last needs a discriminator, for the key-casing rule.
type frame struct {
	node *ir.Node
	lora bool
}

type state struct {
	root  *ir.Node
	stack []frame
}

func (st *state) current() *frame {
	if len(st.stack) == 0 {
		return nil
	}
	return &st.stack[len(st.stack)-1]
}

func (st *state) open(field string) error {
	switch field {
	case "settings":
		ch := ir.Object()
		st.root.Channels().Append(ch)
		st.stack = append(st.stack, frame{node: ch})
	case "lora_config":
		st.stack = append(st.stack, frame{node: st.root.Lora(), lora: true})
	default:
		cur := st.current()
		if cur == nil {
			return fmt.Errorf("%w: block %q outside settings or lora_config", token.ErrGrammar, field)
		}
		sub := ir.Object()
		cur.node.Set(field, sub)
		st.stack = append(st.stack, frame{node: sub})
	}
	return nil
}

func (st *state) close() error {
	if len(st.stack) == 0 {
		return fmt.Errorf("%w: block close with no open block", token.ErrGrammar)
	}
	st.stack = st.stack[:len(st.stack)-1]
	return nil
}

func (st *state) scalar(field, value string) error {
	cur := st.current()
	if cur == nil {
		return fmt.Errorf("%w: field %q outside any block", token.ErrGrammar, field)
	}
	if field == "psk" {
		if len(value) < 2 || !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
			return fmt.Errorf("%w: psk value %q is not a quoted escape string", psk.ErrEncoding, value)
		}
		raw, err := psk.Unescape(value[1 : len(value)-1])
		if err != nil {
			return err
		}
		cur.node.Set("psk", ir.FromBytes(raw))
		return nil
	}
	if cur.lora {
		field = names.Camel(field)
	}
	cur.node.Set(field, ir.FromScalar(value))
	return nil
}
