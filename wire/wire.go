// Package wire converts between the text-proto surface form and the
// binary payload a share URL carries. It is schema-agnostic: a Codec is
// built from any message descriptor and moves data through a dynamic
// message, so the rest of the pipeline never sees field tag numbers.
package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/meshkit/chanset/debug"
	"github.com/meshkit/chanset/psk"
)

var ErrWire = errors.New("wire codec error")

type Codec struct {
	desc protoreflect.MessageDescriptor
}

func New(desc protoreflect.MessageDescriptor) *Codec {
	return &Codec{desc: desc}
}

// MessageName is the full name of the message type this codec carries.
func (c *Codec) MessageName() string {
	return string(c.desc.FullName())
}

// Marshal parses text-proto input and encodes it to wire bytes.
func (c *Codec) Marshal(text []byte) ([]byte, error) {
	msg := dynamicpb.NewMessage(c.desc)
	if err := prototext.Unmarshal(text, msg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWire, c.MessageName(), err)
	}
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWire, c.MessageName(), err)
	}
	if debug.Wire() {
		debug.Logf("wire: marshaled %d text bytes to %d wire bytes", len(text), len(raw))
	}
	return raw, nil
}

// Unmarshal decodes wire bytes and renders them as text-proto in the
// classic surface syntax: populated fields in field-number order,
// message fields as brace blocks, bytes as quoted 3-digit octal
// escapes, enums as bare identifiers, repeated scalars one line per
// element.
func (c *Codec) Unmarshal(raw []byte) ([]byte, error) {
	msg := dynamicpb.NewMessage(c.desc)
	if err := proto.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWire, c.MessageName(), err)
	}
	var b strings.Builder
	emitMessage(&b, msg, 0)
	if debug.Wire() {
		debug.Logf("wire: unmarshaled %d wire bytes:\n%s", len(raw), b.String())
	}
	return []byte(b.String()), nil
}

func emitMessage(b *strings.Builder, m protoreflect.Message, depth int) {
	fields := m.Descriptor().Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.IsList() {
			list := m.Get(fd).List()
			for j := 0; j < list.Len(); j++ {
				emitValue(b, fd, list.Get(j), depth)
			}
			continue
		}
		if !m.Has(fd) {
			continue
		}
		emitValue(b, fd, m.Get(fd), depth)
	}
}

func emitValue(b *strings.Builder, fd protoreflect.FieldDescriptor, v protoreflect.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	name := fd.Name()
	if fd.Kind() == protoreflect.MessageKind {
		fmt.Fprintf(b, "%s%s {\n", indent, name)
		emitMessage(b, v.Message(), depth+1)
		fmt.Fprintf(b, "%s}\n", indent)
		return
	}
	fmt.Fprintf(b, "%s%s: %s\n", indent, name, scalarText(fd, v))
}

func scalarText(fd protoreflect.FieldDescriptor, v protoreflect.Value) string {
	switch fd.Kind() {
	case protoreflect.StringKind:
		return `"` + v.String() + `"`
	case protoreflect.BytesKind:
		return `"` + psk.Escape(v.Bytes()) + `"`
	case protoreflect.BoolKind:
		if v.Bool() {
			return "true"
		}
		return "false"
	case protoreflect.EnumKind:
		if ev := fd.Enum().Values().ByNumber(v.Enum()); ev != nil {
			return string(ev.Name())
		}
		return strconv.FormatInt(int64(v.Enum()), 10)
	case protoreflect.FloatKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case protoreflect.DoubleKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(v.Int(), 10)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(v.Uint(), 10)
	}
	return v.String()
}
