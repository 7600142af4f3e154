// Package encode renders a channel-set document in text-proto form for
// the binary codec. It is not the inverse of the parse package: keys are
// snake-cased on the way out regardless of section, name and psk lead
// their channel block, and no reordering is applied beyond that.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/names"
	"github.com/meshkit/chanset/psk"
)

// Encode writes doc as text-proto. Channels become settings blocks with
// name first and psk second; the LoRa map becomes one lora_config block
// in document order.
func Encode(doc *ir.Node, w io.Writer) error {
	channels := doc.Channels()
	lora := doc.Lora()
	if channels == nil || lora == nil {
		return fmt.Errorf("node is not a channel-set document root")
	}
	var b strings.Builder
	for _, ch := range channels.Values {
		b.WriteString("settings {\n")
		if name := ch.Get("name"); name != nil {
			fmt.Fprintf(&b, "  name: \"%s\"\n", name.Literal())
		}
		if key := ch.Get("psk"); key != nil {
			if key.Type != ir.BytesType {
				return fmt.Errorf("%w: psk holds %s, want raw bytes", psk.ErrEncoding, key.Type)
			}
			fmt.Fprintf(&b, "  psk: \"%s\"\n", psk.Escape(key.Bytes))
		}
		for i, k := range ch.Fields {
			if k == "name" || k == "psk" {
				continue
			}
			if err := writeField(&b, k, ch.Values[i], 1); err != nil {
				return err
			}
		}
		b.WriteString("}\n")
	}
	b.WriteString("lora_config {\n")
	for i, k := range lora.Fields {
		if err := writeField(&b, k, lora.Values[i], 1); err != nil {
			return err
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, field string, v *ir.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	field = names.Snake(field)
	switch v.Type {
	case ir.ObjectType:
		fmt.Fprintf(b, "%s%s {\n", indent, field)
		for i, k := range v.Fields {
			if err := writeField(b, k, v.Values[i], depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(b, "%s}\n", indent)
	case ir.ArrayType:
		// repeated scalar: one line per element
		for _, el := range v.Values {
			if !el.IsScalar() {
				return fmt.Errorf("repeated field %s holds %s, want scalars", field, el.Type)
			}
			fmt.Fprintf(b, "%s%s: %s\n", indent, field, el.Literal())
		}
	case ir.BytesType:
		fmt.Fprintf(b, "%s%s: \"%s\"\n", indent, field, psk.Escape(v.Bytes))
	default:
		fmt.Fprintf(b, "%s%s: %s\n", indent, field, v.Literal())
	}
	return nil
}
