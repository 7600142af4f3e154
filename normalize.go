package chanset

import (
	"fmt"
	"sort"

	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/meshproto"
	"github.com/meshkit/chanset/names"
	"github.com/meshkit/chanset/psk"
)

// loraPreferred is the canonical LoRa key order: every known schema
// field name, camelCased, sorted.
var loraPreferred = func() []string {
	fields := meshproto.LoRaConfig().Fields()
	res := make([]string, 0, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		res = append(res, names.Camel(string(fields.Get(i).Name())))
	}
	sort.Strings(res)
	return res
}()

// Normalize imposes the canonical decode-side field order on a
// document, in place: name then psk lead each channel, and LoRa keys
// follow the preferred order with unknown keys trailing in parse
// order. Normalize is total and idempotent.
func Normalize(doc *ir.Node) {
	if channels := doc.Channels(); channels != nil {
		for _, ch := range channels.Values {
			reorderChannel(ch)
		}
	}
	if lora := doc.Lora(); lora != nil {
		reorderLora(lora)
	}
}

func reorderChannel(ch *ir.Node) {
	fields := make([]string, 0, len(ch.Fields))
	values := make([]*ir.Node, 0, len(ch.Values))
	for _, lead := range []string{"name", "psk"} {
		if i := ch.Index(lead); i >= 0 {
			fields = append(fields, lead)
			values = append(values, ch.Values[i])
		}
	}
	for i, k := range ch.Fields {
		if k == "name" || k == "psk" {
			continue
		}
		fields = append(fields, k)
		values = append(values, ch.Values[i])
	}
	ch.Fields, ch.Values = fields, values
}

func reorderLora(lora *ir.Node) {
	fields := make([]string, 0, len(lora.Fields))
	values := make([]*ir.Node, 0, len(lora.Values))
	preferred := map[string]bool{}
	for _, k := range loraPreferred {
		if i := lora.Index(k); i >= 0 {
			fields = append(fields, k)
			values = append(values, lora.Values[i])
			preferred[k] = true
		}
	}
	for i, k := range lora.Fields {
		if preferred[k] {
			continue
		}
		fields = append(fields, k)
		values = append(values, lora.Values[i])
	}
	lora.Fields, lora.Values = fields, values
}

// BindPSK rewrites string psk fields of every channel from standard
// base64 to the raw bytes a document carries in memory. Bytes-typed
// psk fields pass through; any other type is an encoding mismatch.
func BindPSK(doc *ir.Node) error {
	channels := doc.Channels()
	if channels == nil {
		return nil
	}
	for _, ch := range channels.Values {
		key := ch.Get("psk")
		if key == nil {
			continue
		}
		switch key.Type {
		case ir.BytesType:
		case ir.StringType:
			raw, err := psk.FromBase64(key.String)
			if err != nil {
				return err
			}
			ch.Set("psk", ir.FromBytes(raw))
		default:
			return fmt.Errorf("%w: psk holds %s, want base64 text or raw bytes", psk.ErrEncoding, key.Type)
		}
	}
	return nil
}
