package chanset

import (
	"fmt"

	"github.com/meshkit/chanset/encode"
	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/transport"
	"github.com/meshkit/chanset/yamldoc"
)

// Encode transcodes a document into a share URL. The document is
// serialized in its own field order; canonical reordering is a
// decode-side concern only.
func Encode(doc *ir.Node, options ...Option) (string, error) {
	o := newOpts(options)
	text, err := encode.Text(doc)
	if err != nil {
		return "", fmt.Errorf("text form: %w", err)
	}
	raw, err := o.codec.Marshal(text)
	if err != nil {
		return "", fmt.Errorf("binary codec: %w", err)
	}
	return transport.EncodeURL(o.prefix, raw), nil
}

// EncodeFromYAML loads a YAML document and transcodes it into a share
// URL. Missing top-level slots are treated as empty, and psk strings
// are rebound from base64 to raw bytes first.
func EncodeFromYAML(d []byte, options ...Option) (string, error) {
	doc, err := yamldoc.Unmarshal(d)
	if err != nil {
		return "", fmt.Errorf("document form: %w", err)
	}
	if doc.Type != ir.ObjectType {
		return "", fmt.Errorf("document form: root is %s, want a mapping", doc.Type)
	}
	ensureDocument(doc)
	if err := BindPSK(doc); err != nil {
		return "", fmt.Errorf("document form: %w", err)
	}
	return Encode(doc, options...)
}

// ensureDocument fills in the fixed top-level slots of a loaded
// document so a file holding only channels, or only config, encodes.
func ensureDocument(doc *ir.Node) {
	if doc.Get("channels") == nil {
		doc.Set("channels", ir.Array())
	}
	cfg := doc.Get("config")
	if cfg == nil {
		cfg = ir.Object()
		doc.Set("config", cfg)
	}
	if cfg.Get("lora") == nil {
		cfg.Set("lora", ir.Object())
	}
}
