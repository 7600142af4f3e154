package chanset

import (
	"fmt"

	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/parse"
	"github.com/meshkit/chanset/transport"
	"github.com/meshkit/chanset/yamldoc"
)

// Decode transcodes a share URL (or any text containing one) into a
// canonical document. A failure at any stage aborts the transcode; a
// partial document is never returned.
func Decode(input string, options ...Option) (*ir.Node, error) {
	o := newOpts(options)
	raw, err := transport.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	text, err := o.codec.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("binary codec: %w", err)
	}
	doc, err := parse.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("text form: %w", err)
	}
	Normalize(doc)
	return doc, nil
}

// DecodeToYAML decodes a share URL straight to canonical YAML.
func DecodeToYAML(input string, options ...Option) ([]byte, error) {
	doc, err := Decode(input, options...)
	if err != nil {
		return nil, err
	}
	d, err := yamldoc.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("document form: %w", err)
	}
	return d, nil
}
