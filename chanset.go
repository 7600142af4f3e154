// Package chanset transcodes a channel set — radio channels plus a LoRa
// radio configuration — between its three forms: the binary-over-base64
// share URL, the text-proto surface the binary codec speaks, and the
// canonically ordered document tree that YAML files hold.
//
// Decode path: transport → binary codec → parse → normalize → document.
// Encode path: document → encode → binary codec → transport.
package chanset

import (
	"github.com/meshkit/chanset/meshproto"
	"github.com/meshkit/chanset/transport"
	"github.com/meshkit/chanset/wire"
)

// BinaryCodec converts between the text-proto surface form and the raw
// binary payload. The default is a dynamic protobuf codec over the
// meshtastic.ChannelSet schema; anything honoring the text surface
// contract can stand in.
type BinaryCodec interface {
	// Marshal parses text-proto and encodes it to wire bytes.
	Marshal(text []byte) ([]byte, error)
	// Unmarshal decodes wire bytes and renders them as text-proto.
	Unmarshal(raw []byte) ([]byte, error)
}

type opts struct {
	codec  BinaryCodec
	prefix string
}

type Option func(*opts)

// WithCodec substitutes the binary codec collaborator.
func WithCodec(c BinaryCodec) Option {
	return func(o *opts) { o.codec = c }
}

// WithURLPrefix overrides the share-URL prefix used on encode.
func WithURLPrefix(p string) Option {
	return func(o *opts) { o.prefix = p }
}

func newOpts(options []Option) *opts {
	o := &opts{
		codec:  wire.New(meshproto.ChannelSet()),
		prefix: transport.DefaultPrefix,
	}
	for _, f := range options {
		f(o)
	}
	return o
}
