// Package ir provides the in-memory representation of a channel-set
// document.
//
// A document is a tree of Node values. Objects keep their fields in
// insertion order via parallel Fields/Values slices, which is what lets
// the decode path impose a canonical field order and the encode path
// preserve whatever order a document author chose.
//
// The document root is always an object with two slots:
//
//	channels:    array of channel objects
//	config.lora: the LoRa radio configuration object
//
// Channel objects hold scalar fields plus at most one level of nested
// object fields. The psk field is special: in a document it is always
// BytesType holding the raw pre-shared key, never its escaped or base64
// text forms.
//
// Nodes are not safe for concurrent mutation; decode and encode calls
// build and consume their own trees.
package ir
