package encode

import (
	"bytes"

	"github.com/meshkit/chanset/ir"
)

// Text renders doc to a byte slice.
func Text(doc *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MustString(doc *ir.Node) string {
	d, err := Text(doc)
	if err != nil {
		panic(err)
	}
	return string(d)
}
