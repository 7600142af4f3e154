// Package yamldoc moves channel-set documents between the ir tree and
// their on-disk YAML form. Mapping insertion order is preserved in both
// directions via ordered maps, so the canonical order the decode path
// imposes survives printing and editing.
//
// The psk field is BytesType in a document; here it renders as a
// standard base64 string. Loading produces a string node at that key;
// rebinding it to raw bytes is the pipeline's normalize pass.
package yamldoc

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/psk"
)

var ErrDocument = errors.New("document form error")

// Marshal renders doc as YAML with 2-space indentation.
func Marshal(doc *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(toYAML(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	return d, nil
}

// Unmarshal loads YAML into a document tree, preserving mapping order.
func Unmarshal(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	return fromYAML(v)
}

func toYAML(y *ir.Node) any {
	switch y.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(y.Fields))
		for i, k := range y.Fields {
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAML(y.Values[i])})
		}
		return ms
	case ir.ArrayType:
		vs := make([]any, 0, len(y.Values))
		for _, v := range y.Values {
			vs = append(vs, toYAML(v))
		}
		return vs
	case ir.StringType:
		return y.String
	case ir.BoolType:
		return y.Bool
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return int64(0)
	case ir.BytesType:
		return psk.ToBase64(y.Bytes)
	}
	return nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		o := ir.Object()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string mapping key %v", ErrDocument, item.Key)
			}
			child, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			o.Set(key, child)
		}
		return o, nil
	case []any:
		a := ir.Array()
		for _, el := range t {
			child, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			a.Append(child)
		}
		return a, nil
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > 1<<62 {
			return nil, fmt.Errorf("%w: integer %d out of range", ErrDocument, t)
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case nil:
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: unsupported value %T", ErrDocument, v)
}
