package ir

// Node is one value in a channel-set document. It is a tagged union over
// the scalar kinds plus ordered objects and arrays.
//
// For ObjectType nodes, Fields[i] names the value at Values[i]; the two
// slices always have the same length and preserve insertion order. For
// ArrayType nodes only Values is used.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	Bytes   []byte
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromBytes(d []byte) *Node {
	return &Node{Type: BytesType, Bytes: d}
}

// Set inserts v under field, appending it at the end of an object's
// field order. An existing field keeps its position and has its value
// replaced.
func (y *Node) Set(field string, v *Node) *Node {
	if i := y.Index(field); i >= 0 {
		y.Values[i] = v
		return y
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

func (y *Node) Get(field string) *Node {
	if i := y.Index(field); i >= 0 {
		return y.Values[i]
	}
	return nil
}

func (y *Node) Index(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

func (y *Node) Has(field string) bool {
	return y.Index(field) >= 0
}

// Append adds v to an array node.
func (y *Node) Append(v *Node) *Node {
	y.Values = append(y.Values, v)
	return y
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) IsScalar() bool {
	switch y.Type {
	case ObjectType, ArrayType:
		return false
	}
	return true
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Bytes != nil {
		dst.Bytes = append([]byte(nil), y.Bytes...)
	}
	if y.Fields != nil {
		dst.Fields = append([]string(nil), y.Fields...)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}
