package types

type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindAddress
	KindFixedBytes
	KindBytes
	KindString
	KindArray
	KindSlice
	KindTuple
)

var kindNames = [...]string{
	KindUint:       "uint",
	KindInt:        "int",
	KindBool:       "bool",
	KindAddress:    "address",
	KindFixedBytes: "bytesN",
	KindBytes:      "bytes",
	KindString:     "string",
	KindArray:      "array",
	KindSlice:      "slice",
	KindTuple:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether values of the kind fit in a single word.
func (k Kind) IsScalar() bool {
	return k <= KindFixedBytes
}

// IsComposite reports whether the kind holds nested element types.
func (k Kind) IsComposite() bool {
	return k >= KindArray && k <= KindTuple
}
