package abi

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wippyai/ethabi/errors"
)

// Value is a decoded or to-be-encoded ABI value. The set of variants is
// closed: Integer, Bool, Address, Bytes, String, List and Tuple.
type Value interface {
	// TypeName names the variant in error messages.
	TypeName() string
	value()
}

// Integer is an arbitrary-precision integer tagged with its signedness.
// The zero Integer is unsigned 0.
type Integer struct {
	n      *big.Int
	signed bool
}

// NewUint returns an unsigned Integer holding a copy of x.
func NewUint(x *big.Int) Integer {
	return Integer{n: new(big.Int).Set(x)}
}

func NewUint64(x uint64) Integer {
	return Integer{n: new(big.Int).SetUint64(x)}
}

// NewInt returns a signed Integer holding a copy of x.
func NewInt(x *big.Int) Integer {
	return Integer{n: new(big.Int).Set(x), signed: true}
}

func NewInt64(x int64) Integer {
	return Integer{n: big.NewInt(x), signed: true}
}

// Big returns a copy of the integer's value.
func (i Integer) Big() *big.Int {
	if i.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.n)
}

// Signed reports whether the integer pairs with intN types.
func (i Integer) Signed() bool { return i.signed }

func (i Integer) String() string { return i.Big().String() }

func (Integer) TypeName() string {
	return "integer"
}

type Bool bool

func (Bool) TypeName() string { return "bool" }

// Address is a 20-byte account address.
type Address common.Address

// NewAddress converts a go-ethereum address.
func NewAddress(a common.Address) Address {
	return Address(a)
}

// HexToAddress parses a 0x-prefixed 40 digit hex address.
func HexToAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, errors.MalformedInput(errors.PhaseParse, nil, "invalid address "+s)
	}
	return Address(common.HexToAddress(s)), nil
}

// Common returns the go-ethereum representation.
func (a Address) Common() common.Address { return common.Address(a) }

// Hex returns the EIP-55 checksummed form.
func (a Address) Hex() string { return common.Address(a).Hex() }

func (a Address) String() string { return a.Hex() }

func (Address) TypeName() string { return "address" }

// Bytes is a byte payload for bytesN and bytes.
type Bytes []byte

func (b Bytes) String() string { return hexutil.Encode(b) }

func (Bytes) TypeName() string { return "bytes" }

type String string

func (String) TypeName() string { return "string" }

// List holds the elements of T[n] and T[].
type List []Value

func (List) TypeName() string { return "list" }

// Tuple holds the members of a tuple in declaration order.
type Tuple []Value

func (Tuple) TypeName() string { return "tuple" }

func (Integer) value() {}
func (Bool) value()    {}
func (Address) value() {}
func (Bytes) value()   {}
func (String) value()  {}
func (List) value()    {}
func (Tuple) value()   {}

// Equal reports structural equality. Integers compare by value and
// signedness, nil byte payloads equal empty ones.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x.Signed() == y.Signed() && x.Big().Cmp(y.Big()) == 0
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Address:
		y, ok := b.(Address)
		return ok && x == y
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case String:
		y, ok := b.(String)
		return ok && x == y
	case List:
		y, ok := b.(List)
		return ok && equalSeq(x, y)
	case Tuple:
		y, ok := b.(Tuple)
		return ok && equalSeq(x, y)
	case nil:
		return b == nil
	}
	return false
}

// EqualValues compares two value lists elementwise.
func EqualValues(a, b []Value) bool {
	return equalSeq(a, b)
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Native converts v into plain Go data suitable for JSON or YAML output:
// *big.Int, bool, lowercase hex strings for addresses and bytes, string,
// and []any for lists and tuples.
func Native(v Value) any {
	switch x := v.(type) {
	case Integer:
		return x.Big()
	case Bool:
		return bool(x)
	case Address:
		return hexutil.Encode(x[:])
	case Bytes:
		return hexutil.Encode(x)
	case String:
		return string(x)
	case List:
		return nativeSeq(x)
	case Tuple:
		return nativeSeq(x)
	}
	return nil
}

// NativeValues converts a value list with Native.
func NativeValues(vs []Value) []any {
	return nativeSeq(vs)
}

func nativeSeq(vs []Value) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = Native(v)
	}
	return out
}

func typeNameOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.TypeName()
}
