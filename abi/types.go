package abi

import (
	"github.com/wippyai/ethabi/abi/internal/types"
)

// Type is an immutable ABI type descriptor.
type Type = types.Type

type TypeKind = types.Kind

const (
	KindUint       = types.KindUint
	KindInt        = types.KindInt
	KindBool       = types.KindBool
	KindAddress    = types.KindAddress
	KindFixedBytes = types.KindFixedBytes
	KindBytes      = types.KindBytes
	KindString     = types.KindString
	KindArray      = types.KindArray
	KindSlice      = types.KindSlice
	KindTuple      = types.KindTuple
)

// UintType returns uintN. Widths other than 8..256 in steps of 8 are
// rejected by the codec with an unsupported type error.
func UintType(bits int) *Type { return types.NewUint(bits) }

// IntType returns intN.
func IntType(bits int) *Type { return types.NewInt(bits) }

func BoolType() *Type { return types.NewBool() }

func AddressType() *Type { return types.NewAddress() }

// StaticBytesType returns bytesN, 1 <= n <= 32.
func StaticBytesType(n int) *Type { return types.NewFixedBytes(n) }

func DynamicBytesType() *Type { return types.NewBytes() }

func StringType() *Type { return types.NewString() }

// StaticArrayType returns elem[n].
func StaticArrayType(elem *Type, n int) *Type { return types.NewArray(elem, n) }

// DynamicArrayType returns elem[].
func DynamicArrayType(elem *Type) *Type { return types.NewSlice(elem) }

// TupleType returns (elems...).
func TupleType(elems ...*Type) *Type { return types.NewTuple(elems...) }

// Argument pairs a value with the type it is encoded as.
type Argument struct {
	Type  *Type
	Value Value
}

// SplitArguments separates arguments into parallel type and value lists.
func SplitArguments(args []Argument) ([]*Type, []Value) {
	ts := make([]*Type, len(args))
	vs := make([]Value, len(args))
	for i, a := range args {
		ts[i] = a.Type
		vs[i] = a.Value
	}
	return ts, vs
}
