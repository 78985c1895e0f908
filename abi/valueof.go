package abi

import (
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wippyai/ethabi/abi/internal/word"
	"github.com/wippyai/ethabi/errors"
)

// ValueOf converts loosely typed Go data into a Value shaped by t.
//
// Accepted inputs per type:
//
//	uintN, intN   Go integers, integral floats, json.Number, *big.Int,
//	              decimal or 0x-prefixed strings
//	bool          bool, "true" or "false"
//	address       0x-prefixed hex string, common.Address, [20]byte
//	bytesN, bytes []byte, 0x-prefixed hex string, array of byte numbers
//	string        string
//	T[n], T[]     any slice or array
//	tuple         any slice or array with one entry per member
//
// Inputs that already are a Value are returned unchanged.
func ValueOf(t *Type, x any) (Value, error) {
	if t == nil {
		return nil, errors.UnsupportedType(errors.PhaseEncode, nil, "", "nil type")
	}
	return valueOf(t, x, nil)
}

// ValuesOf converts a list of inputs with ValueOf.
func ValuesOf(ts []*Type, xs []any) ([]Value, error) {
	if len(ts) != len(xs) {
		return nil, errors.ArityMismatch(errors.PhaseEncode, nil, len(ts), len(xs))
	}
	out := make([]Value, len(ts))
	for i, t := range ts {
		if t == nil {
			return nil, errors.UnsupportedType(errors.PhaseEncode, childPath(nil, "arg", i), "", "nil type")
		}
		v, err := valueOf(t, xs[i], childPath(nil, "arg", i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func valueOf(t *Type, x any, path []string) (Value, error) {
	if v, ok := x.(Value); ok {
		return v, nil
	}

	switch t.Kind() {
	case KindUint, KindInt:
		n, ok := word.CoerceToBig(x)
		if !ok {
			return nil, mismatch(x, t, path)
		}
		if t.Kind() == KindInt {
			return Integer{n: n, signed: true}, nil
		}
		if n.Sign() < 0 {
			return nil, errors.ValueOutOfRange(errors.PhaseEncode, path, n, t.String())
		}
		return Integer{n: n}, nil

	case KindBool:
		switch b := x.(type) {
		case bool:
			return Bool(b), nil
		case string:
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "true":
				return Bool(true), nil
			case "false":
				return Bool(false), nil
			}
		}
		return nil, mismatch(x, t, path)

	case KindAddress:
		return addressOf(t, x, path)

	case KindFixedBytes, KindBytes:
		b, err := bytesOf(t, x, path)
		if err != nil {
			return nil, err
		}
		if t.Kind() == KindFixedBytes && len(b) != t.Size() {
			return nil, errors.New(errors.PhaseEncode, errors.KindShapeMismatch).
				Path(path...).
				AbiType(t.String()).
				Value(len(b)).
				Detail("expected %d bytes, got %d", t.Size(), len(b)).
				Build()
		}
		return b, nil

	case KindString:
		s, ok := x.(string)
		if !ok {
			return nil, mismatch(x, t, path)
		}
		return String(s), nil

	case KindArray, KindSlice:
		items, ok := sequence(x)
		if !ok {
			return nil, mismatch(x, t, path)
		}
		if t.Kind() == KindArray && len(items) != t.Size() {
			return nil, errors.ArityMismatch(errors.PhaseEncode, path, t.Size(), len(items))
		}
		out := make(List, len(items))
		for i, item := range items {
			v, err := valueOf(t.Elem(), item, childPath(path, "elem", i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case KindTuple:
		items, ok := sequence(x)
		if !ok {
			return nil, mismatch(x, t, path)
		}
		if len(items) != len(t.Elems()) {
			return nil, errors.ArityMismatch(errors.PhaseEncode, path, len(t.Elems()), len(items))
		}
		out := make(Tuple, len(items))
		for i, item := range items {
			v, err := valueOf(t.Elems()[i], item, childPath(path, "field", i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, errors.UnsupportedType(errors.PhaseEncode, path, t.String(), "unknown type kind")
}

func addressOf(t *Type, x any, path []string) (Value, error) {
	switch a := x.(type) {
	case common.Address:
		return Address(a), nil
	case [20]byte:
		return Address(a), nil
	case string:
		if !common.IsHexAddress(a) {
			return nil, errors.New(errors.PhaseEncode, errors.KindMalformedInput).
				Path(path...).
				AbiType(t.String()).
				Value(a).
				Detail("invalid address %q", a).
				Build()
		}
		return Address(common.HexToAddress(a)), nil
	case []byte:
		if len(a) != common.AddressLength {
			return nil, mismatch(x, t, path)
		}
		return Address(common.BytesToAddress(a)), nil
	}
	return nil, mismatch(x, t, path)
}

func bytesOf(t *Type, x any, path []string) (Bytes, error) {
	switch b := x.(type) {
	case []byte:
		return Bytes(append([]byte{}, b...)), nil
	case string:
		out, err := hexutil.Decode(b)
		if err != nil {
			return nil, errors.New(errors.PhaseEncode, errors.KindMalformedInput).
				Path(path...).
				AbiType(t.String()).
				Detail("byte payloads are 0x-prefixed hex").
				Cause(err).
				Build()
		}
		return Bytes(out), nil
	}

	items, ok := sequence(x)
	if !ok {
		return nil, mismatch(x, t, path)
	}
	out := make(Bytes, len(items))
	for i, item := range items {
		n, ok := word.CoerceToBig(item)
		if !ok || !n.IsInt64() || n.Int64() < -128 || n.Int64() > 255 {
			return nil, errors.ValueOutOfRange(errors.PhaseEncode, childPath(path, "elem", i), item, "byte")
		}
		out[i] = byte(n.Int64())
	}
	return out, nil
}

// sequence returns the elements of any slice or array other than a string.
func sequence(x any) ([]any, bool) {
	if items, ok := x.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(x)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func mismatch(x any, t *Type, path []string) error {
	return errors.ShapeMismatch(errors.PhaseEncode, path, goTypeName(x), t.String())
}

func goTypeName(x any) string {
	if x == nil {
		return "nil"
	}
	return reflect.TypeOf(x).String()
}
