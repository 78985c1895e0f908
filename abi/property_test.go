package abi

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/wippyai/ethabi/abi/internal/word"
)

// sample is a random type list with conforming values.
type sample struct {
	types  []*Type
	values []Value
}

func genSample() gopter.Gen {
	return gen.Int64().Map(func(seed int64) sample {
		r := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
		n := 1 + r.IntN(4)
		s := sample{types: make([]*Type, n), values: make([]Value, n)}
		for i := range n {
			s.types[i] = randomType(r, 0)
			s.values[i] = randomValue(r, s.types[i])
		}
		return s
	})
}

func randomType(r *rand.Rand, depth int) *Type {
	kinds := 10
	if depth >= 3 {
		kinds = 7
	}
	switch r.IntN(kinds) {
	case 0:
		return UintType(8 * (1 + r.IntN(32)))
	case 1:
		return IntType(8 * (1 + r.IntN(32)))
	case 2:
		return BoolType()
	case 3:
		return AddressType()
	case 4:
		return StaticBytesType(1 + r.IntN(32))
	case 5:
		return DynamicBytesType()
	case 6:
		return StringType()
	case 7:
		return StaticArrayType(randomType(r, depth+1), 1+r.IntN(3))
	case 8:
		return DynamicArrayType(randomType(r, depth+1))
	default:
		elems := make([]*Type, 1+r.IntN(3))
		for i := range elems {
			elems[i] = randomType(r, depth+1)
		}
		return TupleType(elems...)
	}
}

func randomValue(r *rand.Rand, t *Type) Value {
	switch t.Kind() {
	case KindUint:
		return NewUint(new(big.Int).SetBytes(randomBytes(r, t.Bits()/8)))
	case KindInt:
		x := new(big.Int).SetBytes(randomBytes(r, t.Bits()/8))
		x.Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(t.Bits()-1)))
		return NewInt(x)
	case KindBool:
		return Bool(r.IntN(2) == 1)
	case KindAddress:
		var a Address
		copy(a[:], randomBytes(r, len(a)))
		return a
	case KindFixedBytes:
		return Bytes(randomBytes(r, t.Size()))
	case KindBytes:
		return Bytes(randomBytes(r, r.IntN(70)))
	case KindString:
		b := make([]byte, r.IntN(70))
		for i := range b {
			b[i] = byte(' ' + r.IntN(95))
		}
		return String(b)
	case KindArray:
		out := make(List, t.Size())
		for i := range out {
			out[i] = randomValue(r, t.Elem())
		}
		return out
	case KindSlice:
		out := make(List, r.IntN(4))
		for i := range out {
			out[i] = randomValue(r, t.Elem())
		}
		return out
	default:
		out := make(Tuple, len(t.Elems()))
		for i, e := range t.Elems() {
			out[i] = randomValue(r, e)
		}
		return out
	}
}

func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.IntN(256))
	}
	return b
}

func TestRoundTripProperty(t *testing.T) {
	strict := NewCodec(Options{Strict: true})
	properties := gopter.NewProperties(nil)

	properties.Property("decode inverts encode", prop.ForAll(
		func(s sample) bool {
			data, err := strict.EncodeBytes(s.types, s.values)
			if err != nil {
				return false
			}
			got, err := strict.DecodeBytes(s.types, data)
			return err == nil && EqualValues(s.values, got)
		},
		genSample(),
	))

	properties.Property("encoding is word aligned", prop.ForAll(
		func(s sample) bool {
			data, err := EncodeBytes(s.types, s.values)
			return err == nil && len(data)%word.Size == 0
		},
		genSample(),
	))

	properties.Property("top level offsets point inside the data", prop.ForAll(
		func(s sample) bool {
			data, err := EncodeBytes(s.types, s.values)
			if err != nil {
				return false
			}
			pos := 0
			for _, typ := range s.types {
				if typ.IsDynamic() {
					off, ok := word.ToInt(data[pos : pos+word.Size])
					if !ok || off >= len(data) {
						return false
					}
				}
				pos += typ.HeadWords() * word.Size
			}
			return true
		},
		genSample(),
	))

	properties.TestingRun(t)
}
