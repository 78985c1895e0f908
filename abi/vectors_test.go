package abi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// hexWords joins word fixtures into one 0x-prefixed input.
func hexWords(words ...string) string {
	return "0x" + strings.Join(words, "")
}

// u renders an unsigned word.
func u(n uint64) string {
	return fmt.Sprintf("%064x", n)
}

// neg renders the two's complement word of -n.
func neg(n int64) string {
	x := new(big.Int).Lsh(big.NewInt(1), 256)
	x.Sub(x, big.NewInt(n))
	return fmt.Sprintf("%064x", x)
}

// txt renders s right-padded to whole words.
func txt(s string) string {
	h := hex.EncodeToString([]byte(s))
	if pad := len(h) % 64; pad != 0 || h == "" {
		h += strings.Repeat("0", 64-pad)
	}
	return h
}

func uv(n uint64) Integer     { return NewUint64(n) }
func iv(n int64) Integer      { return NewInt64(n) }
func list(vs ...Value) List   { return List(vs) }
func tuple(vs ...Value) Tuple { return Tuple(vs) }
func uvs(ns ...uint64) List {
	out := make(List, len(ns))
	for i, n := range ns {
		out[i] = uv(n)
	}
	return out
}
func strs(ss ...string) List {
	out := make(List, len(ss))
	for i, s := range ss {
		out[i] = String(s)
	}
	return out
}

var (
	tUint   = UintType(256)
	tInt    = IntType(256)
	tBool   = BoolType()
	tString = StringType()
)

type vector struct {
	name   string
	types  []*Type
	data   string
	values []Value
}

// canonicalVectors are encoded exactly as given, so they serve both as
// decoder inputs and expected encoder outputs.
func canonicalVectors() []vector {
	innerTuple := TupleType(StaticArrayType(tUint, 2), tBool, tUint)
	dynTuple := TupleType(tUint, StaticArrayType(tUint, 2), tString, tBool, DynamicArrayType(tUint))

	return []vector{
		{
			name:   "uint",
			types:  []*Type{tUint},
			data:   hexWords(u(0x7f)),
			values: []Value{uv(127)},
		},
		{
			name:   "positive int",
			types:  []*Type{tInt},
			data:   hexWords(u(0x7f)),
			values: []Value{iv(127)},
		},
		{
			name:   "negative int",
			types:  []*Type{tInt},
			data:   hexWords("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff81"),
			values: []Value{iv(-127)},
		},
		{
			name:   "address",
			types:  []*Type{AddressType()},
			data:   hexWords(u(0xaf)),
			values: []Value{Address{19: 0xaf}},
		},
		{
			name:   "bool",
			types:  []*Type{tBool},
			data:   hexWords(u(1)),
			values: []Value{Bool(true)},
		},
		{
			name:   "short string",
			types:  []*Type{tString},
			data:   hexWords(u(0x20), u(0x0b), "746573745f737472696e67000000000000000000000000000000000000000000"),
			values: []Value{String("test_string")},
		},
		{
			name:  "long string",
			types: []*Type{tString},
			data: hexWords(u(0x20), u(0x41),
				"736f6d655f6c6f6e675f737472696e675f76616c75655f77686963685f646f65",
				"735f6e6f745f6669745f696e5f626173655f7061646465645f33325f62797465",
				"7300000000000000000000000000000000000000000000000000000000000000"),
			values: []Value{String("some_long_string_value_which_does_not_fit_in_base_padded_32_bytes")},
		},
		{
			name:   "short bytes",
			types:  []*Type{DynamicBytesType()},
			data:   hexWords(u(0x20), u(0x0a), "746573745f627974657300000000000000000000000000000000000000000000"),
			values: []Value{Bytes("test_bytes")},
		},
		{
			name:  "long bytes",
			types: []*Type{DynamicBytesType()},
			data: hexWords(u(0x20), u(0x40),
				"736f6d655f6c6f6e675f62797465735f76616c75655f77686963685f646f6573",
				"5f6e6f745f6669745f696e5f626173655f7061646465645f33325f6279746573"),
			values: []Value{Bytes("some_long_bytes_value_which_does_not_fit_in_base_padded_32_bytes")},
		},
		{
			name:   "uint[3]",
			types:  []*Type{StaticArrayType(tUint, 3)},
			data:   hexWords(u(100), u(200), u(300)),
			values: []Value{uvs(100, 200, 300)},
		},
		{
			name:   "string[2]",
			types:  []*Type{StaticArrayType(tString, 2)},
			data:   hexWords(u(0x20), u(0x40), u(0x80), u(4), txt("str1"), u(4), txt("str2")),
			values: []Value{strs("str1", "str2")},
		},
		{
			name:   "uint[]",
			types:  []*Type{DynamicArrayType(tUint)},
			data:   hexWords(u(0x20), u(5), u(50), u(100), u(150), u(200), u(250)),
			values: []Value{uvs(50, 100, 150, 200, 250)},
		},
		{
			name:  "string[]",
			types: []*Type{DynamicArrayType(tString)},
			data: hexWords(u(0x20), u(3), u(0x60), u(0xa0), u(0xe0),
				u(4), txt("str1"), u(4), txt("str2"), u(4), txt("str3")),
			values: []Value{strs("str1", "str2", "str3")},
		},
		{
			name:   "uint[2][1]",
			types:  []*Type{StaticArrayType(StaticArrayType(tUint, 2), 1)},
			data:   hexWords(u(10), u(20)),
			values: []Value{list(uvs(10, 20))},
		},
		{
			name:  "string[3][2]",
			types: []*Type{StaticArrayType(StaticArrayType(tString, 3), 2)},
			data: hexWords(u(0x20), u(0x40), u(0x160),
				u(0x60), u(0xa0), u(0xe0), u(4), txt("str1"), u(4), txt("str2"), u(4), txt("str3"),
				u(0x60), u(0xa0), u(0xe0), u(4), txt("str4"), u(4), txt("str5"), u(4), txt("str6")),
			values: []Value{list(strs("str1", "str2", "str3"), strs("str4", "str5", "str6"))},
		},
		{
			name:  "uint[][1][2]",
			types: []*Type{StaticArrayType(StaticArrayType(DynamicArrayType(tUint), 1), 2)},
			data: hexWords(u(0x20), u(0x40), u(0xc0),
				u(0x20), u(2), u(50), u(100),
				u(0x20), u(3), u(150), u(200), u(250)),
			values: []Value{list(list(uvs(50, 100)), list(uvs(150, 200, 250)))},
		},
		{
			name:   "uint[][]",
			types:  []*Type{DynamicArrayType(DynamicArrayType(tUint))},
			data:   hexWords(u(0x20), u(1), u(0x20), u(2), u(10), u(20)),
			values: []Value{list(uvs(10, 20))},
		},
		{
			name:   "uint[5][]",
			types:  []*Type{DynamicArrayType(StaticArrayType(tUint, 5))},
			data:   hexWords(u(0x20), u(1), u(100), u(200), u(300), u(400), u(500)),
			values: []Value{list(uvs(100, 200, 300, 400, 500))},
		},
		{
			name:   "static type list",
			types:  []*Type{tUint, tBool, StaticBytesType(5)},
			data:   hexWords(u(100), u(0), txt("12345")),
			values: []Value{uv(100), Bool(false), Bytes("12345")},
		},
		{
			name:  "dynamic type list",
			types: []*Type{tUint, StaticArrayType(tUint, 2), tString, tBool, DynamicArrayType(tUint)},
			data: hexWords(u(100), u(200), u(300), u(0xc0), u(1), u(0x100),
				u(4), txt("test"), u(3), u(400), u(500), u(600)),
			values: []Value{uv(100), uvs(200, 300), String("test"), Bool(true), uvs(400, 500, 600)},
		},
		{
			name: "static array type list",
			types: []*Type{
				StaticArrayType(StaticArrayType(tUint, 2), 3),
				StaticArrayType(StaticArrayType(StaticArrayType(tBool, 1), 2), 3),
				StaticArrayType(StaticArrayType(tInt, 2), 1),
			},
			data: hexWords(u(100), u(200), u(300), u(400), u(500), u(600),
				u(1), u(0), u(0), u(1), u(1), u(1),
				neg(700), neg(800)),
			values: []Value{
				list(uvs(100, 200), uvs(300, 400), uvs(500, 600)),
				list(
					list(list(Bool(true)), list(Bool(false))),
					list(list(Bool(false)), list(Bool(true))),
					list(list(Bool(true)), list(Bool(true))),
				),
				list(list(iv(-700), iv(-800))),
			},
		},
		{
			name:   "static tuple",
			types:  []*Type{TupleType(tUint, tBool, StaticBytesType(5))},
			data:   hexWords(u(100), u(0), txt("12345")),
			values: []Value{tuple(uv(100), Bool(false), Bytes("12345"))},
		},
		{
			name:  "dynamic tuple",
			types: []*Type{dynTuple},
			data: hexWords(u(0x20), u(100), u(200), u(300), u(0xc0), u(1), u(0x100),
				u(4), txt("test"), u(3), u(400), u(500), u(600)),
			values: []Value{tuple(uv(100), uvs(200, 300), String("test"), Bool(true), uvs(400, 500, 600))},
		},
		{
			name:  "static tuple array",
			types: []*Type{DynamicArrayType(TupleType(tUint, tBool, StaticBytesType(5)))},
			data: hexWords(u(0x20), u(3),
				u(100), u(1), txt("12345"),
				u(200), u(0), txt("67890"),
				u(300), u(1), txt("12345")),
			values: []Value{list(
				tuple(uv(100), Bool(true), Bytes("12345")),
				tuple(uv(200), Bool(false), Bytes("67890")),
				tuple(uv(300), Bool(true), Bytes("12345")),
			)},
		},
		{
			name: "static tuple array type list",
			types: []*Type{
				innerTuple,
				StaticArrayType(tUint, 4),
				StaticArrayType(innerTuple, 2),
				tBool,
			},
			data: hexWords(u(100), u(200), u(1), u(300),
				u(400), u(500), u(600), u(700),
				u(800), u(900), u(1), u(1000),
				u(1100), u(1200), u(1), u(1300),
				u(1)),
			values: []Value{
				tuple(uvs(100, 200), Bool(true), uv(300)),
				uvs(400, 500, 600, 700),
				list(
					tuple(uvs(800, 900), Bool(true), uv(1000)),
					tuple(uvs(1100, 1200), Bool(true), uv(1300)),
				),
				Bool(true),
			},
		},
		{
			name:  "dynamic tuple array",
			types: []*Type{DynamicArrayType(dynTuple)},
			data: hexWords(u(0x20), u(2), u(0x40), u(0x1c0),
				u(100), u(200), u(300), u(0xc0), u(1), u(0x100),
				u(5), txt("test1"), u(3), u(400), u(500), u(600),
				u(1000), u(2000), u(3000), u(0xc0), u(0), u(0x100),
				u(5), txt("test2"), u(2), u(4000), u(5000)),
			values: []Value{list(
				tuple(uv(100), uvs(200, 300), String("test1"), Bool(true), uvs(400, 500, 600)),
				tuple(uv(1000), uvs(2000, 3000), String("test2"), Bool(false), uvs(4000, 5000)),
			)},
		},
		{
			name: "nested tuple",
			types: []*Type{TupleType(
				tUint,
				TupleType(DynamicArrayType(tUint), TupleType(tUint, tBool), DynamicArrayType(tString)),
				tBool,
				tString,
			)},
			data: hexWords(u(0x20), u(500), u(0x80), u(0), u(0x200),
				u(0x80), u(100), u(1), u(0x100),
				u(3), u(200), u(300), u(400),
				u(1), u(0x20), u(5), txt("inner"),
				u(5), txt("outer")),
			values: []Value{tuple(
				uv(500),
				tuple(uvs(200, 300, 400), tuple(uv(100), Bool(true)), strs("inner")),
				Bool(false),
				String("outer"),
			)},
		},
		{
			name: "complex nested tuple",
			types: []*Type{TupleType(
				DynamicArrayType(tUint),
				DynamicArrayType(TupleType(
					DynamicArrayType(tUint),
					DynamicArrayType(TupleType(tUint, tBool)),
					DynamicArrayType(tString),
				)),
				tBool,
				tString,
			)},
			data: hexWords(u(0x20), u(0x80), u(0x140), u(0), u(0x7c0),
				u(5), u(1), u(2), u(3), u(4), u(5),
				u(3), u(0x60), u(0x280), u(0x420),
				// element 0
				u(0x60), u(0xa0), u(0x140),
				u(1), u(300),
				u(2), u(100), u(1), u(200), u(0),
				u(2), u(0x40), u(0x80), u(4), txt("str1"), u(4), txt("str2"),
				// element 1
				u(0x60), u(0xc0), u(0x120),
				u(2), u(2000), u(3000),
				u(1), u(1000), u(1),
				u(1), u(0x20), u(4), txt("str3"),
				// element 2
				u(0x60), u(0xe0), u(0x1c0),
				u(3), u(40000), u(50000), u(0),
				u(3), u(10000), u(1), u(20000), u(0), u(30000), u(1),
				u(1), u(0x20), u(4), txt("str4"),
				u(5), txt("outer")),
			values: []Value{tuple(
				uvs(1, 2, 3, 4, 5),
				list(
					tuple(uvs(300), list(tuple(uv(100), Bool(true)), tuple(uv(200), Bool(false))), strs("str1", "str2")),
					tuple(uvs(2000, 3000), list(tuple(uv(1000), Bool(true))), strs("str3")),
					tuple(uvs(40000, 50000, 0), list(
						tuple(uv(10000), Bool(true)),
						tuple(uv(20000), Bool(false)),
						tuple(uv(30000), Bool(true)),
					), strs("str4")),
				),
				Bool(false),
				String("outer"),
			)},
		},
	}
}

// staticBytesVectors covers bytes1 through bytes32 with the digits 1234567890...
func staticBytesVectors() []vector {
	const digits = "12345678901234567890123456789012"
	out := make([]vector, 0, 32)
	for n := 1; n <= 32; n++ {
		out = append(out, vector{
			name:   fmt.Sprintf("bytes%d", n),
			types:  []*Type{StaticBytesType(n)},
			data:   hexWords(txt(digits[:n])),
			values: []Value{Bytes(digits[:n])},
		})
	}
	return out
}
