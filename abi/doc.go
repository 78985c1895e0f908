// Package abi provides Ethereum Contract ABI encoding and decoding.
//
// This package converts between typed Go values and the word-aligned
// binary layout used for contract call arguments, return data and
// constructor parameters.
//
//	┌─────────────────────────────────────────────────────────────┐
//	│ []Value ←→ [Codec] ←→ 0x-prefixed hex / []byte               │
//	└─────────────────────────────────────────────────────────────┘
//
// # Word Layout
//
// Every value occupies whole 32-byte words:
//
//	Type            Head            Encoding
//	──────────────────────────────────────────────────────────────
//	uintN           1 word          magnitude, left-padded
//	intN            1 word          two's complement, sign-extended
//	bool            1 word          0 or 1 in the last byte
//	address         1 word          20 bytes, left-padded
//	bytesN          1 word          N bytes, right-padded
//	bytes/string    1 word (offset) length word + right-padded payload
//	T[]             1 word (offset) length word + region of T
//	T[n] static     n × head(T)     elements inline
//	T[n] dynamic    1 word (offset) region of n elements
//	tuple static    sum of members  members inline
//	tuple dynamic   1 word (offset) region of the members
//
// # Regions
//
// A region is a head followed by a tail. Static members are written into
// the head directly. Dynamic members get one head word holding the byte
// offset of their payload, measured from the start of the region that
// contains the head. The top-level argument list is a region, and so is
// every dynamic payload that has members of its own:
//
//	top level       offsets from the start of the data
//	T[]             offsets from the word after the length
//	T[n], tuple     offsets from the start of the payload
//
// # Key Types
//
//	Type     - Immutable type descriptor (UintType, TupleType, ParseType, ...)
//	Value    - Closed sum of Integer, Bool, Address, Bytes, String, List, Tuple
//	Codec    - Encoder and decoder configured by Options
//
// # Usage
//
//	types, _ := abi.ParseTypeList("uint256,string")
//	hex, err := abi.Encode(types, []abi.Value{abi.NewUint64(1), abi.String("hi")})
//
//	values, err := abi.Decode(types, hex)
//
// ValueOf and ValuesOf convert loosely typed input such as decoded JSON
// into values shaped by a type.
//
// # Strict Mode
//
// By default the decoder is lenient: padding bytes are ignored, a bool word
// is true only when it equals 1 and integers are returned as read. With
// Options.Strict it rejects non-zero padding, bool words other than 0 and 1,
// integers wider than their declared uintN/intN and strings that are not
// valid UTF-8.
//
// # Thread Safety
//
// Codec holds only immutable options and is safe for concurrent use.
// Types and values are immutable once constructed.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] invalid_offset at arg[1].field[0]: offset 4096 outside data of length 192
//	[encode] arity_mismatch at arg[0]: expected 3 values, got 2
package abi
