// Package ethabi encodes and decodes data in the Ethereum Contract ABI.
//
// Values travel between contracts and callers as a sequence of 32-byte
// words. Static values sit in place; dynamic values (bytes, string, T[] and
// anything containing them) leave an offset in the head and put their
// payload in the tail. This module implements that format along with the
// call data framing built on top of it.
//
// # Architecture Overview
//
//	ethabi/              Root package with the codec interfaces
//	├── abi/             Types, values, the head/tail codec and type parsing
//	│   ├── jsonargs/    JSON and YAML argument documents
//	│   └── internal/    Type model, word arithmetic and head layout
//	├── calldata/        Function selectors and call data assembly
//	├── errors/          Structured error types with value paths
//	└── cmd/abi/         Command line tool with an interactive TUI
//
// # Quick Start
//
// Encode and decode a parameter list:
//
//	types, err := abi.ParseTypeList("address,uint256")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := abi.ValuesOf(types, []any{"0x495d96FaaaCEe16Dd3ca62cAB20a0F9548CdddB4", 1000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hex, err := abi.Encode(types, values)
//	decoded, err := abi.Decode(types, hex)
//
// Build call data for a contract function:
//
//	data, err := calldata.EncodeFunctionCall("transfer", []abi.Argument{
//	    {Type: abi.AddressType(), Value: to},
//	    {Type: abi.UintType(256), Value: abi.NewUint64(1000)},
//	})
//	// 0xa9059cbb000000000000000000000000495d96fa...
//
// # Thread Safety
//
// Codec, Assembler and Type values are immutable after construction and
// safe for concurrent use.
//
// # Errors
//
// Every failure is an *errors.Error carrying the phase, a kind and the path
// of the offending value, such as "arg[1].field[0].elem[3]". Match kinds
// with errors.Is against the sentinels in the errors package.
package ethabi
