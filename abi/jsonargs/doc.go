// Package jsonargs reads the JSON documents that describe contract call
// arguments and return types.
//
// An argument pairs a Solidity type string with a value:
//
//	{"type": "uint256", "value": 1}
//	{"type": "address[]", "value": ["0x...", "0x..."]}
//	{"type": "tuple", "value": [{"type": "string", "value": "a"}, {"type": "bool", "value": true}]}
//	{"type": "tuple[]", "value": [[{"type": "uint8", "value": 1}], [{"type": "uint8", "value": 2}]]}
//
// Tuple member types come from the nested argument documents. Every element
// of a tuple array must resolve to the same tuple type, and an empty tuple
// array is rejected since nothing determines its member types.
//
// An output parameter is either a type string or a tuple description:
//
//	"uint256"
//	{"type": "tuple[2]", "elems": ["address", {"type": "tuple", "elems": ["bool"]}]}
//
// A call document combines both:
//
//	{"function": "transfer", "arguments": [...], "outputs": ["bool"]}
//
// The Parse* functions read JSON text. Argument, Arguments, Output, Outputs
// and CallFrom accept documents already decoded by encoding/json or a YAML
// decoder.
package jsonargs
