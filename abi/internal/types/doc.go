// Package types defines the immutable ABI type descriptor.
//
// A Type is built once through the New* constructors and never mutated.
// Construction memoizes the values the codec needs on every call:
// whether the type is dynamic, how many head words it occupies and how
// deeply it nests. Descriptors are not validated here; the codec rejects
// invalid widths, sizes and empty tuples before encoding or decoding.
//
// # Key Types
//
//   - Type: ABI type descriptor with memoized layout facts
//   - Kind: Type discriminator (uint, int, bool, address, bytesN, ...)
//
// This package is internal to the abi package.
package types
