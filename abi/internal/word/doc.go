// Package word provides the 32-byte word utilities shared by the encoder
// and decoder.
//
// # Contents
//
//   - word.go: padding, 256-bit packing, two's complement, word counts
//   - coerce.go: numeric coercion from loosely typed input to *big.Int
//
// Numbers are packed through holiman/uint256 and padded with the
// go-ethereum common helpers. All functions are pure.
//
// This package is internal to the abi package.
package word
