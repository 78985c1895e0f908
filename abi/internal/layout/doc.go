// Package layout computes head layouts for ABI encoding regions.
//
// # Layout Rules
//
//   - Scalars: one 32-byte word
//   - Static arrays and tuples: their members inline, fully expanded
//   - Dynamic types: one word holding an offset into the region's tail
//
// # Usage
//
//	c := layout.NewCalculator()
//	info, ok := c.Calculate(members)
//	// info.HeadSize, info.Slots available
//
// This package is internal to the abi package.
package layout
