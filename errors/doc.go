// Package errors provides structured error types for the ABI codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, value and ABI type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindShapeMismatch).
//		Path("arg[1]", "field[0]").
//		ValueType("string").
//		AbiType("uint256").
//		Detail("cannot encode string as integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TruncatedData(path, 64, 32)
//	err := errors.InvalidOffset(path, off, len(data))
//
// Sentinels such as ErrTruncatedData match errors of the same kind in any
// phase, so callers can write errors.Is(err, errors.ErrTruncatedData).
package errors
