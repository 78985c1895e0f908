package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // values to ABI words
	PhaseDecode   Phase = "decode"   // ABI words to values
	PhaseParse    Phase = "parse"    // type strings and argument documents
	PhaseValidate Phase = "validate" // type descriptor checks
	PhaseCallData Phase = "calldata" // selector and call data assembly
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedInput   Kind = "malformed_input"
	KindTruncatedData    Kind = "truncated_data"
	KindInvalidOffset    Kind = "invalid_offset"
	KindUnsupportedType  Kind = "unsupported_type"
	KindArityMismatch    Kind = "arity_mismatch"
	KindShapeMismatch    Kind = "shape_mismatch"
	KindValueOutOfRange  Kind = "value_out_of_range"
	KindSelectorMismatch Kind = "selector_mismatch"
	KindInvalidInput     Kind = "invalid_input"
)

// Sentinels for errors.Is checks. They carry no phase, so they match
// an error of the same kind raised anywhere.
var (
	ErrMalformedInput   = &Error{Kind: KindMalformedInput}
	ErrTruncatedData    = &Error{Kind: KindTruncatedData}
	ErrInvalidOffset    = &Error{Kind: KindInvalidOffset}
	ErrUnsupportedType  = &Error{Kind: KindUnsupportedType}
	ErrArityMismatch    = &Error{Kind: KindArityMismatch}
	ErrShapeMismatch    = &Error{Kind: KindShapeMismatch}
	ErrValueOutOfRange  = &Error{Kind: KindValueOutOfRange}
	ErrSelectorMismatch = &Error{Kind: KindSelectorMismatch}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	ValueType string
	AbiType   string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	hasTypes := e.ValueType != "" || e.AbiType != ""
	if hasTypes {
		b.WriteString(": ")
		switch {
		case e.ValueType != "" && e.AbiType != "":
			b.WriteString("value ")
			b.WriteString(e.ValueType)
			b.WriteString(", ABI type ")
			b.WriteString(e.AbiType)
		case e.ValueType != "":
			b.WriteString("value ")
			b.WriteString(e.ValueType)
		default:
			b.WriteString("ABI type ")
			b.WriteString(e.AbiType)
		}
	}

	if e.Detail != "" {
		if hasTypes {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a phase matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// PathString returns the dotted field path
func (e *Error) PathString() string {
	return strings.Join(e.Path, ".")
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// ValueType sets the name of the offending value's variant
func (b *Builder) ValueType(t string) *Builder {
	b.err.ValueType = t
	return b
}

// AbiType sets the canonical ABI type name
func (b *Builder) AbiType(t string) *Builder {
	b.err.AbiType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedInput creates an error for input that is not well-formed hex or ABI data
func MalformedInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedInput,
		Path:   path,
		Detail: detail,
	}
}

// TruncatedData creates an error for a read past the end of the buffer
func TruncatedData(path []string, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedData,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
		Value:  need,
	}
}

// InvalidOffset creates an error for an offset that resolves outside the buffer
func InvalidOffset(path []string, offset any, length int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidOffset,
		Path:   path,
		Detail: fmt.Sprintf("offset %v outside data of length %d", offset, length),
		Value:  offset,
	}
}

// UnsupportedType creates an error for an invalid or unknown type descriptor
func UnsupportedType(phase Phase, path []string, abiType, detail string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupportedType,
		Path:    path,
		AbiType: abiType,
		Detail:  detail,
	}
}

// ArityMismatch creates an error for a value count that differs from the type count
func ArityMismatch(phase Phase, path []string, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityMismatch,
		Path:   path,
		Detail: fmt.Sprintf("expected %d values, got %d", want, got),
		Value:  got,
	}
}

// ShapeMismatch creates an error for a value whose variant does not fit its type
func ShapeMismatch(phase Phase, path []string, valueType, abiType string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindShapeMismatch,
		Path:      path,
		ValueType: valueType,
		AbiType:   abiType,
	}
}

// ValueOutOfRange creates an error for a number that does not fit its declared width
func ValueOutOfRange(phase Phase, path []string, value any, abiType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindValueOutOfRange,
		Path:    path,
		AbiType: abiType,
		Detail:  fmt.Sprintf("value %v does not fit %s", value, abiType),
		Value:   value,
	}
}

// SelectorMismatch creates an error for call data addressed to another function
func SelectorMismatch(want, got string) *Error {
	return &Error{
		Phase:  PhaseCallData,
		Kind:   KindSelectorMismatch,
		Detail: fmt.Sprintf("expected selector %s, got %s", want, got),
		Value:  got,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedInput,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
