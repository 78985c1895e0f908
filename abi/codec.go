package abi

import (
	"github.com/wippyai/ethabi/abi/internal/layout"
	"github.com/wippyai/ethabi/errors"
	"go.uber.org/zap"
)

// DefaultMaxDepth bounds type nesting accepted by the codec.
const DefaultMaxDepth = 32

// Options configures a Codec.
type Options struct {
	// Strict makes the decoder reject non-zero padding, bool words other
	// than 0 and 1, invalid UTF-8 strings and integers wider than their
	// declared uintN/intN.
	Strict bool

	// MaxDepth limits how deeply types may nest. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Strict:   false,
		MaxDepth: DefaultMaxDepth,
	}
}

// Codec encodes and decodes ABI data. It holds only immutable options and
// is safe for concurrent use.
type Codec struct {
	opts Options
}

func NewCodec(opts Options) *Codec {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Codec{opts: opts}
}

func NewCodecWithDefaults() *Codec {
	return NewCodec(DefaultOptions())
}

// Options returns the codec's configuration.
func (c *Codec) Options() Options {
	return c.opts
}

// Encode encodes values as the top-level tuple types and returns
// 0x-prefixed hex.
func (c *Codec) Encode(types []*Type, values []Value) (string, error) {
	b, err := c.EncodeBytes(types, values)
	if err != nil {
		return "", err
	}
	return EncodeHex(b), nil
}

// EncodeBytes is Encode without the hex rendering.
func (c *Codec) EncodeBytes(types []*Type, values []Value) ([]byte, error) {
	out, err := c.encode(types, values)
	if err != nil {
		Logger().Debug("abi encode failed",
			zap.Int("types", len(types)),
			zap.Int("values", len(values)),
			zap.Error(err))
		return nil, err
	}
	return out, nil
}

// EncodeArguments encodes type/value pairs.
func (c *Codec) EncodeArguments(args []Argument) ([]byte, error) {
	ts, vs := SplitArguments(args)
	return c.EncodeBytes(ts, vs)
}

func (c *Codec) encode(types []*Type, values []Value) ([]byte, error) {
	if err := validateTypes(errors.PhaseEncode, types, c.opts.MaxDepth); err != nil {
		return nil, err
	}
	if len(types) != len(values) {
		return nil, errors.ArityMismatch(errors.PhaseEncode, nil, len(types), len(values))
	}
	e := &encoder{calc: layout.NewCalculator()}
	return e.encodeRegion(types, values, nil, "arg")
}

// Decode decodes hex data (optional 0x prefix) as the top-level tuple types.
func (c *Codec) Decode(types []*Type, data string) ([]Value, error) {
	b, err := DecodeHex(data)
	if err != nil {
		Logger().Debug("abi decode rejected hex input", zap.Int("length", len(data)), zap.Error(err))
		return nil, err
	}
	return c.DecodeBytes(types, b)
}

// DecodeBytes decodes raw ABI data. Trailing bytes past the last
// referenced word are ignored.
func (c *Codec) DecodeBytes(types []*Type, data []byte) ([]Value, error) {
	out, err := c.decode(types, data)
	if err != nil {
		Logger().Debug("abi decode failed",
			zap.Int("types", len(types)),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (c *Codec) decode(types []*Type, data []byte) ([]Value, error) {
	if err := validateTypes(errors.PhaseDecode, types, c.opts.MaxDepth); err != nil {
		return nil, err
	}
	return newDecoder(data, c.opts.Strict).decodeRegion(types, 0, nil, "arg")
}

var defaultCodec = NewCodecWithDefaults()

// Encode encodes with a codec using DefaultOptions.
func Encode(types []*Type, values []Value) (string, error) {
	return defaultCodec.Encode(types, values)
}

// EncodeBytes encodes with a codec using DefaultOptions.
func EncodeBytes(types []*Type, values []Value) ([]byte, error) {
	return defaultCodec.EncodeBytes(types, values)
}

// Decode decodes with a codec using DefaultOptions.
func Decode(types []*Type, data string) ([]Value, error) {
	return defaultCodec.Decode(types, data)
}

// DecodeBytes decodes with a codec using DefaultOptions.
func DecodeBytes(types []*Type, data []byte) ([]Value, error) {
	return defaultCodec.DecodeBytes(types, data)
}
