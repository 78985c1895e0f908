package calldata

import (
	"strconv"

	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/errors"
	"go.uber.org/zap"
)

// Assembler builds and takes apart contract call data with one codec.
// It is safe for concurrent use.
type Assembler struct {
	codec     *abi.Codec
	selectors *selectorCache
}

// NewAssembler returns an assembler encoding with codec. A nil codec
// means abi.NewCodecWithDefaults().
func NewAssembler(codec *abi.Codec) *Assembler {
	if codec == nil {
		codec = abi.NewCodecWithDefaults()
	}
	return &Assembler{codec: codec, selectors: newSelectorCache()}
}

// Codec returns the codec the assembler encodes and decodes with.
func (a *Assembler) Codec() *abi.Codec {
	return a.codec
}

// BuildCallData returns selector(signature) followed by the encoded values.
func (a *Assembler) BuildCallData(signature string, types []*abi.Type, values []abi.Value) ([]byte, error) {
	args, err := a.codec.EncodeBytes(types, values)
	if err != nil {
		return nil, err
	}
	sel := a.selectors.get(signature)
	out := make([]byte, 0, SelectorSize+len(args))
	out = append(out, sel[:]...)
	return append(out, args...), nil
}

// EncodeFunctionCall encodes a call to name with args as 0x-prefixed hex.
// The selector is derived from the argument types.
func (a *Assembler) EncodeFunctionCall(name string, args []abi.Argument) (string, error) {
	ts, vs := abi.SplitArguments(args)
	for i, t := range ts {
		if t == nil {
			return "", errors.UnsupportedType(errors.PhaseCallData, []string{argLabel(i)}, "", "nil type")
		}
	}
	b, err := a.BuildCallData(Signature(name, ts), ts, vs)
	if err != nil {
		return "", err
	}
	return abi.EncodeHex(b), nil
}

// EncodeConstructor encodes constructor arguments. Constructors have no
// selector, so this is the plain argument encoding.
func (a *Assembler) EncodeConstructor(args []abi.Argument) (string, error) {
	b, err := a.codec.EncodeArguments(args)
	if err != nil {
		return "", err
	}
	return abi.EncodeHex(b), nil
}

// DeploymentData appends the encoded constructor arguments to contract
// bytecode given as hex.
func (a *Assembler) DeploymentData(bytecode string, args []abi.Argument) (string, error) {
	code, err := abi.DecodeHex(bytecode)
	if err != nil {
		return "", errors.Wrap(errors.PhaseCallData, errors.KindMalformedInput, err, "invalid bytecode")
	}
	if len(code) == 0 {
		return "", errors.InvalidInput(errors.PhaseCallData, "empty bytecode")
	}
	params, err := a.codec.EncodeArguments(args)
	if err != nil {
		return "", err
	}
	return abi.EncodeHex(append(code, params...)), nil
}

// DecodeFunctionCall splits call data into its selector and arguments
// decoded as types.
func (a *Assembler) DecodeFunctionCall(data string, types []*abi.Type) (Selector, []abi.Value, error) {
	b, err := abi.DecodeHex(data)
	if err != nil {
		return Selector{}, nil, err
	}
	sel, rest, err := splitSelector(b)
	if err != nil {
		return Selector{}, nil, err
	}
	values, err := a.codec.DecodeBytes(types, rest)
	if err != nil {
		return sel, nil, err
	}
	return sel, values, nil
}

// DecodeCall decodes call data addressed to signature, such as
// "transfer(address,uint256)". Data for any other function fails with a
// selector mismatch.
func (a *Assembler) DecodeCall(data, signature string) ([]abi.Value, error) {
	name, types, err := abi.ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	b, err := abi.DecodeHex(data)
	if err != nil {
		return nil, err
	}
	sel, rest, err := splitSelector(b)
	if err != nil {
		return nil, err
	}
	if want := a.selectors.get(Signature(name, types)); sel != want {
		return nil, errors.SelectorMismatch(want.Hex(), sel.Hex())
	}
	return a.codec.DecodeBytes(types, rest)
}

// MatchFunctionCall reports whether data is a call to name with exactly
// args. A different selector or different values give false; an error is
// returned only when data cannot be decoded as the argument types.
func (a *Assembler) MatchFunctionCall(data, name string, args []abi.Argument) (bool, error) {
	ts, want := abi.SplitArguments(args)
	for i, t := range ts {
		if t == nil {
			return false, errors.UnsupportedType(errors.PhaseCallData, []string{argLabel(i)}, "", "nil type")
		}
	}
	signature := Signature(name, ts)

	b, err := abi.DecodeHex(data)
	if err != nil {
		return false, err
	}
	sel, rest, err := splitSelector(b)
	if err != nil {
		return false, err
	}
	if expected := a.selectors.get(signature); sel != expected {
		Logger().Debug("call data selector mismatch",
			zap.String("signature", signature),
			zap.Stringer("want", expected),
			zap.Stringer("got", sel))
		return false, nil
	}

	got, err := a.codec.DecodeBytes(ts, rest)
	if err != nil {
		return false, err
	}
	if !abi.EqualValues(want, got) {
		Logger().Debug("call data arguments differ", zap.String("signature", signature))
		return false, nil
	}
	return true, nil
}

func splitSelector(b []byte) (Selector, []byte, error) {
	var sel Selector
	if len(b) < SelectorSize {
		return sel, nil, errors.New(errors.PhaseCallData, errors.KindTruncatedData).
			Value(len(b)).
			Detail("call data of %d bytes has no selector", len(b)).
			Build()
	}
	copy(sel[:], b)
	return sel, b[SelectorSize:], nil
}

func argLabel(i int) string {
	return "arg[" + strconv.Itoa(i) + "]"
}

var defaultAssembler = NewAssembler(nil)

// EncodeFunctionCall encodes a call with the default codec.
func EncodeFunctionCall(name string, args []abi.Argument) (string, error) {
	return defaultAssembler.EncodeFunctionCall(name, args)
}

// EncodeConstructor encodes constructor arguments with the default codec.
func EncodeConstructor(args []abi.Argument) (string, error) {
	return defaultAssembler.EncodeConstructor(args)
}

// DecodeFunctionCall decodes call data with the default codec.
func DecodeFunctionCall(data string, types []*abi.Type) (Selector, []abi.Value, error) {
	return defaultAssembler.DecodeFunctionCall(data, types)
}

// MatchFunctionCall reconciles call data with the default codec.
func MatchFunctionCall(data, name string, args []abi.Argument) (bool, error) {
	return defaultAssembler.MatchFunctionCall(data, name, args)
}
