package ethabi

import (
	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/calldata"
)

// Encoder encodes values as a top-level parameter list.
type Encoder interface {
	Encode(types []*abi.Type, values []abi.Value) (string, error)
	EncodeBytes(types []*abi.Type, values []abi.Value) ([]byte, error)
}

// Decoder decodes ABI data into values shaped by a parameter list.
type Decoder interface {
	Decode(types []*abi.Type, data string) ([]abi.Value, error)
	DecodeBytes(types []*abi.Type, data []byte) ([]abi.Value, error)
}

// FunctionEncoder produces contract call and constructor data.
type FunctionEncoder interface {
	EncodeFunctionCall(name string, args []abi.Argument) (string, error)
	EncodeConstructor(args []abi.Argument) (string, error)
}

// FunctionDecoder takes contract call data apart.
type FunctionDecoder interface {
	DecodeFunctionCall(data string, types []*abi.Type) (calldata.Selector, []abi.Value, error)
	MatchFunctionCall(data, name string, args []abi.Argument) (bool, error)
}

var (
	_ Encoder         = (*abi.Codec)(nil)
	_ Decoder         = (*abi.Codec)(nil)
	_ FunctionEncoder = (*calldata.Assembler)(nil)
	_ FunctionDecoder = (*calldata.Assembler)(nil)
)
