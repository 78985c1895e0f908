package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wippyai/ethabi/errors"
)

// DecodeHex parses hex input with an optional 0x prefix. Odd length and
// non-hex digits are malformed input.
func DecodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindMalformedInput).
			Detail("invalid hex input").
			Cause(err).
			Build()
	}
	return b, nil
}

// EncodeHex renders b as 0x-prefixed lowercase hex.
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}
