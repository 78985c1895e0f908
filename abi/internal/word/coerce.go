package word

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// CoerceToBig handles JSON decoded numbers (float64, json.Number), decimal
// or 0x-prefixed strings and the Go integer types.
func CoerceToBig(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return new(big.Int).Set(v), true
	case *uint256.Int:
		if v == nil {
			return nil, false
		}
		return v.ToBig(), true
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case float64:
		return floatToBig(v)
	case float32:
		return floatToBig(float64(v))
	case json.Number:
		return ParseBig(string(v))
	case string:
		return ParseBig(v)
	}
	return nil, false
}

// ParseBig parses a decimal or 0x-prefixed hex integer with an optional sign.
func ParseBig(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" || strings.ContainsAny(s, "+-_ ") {
		return nil, false
	}
	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	if neg {
		x.Neg(x)
	}
	return x, true
}

func floatToBig(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	x, _ := big.NewFloat(f).Int(nil)
	return x, true
}
