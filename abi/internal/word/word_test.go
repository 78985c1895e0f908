package word

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

func mustWord(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != Size {
		t.Fatalf("fixture has %d bytes", len(b))
	}
	return b
}

func TestPadding(t *testing.T) {
	left := PadLeft([]byte{0x7f})
	if len(left) != Size || left[31] != 0x7f || !IsZero(left[:31]) {
		t.Errorf("PadLeft = %x", left)
	}

	right := PadRight([]byte("12345"))
	if len(right) != Size || !bytes.Equal(right[:5], []byte("12345")) || !IsZero(right[5:]) {
		t.Errorf("PadRight = %x", right)
	}

	long := PadRight(bytes.Repeat([]byte{1}, 33))
	if len(long) != 64 {
		t.Errorf("PadRight(33 bytes) length = %d, want 64", len(long))
	}

	exact := bytes.Repeat([]byte{1}, 32)
	if got := PadRight(exact); len(got) != 32 {
		t.Errorf("PadRight(32 bytes) length = %d, want 32", len(got))
	}

	if got := PadRight(nil); len(got) != 0 {
		t.Errorf("PadRight(nil) length = %d, want 0", len(got))
	}
}

func TestWordsFor(t *testing.T) {
	tests := []struct{ n, words, padded int }{
		{0, 0, 0},
		{1, 1, 32},
		{11, 1, 32},
		{32, 1, 32},
		{33, 2, 64},
		{64, 2, 64},
		{65, 3, 96},
	}
	for _, tc := range tests {
		if got := WordsFor(tc.n); got != tc.words {
			t.Errorf("WordsFor(%d) = %d, want %d", tc.n, got, tc.words)
		}
		if got := PaddedLen(tc.n); got != tc.padded {
			t.Errorf("PaddedLen(%d) = %d, want %d", tc.n, got, tc.padded)
		}
	}
}

func TestToUnsignedInt(t *testing.T) {
	w := mustWord(t, "000000000000000000000000000000000000000000000000000000000000007f")
	if got := ToUnsignedInt(w); got.Int64() != 127 {
		t.Errorf("ToUnsignedInt = %s, want 127", got)
	}

	all := mustWord(t, strings.Repeat("ff", 32))
	if got := ToUnsignedInt(all); got.Cmp(MaxUnsigned()) != 0 {
		t.Errorf("ToUnsignedInt(all ones) = %s", got)
	}
}

func TestToSignedInt(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"000000000000000000000000000000000000000000000000000000000000007f", "127"},
		{"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff81", "-127"},
		{"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffd44", "-700"},
		{strings.Repeat("ff", 32), "-1"},
		{"80" + strings.Repeat("00", 31), "-57896044618658097711785492504343953926634992332820282019728792003956564819968"},
		{"7f" + strings.Repeat("ff", 31), "57896044618658097711785492504343953926634992332820282019728792003956564819967"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := ToSignedInt(mustWord(t, tc.word)); got.String() != tc.want {
				t.Errorf("ToSignedInt = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFromSignedIntRoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "127", "-127", "-700", "123456789012345678901234567890", "-123456789012345678901234567890"}
	for _, s := range values {
		x, _ := new(big.Int).SetString(s, 10)
		w, ok := FromSignedInt(x)
		if !ok {
			t.Fatalf("FromSignedInt(%s) failed", s)
		}
		if got := ToSignedInt(w[:]); got.Cmp(x) != 0 {
			t.Errorf("round trip %s = %s", s, got)
		}
	}

	w, _ := FromSignedInt(big.NewInt(-127))
	if hex.EncodeToString(w[:]) != "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff81" {
		t.Errorf("FromSignedInt(-127) = %x", w)
	}
}

func TestFromIntegerOverflow(t *testing.T) {
	two256 := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, ok := FromUnsignedInt(two256); ok {
		t.Error("2^256 must not pack as unsigned")
	}
	if _, ok := FromUnsignedInt(big.NewInt(-1)); ok {
		t.Error("-1 must not pack as unsigned")
	}
	if _, ok := FromUnsignedInt(MaxUnsigned()); !ok {
		t.Error("2^256-1 must pack as unsigned")
	}
	two255 := new(big.Int).Lsh(big.NewInt(1), 255)
	if _, ok := FromSignedInt(two255); ok {
		t.Error("2^255 must not pack as signed")
	}
	if _, ok := FromSignedInt(new(big.Int).Neg(two255)); !ok {
		t.Error("-2^255 must pack as signed")
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		name     string
		x        int64
		bits     int
		unsigned bool
		signed   bool
	}{
		{"zero", 0, 8, true, true},
		{"uint8 max", 255, 8, true, false},
		{"uint8 overflow", 256, 8, false, false},
		{"int8 max", 127, 8, true, true},
		{"int8 min", -128, 8, false, true},
		{"int8 underflow", -129, 8, false, false},
		{"int16 min", -32768, 16, false, true},
		{"negative unsigned", -1, 256, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := big.NewInt(tc.x)
			if got := FitsUnsigned(x, tc.bits); got != tc.unsigned {
				t.Errorf("FitsUnsigned = %v, want %v", got, tc.unsigned)
			}
			if got := FitsSigned(x, tc.bits); got != tc.signed {
				t.Errorf("FitsSigned = %v, want %v", got, tc.signed)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	w := FromInt(0x160)
	if n, ok := ToInt(w[:]); !ok || n != 0x160 {
		t.Errorf("ToInt = %d, %v", n, ok)
	}

	wide := mustWord(t, "0000000000000000000000000000000000000000000000010000000000000000")
	if _, ok := ToInt(wide); ok {
		t.Error("2^64 must not fit an int")
	}

	maxU64 := uint256.NewInt(math.MaxUint64).Bytes32()
	if _, ok := ToInt(maxU64[:]); ok {
		t.Error("MaxUint64 must not fit an int")
	}
}

func TestSafeArithmetic(t *testing.T) {
	if _, ok := SafeAdd(math.MaxInt, 1); ok {
		t.Error("SafeAdd should overflow")
	}
	if v, ok := SafeAdd(30, 12); !ok || v != 42 {
		t.Errorf("SafeAdd = %d, %v", v, ok)
	}
	if _, ok := SafeMul(math.MaxInt/2+1, 2); ok {
		t.Error("SafeMul should overflow")
	}
	if v, ok := SafeMul(6, 7); !ok || v != 42 {
		t.Errorf("SafeMul = %d, %v", v, ok)
	}
	if v, ok := SafeMul(math.MaxInt, 0); !ok || v != 0 {
		t.Errorf("SafeMul by zero = %d, %v", v, ok)
	}
}

func TestCoerceToBig(t *testing.T) {
	tests := []struct {
		in   any
		name string
		want string
		ok   bool
	}{
		{42, "int", "42", true},
		{int8(-5), "int8", "-5", true},
		{uint64(math.MaxUint64), "uint64", "18446744073709551615", true},
		{float64(100), "float64", "100", true},
		{float64(1.5), "fractional float", "", false},
		{math.Inf(1), "inf", "", false},
		{json.Number("123456789012345678901234567890"), "json number", "123456789012345678901234567890", true},
		{"-700", "decimal string", "-700", true},
		{"0xff", "hex string", "255", true},
		{"-0x10", "negative hex", "-16", true},
		{"010", "leading zero stays decimal", "10", true},
		{"1_000", "underscore", "", false},
		{"", "empty", "", false},
		{"abc", "garbage", "", false},
		{big.NewInt(9), "big", "9", true},
		{uint256.NewInt(7), "uint256", "7", true},
		{true, "bool", "", false},
		{nil, "nil", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CoerceToBig(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.String() != tc.want {
				t.Errorf("CoerceToBig = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCoerceCopiesBigInt(t *testing.T) {
	src := big.NewInt(5)
	got, _ := CoerceToBig(src)
	got.SetInt64(6)
	if src.Int64() != 5 {
		t.Error("CoerceToBig must not alias its input")
	}
}
