package word

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Size is the ABI encoding granularity in bytes.
const Size = 32

// Word is one 32-byte big-endian ABI slot.
type Word = [Size]byte

var (
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	minInt256  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	maxInt256  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
)

// PadLeft left-pads b to one word. Longer input is returned unchanged.
func PadLeft(b []byte) []byte {
	return common.LeftPadBytes(b, Size)
}

// PadRight right-pads b with zeros up to the next word boundary.
func PadRight(b []byte) []byte {
	return common.RightPadBytes(b, PaddedLen(len(b)))
}

// WordsFor returns the number of words needed to hold n bytes.
func WordsFor(n int) int {
	return n/Size + btoi(n%Size != 0)
}

// PaddedLen returns n rounded up to a multiple of Size.
func PaddedLen(n int) int {
	return WordsFor(n) * Size
}

// ToUnsignedInt reads w as a 256-bit unsigned magnitude.
func ToUnsignedInt(w []byte) *big.Int {
	return new(uint256.Int).SetBytes32(w).ToBig()
}

// ToSignedInt reads w as a 256-bit two's complement integer.
func ToSignedInt(w []byte) *big.Int {
	u := new(uint256.Int).SetBytes32(w)
	if u.Sign() >= 0 {
		return u.ToBig()
	}
	mag := new(uint256.Int).Neg(u).ToBig()
	return mag.Neg(mag)
}

// FromUnsignedInt packs a non-negative x into a word.
func FromUnsignedInt(x *big.Int) (Word, bool) {
	if x.Sign() < 0 {
		return Word{}, false
	}
	u, overflow := uint256.FromBig(x)
	if overflow {
		return Word{}, false
	}
	return u.Bytes32(), true
}

// FromSignedInt packs x as a 256-bit two's complement word.
func FromSignedInt(x *big.Int) (Word, bool) {
	if x.Cmp(minInt256) < 0 || x.Cmp(maxInt256) > 0 {
		return Word{}, false
	}
	if x.Sign() >= 0 {
		return FromUnsignedInt(x)
	}
	u, _ := uint256.FromBig(new(big.Int).Neg(x))
	return u.Neg(u).Bytes32(), true
}

// FitsUnsigned reports whether x is representable as uintN.
func FitsUnsigned(x *big.Int, bits int) bool {
	return x.Sign() >= 0 && x.BitLen() <= bits
}

// FitsSigned reports whether x is representable as intN.
func FitsSigned(x *big.Int, bits int) bool {
	if bits < 1 {
		return false
	}
	if x.Sign() >= 0 {
		return x.BitLen() <= bits-1
	}
	// -2^(n-1) <= x  <=>  |x|-1 < 2^(n-1)
	m := new(big.Int).Neg(x)
	m.Sub(m, big.NewInt(1))
	return m.BitLen() <= bits-1
}

// MaxUnsigned returns 2^256-1.
func MaxUnsigned() *big.Int {
	return new(big.Int).Set(maxUint256)
}

// ToInt reads an offset or length word. It fails when the value does not
// fit a non-negative int.
func ToInt(w []byte) (int, bool) {
	u := new(uint256.Int).SetBytes32(w)
	if !u.IsUint64() || u.Uint64() > math.MaxInt {
		return 0, false
	}
	return int(u.Uint64()), true
}

// FromInt writes a non-negative offset or length as a word.
func FromInt(n int) Word {
	return uint256.NewInt(uint64(n)).Bytes32()
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// SafeAdd adds non-negative ints, reporting overflow.
func SafeAdd(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// SafeMul multiplies non-negative ints, reporting overflow.
func SafeMul(a, b int) (int, bool) {
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
