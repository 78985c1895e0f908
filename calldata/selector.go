package calldata

import (
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/wippyai/ethabi/abi"
	"golang.org/x/crypto/sha3"
)

// SelectorSize is the length of a function selector in bytes.
const SelectorSize = 4

// Selector is the first four bytes of the keccak-256 hash of a canonical
// function signature.
type Selector [SelectorSize]byte

// SelectorOf hashes a canonical signature such as "transfer(address,uint256)".
// The signature is used as given; see Signature for the canonical form.
func SelectorOf(signature string) Selector {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	var s Selector
	copy(s[:], h.Sum(nil))
	return s
}

// Signature renders the canonical "name(T1,T2)" form hashed into a selector.
func Signature(name string, types []*abi.Type) string {
	return abi.Signature(name, types)
}

// Hex returns the 0x-prefixed selector.
func (s Selector) Hex() string { return hexutil.Encode(s[:]) }

func (s Selector) String() string { return s.Hex() }

// maxCachedSelectors bounds the cache; it is cleared when full.
const maxCachedSelectors = 1024

// selectorCache memoizes selectors by signature.
type selectorCache struct {
	entries map[string]Selector
	mu      sync.RWMutex
}

func newSelectorCache() *selectorCache {
	return &selectorCache{entries: make(map[string]Selector)}
}

func (c *selectorCache) get(signature string) Selector {
	c.mu.RLock()
	s, ok := c.entries[signature]
	c.mu.RUnlock()
	if ok {
		return s
	}

	s = SelectorOf(signature)
	c.mu.Lock()
	if len(c.entries) >= maxCachedSelectors {
		clear(c.entries)
	}
	c.entries[signature] = s
	c.mu.Unlock()
	return s
}
