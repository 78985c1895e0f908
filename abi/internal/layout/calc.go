package layout

import (
	"github.com/wippyai/ethabi/abi/internal/types"
	"github.com/wippyai/ethabi/abi/internal/word"
)

// Info is the head layout of one encoding region.
type Info struct {
	// Slots holds the byte offset of each member's first head word,
	// relative to the region root.
	Slots    []int
	HeadSize int
}

// Calculator computes region layouts and caches them per tuple type.
// It is not safe for concurrent use; the codec creates one per call.
type Calculator struct {
	cache map[*types.Type]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*types.Type]Info),
	}
}

// Calculate lays out members as the head of a region. ok is false when
// the head size overflows an int.
func (c *Calculator) Calculate(members []*types.Type) (Info, bool) {
	slots := make([]int, len(members))
	offset := 0
	for i, m := range members {
		slots[i] = offset
		size, ok := HeadSize(m)
		if !ok {
			return Info{}, false
		}
		if offset, ok = word.SafeAdd(offset, size); !ok {
			return Info{}, false
		}
	}
	return Info{Slots: slots, HeadSize: offset}, true
}

// Tuple returns the layout of a tuple's members, cached by type identity.
func (c *Calculator) Tuple(t *types.Type) (Info, bool) {
	if cached, ok := c.cache[t]; ok {
		return cached, true
	}
	info, ok := c.Calculate(t.Elems())
	if !ok {
		return Info{}, false
	}
	c.cache[t] = info
	return info, true
}

// HeadSize is the number of bytes t occupies in its enclosing head.
func HeadSize(t *types.Type) (int, bool) {
	return word.SafeMul(t.HeadWords(), word.Size)
}

// ListHeadSize is the head size of n consecutive elements of elem, as laid
// out inside a T[n] or T[] payload.
func ListHeadSize(elem *types.Type, n int) (int, bool) {
	size, ok := HeadSize(elem)
	if !ok {
		return 0, false
	}
	return word.SafeMul(size, n)
}

// StaticSize is the full encoded size of a static type, or false for
// dynamic types whose size depends on the value.
func StaticSize(t *types.Type) (int, bool) {
	if t.IsDynamic() {
		return 0, false
	}
	return HeadSize(t)
}
