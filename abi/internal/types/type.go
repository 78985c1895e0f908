package types

import (
	"math"
	"strconv"
	"strings"
)

// Type describes one ABI type. Fields are fixed at construction.
type Type struct {
	elem      *Type
	elems     []*Type
	headWords int
	depth     int
	size      int
	kind      Kind
	dynamic   bool
}

// NewUint returns uintN. Bits is not checked here.
func NewUint(bits int) *Type {
	return scalar(KindUint, bits)
}

// NewInt returns intN.
func NewInt(bits int) *Type {
	return scalar(KindInt, bits)
}

func NewBool() *Type {
	return scalar(KindBool, 0)
}

func NewAddress() *Type {
	return scalar(KindAddress, 0)
}

// NewFixedBytes returns bytesN with n payload bytes.
func NewFixedBytes(n int) *Type {
	return scalar(KindFixedBytes, n)
}

func NewBytes() *Type {
	return &Type{kind: KindBytes, dynamic: true, headWords: 1, depth: 1}
}

func NewString() *Type {
	return &Type{kind: KindString, dynamic: true, headWords: 1, depth: 1}
}

// NewArray returns the fixed-length array elem[n].
func NewArray(elem *Type, n int) *Type {
	t := &Type{kind: KindArray, elem: elem, size: n, depth: 1}
	if elem == nil {
		t.headWords = 1
		return t
	}
	t.depth = elem.depth + 1
	t.dynamic = elem.dynamic
	if t.dynamic {
		t.headWords = 1
	} else {
		t.headWords = satMul(elem.headWords, max(n, 0))
	}
	return t
}

// NewSlice returns the dynamic array elem[].
func NewSlice(elem *Type) *Type {
	t := &Type{kind: KindSlice, elem: elem, dynamic: true, headWords: 1, depth: 1}
	if elem != nil {
		t.depth = elem.depth + 1
	}
	return t
}

// NewTuple returns a tuple of the given members in order.
func NewTuple(elems ...*Type) *Type {
	t := &Type{kind: KindTuple, elems: append([]*Type(nil), elems...), depth: 1}
	words := 0
	for _, e := range elems {
		if e == nil {
			continue
		}
		t.depth = max(t.depth, e.depth+1)
		if e.dynamic {
			t.dynamic = true
		}
		words = satAdd(words, e.headWords)
	}
	if t.dynamic {
		t.headWords = 1
	} else {
		t.headWords = words
	}
	return t
}

func scalar(k Kind, size int) *Type {
	return &Type{kind: k, size: size, headWords: 1, depth: 1}
}

func (t *Type) Kind() Kind { return t.kind }

// Elem returns the element type of an array or slice.
func (t *Type) Elem() *Type { return t.elem }

// Elems returns the tuple members. The slice must not be modified.
func (t *Type) Elems() []*Type { return t.elems }

// Bits returns the declared width of uintN and intN.
func (t *Type) Bits() int {
	if t.kind == KindUint || t.kind == KindInt {
		return t.size
	}
	return 0
}

// Size returns the payload length of bytesN or the length of T[n].
func (t *Type) Size() int {
	if t.kind == KindFixedBytes || t.kind == KindArray {
		return t.size
	}
	return 0
}

// IsDynamic reports whether the type is encoded behind an offset.
func (t *Type) IsDynamic() bool { return t.dynamic }

// HeadWords is the number of words the type occupies in the head of its
// enclosing region: 1 for dynamic types, the fully expanded count otherwise.
func (t *Type) HeadWords() int { return t.headWords }

// Depth is the nesting depth, 1 for scalars.
func (t *Type) Depth() int { return t.depth }

// IsSigned reports whether the type is intN.
func (t *Type) IsSigned() bool { return t.kind == KindInt }

// String renders the canonical type name used in signatures.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	switch t.kind {
	case KindUint, KindInt:
		b.WriteString(t.kind.String())
		b.WriteString(strconv.Itoa(t.size))
	case KindFixedBytes:
		b.WriteString("bytes")
		b.WriteString(strconv.Itoa(t.size))
	case KindBool, KindAddress, KindBytes, KindString:
		b.WriteString(t.kind.String())
	case KindArray:
		t.elem.write(b)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.size))
		b.WriteByte(']')
	case KindSlice:
		t.elem.write(b)
		b.WriteString("[]")
	case KindTuple:
		b.WriteByte('(')
		for i, e := range t.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			e.write(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString("unknown")
	}
}

func satMul(a, b int) int {
	if b != 0 && a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
