package abi

import (
	"github.com/wippyai/ethabi/abi/internal/layout"
	"github.com/wippyai/ethabi/abi/internal/word"
	"github.com/wippyai/ethabi/errors"
)

// encoder serializes values region by region. Each region is returned as
// its own byte slice so offsets are always relative to the region root.
type encoder struct {
	calc *layout.Calculator
}

// encodeRegion lays out members as head words followed by the tail that
// holds dynamic payloads in head order.
func (e *encoder) encodeRegion(members []*Type, values []Value, path []string, label string) ([]byte, error) {
	info, ok := e.calc.Calculate(members)
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseEncode, path, "", "head size overflows")
	}
	return e.encodeMembers(members, values, info, path, label)
}

func (e *encoder) encodeMembers(members []*Type, values []Value, info layout.Info, path []string, label string) ([]byte, error) {
	// Check static composite arity before allocating a head sized by the type.
	for i, m := range members {
		if !m.IsDynamic() && m.Kind().IsComposite() {
			if err := e.checkArity(m, values[i], childPath(path, label, i)); err != nil {
				return nil, err
			}
		}
	}

	head := make([]byte, info.HeadSize)
	var tail []byte

	for i, m := range members {
		p := childPath(path, label, i)
		slot := info.Slots[i]

		if !m.IsDynamic() {
			if err := e.encodeStatic(m, values[i], head[slot:], p); err != nil {
				return nil, err
			}
			continue
		}

		payload, err := e.encodePayload(m, values[i], p)
		if err != nil {
			return nil, err
		}
		off, ok := word.SafeAdd(info.HeadSize, len(tail))
		if !ok {
			return nil, errors.ValueOutOfRange(errors.PhaseEncode, p, off, "offset")
		}
		w := word.FromInt(off)
		copy(head[slot:], w[:])
		tail = append(tail, payload...)
	}

	return append(head, tail...), nil
}

// encodeStatic writes a static type inline into dst.
func (e *encoder) encodeStatic(t *Type, v Value, dst []byte, path []string) error {
	switch t.Kind() {
	case KindArray:
		list, err := e.list(t, v, path)
		if err != nil {
			return err
		}
		elemSize, _ := layout.HeadSize(t.Elem())
		for i, ev := range list {
			if err := e.encodeStatic(t.Elem(), ev, dst[i*elemSize:], childPath(path, "elem", i)); err != nil {
				return err
			}
		}
		return nil

	case KindTuple:
		tup, err := e.tuple(t, v, path)
		if err != nil {
			return err
		}
		info, ok := e.calc.Tuple(t)
		if !ok {
			return errors.UnsupportedType(errors.PhaseEncode, path, t.String(), "head size overflows")
		}
		for i, m := range t.Elems() {
			if err := e.encodeStatic(m, tup[i], dst[info.Slots[i]:], childPath(path, "field", i)); err != nil {
				return err
			}
		}
		return nil
	}

	w, err := e.encodeScalar(t, v, path)
	if err != nil {
		return err
	}
	copy(dst, w[:])
	return nil
}

// encodePayload returns the tail payload of a dynamic type as a fresh region.
func (e *encoder) encodePayload(t *Type, v Value, path []string) ([]byte, error) {
	switch t.Kind() {
	case KindString:
		s, ok := v.(String)
		if !ok {
			return nil, errors.ShapeMismatch(errors.PhaseEncode, path, typeNameOf(v), t.String())
		}
		return byteString([]byte(s)), nil

	case KindBytes:
		b, ok := v.(Bytes)
		if !ok {
			return nil, errors.ShapeMismatch(errors.PhaseEncode, path, typeNameOf(v), t.String())
		}
		return byteString(b), nil

	case KindSlice:
		list, ok := v.(List)
		if !ok {
			return nil, errors.ShapeMismatch(errors.PhaseEncode, path, typeNameOf(v), t.String())
		}
		body, err := e.encodeList(t.Elem(), list, path)
		if err != nil {
			return nil, err
		}
		n := word.FromInt(len(list))
		return append(n[:], body...), nil

	case KindArray:
		list, err := e.list(t, v, path)
		if err != nil {
			return nil, err
		}
		return e.encodeList(t.Elem(), list, path)

	case KindTuple:
		tup, err := e.tuple(t, v, path)
		if err != nil {
			return nil, err
		}
		info, ok := e.calc.Tuple(t)
		if !ok {
			return nil, errors.UnsupportedType(errors.PhaseEncode, path, t.String(), "head size overflows")
		}
		return e.encodeMembers(t.Elems(), tup, info, path, "field")
	}
	return nil, errors.UnsupportedType(errors.PhaseEncode, path, t.String(), "not a dynamic type")
}

func (e *encoder) encodeList(elem *Type, list List, path []string) ([]byte, error) {
	members := make([]*Type, len(list))
	for i := range members {
		members[i] = elem
	}
	return e.encodeRegion(members, list, path, "elem")
}

func (e *encoder) encodeScalar(t *Type, v Value, path []string) (word.Word, error) {
	var w word.Word
	shape := func() (word.Word, error) {
		return w, errors.ShapeMismatch(errors.PhaseEncode, path, typeNameOf(v), t.String())
	}

	switch t.Kind() {
	case KindUint, KindInt:
		i, ok := v.(Integer)
		if !ok {
			return shape()
		}
		signed := t.Kind() == KindInt
		if i.Signed() != signed {
			return w, errors.New(errors.PhaseEncode, errors.KindShapeMismatch).
				Path(path...).
				ValueType(signedName(i.Signed())).
				AbiType(t.String()).
				Detail("integer signedness does not match").
				Build()
		}
		x := i.Big()
		if signed {
			if !word.FitsSigned(x, t.Bits()) {
				return w, errors.ValueOutOfRange(errors.PhaseEncode, path, x, t.String())
			}
			w, _ = word.FromSignedInt(x)
			return w, nil
		}
		if !word.FitsUnsigned(x, t.Bits()) {
			return w, errors.ValueOutOfRange(errors.PhaseEncode, path, x, t.String())
		}
		w, _ = word.FromUnsignedInt(x)
		return w, nil

	case KindBool:
		b, ok := v.(Bool)
		if !ok {
			return shape()
		}
		if b {
			w[word.Size-1] = 1
		}
		return w, nil

	case KindAddress:
		a, ok := v.(Address)
		if !ok {
			return shape()
		}
		copy(w[:], word.PadLeft(a[:]))
		return w, nil

	case KindFixedBytes:
		b, ok := v.(Bytes)
		if !ok {
			return shape()
		}
		if len(b) != t.Size() {
			return w, errors.New(errors.PhaseEncode, errors.KindShapeMismatch).
				Path(path...).
				ValueType(typeNameOf(v)).
				AbiType(t.String()).
				Value(len(b)).
				Detail("expected %d bytes, got %d", t.Size(), len(b)).
				Build()
		}
		copy(w[:], b)
		return w, nil
	}
	return w, errors.UnsupportedType(errors.PhaseEncode, path, t.String(), "not a scalar type")
}

// checkArity walks a static composite and verifies every list and tuple
// has the declared number of members.
func (e *encoder) checkArity(t *Type, v Value, path []string) error {
	switch t.Kind() {
	case KindArray:
		list, err := e.list(t, v, path)
		if err != nil {
			return err
		}
		if !t.Elem().Kind().IsComposite() {
			return nil
		}
		for i, ev := range list {
			if err := e.checkArity(t.Elem(), ev, childPath(path, "elem", i)); err != nil {
				return err
			}
		}
	case KindTuple:
		tup, err := e.tuple(t, v, path)
		if err != nil {
			return err
		}
		for i, m := range t.Elems() {
			if !m.Kind().IsComposite() {
				continue
			}
			if err := e.checkArity(m, tup[i], childPath(path, "field", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// list checks v is a List of the declared length for T[n].
func (e *encoder) list(t *Type, v Value, path []string) (List, error) {
	list, ok := v.(List)
	if !ok {
		return nil, errors.ShapeMismatch(errors.PhaseEncode, path, typeNameOf(v), t.String())
	}
	if len(list) != t.Size() {
		return nil, errors.ArityMismatch(errors.PhaseEncode, path, t.Size(), len(list))
	}
	return list, nil
}

func (e *encoder) tuple(t *Type, v Value, path []string) (Tuple, error) {
	tup, ok := v.(Tuple)
	if !ok {
		return nil, errors.ShapeMismatch(errors.PhaseEncode, path, typeNameOf(v), t.String())
	}
	if len(tup) != len(t.Elems()) {
		return nil, errors.ArityMismatch(errors.PhaseEncode, path, len(t.Elems()), len(tup))
	}
	return tup, nil
}

// byteString encodes a length word followed by b right-padded to a word boundary.
func byteString(b []byte) []byte {
	n := word.FromInt(len(b))
	out := make([]byte, 0, word.Size+word.PaddedLen(len(b)))
	out = append(out, n[:]...)
	return append(out, word.PadRight(b)...)
}

func signedName(signed bool) string {
	if signed {
		return "signed integer"
	}
	return "unsigned integer"
}
