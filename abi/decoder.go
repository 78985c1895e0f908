package abi

import (
	"unicode/utf8"

	"github.com/wippyai/ethabi/abi/internal/layout"
	"github.com/wippyai/ethabi/abi/internal/word"
	"github.com/wippyai/ethabi/errors"
)

// decoder walks one input buffer. Every offset is resolved against the
// region root passed down explicitly; there is no shared cursor.
type decoder struct {
	calc   *layout.Calculator
	data   []byte
	strict bool

	// budget is what payload decoding may still produce, starting at
	// len(data). A payload reached through several offsets is charged
	// every time.
	budget int
}

func newDecoder(data []byte, strict bool) *decoder {
	return &decoder{
		calc:   layout.NewCalculator(),
		data:   data,
		strict: strict,
		budget: len(data),
	}
}

// decodeRegion decodes members whose head starts at base. base is also the
// root that dynamic members' offsets are measured from.
func (d *decoder) decodeRegion(members []*Type, base int, path []string, label string) ([]Value, error) {
	info, ok := d.calc.Calculate(members)
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseDecode, path, "", "head size overflows")
	}
	return d.decodeMembers(members, info, base, path, label)
}

func (d *decoder) decodeMembers(members []*Type, info layout.Info, base int, path []string, label string) ([]Value, error) {
	if err := d.need(base, info.HeadSize, path); err != nil {
		return nil, err
	}
	out := make([]Value, len(members))
	for i, m := range members {
		v, err := d.decodeAt(m, base, base+info.Slots[i], childPath(path, label, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// decodeAt decodes t from the head slot at pos inside the region rooted at base.
func (d *decoder) decodeAt(t *Type, base, pos int, path []string) (Value, error) {
	if !t.IsDynamic() {
		return d.decodeStatic(t, pos, path)
	}

	w, err := d.readWord(pos, path)
	if err != nil {
		return nil, err
	}
	off, ok := word.ToInt(w)
	if !ok {
		return nil, errors.InvalidOffset(path, word.ToUnsignedInt(w), len(d.data))
	}
	start, ok := word.SafeAdd(base, off)
	if !ok || start >= len(d.data) {
		return nil, errors.InvalidOffset(path, off, len(d.data))
	}
	return d.decodePayload(t, start, path)
}

// decodeStatic reads a static type laid out inline at pos.
func (d *decoder) decodeStatic(t *Type, pos int, path []string) (Value, error) {
	switch t.Kind() {
	case KindArray:
		vs, err := d.decodeList(t.Elem(), t.Size(), pos, path)
		if err != nil {
			return nil, err
		}
		return List(vs), nil
	case KindTuple:
		info, ok := d.calc.Tuple(t)
		if !ok {
			return nil, errors.UnsupportedType(errors.PhaseDecode, path, t.String(), "head size overflows")
		}
		vs, err := d.decodeMembers(t.Elems(), info, pos, path, "field")
		if err != nil {
			return nil, err
		}
		return Tuple(vs), nil
	}

	w, err := d.readWord(pos, path)
	if err != nil {
		return nil, err
	}
	return d.decodeScalar(t, w, path)
}

// decodePayload decodes the tail payload of a dynamic type starting at start.
func (d *decoder) decodePayload(t *Type, start int, path []string) (Value, error) {
	switch t.Kind() {
	case KindString:
		b, err := d.decodeByteString(start, path)
		if err != nil {
			return nil, err
		}
		if d.strict && !utf8.Valid(b) {
			return nil, errors.MalformedInput(errors.PhaseDecode, path, "string is not valid UTF-8")
		}
		return String(b), nil

	case KindBytes:
		b, err := d.decodeByteString(start, path)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil

	case KindSlice:
		n, err := d.length(start, path)
		if err != nil {
			return nil, err
		}
		if size, ok := layout.ListHeadSize(t.Elem(), n); ok {
			if err := d.charge(size, path); err != nil {
				return nil, err
			}
		}
		vs, err := d.decodeList(t.Elem(), n, start+word.Size, path)
		if err != nil {
			return nil, err
		}
		return List(vs), nil

	case KindArray:
		if size, ok := layout.ListHeadSize(t.Elem(), t.Size()); ok {
			if err := d.charge(size, path); err != nil {
				return nil, err
			}
		}
		vs, err := d.decodeList(t.Elem(), t.Size(), start, path)
		if err != nil {
			return nil, err
		}
		return List(vs), nil

	case KindTuple:
		info, ok := d.calc.Tuple(t)
		if !ok {
			return nil, errors.UnsupportedType(errors.PhaseDecode, path, t.String(), "head size overflows")
		}
		if err := d.charge(info.HeadSize, path); err != nil {
			return nil, err
		}
		vs, err := d.decodeMembers(t.Elems(), info, start, path, "field")
		if err != nil {
			return nil, err
		}
		return Tuple(vs), nil
	}
	return nil, errors.UnsupportedType(errors.PhaseDecode, path, t.String(), "not a dynamic type")
}

// decodeList decodes n elements laid out as a region rooted at base.
// The head size is checked against the buffer before anything is allocated.
func (d *decoder) decodeList(elem *Type, n, base int, path []string) ([]Value, error) {
	size, ok := layout.ListHeadSize(elem, n)
	if !ok {
		return nil, errors.New(errors.PhaseDecode, errors.KindTruncatedData).
			Path(path...).
			Value(n).
			Detail("%d elements of %s exceed any buffer", n, elem).
			Build()
	}
	if err := d.need(base, size, path); err != nil {
		return nil, err
	}
	members := make([]*Type, n)
	for i := range members {
		members[i] = elem
	}
	return d.decodeRegion(members, base, path, "elem")
}

func (d *decoder) decodeByteString(start int, path []string) ([]byte, error) {
	n, err := d.length(start, path)
	if err != nil {
		return nil, err
	}
	from := start + word.Size
	if err := d.need(from, n, path); err != nil {
		return nil, err
	}
	if d.strict {
		padded := word.PaddedLen(n)
		if err := d.need(from, padded, path); err != nil {
			return nil, err
		}
		if !word.IsZero(d.data[from+n : from+padded]) {
			return nil, errors.MalformedInput(errors.PhaseDecode, path, "non-zero padding after payload")
		}
	}
	if err := d.charge(n, path); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, d.data[from:from+n])
	return out, nil
}

func (d *decoder) decodeScalar(t *Type, w []byte, path []string) (Value, error) {
	switch t.Kind() {
	case KindUint:
		x := word.ToUnsignedInt(w)
		if d.strict && !word.FitsUnsigned(x, t.Bits()) {
			return nil, errors.ValueOutOfRange(errors.PhaseDecode, path, x, t.String())
		}
		return Integer{n: x}, nil

	case KindInt:
		x := word.ToSignedInt(w)
		if d.strict && !word.FitsSigned(x, t.Bits()) {
			return nil, errors.ValueOutOfRange(errors.PhaseDecode, path, x, t.String())
		}
		return Integer{n: x, signed: true}, nil

	case KindBool:
		if d.strict && (!word.IsZero(w[:word.Size-1]) || w[word.Size-1] > 1) {
			return nil, errors.MalformedInput(errors.PhaseDecode, path, "bool word must be 0 or 1")
		}
		return Bool(word.IsZero(w[:word.Size-1]) && w[word.Size-1] == 1), nil

	case KindAddress:
		if d.strict && !word.IsZero(w[:word.Size-20]) {
			return nil, errors.MalformedInput(errors.PhaseDecode, path, "non-zero address padding")
		}
		var a Address
		copy(a[:], w[word.Size-20:])
		return a, nil

	case KindFixedBytes:
		n := t.Size()
		if d.strict && !word.IsZero(w[n:]) {
			return nil, errors.MalformedInput(errors.PhaseDecode, path, "non-zero padding after "+t.String())
		}
		out := make([]byte, n)
		copy(out, w[:n])
		return Bytes(out), nil
	}
	return nil, errors.UnsupportedType(errors.PhaseDecode, path, t.String(), "not a scalar type")
}

// length reads a length word at pos and checks it can address the buffer.
func (d *decoder) length(pos int, path []string) (int, error) {
	w, err := d.readWord(pos, path)
	if err != nil {
		return 0, err
	}
	n, ok := word.ToInt(w)
	if !ok {
		return 0, errors.New(errors.PhaseDecode, errors.KindTruncatedData).
			Path(path...).
			Value(word.ToUnsignedInt(w)).
			Detail("declared length %s exceeds data of %d bytes", word.ToUnsignedInt(w), len(d.data)).
			Build()
	}
	return n, nil
}

// charge takes n bytes from the decode budget.
func (d *decoder) charge(n int, path []string) error {
	if n > d.budget {
		return errors.New(errors.PhaseDecode, errors.KindTruncatedData).
			Path(path...).
			Value(n).
			Detail("decoded payloads exceed input of %d bytes", len(d.data)).
			Build()
	}
	d.budget -= n
	return nil
}

func (d *decoder) readWord(pos int, path []string) ([]byte, error) {
	if err := d.need(pos, word.Size, path); err != nil {
		return nil, err
	}
	return d.data[pos : pos+word.Size], nil
}

// need fails with truncated data unless n bytes are readable at pos.
func (d *decoder) need(pos, n int, path []string) error {
	end, ok := word.SafeAdd(pos, n)
	if !ok {
		return errors.TruncatedData(path, n, len(d.data)-pos)
	}
	if end > len(d.data) {
		return errors.TruncatedData(path, end, len(d.data))
	}
	return nil
}
