package abi

import (
	"strconv"

	"github.com/wippyai/ethabi/errors"
)

// validateTypes rejects descriptors the codec cannot lay out.
func validateTypes(phase errors.Phase, ts []*Type, maxDepth int) error {
	for i, t := range ts {
		if err := validateType(phase, t, maxDepth, childPath(nil, "arg", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateType(phase errors.Phase, t *Type, maxDepth int, path []string) error {
	if t == nil {
		return errors.UnsupportedType(phase, path, "", "nil type")
	}
	if t.Depth() > maxDepth {
		return errors.UnsupportedType(phase, path, t.String(),
			"nesting depth "+strconv.Itoa(t.Depth())+" exceeds limit "+strconv.Itoa(maxDepth))
	}

	switch t.Kind() {
	case KindUint, KindInt:
		if bits := t.Bits(); bits < 8 || bits > 256 || bits%8 != 0 {
			return errors.UnsupportedType(phase, path, t.String(), "bit width must be a multiple of 8 in 8..256")
		}
	case KindFixedBytes:
		if n := t.Size(); n < 1 || n > 32 {
			return errors.UnsupportedType(phase, path, t.String(), "fixed bytes size must be in 1..32")
		}
	case KindBool, KindAddress, KindBytes, KindString:
	case KindArray:
		if t.Size() < 1 {
			return errors.UnsupportedType(phase, path, t.String(), "array length must be positive")
		}
		return validateType(phase, t.Elem(), maxDepth, childPath(path, "elem", 0))
	case KindSlice:
		return validateType(phase, t.Elem(), maxDepth, childPath(path, "elem", 0))
	case KindTuple:
		if len(t.Elems()) == 0 {
			return errors.UnsupportedType(phase, path, t.String(), "empty tuple")
		}
		for i, e := range t.Elems() {
			if err := validateType(phase, e, maxDepth, childPath(path, "field", i)); err != nil {
				return err
			}
		}
	default:
		return errors.UnsupportedType(phase, path, t.String(), "unknown type kind")
	}
	return nil
}

// childPath returns a copy of path extended with label[i].
func childPath(path []string, label string, i int) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, label+"["+strconv.Itoa(i)+"]")
}
