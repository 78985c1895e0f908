package jsonargs

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/errors"
)

// Call is a function call document: the function name, its arguments and
// the types its return data decodes as.
type Call struct {
	Function  string
	Arguments []abi.Argument
	Outputs   []*abi.Type
}

// Signature returns the canonical "name(T1,T2)" signature of the call.
func (c *Call) Signature() string {
	ts, _ := abi.SplitArguments(c.Arguments)
	return abi.Signature(c.Function, ts)
}

// ParseArgument reads one {"type": ..., "value": ...} document.
func ParseArgument(data []byte) (abi.Argument, error) {
	doc, err := decodeJSON(data, "argument document")
	if err != nil {
		return abi.Argument{}, err
	}
	return Argument(doc)
}

// ParseArguments reads a JSON array of argument documents.
func ParseArguments(data []byte) ([]abi.Argument, error) {
	doc, err := decodeJSON(data, "argument list")
	if err != nil {
		return nil, err
	}
	return Arguments(doc)
}

// ParseOutputs reads a JSON array of output parameter documents.
func ParseOutputs(data []byte) ([]*abi.Type, error) {
	doc, err := decodeJSON(data, "output list")
	if err != nil {
		return nil, err
	}
	return Outputs(doc)
}

// ParseCall reads a {"function", "arguments", "outputs"} document.
func ParseCall(data []byte) (*Call, error) {
	doc, err := decodeJSON(data, "call document")
	if err != nil {
		return nil, err
	}
	return CallFrom(doc)
}

// Argument converts an already decoded argument document. Documents from
// encoding/json (with or without UseNumber) and from YAML decoders are
// accepted alike.
func Argument(doc any) (abi.Argument, error) {
	return argument(doc, nil)
}

// Arguments converts a decoded list of argument documents.
func Arguments(doc any) ([]abi.Argument, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, invalid(nil, "arguments must be an array")
	}
	out := make([]abi.Argument, len(items))
	for i, item := range items {
		a, err := argument(item, []string{index("arg", i)})
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// Output converts one output parameter: a type string such as "uint256"
// or {"type": "tuple[]", "elems": [...]}.
func Output(doc any) (*abi.Type, error) {
	return output(doc, nil)
}

// Outputs converts a decoded list of output parameters.
func Outputs(doc any) ([]*abi.Type, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, invalid(nil, "outputs must be an array")
	}
	out := make([]*abi.Type, len(items))
	for i, item := range items {
		t, err := output(item, []string{index("out", i)})
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// CallFrom converts a decoded call document. Outputs are optional.
func CallFrom(doc any) (*Call, error) {
	obj, ok := asObject(doc)
	if !ok {
		return nil, invalid(nil, "call must be an object")
	}
	name, ok := obj["function"].(string)
	if !ok || name == "" {
		return nil, invalid(nil, "missing function name")
	}
	c := &Call{Function: name}

	if raw, ok := obj["arguments"]; ok && raw != nil {
		args, err := Arguments(raw)
		if err != nil {
			return nil, err
		}
		c.Arguments = args
	}
	if raw, ok := obj["outputs"]; ok && raw != nil {
		outs, err := Outputs(raw)
		if err != nil {
			return nil, err
		}
		c.Outputs = outs
	}
	return c, nil
}

func argument(doc any, path []string) (abi.Argument, error) {
	obj, ok := asObject(doc)
	if !ok {
		return abi.Argument{}, invalid(path, "argument must be an object")
	}
	typ, ok := obj["type"].(string)
	if !ok {
		return abi.Argument{}, invalid(path, "missing type")
	}
	val, ok := obj["value"]
	if !ok {
		return abi.Argument{}, invalid(path, "missing value")
	}
	t, v, err := typedValue(strings.TrimSpace(typ), val, path)
	if err != nil {
		return abi.Argument{}, err
	}
	return abi.Argument{Type: t, Value: v}, nil
}

// typedValue resolves a type string against its value. Types built from
// "tuple" take their member types from the nested argument documents, so
// they are resolved structurally; everything else goes through the type
// parser and abi.ValueOf.
func typedValue(typ string, val any, path []string) (*abi.Type, abi.Value, error) {
	if elem, n, ok := splitArray(typ); ok && baseName(elem) == "tuple" {
		return tupleArray(elem, n, val, path)
	}
	if typ == "tuple" {
		return tupleValue(val, path)
	}

	t, err := abi.ParseType(typ)
	if err != nil {
		return nil, nil, prefix(err, path)
	}
	v, err := abi.ValueOf(t, normalize(val))
	if err != nil {
		return nil, nil, prefix(err, path)
	}
	return t, v, nil
}

func tupleValue(val any, path []string) (*abi.Type, abi.Value, error) {
	items, ok := val.([]any)
	if !ok {
		return nil, nil, invalid(path, "tuple value must be an array of arguments")
	}
	if len(items) == 0 {
		return nil, nil, invalid(path, "tuples cannot be empty")
	}
	ts := make([]*abi.Type, len(items))
	vs := make(abi.Tuple, len(items))
	for i, item := range items {
		a, err := argument(item, appendPath(path, index("field", i)))
		if err != nil {
			return nil, nil, err
		}
		ts[i], vs[i] = a.Type, a.Value
	}
	return abi.TupleType(ts...), vs, nil
}

// tupleArray handles tuple[], tuple[n] and deeper nestings. All elements
// must resolve to the same tuple type.
func tupleArray(elem string, n int, val any, path []string) (*abi.Type, abi.Value, error) {
	items, ok := val.([]any)
	if !ok {
		return nil, nil, invalid(path, "array value must be an array")
	}
	if n >= 0 && len(items) != n {
		return nil, nil, errors.ArityMismatch(errors.PhaseParse, path, n, len(items))
	}
	if len(items) == 0 {
		return nil, nil, invalid(path, "cannot infer tuple member types from an empty array")
	}

	var elemType *abi.Type
	out := make(abi.List, len(items))
	for i, item := range items {
		p := appendPath(path, index("elem", i))
		t, v, err := typedValue(elem, item, p)
		if err != nil {
			return nil, nil, err
		}
		if elemType == nil {
			elemType = t
		} else if t.String() != elemType.String() {
			return nil, nil, errors.New(errors.PhaseParse, errors.KindShapeMismatch).
				Path(p...).
				ValueType(t.String()).
				AbiType(elemType.String()).
				Detail("mismatching tuple elements in array").
				Build()
		}
		out[i] = v
	}

	if n < 0 {
		return abi.DynamicArrayType(elemType), out, nil
	}
	return abi.StaticArrayType(elemType, n), out, nil
}

func output(doc any, path []string) (*abi.Type, error) {
	if s, ok := doc.(string); ok {
		t, err := abi.ParseType(s)
		if err != nil {
			return nil, prefix(err, path)
		}
		return t, nil
	}

	obj, ok := asObject(doc)
	if !ok {
		return nil, invalid(path, "output must be a type string or an object")
	}
	typ, ok := obj["type"].(string)
	if !ok {
		return nil, invalid(path, "missing tuple type")
	}
	base, suffixes := splitSuffixes(strings.TrimSpace(typ))
	if base != "tuple" {
		return nil, invalid(path, "invalid tuple type "+typ)
	}
	items, ok := obj["elems"].([]any)
	if !ok || len(items) == 0 {
		return nil, invalid(path, "invalid or missing tuple elements")
	}
	elems := make([]*abi.Type, len(items))
	for i, item := range items {
		t, err := output(item, appendPath(path, index("field", i)))
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}

	t := abi.TupleType(elems...)
	for _, n := range suffixes {
		if n < 0 {
			t = abi.DynamicArrayType(t)
		} else {
			t = abi.StaticArrayType(t, n)
		}
	}
	return t, nil
}

// splitArray splits the outermost array suffix: "T[2][]" is ("T[2]", -1).
func splitArray(typ string) (string, int, bool) {
	if !strings.HasSuffix(typ, "]") {
		return "", 0, false
	}
	open := strings.LastIndexByte(typ, '[')
	if open <= 0 {
		return "", 0, false
	}
	digits := typ[open+1 : len(typ)-1]
	if digits == "" {
		return typ[:open], -1, true
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return "", 0, false
	}
	return typ[:open], n, true
}

// splitSuffixes returns the base type and its array suffixes innermost
// first. A malformed suffix is left in the base.
func splitSuffixes(typ string) (string, []int) {
	var rev []int
	for {
		elem, n, ok := splitArray(typ)
		if !ok {
			break
		}
		rev = append(rev, n)
		typ = elem
	}
	out := make([]int, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return typ, out
}

func baseName(typ string) string {
	base, _ := splitSuffixes(typ)
	return base
}

// normalize converts YAML decoder maps into the []any and map[string]any
// shapes that abi.ValueOf expects.
func normalize(val any) any {
	switch v := val.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			ks, _ := k.(string)
			out[ks] = normalize(item)
		}
		return out
	}
	return val
}

func asObject(doc any) (map[string]any, bool) {
	switch d := doc.(type) {
	case map[string]any:
		return d, true
	case map[any]any:
		m, _ := normalize(d).(map[string]any)
		return m, true
	}
	return nil, false
}

func decodeJSON(data []byte, what string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.ParseFailed(what, err)
	}
	if dec.More() {
		return nil, errors.InvalidInput(errors.PhaseParse, "trailing data after "+what)
	}
	return doc, nil
}

func invalid(path []string, detail string) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Path(path...).
		Detail("%s", detail).
		Build()
}

// prefix roots a codec error's path at the document position.
func prefix(err error, path []string) error {
	e, ok := err.(*errors.Error)
	if !ok || len(path) == 0 {
		return err
	}
	e.Path = append(append([]string{}, path...), e.Path...)
	return e
}

func appendPath(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}

func index(label string, i int) string {
	return label + "[" + strconv.Itoa(i) + "]"
}
