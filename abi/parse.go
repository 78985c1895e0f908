package abi

import (
	"strconv"
	"strings"

	"github.com/wippyai/ethabi/errors"
)

// ParseType parses a Solidity type string such as "uint256",
// "(address,bytes)[]" or "tuple(uint8,string)[2]".
func ParseType(s string) (*Type, error) {
	p := &typeParser{src: s}
	p.skipSpace()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.fail("unexpected %q", p.src[p.pos:])
	}
	return t, nil
}

// ParseTypeList parses a comma separated list of types. The empty string
// is an empty list.
func ParseTypeList(s string) ([]*Type, error) {
	p := &typeParser{src: s}
	p.skipSpace()
	if p.done() {
		return nil, nil
	}
	ts, err := p.parseList(0)
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.fail("unexpected %q", p.src[p.pos:])
	}
	return ts, nil
}

// ParseSignature splits "name(T1,T2)" into the function name and its
// argument types.
func ParseSignature(sig string) (string, []*Type, error) {
	sig = strings.TrimSpace(sig)
	open := strings.IndexByte(sig, '(')
	if open < 0 || !strings.HasSuffix(sig, ")") {
		return "", nil, errors.New(errors.PhaseParse, errors.KindMalformedInput).
			Value(sig).
			Detail("signature %q must look like name(types)", sig).
			Build()
	}
	name := strings.TrimSpace(sig[:open])
	if !isIdentifier(name) {
		return "", nil, errors.New(errors.PhaseParse, errors.KindMalformedInput).
			Value(sig).
			Detail("invalid function name %q", name).
			Build()
	}
	ts, err := ParseTypeList(sig[open+1 : len(sig)-1])
	if err != nil {
		return "", nil, err
	}
	return name, ts, nil
}

// Signature renders the canonical "name(T1,T2)" form.
func Signature(name string, ts []*Type) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// maxParseDepth bounds tuple nesting in type strings.
const maxParseDepth = 256

type typeParser struct {
	src   string
	pos   int
	depth int
}

func (p *typeParser) parseType() (*Type, error) {
	var t *Type
	var err error

	rest := p.src[p.pos:]
	switch {
	case strings.HasPrefix(rest, "tuple("):
		p.pos += len("tuple")
		t, err = p.parseTuple()
	case strings.HasPrefix(rest, "("):
		t, err = p.parseTuple()
	default:
		t, err = p.parseElementary()
	}
	if err != nil {
		return nil, err
	}

	for p.peek() == '[' {
		p.pos++
		start := p.pos
		for !p.done() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		digits := p.src[start:p.pos]
		if p.peek() != ']' {
			return nil, p.fail("unterminated array suffix")
		}
		p.pos++
		if digits == "" {
			t = DynamicArrayType(t)
			continue
		}
		n, convErr := strconv.Atoi(digits)
		if convErr != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindUnsupportedType).
				Value(digits).
				Detail("array length %s out of range", digits).
				Cause(convErr).
				Build()
		}
		if n < 1 {
			return nil, errors.UnsupportedType(errors.PhaseParse, nil, t.String()+"[0]", "array length must be positive")
		}
		t = StaticArrayType(t, n)
	}
	return t, nil
}

func (p *typeParser) parseTuple() (*Type, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxParseDepth {
		return nil, errors.UnsupportedType(errors.PhaseParse, nil, "", "tuple nesting too deep")
	}
	p.pos++ // '('
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return nil, errors.UnsupportedType(errors.PhaseParse, nil, "()", "empty tuple")
	}
	elems, err := p.parseList(')')
	if err != nil {
		return nil, err
	}
	if p.peek() != ')' {
		return nil, p.fail("unterminated tuple")
	}
	p.pos++
	return TupleType(elems...), nil
}

// parseList parses comma separated types up to end (0 for end of input).
// The terminator is left unconsumed.
func (p *typeParser) parseList(end byte) ([]*Type, error) {
	var ts []*Type
	for {
		p.skipSpace()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
		p.skipSpace()
		switch {
		case p.peek() == ',':
			p.pos++
		case end != 0 && p.peek() == end, end == 0 && p.done():
			return ts, nil
		default:
			if p.done() {
				return nil, p.fail("unexpected end of input")
			}
			return nil, p.fail("unexpected %q", string(p.src[p.pos]))
		}
	}
}

func (p *typeParser) parseElementary() (*Type, error) {
	start := p.pos
	for !p.done() && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if name == "" {
		if p.done() {
			return nil, p.fail("unexpected end of input")
		}
		return nil, p.fail("unexpected %q", string(p.src[p.pos]))
	}
	return elementaryType(name)
}

// elementaryType maps a non-composite type name to its descriptor.
func elementaryType(name string) (*Type, error) {
	switch name {
	case "address":
		return AddressType(), nil
	case "bool":
		return BoolType(), nil
	case "string":
		return StringType(), nil
	case "bytes":
		return DynamicBytesType(), nil
	case "byte":
		return StaticBytesType(1), nil
	case "uint":
		return UintType(256), nil
	case "int":
		return IntType(256), nil
	}

	switch {
	case strings.HasPrefix(name, "uint"):
		bits, ok := width(name[len("uint"):])
		if !ok || bits < 8 || bits > 256 || bits%8 != 0 {
			return nil, errors.UnsupportedType(errors.PhaseParse, nil, name, "bit width must be a multiple of 8 in 8..256")
		}
		return UintType(bits), nil
	case strings.HasPrefix(name, "int"):
		bits, ok := width(name[len("int"):])
		if !ok || bits < 8 || bits > 256 || bits%8 != 0 {
			return nil, errors.UnsupportedType(errors.PhaseParse, nil, name, "bit width must be a multiple of 8 in 8..256")
		}
		return IntType(bits), nil
	case strings.HasPrefix(name, "bytes"):
		n, ok := width(name[len("bytes"):])
		if !ok || n < 1 || n > 32 {
			return nil, errors.UnsupportedType(errors.PhaseParse, nil, name, "fixed bytes size must be in 1..32")
		}
		return StaticBytesType(n), nil
	case name == "function", strings.HasPrefix(name, "fixed"), strings.HasPrefix(name, "ufixed"):
		return nil, errors.UnsupportedType(errors.PhaseParse, nil, name, "type is not supported")
	}
	return nil, errors.UnsupportedType(errors.PhaseParse, nil, name, "unknown type")
}

func width(s string) (int, bool) {
	if s == "" || s[0] == '0' || len(s) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func (p *typeParser) fail(msg string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindMalformedInput).
		Value(p.src).
		Detail("type %q at %d: "+msg, append([]any{p.src, p.pos}, args...)...).
		Build()
}

func (p *typeParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) done() bool { return p.pos >= len(p.src) }

func (p *typeParser) skipSpace() {
	for !p.done() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isIdentifier(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}
