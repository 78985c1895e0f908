package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/abi/jsonargs"
	"github.com/wippyai/ethabi/calldata"
	"github.com/wippyai/ethabi/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type options struct {
	types    string
	values   string
	data     string
	sig      string
	selector string
	call     string
	json     bool
	strict   bool
	maxDepth int
}

func main() {
	var (
		typesStr    = flag.String("types", "", "Parameter types (uint256,string,(bool,bytes)[])")
		valuesStr   = flag.String("values", "", "JSON array of values to encode")
		dataStr     = flag.String("data", "", "Hex data to decode (read from stdin when piped)")
		sig         = flag.String("sig", "", "Function signature for call data (transfer(address,uint256))")
		selector    = flag.String("selector", "", "Print the selector of a function signature")
		callFile    = flag.String("call", "", "YAML or JSON call document to encode")
		jsonOut     = flag.Bool("json", false, "Print decoded values as JSON")
		strict      = flag.Bool("strict", false, "Reject non-canonical encodings when decoding")
		maxDepth    = flag.Int("depth", abi.DefaultMaxDepth, "Maximum type nesting depth")
		verbose     = flag.Bool("v", false, "Log codec diagnostics to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		abi.SetLogger(logger)
		calldata.SetLogger(logger)
	}

	opts := options{
		types:    *typesStr,
		values:   *valuesStr,
		data:     *dataStr,
		sig:      *sig,
		selector: *selector,
		call:     *callFile,
		json:     *jsonOut,
		strict:   *strict,
		maxDepth: *maxDepth,
	}

	if *interactive {
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if opts.types == "" && opts.sig == "" && opts.selector == "" && opts.call == "" {
		fmt.Fprintln(os.Stderr, "Usage: abi -types <types> -values <json>     (encode)")
		fmt.Fprintln(os.Stderr, "       abi -types <types> -data <hex>        (decode)")
		fmt.Fprintln(os.Stderr, "       abi -sig <signature> -values <json>   (encode call data)")
		fmt.Fprintln(os.Stderr, "       abi -sig <signature> -data <hex>      (decode call data)")
		fmt.Fprintln(os.Stderr, "       abi -selector <signature>")
		fmt.Fprintln(os.Stderr, "       abi -call <file.yaml> [-data <hex>]")
		fmt.Fprintln(os.Stderr, "       abi -i  (interactive mode)")
		os.Exit(1)
	}

	var stdin io.Reader
	if opts.data == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		stdin = os.Stdin
	}

	if err := run(opts, stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, out io.Writer) error {
	codec := abi.NewCodec(abi.Options{Strict: opts.strict, MaxDepth: opts.maxDepth})
	asm := calldata.NewAssembler(codec)

	switch {
	case opts.selector != "":
		sel, err := selectorOf(opts.selector)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sel)
		return nil

	case opts.call != "":
		return runCall(asm, opts, stdin, out)

	case opts.sig != "":
		if opts.values != "" {
			hex, err := encodeCall(asm, opts.sig, opts.values)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hex)
			return nil
		}
		data, err := inputData(opts, stdin)
		if err != nil {
			return err
		}
		ts, vs, err := decodeCall(asm, opts.sig, data)
		if err != nil {
			return err
		}
		return printValues(out, ts, vs, opts.json)

	case opts.types != "":
		if opts.values != "" {
			hex, err := encodeValues(codec, opts.types, opts.values)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, hex)
			return nil
		}
		data, err := inputData(opts, stdin)
		if err != nil {
			return err
		}
		ts, vs, err := decodeValues(codec, opts.types, data)
		if err != nil {
			return err
		}
		return printValues(out, ts, vs, opts.json)
	}

	return errors.InvalidInput(errors.PhaseValidate, "nothing to do")
}

// runCall encodes the call described by a YAML or JSON document. With
// -data the hex is decoded as the call's outputs instead.
func runCall(asm *calldata.Assembler, opts options, stdin io.Reader, out io.Writer) error {
	raw, err := os.ReadFile(opts.call)
	if err != nil {
		return fmt.Errorf("read call file: %w", err)
	}
	c, err := loadCall(raw)
	if err != nil {
		return err
	}

	if opts.data == "" && stdin == nil {
		hex, err := asm.EncodeFunctionCall(c.Function, c.Arguments)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hex)
		return nil
	}

	if len(c.Outputs) == 0 {
		return errors.InvalidInput(errors.PhaseParse, "call document has no outputs to decode")
	}
	data, err := inputData(opts, stdin)
	if err != nil {
		return err
	}
	vs, err := asm.Codec().Decode(c.Outputs, data)
	if err != nil {
		return err
	}
	return printValues(out, c.Outputs, vs, opts.json)
}

func loadCall(raw []byte) (*jsonargs.Call, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.ParseFailed("call document", err)
	}
	return jsonargs.CallFrom(doc)
}

func inputData(opts options, stdin io.Reader) (string, error) {
	if opts.data != "" {
		return opts.data, nil
	}
	if stdin == nil {
		return "", errors.InvalidInput(errors.PhaseValidate, "no -data given and stdin is a terminal")
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func selectorOf(sig string) (string, error) {
	name, ts, err := abi.ParseSignature(sig)
	if err != nil {
		return "", err
	}
	return calldata.SelectorOf(calldata.Signature(name, ts)).Hex(), nil
}

func encodeValues(codec *abi.Codec, typesStr, valuesJSON string) (string, error) {
	ts, err := abi.ParseTypeList(typesStr)
	if err != nil {
		return "", err
	}
	vs, err := parseValues(ts, valuesJSON)
	if err != nil {
		return "", err
	}
	return codec.Encode(ts, vs)
}

func decodeValues(codec *abi.Codec, typesStr, data string) ([]*abi.Type, []abi.Value, error) {
	ts, err := abi.ParseTypeList(typesStr)
	if err != nil {
		return nil, nil, err
	}
	vs, err := codec.Decode(ts, data)
	if err != nil {
		return nil, nil, err
	}
	return ts, vs, nil
}

func encodeCall(asm *calldata.Assembler, sig, valuesJSON string) (string, error) {
	name, ts, err := abi.ParseSignature(sig)
	if err != nil {
		return "", err
	}
	vs, err := parseValues(ts, valuesJSON)
	if err != nil {
		return "", err
	}
	b, err := asm.BuildCallData(calldata.Signature(name, ts), ts, vs)
	if err != nil {
		return "", err
	}
	return abi.EncodeHex(b), nil
}

func decodeCall(asm *calldata.Assembler, sig, data string) ([]*abi.Type, []abi.Value, error) {
	_, ts, err := abi.ParseSignature(sig)
	if err != nil {
		return nil, nil, err
	}
	vs, err := asm.DecodeCall(data, sig)
	if err != nil {
		return nil, nil, err
	}
	return ts, vs, nil
}

// parseValues reads a JSON array of values for ts. Numbers keep full
// precision.
func parseValues(ts []*abi.Type, valuesJSON string) ([]abi.Value, error) {
	var xs []any
	if s := strings.TrimSpace(valuesJSON); s != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(s)))
		dec.UseNumber()
		if err := dec.Decode(&xs); err != nil {
			return nil, errors.ParseFailed("values", err)
		}
	}
	return abi.ValuesOf(ts, xs)
}

func formatValues(ts []*abi.Type, vs []abi.Value, asJSON bool) (string, error) {
	if asJSON {
		b, err := json.Marshal(abi.NativeValues(vs))
		if err != nil {
			return "", fmt.Errorf("marshal values: %w", err)
		}
		return string(b), nil
	}
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d] %s: %v", i, ts[i], abi.Native(v))
	}
	return b.String(), nil
}

func printValues(out io.Writer, ts []*abi.Type, vs []abi.Value, asJSON bool) error {
	s, err := formatValues(ts, vs, asJSON)
	if err != nil {
		return err
	}
	if s != "" {
		fmt.Fprintln(out, s)
	}
	return nil
}
