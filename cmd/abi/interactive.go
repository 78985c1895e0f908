package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/calldata"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	codec    *abi.Codec
	asm      *calldata.Assembler
	result   string
	ops      []operation
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
	asJSON   bool
}

type operation struct {
	name   string
	desc   string
	fields []fieldInfo
	apply  func(m *interactiveModel, in []string) (string, error)
}

type fieldInfo struct {
	name        string
	placeholder string
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

var (
	typesField  = fieldInfo{name: "types", placeholder: "address,uint256"}
	valuesField = fieldInfo{name: "values", placeholder: `["0x...", "1000"]`}
	dataField   = fieldInfo{name: "data", placeholder: "0x..."}
	sigField    = fieldInfo{name: "signature", placeholder: "transfer(address,uint256)"}
)

func operations() []operation {
	return []operation{
		{
			name:   "encode",
			desc:   "encode values as parameter types",
			fields: []fieldInfo{typesField, valuesField},
			apply: func(m *interactiveModel, in []string) (string, error) {
				return encodeValues(m.codec, in[0], in[1])
			},
		},
		{
			name:   "decode",
			desc:   "decode hex data as parameter types",
			fields: []fieldInfo{typesField, dataField},
			apply: func(m *interactiveModel, in []string) (string, error) {
				ts, vs, err := decodeValues(m.codec, in[0], in[1])
				if err != nil {
					return "", err
				}
				return formatValues(ts, vs, m.asJSON)
			},
		},
		{
			name:   "call",
			desc:   "encode call data for a function",
			fields: []fieldInfo{sigField, valuesField},
			apply: func(m *interactiveModel, in []string) (string, error) {
				return encodeCall(m.asm, in[0], in[1])
			},
		},
		{
			name:   "decode call",
			desc:   "decode call data addressed to a function",
			fields: []fieldInfo{sigField, dataField},
			apply: func(m *interactiveModel, in []string) (string, error) {
				ts, vs, err := decodeCall(m.asm, in[0], in[1])
				if err != nil {
					return "", err
				}
				return formatValues(ts, vs, m.asJSON)
			},
		},
		{
			name:   "selector",
			desc:   "compute a function selector",
			fields: []fieldInfo{sigField},
			apply: func(_ *interactiveModel, in []string) (string, error) {
				return selectorOf(in[0])
			},
		},
	}
}

func newInteractiveModel(opts options) *interactiveModel {
	codec := abi.NewCodec(abi.Options{Strict: opts.strict, MaxDepth: opts.maxDepth})
	return &interactiveModel{
		codec:  codec,
		asm:    calldata.NewAssembler(codec),
		ops:    operations(),
		asJSON: opts.json,
		state:  stateSelectOp,
	}
}

type resultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs
				return m, textinput.Blink

			case stateInputArgs:
				return m, m.runOperation

			case stateShowResult:
				m.reset()
			}
			return m, nil

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.reset()
			}
			return m, nil
		}

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectOp
	m.result = ""
	m.err = nil
}

func (m *interactiveModel) prepareInputs() {
	op := m.ops[m.selected]
	m.inputs = make([]textinput.Model, len(op.fields))
	for i, f := range op.fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.Prompt = f.name + ": "
		ti.Width = 60
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runOperation() tea.Msg {
	op := m.ops[m.selected]
	in := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		in[i] = strings.TrimSpace(input.Value())
	}
	result, err := op.apply(m, in)
	return resultMsg{result: result, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ABI Codec"))
	if m.codec.Options().Strict {
		b.WriteString(" ")
		b.WriteString(typeStyle.Render("strict"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			line := op.name + " - " + op.desc
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + opStyle.Render(op.name) + " - " + op.desc)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		op := m.ops[m.selected]
		fmt.Fprintf(&b, "%s\n\n", opStyle.Render(op.name))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
		fmt.Fprintf(&b, "Result of %s:\n\n", opStyle.Render(op.name))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(opts options) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
