package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/calculadora/internal/calc"
)

type keyMap struct {
	Digit    key.Binding
	Decimal  key.Binding
	Operator key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Press    key.Binding
	Copy     key.Binding
	CopyLast key.Binding
	Tape     key.Binding
	WipeTape key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Decimal: key.NewBinding(
			key.WithKeys(".", ","),
			key.WithHelp(".", "decimal"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "x", "/"),
			key.WithHelp("+-*/", "operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=/enter", "equals"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C", "delete", "backspace"),
			key.WithHelp("c", "clear"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Press: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "press focused"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy result"),
		),
		CopyLast: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy last tape result"),
		),
		Tape: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle tape"),
		),
		WipeTape: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "wipe tape"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Decimal, k.Operator, k.Equals, k.Clear},
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Copy, k.CopyLast, k.Tape, k.WipeTape, k.Help, k.Quit},
	}
}

// calcKey translates a typed key into the keypad key it stands for.
func calcKey(msg tea.KeyMsg) (calc.Key, bool) {
	value := msg.String()
	switch value {
	case ",", ".":
		return calc.KeyDecimal, true
	case "=", "enter":
		return calc.KeyEquals, true
	case "c", "C", "delete", "backspace":
		return calc.KeyClear, true
	}
	if op, ok := calc.ParseOperator(value); ok {
		return calc.OperatorKey(op), true
	}
	k := calc.Key(value)
	if _, ok := k.Digit(); ok {
		return k, true
	}
	return "", false
}
