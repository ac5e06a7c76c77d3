package tui

import "github.com/csheth/calculadora/internal/calc"

type buttonKind int

const (
	buttonDigit buttonKind = iota
	buttonOperator
	buttonEquals
	buttonClear
)

type button struct {
	key   calc.Key
	label string
	kind  buttonKind
}

func digitButton(d int) button {
	key := calc.DigitKey(d)
	return button{key: key, label: string(key), kind: buttonDigit}
}

func operatorButton(op calc.Operator) button {
	return button{key: calc.OperatorKey(op), label: op.Glyph(), kind: buttonOperator}
}

// keypadRows is the 4×5 grid, row-major. The clear button spans the last row.
var keypadRows = [][]button{
	{digitButton(7), digitButton(8), digitButton(9), operatorButton(calc.Divide)},
	{digitButton(4), digitButton(5), digitButton(6), operatorButton(calc.Multiply)},
	{digitButton(1), digitButton(2), digitButton(3), operatorButton(calc.Subtract)},
	{digitButton(0), {key: calc.KeyDecimal, label: ".", kind: buttonDigit}, {key: calc.KeyEquals, label: "=", kind: buttonEquals}, operatorButton(calc.Add)},
	{{key: calc.KeyClear, label: "Clear", kind: buttonClear}},
}

const (
	keypadColumns = 4
	keypadRowsLen = 5
)

const appTitle = "Calculadora"

const (
	minButtonWidth            = 5
	maxButtonWidth            = 12
	maxButtonHeight           = 3
	buttonGap                 = 1
	viewportHorizontalPadding = 4
	tapePaneWidth             = 30
	tapePaneMinWindow         = 76
	tapeTruncateTail          = "…"
	tapeTimeLayout            = "15:04"
)
