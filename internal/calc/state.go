// Package calc holds the calculator state record and the pure transitions
// that the keypad drives. Every transition returns a new State; nothing is
// mutated in place.
package calc

import "fmt"

// Operator is one of the four arithmetic operators. The zero value means no
// operator has been chosen.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// ParseOperator accepts the ASCII operators and the keypad glyphs.
func ParseOperator(value string) (Operator, bool) {
	switch value {
	case "+":
		return Add, true
	case "-", "−":
		return Subtract, true
	case "*", "x", "×":
		return Multiply, true
	case "/", "÷":
		return Divide, true
	default:
		return "", false
	}
}

// Glyph returns the symbol shown on the keypad button.
func (o Operator) Glyph() string {
	switch o {
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return string(o)
	}
}

// Valid reports whether o is one of the four supported operators.
func (o Operator) Valid() bool {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return true
	default:
		return false
	}
}

const defaultDisplay = "0"

// State is the whole calculator. Operand and Operator are set and cleared
// together; Operator == "" means no left operand is held.
type State struct {
	Display         string
	Expression      string
	Operand         float64
	Operator        Operator
	AwaitingOperand bool
}

// Initial returns the state shown when the keypad is first mounted.
func Initial() State {
	return State{Display: defaultDisplay}
}

// Pending reports whether a left operand and operator are held.
func (s State) Pending() bool {
	return s.Operator != ""
}

// Value parses the display.
func (s State) Value() float64 {
	return ParseNumber(s.Display)
}

func (s State) String() string {
	if !s.Pending() {
		return fmt.Sprintf("display=%q expression=%q", s.Display, s.Expression)
	}
	return fmt.Sprintf("display=%q expression=%q operand=%s operator=%s awaiting=%t",
		s.Display, s.Expression, FormatNumber(s.Operand), s.Operator, s.AwaitingOperand)
}
