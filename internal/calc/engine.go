package calc

import (
	"fmt"
	"strings"
)

// RepeatPolicy decides what an operator press does when another operator is
// already waiting for its right operand.
type RepeatPolicy string

const (
	// RepeatChain applies the pending operator to the display against itself
	// before switching, the way the keypad always behaved.
	RepeatChain RepeatPolicy = "chain"
	// RepeatReplace only swaps the pending operator.
	RepeatReplace RepeatPolicy = "replace"
)

// ParseRepeatPolicy validates a policy name. The empty string selects chain.
func ParseRepeatPolicy(value string) (RepeatPolicy, error) {
	switch RepeatPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", RepeatChain:
		return RepeatChain, nil
	case RepeatReplace:
		return RepeatReplace, nil
	default:
		return "", fmt.Errorf("unknown repeat operator policy %q", value)
	}
}

// Options tune an Engine.
type Options struct {
	Repeat RepeatPolicy
}

// Engine applies transitions to a State. It holds no state of its own.
type Engine struct {
	repeat RepeatPolicy
}

// New returns an Engine. A zero Options keeps the chain policy.
func New(opts Options) *Engine {
	repeat := opts.Repeat
	if repeat == "" {
		repeat = RepeatChain
	}
	return &Engine{repeat: repeat}
}

// Repeat returns the configured repeat policy.
func (e *Engine) Repeat() RepeatPolicy {
	return e.repeat
}

// InputDigit types d. Values outside 0-9 leave s unchanged.
func (e *Engine) InputDigit(s State, d int) State {
	if d < 0 || d > 9 {
		return s
	}
	digit := fmt.Sprintf("%d", d)
	if s.AwaitingOperand {
		s.Display = digit
		s.Expression = fmt.Sprintf("%s %s %s", FormatNumber(s.Operand), s.Operator, digit)
		s.AwaitingOperand = false
		return s
	}
	if s.Display == defaultDisplay || !isFinite(s.Display) {
		s.Display = digit
	} else {
		s.Display += digit
	}
	s.Expression += digit
	return s
}

// InputDecimal types the decimal point. A second point in the same number is
// ignored.
func (e *Engine) InputDecimal(s State) State {
	if s.AwaitingOperand {
		s.Display = "0."
		s.Expression = fmt.Sprintf("%s %s 0.", FormatNumber(s.Operand), s.Operator)
		s.AwaitingOperand = false
		return s
	}
	if !isFinite(s.Display) {
		s.Display = "0."
		s.Expression += "."
		return s
	}
	if strings.Contains(s.Display, ".") {
		return s
	}
	s.Display += "."
	s.Expression += "."
	return s
}

// InputOperator stores the display as the left operand, or folds it into the
// pending operation when one is already held.
func (e *Engine) InputOperator(s State, op Operator) State {
	if !op.Valid() {
		return s
	}
	if s.Pending() && s.AwaitingOperand && e.repeat == RepeatReplace {
		s.Operator = op
		s.Expression = fmt.Sprintf("%s %s ", FormatNumber(s.Operand), op)
		return s
	}
	input := s.Value()
	if !s.Pending() {
		s.Operand = input
		s.Expression = fmt.Sprintf("%s %s ", FormatNumber(input), op)
	} else {
		result := Apply(s.Operator, s.Operand, input)
		s.Operand = result
		s.Display = FormatNumber(result)
		s.Expression = fmt.Sprintf("%s %s ", s.Display, op)
	}
	s.Operator = op
	s.AwaitingOperand = true
	return s
}

// Equals finishes the pending operation. Without one it is a no-op.
func (e *Engine) Equals(s State) State {
	if !s.Pending() {
		return s
	}
	result := FormatNumber(Apply(s.Operator, s.Operand, s.Value()))
	return State{
		Display:    result,
		Expression: fmt.Sprintf("%s = %s", s.Expression, result),
	}
}

// Clear resets to the initial state.
func (e *Engine) Clear(State) State {
	return Initial()
}

// Apply evaluates a op b. Division follows IEEE-754, so dividing by zero
// yields ±Inf or NaN instead of an error.
func Apply(op Operator, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		return b
	}
}
