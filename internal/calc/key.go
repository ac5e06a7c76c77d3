package calc

// Key is a keypad button label.
type Key string

const (
	KeyDecimal Key = "."
	KeyEquals  Key = "="
	KeyClear   Key = "C"
)

// OperatorKey returns the key for op.
func OperatorKey(op Operator) Key {
	return Key(op)
}

// DigitKey returns the key for d.
func DigitKey(d int) Key {
	return Key(rune('0' + d))
}

// Digit reports the digit a key types, if any.
func (k Key) Digit() (int, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '0'), true
}

// Operator reports the operator a key chooses, if any.
func (k Key) Operator() (Operator, bool) {
	op := Operator(k)
	return op, op.Valid()
}

// Valid reports whether the keypad has a button for k.
func (k Key) Valid() bool {
	if _, ok := k.Digit(); ok {
		return true
	}
	if _, ok := k.Operator(); ok {
		return true
	}
	return k == KeyDecimal || k == KeyEquals || k == KeyClear
}

// Press dispatches k to the matching transition. Unknown keys leave s
// unchanged.
func (e *Engine) Press(s State, k Key) State {
	if d, ok := k.Digit(); ok {
		return e.InputDigit(s, d)
	}
	if op, ok := k.Operator(); ok {
		return e.InputOperator(s, op)
	}
	switch k {
	case KeyDecimal:
		return e.InputDecimal(s)
	case KeyEquals:
		return e.Equals(s)
	case KeyClear:
		return e.Clear(s)
	default:
		return s
	}
}

// PressAll folds keys over s in order.
func (e *Engine) PressAll(s State, keys ...Key) State {
	for _, k := range keys {
		s = e.Press(s, k)
	}
	return s
}
