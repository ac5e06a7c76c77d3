package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func press(t *testing.T, e *Engine, keys ...Key) State {
	t.Helper()
	return e.PressAll(Initial(), keys...)
}

func TestClearRestoresInitialState(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "4", "*", "5", ".", "2")
	require.True(t, s.Pending())

	got := e.Clear(s)
	require.Equal(t, State{Display: "0"}, got)
	require.Equal(t, Initial(), got)
	require.False(t, got.Pending())
}

func TestDigitsConcatenate(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	cases := []struct {
		name string
		keys []Key
		want string
	}{
		{name: "single", keys: []Key{"7"}, want: "7"},
		{name: "several", keys: []Key{"1", "2", "3"}, want: "123"},
		{name: "leading zero replaced", keys: []Key{"0", "8"}, want: "8"},
		{name: "zeros collapse", keys: []Key{"0", "0", "0"}, want: "0"},
		{name: "zero after digit kept", keys: []Key{"9", "0", "0"}, want: "900"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, press(t, e, tc.keys...).Display)
		})
	}
}

func TestDigitOutOfRangeIsIgnored(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "4")
	require.Equal(t, s, e.InputDigit(s, 10))
	require.Equal(t, s, e.InputDigit(s, -1))
}

func TestDecimalIsIdempotent(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	once := press(t, e, "1", ".")
	twice := e.InputDecimal(once)
	require.Equal(t, "1.", once.Display)
	require.Equal(t, once, twice)

	s := e.PressAll(twice, "5", ".")
	require.Equal(t, "1.5", s.Display)
	require.Equal(t, "1.5", s.Expression)
}

func TestDecimalAfterOperatorStartsOperand(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "5", "*", ".")
	require.Equal(t, "0.", s.Display)
	require.Equal(t, "5 * 0.", s.Expression)
	require.False(t, s.AwaitingOperand)

	s = e.PressAll(s, "5", "=")
	require.Equal(t, "2.5", s.Display)
	require.Equal(t, "5 * 0.5 = 2.5", s.Expression)
}

func TestAddition(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "2", "+")
	require.Equal(t, "2 + ", s.Expression)
	require.True(t, s.AwaitingOperand)

	s = e.PressAll(s, "3")
	require.Equal(t, "3", s.Display)
	require.Equal(t, "2 + 3", s.Expression)

	s = e.Equals(s)
	require.Equal(t, "5", s.Display)
	require.Equal(t, "2 + 3 = 5", s.Expression)
	require.False(t, s.Pending())
	require.False(t, s.AwaitingOperand)
}

func TestDivisionByZeroYieldsInfinity(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "6", "/", "0", "=")
	require.Equal(t, "Infinity", s.Display)
	require.True(t, math.IsInf(s.Value(), 1))
	require.Equal(t, "6 / 0 = Infinity", s.Expression)

	s = press(t, e, "0", "/", "0", "=")
	require.Equal(t, "NaN", s.Display)
}

func TestDigitReplacesNonFiniteDisplay(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "6", "/", "0", "=", "3")
	require.Equal(t, "3", s.Display)

	s = press(t, e, "6", "/", "0", "=", ".")
	require.Equal(t, "0.", s.Display)
}

func TestTypingAfterEqualsExtendsExpression(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "2", "+", "3", "=", "1")
	require.Equal(t, "51", s.Display)
	require.Equal(t, "2 + 3 = 51", s.Expression)
	require.False(t, s.Pending())

	s = press(t, e, "6", "/", "0", "=", "5")
	require.Equal(t, "5", s.Display)
	require.Equal(t, "6 / 0 = Infinity5", s.Expression)

	s = e.PressAll(s, "+", "1", "=")
	require.Equal(t, "6", s.Display)
	require.Equal(t, "5 + 1 = 6", s.Expression)
}

func TestChainedOperators(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "4", "*", "5", "*")
	require.Equal(t, "20", s.Display)
	require.Equal(t, "20 * ", s.Expression)
	require.Equal(t, 20.0, s.Operand)

	s = e.PressAll(s, "2", "=")
	require.Equal(t, "40", s.Display)
	require.Equal(t, "20 * 2 = 40", s.Expression)
}

func TestChainSwitchesOperator(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "9", "-", "4", "+", "1", "0", "=")
	require.Equal(t, "15", s.Display)
	require.Equal(t, "5 + 10 = 15", s.Expression)
}

func TestEqualsWithoutOperatorIsNoop(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	before := press(t, e, "7", ".", "1")
	require.Equal(t, before, e.Equals(before))
	require.Equal(t, Initial(), e.Equals(Initial()))
}

func TestEqualsWhileAwaitingUsesDisplayTwice(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "3", "*", "=")
	require.Equal(t, "9", s.Display)
	require.Equal(t, "3 *  = 9", s.Expression)
}

func TestRepeatedOperatorChainPolicy(t *testing.T) {
	t.Parallel()

	e := New(Options{Repeat: RepeatChain})
	s := press(t, e, "3", "+", "+")
	require.Equal(t, "6", s.Display)
	require.Equal(t, "6 + ", s.Expression)
	require.Equal(t, 6.0, s.Operand)

	s = e.Equals(s)
	require.Equal(t, "12", s.Display)
}

func TestRepeatedOperatorReplacePolicy(t *testing.T) {
	t.Parallel()

	e := New(Options{Repeat: RepeatReplace})
	s := press(t, e, "3", "+", "*")
	require.Equal(t, "3", s.Display)
	require.Equal(t, "3 * ", s.Expression)
	require.Equal(t, Multiply, s.Operator)
	require.True(t, s.AwaitingOperand)

	s = e.PressAll(s, "2", "=")
	require.Equal(t, "6", s.Display)
	require.Equal(t, "3 * 2 = 6", s.Expression)

	// Once an operand is typed the policy no longer applies.
	s = press(t, e, "3", "+", "2", "*")
	require.Equal(t, "5", s.Display)
}

func TestFloatingPointResultsKeepFullPrecision(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, ".", "1", "+", ".", "2", "=")
	require.Equal(t, "0.30000000000000004", s.Display)
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	t.Parallel()

	e := New(Options{})
	s := press(t, e, "1")
	require.Equal(t, s, e.Press(s, "%"))
	require.False(t, Key("%").Valid())
	require.True(t, KeyClear.Valid())
}

func TestParseRepeatPolicy(t *testing.T) {
	t.Parallel()

	got, err := ParseRepeatPolicy("")
	require.NoError(t, err)
	require.Equal(t, RepeatChain, got)

	got, err = ParseRepeatPolicy(" Replace ")
	require.NoError(t, err)
	require.Equal(t, RepeatReplace, got)

	_, err = ParseRepeatPolicy("ignore")
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7.0, Apply(Add, 3, 4))
	require.Equal(t, -1.0, Apply(Subtract, 3, 4))
	require.Equal(t, 12.0, Apply(Multiply, 3, 4))
	require.Equal(t, 0.75, Apply(Divide, 3, 4))
	require.True(t, math.IsInf(Apply(Divide, -1, 0), -1))
}
