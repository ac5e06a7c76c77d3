package tape

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordKeepsOrder(t *testing.T) {
	t.Parallel()

	tp := New(0)
	require.Equal(t, DefaultLimit, tp.Limit())

	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tp.now = func() time.Time { return fixed }

	tp.Record("2 + 3 = 5", "5")
	tp.Record("5 * 2 = 10", "10")
	tp.Record("", "0")

	got := tp.Entries()
	require.Len(t, got, 2)
	require.Equal(t, "2 + 3 = 5", got[0].Expression)
	require.Equal(t, "10", got[1].Result)
	require.Equal(t, fixed, got[1].At)

	last, ok := tp.Last()
	require.True(t, ok)
	require.Equal(t, "5 * 2 = 10", last.Expression)
}

func TestRecordEvictsOldest(t *testing.T) {
	t.Parallel()

	tp := New(3)
	for i := 1; i <= 5; i++ {
		tp.Record(fmt.Sprintf("%d + 0 = %d", i, i), fmt.Sprint(i))
	}

	require.Equal(t, 3, tp.Len())
	got := tp.Entries()
	require.Equal(t, "3", got[0].Result)
	require.Equal(t, "5", got[2].Result)
}

func TestEntriesReturnsCopy(t *testing.T) {
	t.Parallel()

	tp := New(2)
	tp.Record("1 + 1 = 2", "2")
	got := tp.Entries()
	got[0].Result = "tampered"

	require.Equal(t, "2", tp.Entries()[0].Result)
}

func TestReset(t *testing.T) {
	t.Parallel()

	tp := New(2)
	tp.Record("1 + 1 = 2", "2")
	tp.Reset()

	require.Zero(t, tp.Len())
	_, ok := tp.Last()
	require.False(t, ok)
}
