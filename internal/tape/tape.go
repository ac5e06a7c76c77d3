// Package tape keeps the in-memory log of completed calculations shown next
// to the keypad. Nothing is written to disk.
package tape

import "time"

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 50

// Entry is one finished calculation.
type Entry struct {
	Expression string
	Result     string
	At         time.Time
}

// Tape is a bounded, oldest-first log of entries.
type Tape struct {
	limit   int
	entries []Entry
	now     func() time.Time
}

// New returns a tape that keeps at most limit entries. A limit of zero or
// less selects DefaultLimit.
func New(limit int) *Tape {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Tape{limit: limit, now: time.Now}
}

// Record appends a calculation, evicting the oldest entry once the tape is
// full. Blank expressions are ignored.
func (t *Tape) Record(expression, result string) {
	if expression == "" {
		return
	}
	t.entries = append(t.entries, Entry{Expression: expression, Result: result, At: t.now()})
	if over := len(t.entries) - t.limit; over > 0 {
		t.entries = append([]Entry(nil), t.entries[over:]...)
	}
}

// Entries returns a copy of the tape, oldest first.
func (t *Tape) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Last returns the most recent entry.
func (t *Tape) Last() (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Len returns the number of stored entries.
func (t *Tape) Len() int {
	return len(t.entries)
}

// Limit returns the capacity.
func (t *Tape) Limit() int {
	return t.limit
}

// Reset drops every entry.
func (t *Tape) Reset() {
	t.entries = nil
}
