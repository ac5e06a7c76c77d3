package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/csheth/calculadora/internal/calc"
)

type keypadLayout struct {
	windowWidth  int
	windowHeight int
	buttonWidth  int
	buttonHeight int
	tapeWidth    int
	tapeHeight   int
}

func newKeypadLayout() keypadLayout {
	return keypadLayout{
		buttonWidth:  9,
		buttonHeight: maxButtonHeight,
		tapeWidth:    tapePaneWidth,
		tapeHeight:   12,
	}
}

// Update sizes the buttons and the tape pane for a width×height window.
func (l *keypadLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height

	usable := width - viewportHorizontalPadding
	l.tapeWidth = 0
	if width >= tapePaneMinWindow {
		l.tapeWidth = tapePaneWidth
		usable -= tapePaneWidth + 2
	}
	l.buttonWidth = clamp((usable-(keypadColumns-1)*buttonGap)/keypadColumns, minButtonWidth, maxButtonWidth)

	// title + two bordered displays + status + help + outer padding
	const chrome = 1 + 3 + 3 + 1 + 1 + 2
	l.buttonHeight = clamp((height-chrome)/keypadRowsLen, 1, maxButtonHeight)

	l.tapeHeight = 3 + 3 + keypadRowsLen*l.buttonHeight - 2
	if l.tapeHeight < 3 {
		l.tapeHeight = 3
	}
}

// gridWidth is the width of one keypad row including gaps.
func (l keypadLayout) gridWidth() int {
	return keypadColumns*l.buttonWidth + (keypadColumns-1)*buttonGap
}

// buttonAt maps a point relative to the top-left corner of the keypad grid to
// a button position.
func (l keypadLayout) buttonAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= l.gridWidth() || l.buttonHeight <= 0 {
		return 0, 0, false
	}
	row = y / l.buttonHeight
	if row >= len(keypadRows) {
		return 0, 0, false
	}
	if len(keypadRows[row]) == 1 {
		return row, 0, true
	}
	cell := l.buttonWidth + buttonGap
	col = x / cell
	if x%cell >= l.buttonWidth || col >= len(keypadRows[row]) {
		return 0, 0, false
	}
	return row, col, true
}

// positionOf finds the grid position of k.
func positionOf(k calc.Key) (row, col int, ok bool) {
	for r, buttons := range keypadRows {
		for c, b := range buttons {
			if b.key == k {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// elideHead shortens value to width cells, keeping its tail. The newest
// digits of a long number or expression stay visible.
func elideHead(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	runes := []rune(value)
	budget := width - runewidth.StringWidth(tapeTruncateTail)
	var b strings.Builder
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}
	b.WriteString(tapeTruncateTail)
	b.WriteString(string(runes[start:]))
	return b.String()
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
