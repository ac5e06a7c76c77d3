package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/calculadora/internal/calc"
)

func (m *model) View() string {
	column := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.expressionView(),
		m.displayView(),
		m.keypadView(),
		m.statusView(),
		m.help.View(m.keys),
	)
	if m.tapeVisible && m.layout.tapeWidth > 0 {
		column = lipgloss.JoinHorizontal(lipgloss.Top, column, "  ", m.tapePaneView())
	}
	return appStyle.Render(column)
}

// keypadOrigin returns the screen cell of the keypad's top-left corner. It
// measures the same blocks View stacks above the grid.
func (m *model) keypadOrigin() (int, int) {
	x := appStyle.GetPaddingLeft()
	y := appStyle.GetPaddingTop() +
		lipgloss.Height(m.headerView()) +
		lipgloss.Height(m.expressionView()) +
		lipgloss.Height(m.displayView())
	return x, y
}

func (m *model) headerView() string {
	return titleStyle.Render(appTitle)
}

func (m *model) expressionView() string {
	return m.fieldView(expressionBoxStyle, m.state.Expression)
}

func (m *model) displayView() string {
	return m.fieldView(displayBoxStyle, m.state.Display)
}

func (m *model) fieldView(style lipgloss.Style, value string) string {
	outer := m.layout.gridWidth() - style.GetHorizontalBorderSize()
	inner := outer - style.GetHorizontalPadding()
	return style.Width(outer).Render(elideHead(value, inner))
}

func (m *model) keypadView() string {
	focus := m.focused()
	rows := make([]string, 0, len(keypadRows))
	for r, buttons := range keypadRows {
		cells := make([]string, 0, 2*len(buttons))
		for c, b := range buttons {
			width := m.layout.buttonWidth
			if len(buttons) == 1 {
				width = m.layout.gridWidth()
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", buttonGap))
			}
			focused := r == m.cursorRow && b.key == focus.key
			cells = append(cells, renderButton(b, width, m.layout.buttonHeight, focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderButton(b button, width, height int, focused bool) string {
	style := buttonStyle(b.kind)
	if focused {
		style = style.Foreground(focusForeground).Background(focusBackground).Bold(true)
	}
	return style.
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.label)
}

func buttonStyle(kind buttonKind) lipgloss.Style {
	switch kind {
	case buttonOperator:
		return operatorButtonStyle
	case buttonEquals:
		return equalsButtonStyle
	case buttonClear:
		return clearButtonStyle
	default:
		return digitButtonStyle
	}
}

func (m *model) statusView() string {
	stats := []string{}
	if m.lastKey != "" {
		stats = append(stats, fmt.Sprintf("key %s", keyLabel(m.lastKey)))
	}
	if m.state.Pending() {
		stats = append(stats, fmt.Sprintf("pending %s %s", calc.FormatNumber(m.state.Operand), m.state.Operator.Glyph()))
	}
	stats = append(stats,
		fmt.Sprintf("tape %d/%d", m.tape.Len(), m.tape.Limit()),
		fmt.Sprintf("repeat %s", m.engine.Repeat()),
	)
	if len(m.running) > 0 {
		stats = append(stats, "copying…")
	}
	parts := []string{statusBarStyle.Render(strings.Join(stats, " • "))}

	wrap := m.layout.gridWidth()
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(wordwrap.String(m.errorMessage, wrap)))
	} else if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(wordwrap.String(m.infoMessage, wrap)))
	}
	return strings.Join(parts, "\n")
}

func (m *model) tapePaneView() string {
	header := sectionHeaderStyle.Render("Tape")
	return tapeBoxStyle.Render(header + "\n" + m.tapeView.View())
}

func (m *model) tapeContent() string {
	entries := m.tape.Entries()
	if len(entries) == 0 {
		return helperStyle.Render("No calculations yet.")
	}
	width := m.tapeView.Width
	if width <= 0 {
		width = tapePaneWidth
	}
	exprWidth := clamp(width-len(tapeTimeLayout)-1, 1, width)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		stamp := helperStyle.Render(entry.At.Format(tapeTimeLayout))
		expr := truncate.StringWithTail(entry.Expression, uint(exprWidth), tapeTruncateTail)
		lines = append(lines, stamp+" "+expr)
	}
	return strings.Join(lines, "\n")
}

func keyLabel(k calc.Key) string {
	if op, ok := k.Operator(); ok {
		return op.Glyph()
	}
	if k == calc.KeyClear {
		return "Clear"
	}
	return string(k)
}
