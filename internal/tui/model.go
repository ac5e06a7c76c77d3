package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/calculadora/internal/calc"
	"github.com/csheth/calculadora/internal/logger"
	"github.com/csheth/calculadora/internal/tape"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Context carries the logger. Nil means context.Background().
	Context context.Context
	// Engine applies the keypad transitions. Nil uses the default policy.
	Engine *calc.Engine
	// TapeSize caps the tape. Zero selects tape.DefaultLimit.
	TapeSize int
	// Clipboard receives copied results. Nil uses the system clipboard.
	Clipboard func(string) error
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	ctx := config.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithName(ctx, "keypad")

	engine := config.Engine
	if engine == nil {
		engine = calc.New(calc.Options{})
	}
	write := config.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	layout := newKeypadLayout()
	tapeView := viewport.New(tapeInnerWidth(layout.tapeWidth), layout.tapeHeight)
	tapeView.MouseWheelEnabled = true

	m := &model{
		ctx:         ctx,
		engine:      engine,
		state:       calc.Initial(),
		tape:        tape.New(config.TapeSize),
		clipboard:   write,
		keys:        newKeyMap(),
		help:        help.New(),
		layout:      layout,
		tapeView:    tapeView,
		tapeVisible: true,
		jobs:        newJobBus(ctx),
		running:     map[string]jobSnapshot{},
		infoMessage: "Type digits or move with the arrows and press space.",
	}
	m.refreshTape()
	return m
}

type model struct {
	ctx       context.Context
	engine    *calc.Engine
	state     calc.State
	tape      *tape.Tape
	clipboard func(string) error

	keys     keyMap
	help     help.Model
	layout   keypadLayout
	tapeView viewport.Model

	cursorRow    int
	cursorCol    int
	lastKey      calc.Key
	tapeVisible  bool
	infoMessage  string
	errorMessage string

	jobs    *jobBus
	running map[string]jobSnapshot
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = m.layout.gridWidth()
		m.tapeView.Width = tapeInnerWidth(m.layout.tapeWidth)
		m.tapeView.Height = m.layout.tapeHeight
		m.refreshTape()
		return m, nil
	case jobSignalMsg:
		m.running[msg.Snapshot.ID] = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		delete(m.running, msg.Snapshot.ID)
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case copyResultMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Copied %s to the clipboard.", msg.text)
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tape):
		m.tapeVisible = !m.tapeVisible
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd(m.state.Display)
	case key.Matches(msg, m.keys.CopyLast):
		last, ok := m.tape.Last()
		if !ok {
			m.errorMessage = "The tape is empty."
			return m, nil
		}
		return m, m.copyCmd(last.Result)
	case key.Matches(msg, m.keys.WipeTape):
		m.tape.Reset()
		m.refreshTape()
		m.errorMessage = ""
		m.infoMessage = "Tape wiped."
		logger.InfoKV(m.ctx, "tape wiped")
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Press):
		m.press(m.focused().key)
		return m, nil
	case key.Matches(msg, m.keys.Digit, m.keys.Decimal, m.keys.Operator, m.keys.Equals, m.keys.Clear):
		if k, ok := calcKey(msg); ok {
			m.press(k)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.MouseLeft {
		originX, originY := m.keypadOrigin()
		if row, col, ok := m.layout.buttonAt(msg.X-originX, msg.Y-originY); ok {
			m.cursorRow, m.cursorCol = row, col
			m.press(keypadRows[row][col].key)
		}
		return m, nil
	}
	if m.tapeVisible {
		var cmd tea.Cmd
		m.tapeView, cmd = m.tapeView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// press runs one keypad key through the engine. It is the only place the
// calculator state changes.
func (m *model) press(k calc.Key) {
	before := m.state
	m.state = m.engine.Press(m.state, k)
	m.lastKey = k
	m.errorMessage = ""
	if row, col, ok := positionOf(k); ok {
		m.cursorRow, m.cursorCol = row, col
	}
	logger.DebugKV(m.ctx, "key pressed", "key", k, "state", m.state.String())

	switch {
	case k == calc.KeyEquals && before.Pending():
		m.tape.Record(m.state.Expression, m.state.Display)
		m.refreshTape()
		m.infoMessage = fmt.Sprintf("= %s", m.state.Display)
		logger.InfoKV(m.ctx, "calculation finished", "expression", m.state.Expression)
	case k == calc.KeyClear:
		m.infoMessage = "Cleared."
	case k == calc.KeyEquals:
		m.infoMessage = "Nothing to evaluate yet."
	default:
		m.infoMessage = ""
	}
}

func (m *model) copyCmd(text string) tea.Cmd {
	return m.jobs.Start(jobKindCopy, copyTextJob(m.clipboard, text))
}

func (m *model) focused() button {
	row := keypadRows[m.cursorRow]
	col := m.cursorCol
	if col >= len(row) {
		col = len(row) - 1
	}
	return row[col]
}

// moveCursor keeps the column while crossing the single-button clear row so
// moving back up returns to the same column.
func (m *model) moveCursor(dRow, dCol int) {
	m.cursorRow = clamp(m.cursorRow+dRow, 0, len(keypadRows)-1)
	width := len(keypadRows[m.cursorRow])
	if dCol != 0 {
		col := m.cursorCol
		if col >= width {
			col = width - 1
		}
		m.cursorCol = clamp(col+dCol, 0, width-1)
	}
}

func (m *model) refreshTape() {
	m.tapeView.SetContent(m.tapeContent())
	m.tapeView.GotoBottom()
}

func tapeInnerWidth(paneWidth int) int {
	return clamp(paneWidth-tapeBoxStyle.GetHorizontalPadding(), 0, paneWidth)
}
