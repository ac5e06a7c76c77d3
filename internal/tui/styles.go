package tui

import "github.com/charmbracelet/lipgloss"

var (
	digitColor    = lipgloss.Color("#ab8507")
	operatorColor = lipgloss.Color("#54112b")
	equalsColor   = lipgloss.Color("#ab3c59")
	clearColor    = lipgloss.Color("#870319")
	fieldColor    = lipgloss.Color("#595957")
	textColor     = lipgloss.Color("#ffffff")

	focusForeground = lipgloss.Color("#0f0f0f")
	focusBackground = lipgloss.Color("#ffd166")
)

var (
	appStyle            = lipgloss.NewStyle().Padding(1, 2)
	titleStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd166"))
	sectionHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusBarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	expressionBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(fieldColor).Foreground(textColor).Padding(0, 1).Align(lipgloss.Right)
	displayBoxStyle     = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(fieldColor).Foreground(textColor).Bold(true).Padding(0, 1).Align(lipgloss.Right)
	digitButtonStyle    = lipgloss.NewStyle().Foreground(textColor).Background(digitColor)
	operatorButtonStyle = lipgloss.NewStyle().Foreground(textColor).Background(operatorColor).Bold(true)
	equalsButtonStyle   = lipgloss.NewStyle().Foreground(textColor).Background(equalsColor).Bold(true)
	clearButtonStyle    = lipgloss.NewStyle().Foreground(textColor).Background(clearColor)
	tapeBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
)
