package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type copyResultMsg struct {
	text string
	err  error
}

func copyTextJob(write func(string) error, text string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		if err := write(text); err != nil {
			return copyResultMsg{text: text, err: err}, err
		}
		return copyResultMsg{text: text}, nil
	}
}
