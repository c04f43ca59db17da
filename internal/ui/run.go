package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"compsim/internal/pipeline"
)

// RunProgress renders the progress view until events is closed.
func RunProgress(title string, files []string, events <-chan pipeline.Event, out io.Writer) error {
	prog := tea.NewProgram(
		NewProgressModel(title, files, events),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)
	_, err := prog.Run()
	return err
}
