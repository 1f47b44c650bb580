package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until the user quits or the
// options' context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	ctrl := m.Search().Controller()
	defer ctrl.Unmount()

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	ctrl.SetDispatcher(p.Send)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
