// Package bubbletea hosts a morebutton.Button in a Bubble Tea TUI.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the tick rate while something animates.
const frameInterval = time.Second / 60

// Run shows the toolbar full screen with mouse reporting on, so clicks on the
// icon reach the button. It blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// FrameMsg advances the player and the animator to Time.
type FrameMsg struct {
	Time time.Time
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}
