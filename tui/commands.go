package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EntranceFrameMsg drives the card's mount animation
type EntranceFrameMsg struct {
	At time.Time
}

// PulseFrameMsg drives a button's press feedback
type PulseFrameMsg struct {
	Target control
	Seq    int
}

// entranceStartCmd delivers the first frame immediately so the clock starts at mount
func entranceStartCmd() tea.Cmd {
	return func() tea.Msg {
		return EntranceFrameMsg{At: time.Now()}
	}
}

// entranceFrameCmd schedules the next entrance frame
func entranceFrameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return EntranceFrameMsg{At: t}
	})
}

// pulseFrameCmd schedules the next press-feedback frame
func pulseFrameCmd(target control, seq int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return PulseFrameMsg{Target: target, Seq: seq}
	})
}
