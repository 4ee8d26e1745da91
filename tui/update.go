package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case EntranceFrameMsg:
		return m.handleEntranceFrame(msg)
	case PulseFrameMsg:
		return m.handlePulseFrame(msg)
	}

	return m, nil
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleKeyMessage applies global keys first, then delegates to the focused control
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("bridge view closed")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme(), nil
	case key.Matches(msg, m.keys.Mode):
		return m.toggleMode()
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	switch m.focus {
	case controlTheme:
		return m.updateThemeButton(msg)
	case controlConnectWallet, controlInitiate:
		return m.updateButton(msg)
	case controlMode:
		return m.updateModeSwitch(msg)
	case controlFromChain, controlToChain:
		return m.updateChainSelector(msg)
	case controlFromToken, controlToToken:
		return m.updateTokenSelector(msg)
	case controlAmount, controlNFTID:
		return m.updateTextInput(msg)
	}

	return m, nil
}

// handleEntranceFrame advances the mount animation; frames after it finishes are dropped
func (m Model) handleEntranceFrame(msg EntranceFrameMsg) (Model, tea.Cmd) {
	if m.entrance.done {
		return m, nil
	}
	m.entrance = m.entrance.advance(msg.At)
	if m.entrance.done {
		m.logger.Debug("entrance animation finished")
		return m, nil
	}
	return m, entranceFrameCmd()
}

// handlePulseFrame steps a button's press spring until it settles
func (m Model) handlePulseFrame(msg PulseFrameMsg) (Model, tea.Cmd) {
	p := m.pulseFor(msg.Target)
	if p == nil || !p.active || p.seq != msg.Seq {
		return m, nil
	}
	*p = p.step()
	if !p.active {
		return m, nil
	}
	return m, pulseFrameCmd(msg.Target, msg.Seq)
}

// pulseFor returns the press spring owned by a button control
func (m *Model) pulseFor(c control) *pulse {
	switch c {
	case controlConnectWallet:
		return &m.walletPulse
	case controlInitiate:
		return &m.initiatePulse
	}
	return nil
}
