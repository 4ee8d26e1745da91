package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nexus-bridge/models"
)

// moveFocus steps focus through the visible controls, wrapping at both ends
func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	cs := m.controls()
	idx := 0
	for i, c := range cs {
		if c == m.focus {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(cs) + len(cs)) % len(cs)
	return m.setFocus(cs[idx])
}

// setFocus moves focus and keeps the text inputs' cursor state in step with it
func (m Model) setFocus(c control) (Model, tea.Cmd) {
	m.focus = c
	var cmd tea.Cmd
	switch c {
	case controlAmount:
		m.nftInput.Blur()
		cmd = m.amountInput.Focus()
	case controlNFTID:
		m.amountInput.Blur()
		cmd = m.nftInput.Focus()
	default:
		m.amountInput.Blur()
		m.nftInput.Blur()
	}
	return m, cmd
}

// clampFocus moves focus off a control hidden by a mode switch
func (m Model) clampFocus() (Model, tea.Cmd) {
	if m.isVisible(m.focus) {
		return m, nil
	}
	switch m.focus {
	case controlFromToken, controlToToken, controlAmount:
		return m.setFocus(controlNFTID)
	case controlNFTID:
		return m.setFocus(controlAmount)
	}
	return m.setFocus(controlFromChain)
}

func (m Model) toggleTheme() Model {
	m.form.ToggleTheme()
	m.logger.Info("theme toggled", "theme", m.form.Theme)
	return m
}

func (m Model) toggleMode() (Model, tea.Cmd) {
	if !m.supportsNFT {
		return m, nil
	}
	m.form.ToggleMode()
	m.logger.Info("transfer mode toggled", "mode", m.form.Mode)
	return m.clampFocus()
}

// press starts the feedback pulse on an inert button
func (m Model) press(c control) (Model, tea.Cmd) {
	p := m.pulseFor(c)
	if p == nil {
		return m, nil
	}
	m.pulseSeq++
	*p = p.press(m.pulseSeq)
	m.logger.Info("button pressed", "button", c)
	return m, pulseFrameCmd(c, m.pulseSeq)
}

func (m Model) updateThemeButton(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Press) {
		return m.toggleTheme(), nil
	}
	return m, nil
}

func (m Model) updateButton(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Press) {
		return m.press(m.focus)
	}
	return m, nil
}

func (m Model) updateModeSwitch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Press),
		key.Matches(msg, m.keys.Left),
		key.Matches(msg, m.keys.Right):
		return m.toggleMode()
	}
	return m, nil
}

func (m Model) updateChainSelector(msg tea.KeyMsg) (Model, tea.Cmd) {
	side := models.SideSource
	if m.focus == controlToChain {
		side = models.SideDest
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.form.CycleChain(side, -1)
	case key.Matches(msg, m.keys.Right):
		m.form.CycleChain(side, 1)
	default:
		return m, nil
	}
	m.logger.Info("chain selected", "side", side,
		"chain", m.form.Chain(side), "token", m.form.Token(side))
	return m, nil
}

func (m Model) updateTokenSelector(msg tea.KeyMsg) (Model, tea.Cmd) {
	side := models.SideSource
	if m.focus == controlToToken {
		side = models.SideDest
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.form.CycleToken(side, -1)
	case key.Matches(msg, m.keys.Right):
		m.form.CycleToken(side, 1)
	default:
		return m, nil
	}
	m.logger.Info("token selected", "side", side, "token", m.form.Token(side))
	return m, nil
}

// updateTextInput forwards keys to the focused input and copies its value
// into the form. The text is stored as typed.
func (m Model) updateTextInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == controlNFTID {
		m.nftInput, cmd = m.nftInput.Update(msg)
		m.form.SetNFTID(m.nftInput.Value())
		m.logger.Debug("nft id edited", "value", m.form.NFTID)
		return m, cmd
	}
	m.amountInput, cmd = m.amountInput.Update(msg)
	m.form.SetAmount(m.amountInput.Value())
	m.logger.Debug("amount edited", "value", m.form.Amount)
	return m, cmd
}
