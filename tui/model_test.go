package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-bridge/models"
)

func newTestModel(supportsNFT bool) Model {
	return NewModel(Options{
		SupportsNFT: supportsNFT,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focusOn(t *testing.T, m Model, c control) Model {
	t.Helper()
	for i := 0; i < 20 && m.focus != c; i++ {
		m = send(m, keyOf(tea.KeyTab))
	}
	require.Equal(t, c, m.focus)
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(true)

	assert.Equal(t, models.NewFormState(), m.Form())
	assert.Equal(t, controlFromChain, m.focus)
	assert.False(t, m.amountInput.Focused())
	assert.False(t, m.nftInput.Focused())
}

func TestNewModel_ForcesTokenModeWithoutNFT(t *testing.T) {
	f := models.NewFormState()
	f.ToggleMode()

	m := NewModel(Options{Form: &f})
	assert.Equal(t, models.TransferToken, m.Form().Mode)
}

func TestInit_StartsEntrance(t *testing.T) {
	cmd := newTestModel(false).Init()
	require.NotNil(t, cmd)
	assert.IsType(t, EntranceFrameMsg{}, cmd())
}

func TestScenario_PolygonAmountSurvivesModeRoundTrip(t *testing.T) {
	m := newTestModel(true)

	// Ethereum → Binance Smart Chain → Polygon
	m = send(m, keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	assert.Equal(t, models.Polygon, m.Form().SourceChain)
	assert.Equal(t, models.Token("MATIC"), m.Form().SourceToken)
	assert.Equal(t, models.BinanceSmartChain, m.Form().DestChain)

	m = focusOn(t, m, controlAmount)
	m = send(m, typed("5"))
	assert.Equal(t, "5", m.Form().Amount)

	m = send(m, keyOf(tea.KeyCtrlN))
	assert.Equal(t, models.TransferNFT, m.Form().Mode)
	assert.False(t, m.isVisible(controlAmount))
	assert.True(t, m.isVisible(controlNFTID))
	assert.Equal(t, controlNFTID, m.focus)
	view := m.View()
	assert.NotContains(t, view, "Amount")
	assert.Contains(t, view, "NFT ID")

	m = send(m, keyOf(tea.KeyCtrlN))
	assert.Equal(t, models.TransferToken, m.Form().Mode)
	assert.Equal(t, controlAmount, m.focus)
	assert.Equal(t, "5", m.Form().Amount)
	assert.Equal(t, "5", m.amountInput.Value())
	assert.Contains(t, m.amountInput.View(), "5")
	assert.Contains(t, m.View(), "Amount")
}

func TestTokenSelectorsHiddenInNFTMode(t *testing.T) {
	m := newTestModel(true)
	m = focusOn(t, m, controlToToken)

	m = send(m, keyOf(tea.KeyCtrlN))
	assert.False(t, m.isVisible(controlFromToken))
	assert.False(t, m.isVisible(controlToToken))
	assert.Equal(t, controlNFTID, m.focus)

	view := m.View()
	assert.NotContains(t, view, "From Token")
	assert.NotContains(t, view, "To Token")
	assert.Contains(t, view, "From Chain")
}

func TestChainSelectors_OnlyTouchTheirSide(t *testing.T) {
	m := newTestModel(true)
	m = focusOn(t, m, controlAmount)
	m = send(m, typed("12"))
	m = focusOn(t, m, controlFromToken)
	m = send(m, keyOf(tea.KeyRight))
	require.Equal(t, models.Token("USDT"), m.Form().SourceToken)

	before := m.Form()
	m = focusOn(t, m, controlToChain)
	m = send(m, keyOf(tea.KeyLeft))

	after := m.Form()
	assert.Equal(t, models.Ethereum, after.DestChain)
	assert.Equal(t, models.Token("ETH"), after.DestToken)
	assert.Equal(t, before.SourceChain, after.SourceChain)
	assert.Equal(t, before.SourceToken, after.SourceToken)
	assert.Equal(t, before.Amount, after.Amount)
	assert.Equal(t, before.Mode, after.Mode)
	assert.Equal(t, before.Theme, after.Theme)
	require.NoError(t, after.Validate())
}

func TestTokenSelector_CyclesWithinChain(t *testing.T) {
	m := newTestModel(false)
	m = focusOn(t, m, controlToToken)

	m = send(m, keyOf(tea.KeyLeft))
	assert.Equal(t, models.Token("CAKE"), m.Form().DestToken)
	m = send(m, keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	assert.Equal(t, models.Token("BUSD"), m.Form().DestToken)
}

func TestThemeToggle_RoundTripsBundle(t *testing.T) {
	m := newTestModel(false)
	original := BundleFor(m.Form().Theme)

	m = send(m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, models.ThemeLight, m.Form().Theme)
	assert.NotSame(t, original, BundleFor(m.Form().Theme))

	m = send(m, keyOf(tea.KeyCtrlT))
	assert.Same(t, original, BundleFor(m.Form().Theme))
}

func TestThemeButton(t *testing.T) {
	m := newTestModel(false)
	before := m.Form()
	m = focusOn(t, m, controlTheme)

	m = send(m, keyOf(tea.KeyEnter))
	after := m.Form()
	assert.Equal(t, models.ThemeLight, after.Theme)

	after.Theme = before.Theme
	assert.Equal(t, before, after)
}

func TestModeSwitch_DisabledWithoutNFT(t *testing.T) {
	m := newTestModel(false)

	m = send(m, keyOf(tea.KeyCtrlN))
	assert.Equal(t, models.TransferToken, m.Form().Mode)
	assert.False(t, m.isVisible(controlMode))
	assert.NotContains(t, m.View(), "NFT")
}

func TestModeSwitch_FocusedControl(t *testing.T) {
	m := newTestModel(true)
	m = focusOn(t, m, controlMode)

	m = send(m, keyOf(tea.KeyRight))
	assert.Equal(t, models.TransferNFT, m.Form().Mode)
	assert.Equal(t, controlMode, m.focus)

	m = send(m, keyOf(tea.KeyEnter))
	assert.Equal(t, models.TransferToken, m.Form().Mode)
}

func TestArtwork_OnlyForSentinelID(t *testing.T) {
	m := newTestModel(true)
	m = send(m, keyOf(tea.KeyCtrlN))
	m = focusOn(t, m, controlNFTID)

	assert.Equal(t, 0, strings.Count(m.View(), artworkCaption), "empty id")

	m = send(m, typed("1"))
	require.Equal(t, "1", m.Form().NFTID)
	assert.Equal(t, 1, strings.Count(m.View(), artworkCaption))

	m = send(m, typed("1"))
	require.Equal(t, "11", m.Form().NFTID)
	assert.Equal(t, 0, strings.Count(m.View(), artworkCaption))

	m = send(m, keyOf(tea.KeyBackspace), keyOf(tea.KeyBackspace), typed("2"))
	require.Equal(t, "2", m.Form().NFTID)
	assert.Equal(t, 0, strings.Count(m.View(), artworkCaption))
}

func TestArtwork_NotShownInTokenMode(t *testing.T) {
	f := models.NewFormState()
	f.SetNFTID("1")
	m := NewModel(Options{Form: &f, SupportsNFT: true})

	assert.NotContains(t, m.View(), artworkCaption)
}

func TestAmount_AcceptsAnyText(t *testing.T) {
	m := newTestModel(false)
	m = focusOn(t, m, controlAmount)

	m = send(m, typed("abc"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, typed("1"))
	assert.Equal(t, "abc 1", m.Form().Amount)
}

func TestFocus_WrapsBothWays(t *testing.T) {
	m := newTestModel(false)
	cs := m.controls()

	m = focusOn(t, m, controlInitiate)
	m = send(m, keyOf(tea.KeyTab))
	assert.Equal(t, cs[0], m.focus)

	m = send(m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, controlInitiate, m.focus)

	m = send(m, keyOf(tea.KeyUp))
	assert.Equal(t, controlAmount, m.focus)
	assert.True(t, m.amountInput.Focused())
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := newTestModel(false).Update(keyOf(k))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowSize(t *testing.T) {
	m := send(newTestModel(false), tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	view := m.View()
	assert.Contains(t, view, "NexusBridge")
	assert.Contains(t, view, "Connect Wallet")
	assert.Contains(t, view, "Initiate Bridge")
}
