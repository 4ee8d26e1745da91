package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nexus-bridge/models"
)

// View implements tea.Model. It is a function of the form state, the
// capability flag and the animation progress.
func (m Model) View() string {
	page := BundleFor(m.form.Theme)
	card := page.faded(m.entrance.opacity())

	sections := []string{m.viewHeader(page)}
	if off := m.entrance.offset(); off > 0 {
		// a block of n-1 newlines occupies n rows
		sections = append(sections, strings.Repeat("\n", off-1))
	}
	sections = append(sections,
		m.viewCard(&card),
		m.viewFooter(),
		helpStyle.Render(m.help.View(m.keys)),
	)
	return m.renderPage(page, lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// renderPage paints the theme background across the window when its size is known
func (m Model) renderPage(b *Bundle, content string) string {
	if m.width <= 0 || m.height <= 0 {
		return b.Background.Render(content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top,
		b.Background.Render(content),
		lipgloss.WithWhitespaceBackground(b.Background.GetBackground()))
}

func (m Model) viewHeader(b *Bundle) string {
	brand := gradientText("NexusBridge", gradientFrom, gradientTo)

	// moon offers light→dark, sun offers dark→light
	icon := "☾"
	if m.form.Theme == models.ThemeDark {
		icon = "☀"
	}
	themeBtn := m.marker(controlTheme) + b.Input.Width(0).Render(icon)

	wallet := m.renderButton(b, "Connect Wallet", controlConnectWallet, m.walletPulse)

	gap := cardWidth + 4 - lipgloss.Width(brand) - lipgloss.Width(themeBtn) - lipgloss.Width(wallet) - 1
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		brand, strings.Repeat(" ", gap), themeBtn, " ", wallet) + "\n"
}

func (m Model) viewCard(b *Bundle) string {
	var s strings.Builder

	bg := b.palette.background
	opacity := m.entrance.opacity()
	title := gradientText("Cross-Chain Bridge",
		blendHex(bg, gradientFrom, opacity), blendHex(bg, gradientTo, opacity))
	s.WriteString(title + "\n\n")

	if m.supportsNFT {
		s.WriteString(m.viewModeSwitch(b) + "\n\n")
	}

	s.WriteString(m.viewPair(b,
		"From Chain", m.form.SourceChain.String(), controlFromChain,
		"To Chain", m.form.DestChain.String(), controlToChain,
		"⇄") + "\n\n")

	if m.form.Mode == models.TransferToken {
		s.WriteString(m.viewPair(b,
			"From Token", string(m.form.SourceToken), controlFromToken,
			"To Token", string(m.form.DestToken), controlToToken,
			" ") + "\n\n")
		s.WriteString(m.viewTextField(b, "Amount", m.amountInput.View(), controlAmount) + "\n\n")
	} else {
		s.WriteString(m.viewTextField(b, "NFT ID", m.nftInput.View(), controlNFTID) + "\n\n")
		if art, ok := renderArtwork(m.form.NFTID, m.rng, b.Border); ok {
			s.WriteString(lipgloss.PlaceHorizontal(cardWidth-4, lipgloss.Center, art) + "\n\n")
		}
	}

	eta := "◷ Est. Time: 5 mins"
	fee := "⚡ Fee: 0.1%"
	spacer := cardWidth - 4 - lipgloss.Width(eta) - lipgloss.Width(fee)
	if spacer < 1 {
		spacer = 1
	}
	s.WriteString(helpStyle.Render(eta+strings.Repeat(" ", spacer)+fee) + "\n\n")

	initiate := m.renderButton(b, "Initiate Bridge", controlInitiate, m.initiatePulse)
	s.WriteString(lipgloss.PlaceHorizontal(cardWidth-4, lipgloss.Center, initiate))

	cardBox := b.Card.Render(s.String())
	shadow := b.Shadow.Render(" " + strings.Repeat("▀", lipgloss.Width(cardBox)-1))
	return lipgloss.JoinVertical(lipgloss.Left, cardBox, shadow)
}

func (m Model) viewModeSwitch(b *Bundle) string {
	render := func(label string, mode models.TransferMode) string {
		if m.form.Mode == mode {
			return b.Button.Render(label)
		}
		return b.Input.Width(0).Padding(0, 2).Render(label)
	}
	toggle := render("Token", models.TransferToken) + render("NFT", models.TransferNFT)
	return m.marker(controlMode) + toggle
}

// viewPair renders two labelled selectors side by side with a separator glyph
func (m Model) viewPair(b *Bundle,
	leftLabel, leftValue string, leftCtl control,
	rightLabel, rightValue string, rightCtl control,
	sep string,
) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(leftLabel), m.renderSelector(b, leftValue, leftCtl))
	right := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(rightLabel), m.renderSelector(b, rightValue, rightCtl))
	mid := lipgloss.NewStyle().
		Foreground(accentColor).
		Padding(1, 2, 0).
		Render(sep)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}

func (m Model) renderSelector(b *Bundle, value string, c control) string {
	style := b.Input
	if m.focus == c {
		style = style.Foreground(accentColor).Bold(true)
		return m.marker(c) + style.Render("‹ "+value+" ›")
	}
	return m.marker(c) + style.Render("  "+value+" ▾")
}

func (m Model) viewTextField(b *Bundle, label, input string, c control) string {
	field := b.Input.Width(columnWidth*2 + 4).Render(input)
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(label), m.marker(c)+field)
}

func (m Model) renderButton(b *Bundle, label string, c control, p pulse) string {
	style := b.Button
	if p.pressed() {
		style = style.Reverse(true)
	}
	if m.focus == c {
		style = style.Underline(true)
	}
	return m.marker(c) + style.Render(label)
}

// marker is the one-column focus indicator in front of every control
func (m Model) marker(c control) string {
	if m.focus == c {
		return focusedMarkerStyle.Render("›")
	}
	return " "
}

func (m Model) viewFooter() string {
	links := []string{"About", "FAQ", "Support"}
	return "\n" + helpStyle.Render(strings.Join(links, "  ·  "))
}
