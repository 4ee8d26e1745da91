package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"nexus-bridge/models"
)

var (
	// Brand colors shared by both themes
	gradientFrom = "#C084FC" // purple-400
	gradientTo   = "#DB2777" // pink-600
	accentColor  = lipgloss.Color("#9333EA")
	buttonText   = lipgloss.Color("#FFFFFF")
	mutedColor   = lipgloss.Color("#9CA3AF")

	// Layout widths
	cardWidth   = 62
	columnWidth = 24

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	focusedMarkerStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)
)

// palette holds the raw colors a Bundle is built from
type palette struct {
	background string
	text       string
	card       string
	input      string
	button     string
	border     string
	shadow     string
}

var lightPalette = palette{
	background: "#FAF5FF",
	text:       "#1F2937",
	card:       "#FFFFFF",
	input:      "#F3F4F6",
	button:     "#9333EA",
	border:     "#E9D5FF",
	shadow:     "#DDD6FE",
}

var darkPalette = palette{
	background: "#111827",
	text:       "#F3F4F6",
	card:       "#1F2937",
	input:      "#374151",
	button:     "#9333EA",
	border:     "#6B21A8",
	shadow:     "#3B0764",
}

// Bundle is the set of style tokens every presentational element reads from
type Bundle struct {
	Name       string
	Background lipgloss.Style
	Text       lipgloss.Style
	Card       lipgloss.Style
	Input      lipgloss.Style
	Button     lipgloss.Style
	Border     lipgloss.Style
	Shadow     lipgloss.Style

	palette palette
}

func newBundle(name string, p palette) Bundle {
	return Bundle{
		Name: name,
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(p.background)).
			Foreground(lipgloss.Color(p.text)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)),
		Card: lipgloss.NewStyle().
			Width(cardWidth).
			Padding(1, 2).
			Background(lipgloss.Color(p.card)).
			Foreground(lipgloss.Color(p.text)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			BorderBackground(lipgloss.Color(p.background)),
		Input: lipgloss.NewStyle().
			Width(columnWidth).
			Padding(0, 1).
			Background(lipgloss.Color(p.input)).
			Foreground(lipgloss.Color(p.text)),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Background(lipgloss.Color(p.button)).
			Foreground(buttonText).
			Bold(true),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.border)),
		Shadow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.shadow)),
		palette: p,
	}
}

// Indexed by models.Theme so only the two themes can be looked up.
var bundles = [...]Bundle{
	models.ThemeLight: newBundle("light", lightPalette),
	models.ThemeDark:  newBundle("dark", darkPalette),
}

// BundleFor returns the style bundle for a theme. The pointer is stable for
// the life of the process.
func BundleFor(t models.Theme) *Bundle {
	return &bundles[t]
}

// faded returns a copy of b with every color blended toward the page
// background. opacity 0 is invisible, 1 is b itself.
func (b *Bundle) faded(opacity float64) Bundle {
	if opacity >= 1 {
		return *b
	}
	p := b.palette
	bg := p.background
	return newBundle(b.Name, palette{
		background: bg,
		text:       blendHex(bg, p.text, opacity),
		card:       blendHex(bg, p.card, opacity),
		input:      blendHex(bg, p.input, opacity),
		button:     blendHex(bg, p.button, opacity),
		border:     blendHex(bg, p.border, opacity),
		shadow:     blendHex(bg, p.shadow, opacity),
	})
}

// blendHex mixes two hex colors in Lab space; t=0 gives from, t=1 gives to
func blendHex(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	if t <= 0 {
		return a.Hex()
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

// gradientText colors each rune of s along a from→to gradient
func gradientText(s string, from, to string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	var out strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		out.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(blendHex(from, to, t))).
			Bold(true).
			Render(string(r)))
	}
	return out.String()
}
