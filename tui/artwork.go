package tui

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	artworkSentinel = "1"
	artworkSize     = 8
	artworkCell     = "██"
	artworkCaption  = "Preview · NFT #1"
)

// Five color families, light to dark.
var artworkFamilies = [5][]string{
	{"#E9D5FF", "#D8B4FE", "#C084FC", "#A855F7", "#9333EA", "#7E22CE"}, // purple
	{"#FBCFE8", "#F9A8D4", "#F472B6", "#EC4899", "#DB2777", "#BE185D"}, // pink
	{"#BFDBFE", "#93C5FD", "#60A5FA", "#3B82F6", "#2563EB", "#1D4ED8"}, // blue
	{"#BBF7D0", "#86EFAC", "#4ADE80", "#22C55E", "#16A34A", "#15803D"}, // green
	{"#FEF08A", "#FDE047", "#FACC15", "#EAB308", "#CA8A04", "#A16207"}, // yellow
}

// renderArtwork draws the placeholder grid for the sentinel NFT id. It reports
// false and renders nothing for any other id. Colors are random on every call.
func renderArtwork(nftID string, r *rand.Rand, border lipgloss.Style) (string, bool) {
	if nftID != artworkSentinel {
		return "", false
	}

	rows := make([]string, 0, artworkSize)
	for y := 0; y < artworkSize; y++ {
		var row strings.Builder
		for x := 0; x < artworkSize; x++ {
			family := artworkFamilies[r.IntN(len(artworkFamilies))]
			shade := family[r.IntN(len(family))]
			row.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(shade)).
				Render(artworkCell))
		}
		rows = append(rows, row.String())
	}

	grid := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border.GetForeground()).
		Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Center, grid, helpStyle.Render(artworkCaption)), true
}
