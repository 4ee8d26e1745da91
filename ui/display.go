package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"nexus-bridge/models"
)

var (
	titleColor  = color.New(color.FgMagenta, color.Bold)
	chainColor  = color.New(color.FgCyan, color.Bold)
	tokenColor  = color.New(color.FgYellow)
	defaultMark = color.New(color.FgGreen)
	ruleColor   = color.New(color.FgHiBlack)
)

// ChainListing is the JSON shape of one catalogue entry
type ChainListing struct {
	Chain        string   `json:"chain"`
	DefaultToken string   `json:"default_token"`
	Tokens       []string `json:"tokens"`
}

// Catalogue returns the chain/token catalogue in display order
func Catalogue() []ChainListing {
	chains := models.Chains()
	out := make([]ChainListing, 0, len(chains))
	for _, c := range chains {
		tokens := models.TokensFor(c)
		symbols := make([]string, len(tokens))
		for i, t := range tokens {
			symbols[i] = string(t)
		}
		out = append(out, ChainListing{
			Chain:        c.String(),
			DefaultToken: string(c.DefaultToken()),
			Tokens:       symbols,
		})
	}
	return out
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer) {
	titleColor.Fprintln(w, "NexusBridge")
	ruleColor.Fprintln(w, "Cross-chain bridge preview. No wallet or network access.")
}

// PrintCatalogue prints every supported chain with its tokens
func PrintCatalogue(w io.Writer, listings []ChainListing) {
	rule := strings.Repeat("=", 48)

	fmt.Fprintln(w)
	ruleColor.Fprintln(w, rule)
	titleColor.Fprintln(w, "               SUPPORTED CHAINS")
	ruleColor.Fprintln(w, rule)

	for _, l := range listings {
		fmt.Fprintln(w)
		chainColor.Fprintln(w, l.Chain)
		ruleColor.Fprintln(w, strings.Repeat("-", 48))
		for _, symbol := range l.Tokens {
			line := "  " + tokenColor.Sprintf("%-8s", symbol)
			if symbol == l.DefaultToken {
				line += " " + defaultMark.Sprint("default")
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
	ruleColor.Fprintln(w, rule)
	fmt.Fprintf(w, "\nTotal: %d chains\n\n", len(listings))
}
