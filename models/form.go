package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTheme is returned when a theme name is neither light nor dark
var ErrUnknownTheme = errors.New("unknown theme")

// TransferMode selects whether a fungible amount or a single NFT is moved
type TransferMode int

const (
	TransferToken TransferMode = iota
	TransferNFT
)

func (m TransferMode) String() string {
	if m == TransferNFT {
		return "NFT"
	}
	return "Token"
}

// Toggle returns the other transfer mode
func (m TransferMode) Toggle() TransferMode {
	if m == TransferToken {
		return TransferNFT
	}
	return TransferToken
}

// Theme selects the active style bundle
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme resolves "light" or "dark" (case-insensitive)
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Side picks the source or destination half of the form
type Side int

const (
	SideSource Side = iota
	SideDest
)

func (s Side) String() string {
	if s == SideDest {
		return "destination"
	}
	return "source"
}

// FormState is the full current selection of the bridge form.
//
// SourceToken is always listed for SourceChain and DestToken for DestChain.
// Fields should be changed through the methods below so that invariant holds.
type FormState struct {
	SourceChain Chain
	DestChain   Chain
	SourceToken Token
	DestToken   Token
	Amount      string
	NFTID       string
	Mode        TransferMode
	Theme       Theme
}

// NewFormState returns the form as it appears when the view mounts
func NewFormState() FormState {
	f := FormState{
		Mode:  TransferToken,
		Theme: ThemeDark,
	}
	f.applyChain(SideSource, Ethereum)
	f.applyChain(SideDest, BinanceSmartChain)
	return f
}

// applyChain is the single place a chain is assigned. The side's token is
// re-derived from the new chain; nothing else is touched.
func (f *FormState) applyChain(side Side, c Chain) {
	if side == SideDest {
		f.DestChain = c
		f.DestToken = c.DefaultToken()
		return
	}
	f.SourceChain = c
	f.SourceToken = c.DefaultToken()
}

// Chain returns the chain currently selected on a side
func (f FormState) Chain(side Side) Chain {
	if side == SideDest {
		return f.DestChain
	}
	return f.SourceChain
}

// Token returns the token currently selected on a side
func (f FormState) Token(side Side) Token {
	if side == SideDest {
		return f.DestToken
	}
	return f.SourceToken
}

// SelectChain assigns a chain to a side and resets that side's token
func (f *FormState) SelectChain(side Side, c Chain) error {
	if !c.Valid() {
		return fmt.Errorf("select %s chain: %w: %d", side, ErrUnknownChain, int(c))
	}
	f.applyChain(side, c)
	return nil
}

// CycleChain moves a side's chain by delta positions through Chains, wrapping
func (f *FormState) CycleChain(side Side, delta int) {
	chains := Chains()
	next := wrapIndex(int(f.Chain(side)), delta, len(chains))
	f.applyChain(side, chains[next])
}

// SelectToken picks a token on a side; it must be listed for that side's chain
func (f *FormState) SelectToken(side Side, t Token) error {
	c := f.Chain(side)
	if !c.HasToken(t) {
		return fmt.Errorf("select %s token %s on %s: %w", side, t, c, ErrTokenNotOnChain)
	}
	if side == SideDest {
		f.DestToken = t
	} else {
		f.SourceToken = t
	}
	return nil
}

// CycleToken moves a side's token by delta positions through its chain's list
func (f *FormState) CycleToken(side Side, delta int) {
	c := f.Chain(side)
	tokens := chainTokens[c]
	i := tokenIndex(c, f.Token(side))
	if i < 0 {
		i = 0
	}
	// error is impossible: the token comes from the chain's own list
	_ = f.SelectToken(side, tokens[wrapIndex(i, delta, len(tokens))])
}

// SetAmount stores the amount text verbatim
func (f *FormState) SetAmount(amount string) {
	f.Amount = amount
}

// SetNFTID stores the NFT identifier text verbatim
func (f *FormState) SetNFTID(id string) {
	f.NFTID = id
}

// ToggleMode switches between token and NFT transfer. Amount and NFTID are kept.
func (f *FormState) ToggleMode() {
	f.Mode = f.Mode.Toggle()
}

// ToggleTheme switches between light and dark
func (f *FormState) ToggleTheme() {
	f.Theme = f.Theme.Toggle()
}

// Validate checks the chain/token invariant on both sides
func (f FormState) Validate() error {
	for _, side := range []Side{SideSource, SideDest} {
		c := f.Chain(side)
		if !c.Valid() {
			return fmt.Errorf("%s chain: %w: %d", side, ErrUnknownChain, int(c))
		}
		if !c.HasToken(f.Token(side)) {
			return fmt.Errorf("%s token %s on %s: %w", side, f.Token(side), c, ErrTokenNotOnChain)
		}
	}
	return nil
}
