package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChain is returned when a chain name is not in the supported set
var ErrUnknownChain = errors.New("unknown chain")

// ErrTokenNotOnChain is returned when a token is not listed for a chain
var ErrTokenNotOnChain = errors.New("token not available on chain")

// Chain identifies one of the supported networks
type Chain int

const (
	Ethereum Chain = iota
	BinanceSmartChain
	Polygon
	Avalanche
	Solana
)

// Token is a symbol-identified asset on a chain
type Token string

var chainNames = [...]string{
	Ethereum:          "Ethereum",
	BinanceSmartChain: "Binance Smart Chain",
	Polygon:           "Polygon",
	Avalanche:         "Avalanche",
	Solana:            "Solana",
}

// First entry of each list is the chain's default token.
var chainTokens = [...][]Token{
	Ethereum:          {"ETH", "USDT", "USDC"},
	BinanceSmartChain: {"BNB", "BUSD", "CAKE"},
	Polygon:           {"MATIC", "USDT", "AAVE"},
	Avalanche:         {"AVAX", "USDT", "JOE"},
	Solana:            {"SOL", "USDC", "RAY"},
}

var chainAliases = map[string]Chain{
	"eth":   Ethereum,
	"bsc":   BinanceSmartChain,
	"bnb":   BinanceSmartChain,
	"matic": Polygon,
	"avax":  Avalanche,
	"sol":   Solana,
}

// Chains returns the supported chains in display order
func Chains() []Chain {
	return []Chain{Ethereum, BinanceSmartChain, Polygon, Avalanche, Solana}
}

// String returns the display name of the chain
func (c Chain) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Chain(%d)", int(c))
	}
	return chainNames[c]
}

// Valid reports whether c is one of the supported chains
func (c Chain) Valid() bool {
	return c >= Ethereum && c <= Solana
}

// DefaultToken returns the token selected when the chain is picked
func (c Chain) DefaultToken() Token {
	return chainTokens[c][0]
}

// HasToken reports whether t is listed for the chain
func (c Chain) HasToken(t Token) bool {
	return tokenIndex(c, t) >= 0
}

// TokensFor returns the ordered token list for a chain. The returned slice is
// a copy and may be modified by the caller.
func TokensFor(c Chain) []Token {
	if !c.Valid() {
		return nil
	}
	out := make([]Token, len(chainTokens[c]))
	copy(out, chainTokens[c])
	return out
}

// ParseChain resolves a display name or short alias to a Chain
func ParseChain(name string) (Chain, error) {
	trimmed := strings.TrimSpace(name)
	for _, c := range Chains() {
		if strings.EqualFold(trimmed, chainNames[c]) {
			return c, nil
		}
	}
	if c, ok := chainAliases[strings.ToLower(trimmed)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChain, name)
}

func tokenIndex(c Chain, t Token) int {
	if !c.Valid() {
		return -1
	}
	for i, candidate := range chainTokens[c] {
		if candidate == t {
			return i
		}
	}
	return -1
}

// wrapIndex steps i by delta inside [0, n) with wrap-around
func wrapIndex(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
