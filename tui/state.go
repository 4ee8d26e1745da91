package tui

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"nexus-bridge/models"
)

// control is a focusable element of the view
type control int

const (
	controlTheme control = iota
	controlConnectWallet
	controlMode
	controlFromChain
	controlToChain
	controlFromToken
	controlToToken
	controlAmount
	controlNFTID
	controlInitiate
)

func (c control) String() string {
	switch c {
	case controlTheme:
		return "theme"
	case controlConnectWallet:
		return "connect-wallet"
	case controlMode:
		return "mode"
	case controlFromChain:
		return "from-chain"
	case controlToChain:
		return "to-chain"
	case controlFromToken:
		return "from-token"
	case controlToToken:
		return "to-token"
	case controlAmount:
		return "amount"
	case controlNFTID:
		return "nft-id"
	case controlInitiate:
		return "initiate-bridge"
	}
	return "unknown"
}

// Options configures a Model
type Options struct {
	// Form is the mount-time state; nil means models.NewFormState()
	Form *models.FormState

	// SupportsNFT shows the token/NFT mode switch
	SupportsNFT bool

	Logger *log.Logger
	Rand   *rand.Rand
}

// Model represents the bridge view
type Model struct {
	form        models.FormState
	supportsNFT bool

	width  int
	height int

	focus       control
	amountInput textinput.Model
	nftInput    textinput.Model

	// Animation
	entrance      entrance
	walletPulse   pulse
	initiatePulse pulse
	pulseSeq      int

	keys   keyMap
	help   help.Model
	logger *log.Logger
	rng    *rand.Rand
}

// NewModel creates the view with its form in the mount-time state
func NewModel(opts Options) Model {
	form := models.NewFormState()
	if opts.Form != nil {
		form = *opts.Form
	}
	if !opts.SupportsNFT {
		form.Mode = models.TransferToken
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	amount := newFieldInput("Enter amount")
	amount.SetValue(form.Amount)
	nft := newFieldInput("Enter NFT ID")
	nft.SetValue(form.NFTID)

	m := Model{
		form:        form,
		supportsNFT: opts.SupportsNFT,
		focus:       controlFromChain,
		amountInput: amount,
		nftInput:    nft,
		keys:        newKeyMap(opts.SupportsNFT),
		help:        help.New(),
		logger:      logger,
		rng:         rng,
	}
	return m
}

func newFieldInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = columnWidth*2 - 2
	return ti
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	m.logger.Info("bridge view mounted",
		"from", m.form.SourceChain, "to", m.form.DestChain,
		"theme", m.form.Theme, "nft", m.supportsNFT)
	return entranceStartCmd()
}

// Form returns a copy of the current form state
func (m Model) Form() models.FormState {
	return m.form
}

// controls lists the focusable elements currently visible, in tab order
func (m Model) controls() []control {
	cs := []control{controlTheme, controlConnectWallet}
	if m.supportsNFT {
		cs = append(cs, controlMode)
	}
	cs = append(cs, controlFromChain, controlToChain)
	if m.form.Mode == models.TransferNFT {
		cs = append(cs, controlNFTID)
	} else {
		cs = append(cs, controlFromToken, controlToToken, controlAmount)
	}
	return append(cs, controlInitiate)
}

func (m Model) isVisible(c control) bool {
	for _, candidate := range m.controls() {
		if candidate == c {
			return true
		}
	}
	return false
}
