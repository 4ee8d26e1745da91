package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"nexus-bridge/config"
	"nexus-bridge/tui"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "nexus-bridge",
	Short: "A terminal preview of a cross-chain bridge form",
	Long: `nexus-bridge renders an interactive cross-chain bridge form in the terminal.
Pick a source and destination chain, a token or NFT and an amount. The
"Connect Wallet" and "Initiate Bridge" buttons give visual feedback only;
nothing is signed or sent.

Examples:
  nexus-bridge
  nexus-bridge --theme light --from polygon --to solana
  nexus-bridge --nft --log-file bridge.log
  nexus-bridge chains --json`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBridge,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $HOME/.nexus-bridge.yaml)")
	addBridgeFlags(rootCmd.Flags())
}

// addBridgeFlags registers the launch options of the interactive view
func addBridgeFlags(flags *pflag.FlagSet) {
	flags.String("theme", config.Default.Theme, "Initial theme: light or dark")
	flags.String("from", config.Default.FromChain, "Initial source chain")
	flags.String("to", config.Default.ToChain, "Initial destination chain")
	flags.Bool("nft", config.Default.SupportsNFT, "Enable the token/NFT transfer switch")
	flags.String("log-file", config.Default.LogFile, "Write logs to this file")
	flags.Bool("alt-screen", config.Default.AltScreen, "Use the terminal's alternate screen")
}

// loadConfig binds command flags over file and environment values
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	bindings := map[string]string{
		"theme":      "theme",
		"from_chain": "from",
		"to_chain":   "to",
		"nft":        "nft",
		"log_file":   "log-file",
		"alt_screen": "alt-screen",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}
	return config.Load(v, configFile)
}

// newLogger writes to path, or discards everything when path is empty.
// The returned closer must be called when the program exits.
func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "nexus-bridge",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

func runBridge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	form, err := cfg.InitialForm()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	return tui.Run(tui.Options{
		Form:        &form,
		SupportsNFT: cfg.SupportsNFT,
		Logger:      logger,
	}, tui.RunOptions{AltScreen: cfg.AltScreen})
}
