package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"nexus-bridge/models"
)

// Config holds the launch options for the bridge view
type Config struct {
	Theme       string `mapstructure:"theme" yaml:"theme"`
	FromChain   string `mapstructure:"from_chain" yaml:"from_chain"`
	ToChain     string `mapstructure:"to_chain" yaml:"to_chain"`
	SupportsNFT bool   `mapstructure:"nft" yaml:"nft"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	AltScreen   bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// Default mirrors the form's mount-time defaults
var Default = Config{
	Theme:       "dark",
	FromChain:   models.Ethereum.String(),
	ToChain:     models.BinanceSmartChain.String(),
	SupportsNFT: false,
	AltScreen:   true,
}

// Load reads configuration from defaults, an optional config file and
// NEXUS_BRIDGE_* environment variables. Values already bound to v (for
// example from command flags) take precedence.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".nexus-bridge")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	v.SetDefault("theme", Default.Theme)
	v.SetDefault("from_chain", Default.FromChain)
	v.SetDefault("to_chain", Default.ToChain)
	v.SetDefault("nft", Default.SupportsNFT)
	v.SetDefault("log_file", Default.LogFile)
	v.SetDefault("alt_screen", Default.AltScreen)

	v.SetEnvPrefix("NEXUS_BRIDGE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit file must exist; the search paths are optional
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that theme and chain names are known
func (c *Config) Validate() error {
	if _, err := models.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	if _, err := models.ParseChain(c.FromChain); err != nil {
		return fmt.Errorf("invalid from_chain: %w", err)
	}
	if _, err := models.ParseChain(c.ToChain); err != nil {
		return fmt.Errorf("invalid to_chain: %w", err)
	}
	return nil
}

// InitialForm builds the mount-time form state from the configuration.
// Tokens are always the chains' defaults.
func (c *Config) InitialForm() (models.FormState, error) {
	if err := c.Validate(); err != nil {
		return models.FormState{}, err
	}
	f := models.NewFormState()

	theme, _ := models.ParseTheme(c.Theme)
	f.Theme = theme

	from, _ := models.ParseChain(c.FromChain)
	to, _ := models.ParseChain(c.ToChain)
	if err := f.SelectChain(models.SideSource, from); err != nil {
		return models.FormState{}, err
	}
	if err := f.SelectChain(models.SideDest, to); err != nil {
		return models.FormState{}, err
	}
	return f, nil
}
