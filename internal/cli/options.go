package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. INQUIRE_FORMAT.
const EnvPrefix = "INQUIRE"

// Output formats for collected answers.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Exit codes shared by the commands.
const (
	ExitOK        = 0
	ExitDeclined  = 1
	ExitFailure   = 2
	ExitCancelled = 130
)

// Options is the resolved configuration of one CLI invocation.
type Options struct {
	Format      string `mapstructure:"format"`
	Debug       bool   `mapstructure:"debug"`
	NoColor     bool   `mapstructure:"no_color"`
	MetricsFile string `mapstructure:"metrics_file"`
	Banner      bool   `mapstructure:"banner"`
}

// NewConfig creates a viper instance reading INQUIRE_* variables and an
// optional inquire.yaml in the working directory.
func NewConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName("inquire")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("format", FormatJSON)
	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)
	v.SetDefault("metrics_file", "")
	v.SetDefault("banner", false)
	return v
}

// LoadOptions reads the config file, if any, and decodes the settings.
// Flags must already be bound to v.
func LoadOptions(v *viper.Viper) (Options, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Options{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("failed to decode config: %w", err)
	}

	switch opts.Format {
	case FormatJSON, FormatYAML:
	default:
		return Options{}, fmt.Errorf("unknown format %q (want %s or %s)", opts.Format, FormatJSON, FormatYAML)
	}
	return opts, nil
}
