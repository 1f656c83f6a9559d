// Package config loads harness settings from flags, environment, an optional
// YAML file and a .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by Load. Environment variables use the DIPERF_ prefix,
// e.g. DIPERF_ROUNDS.
const (
	KeyRounds      = "rounds"
	KeyFormat      = "format"
	KeyOut         = "out"
	KeyMetricsFile = "metrics_file"
	KeyOnly        = "only"
	KeyDebug       = "debug"
	KeyLogFile     = "log_file"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatJSON     = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatMarkdown, FormatText, FormatJSON}

// Config is the resolved harness configuration.
type Config struct {
	Rounds      int
	Format      string
	Out         string
	MetricsFile string
	Only        []string
	Debug       bool
	LogFile     string
}

// New returns a viper instance with defaults and environment binding set up.
// Callers bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DIPERF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRounds, 100)
	v.SetDefault(KeyFormat, FormatMarkdown)
	v.SetDefault(KeyOut, "")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyOnly, []string{})
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "")
	return v
}

// Load reads cfgFile (or ./diperf.yaml when empty and present) into v and
// returns the validated configuration. A .env file in the working directory
// is loaded first when it exists.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("diperf")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Rounds:      v.GetInt(KeyRounds),
		Format:      strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		Out:         v.GetString(KeyOut),
		MetricsFile: v.GetString(KeyMetricsFile),
		Only:        splitList(v.GetStringSlice(KeyOnly)),
		Debug:       v.GetBool(KeyDebug),
		LogFile:     v.GetString(KeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("rounds must be >= 0, got %d", c.Rounds)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	return nil
}

// splitList accepts both repeated values and comma separated ones, which
// is what an environment variable gives us.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
