// Package config loads jpholidays settings with viper.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this package.
//  2. The config file given with --config (YAML, TOML or JSON).
//  3. Environment variables prefixed with JPHOLIDAYS_, e.g.
//     JPHOLIDAYS_LOG_LEVEL=debug or JPHOLIDAYS_OUTPUT_ENCODING=shift_jis.
//  4. Command-line flags bound with BindPFlag.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "JPHOLIDAYS"

// Keys understood by Load.
const (
	KeyLogLevel        = "log.level"
	KeyLogPretty       = "log.pretty"
	KeyOutputFormat    = "output.format"
	KeyOutputEncoding  = "output.encoding"
	KeyParallel        = "parallel"
	KeyOfficialURL     = "official.url"
	KeyOfficialTimeout = "official.timeout"
	KeyOfficialRetries = "official.retries"
)

// Config holds the full jpholidays configuration.
type Config struct {
	Log      LogConfig
	Output   OutputConfig
	Parallel int // years computed concurrently by list and diff
	Official OfficialConfig
}

// LogConfig selects the zerolog level and writer.
type LogConfig struct {
	Level  string
	Pretty bool
}

// OutputConfig selects how holidays are printed.
type OutputConfig struct {
	Format   string // csv|json
	Encoding string // utf-8|shift_jis
}

// OfficialConfig controls downloads of the Cabinet Office holiday CSV.
//
// Fields:
//   - URL: direct CSV URL; empty means resolve through the e-Gov CKAN API.
//   - Timeout: per-request HTTP timeout.
//   - Retries: attempts per URL for retryable responses.
type OfficialConfig struct {
	URL     string
	Timeout time.Duration
	Retries int
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogPretty, false)
	v.SetDefault(KeyOutputFormat, "csv")
	v.SetDefault(KeyOutputEncoding, "utf-8")
	v.SetDefault(KeyParallel, 4)
	v.SetDefault(KeyOfficialURL, "")
	v.SetDefault(KeyOfficialTimeout, 30*time.Second)
	v.SetDefault(KeyOfficialRetries, 3)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and returns the validated
// configuration.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Pretty: v.GetBool(KeyLogPretty),
		},
		Output: OutputConfig{
			Format:   strings.ToLower(v.GetString(KeyOutputFormat)),
			Encoding: strings.ToLower(v.GetString(KeyOutputEncoding)),
		},
		Parallel: v.GetInt(KeyParallel),
		Official: OfficialConfig{
			URL:     v.GetString(KeyOfficialURL),
			Timeout: v.GetDuration(KeyOfficialTimeout),
			Retries: v.GetInt(KeyOfficialRetries),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Output.Format {
	case "csv", "json":
	default:
		errs = append(errs, fmt.Errorf("%s: unsupported format %q", KeyOutputFormat, c.Output.Format))
	}
	switch c.Output.Encoding {
	case "utf-8", "utf8", "shift_jis", "sjis":
	default:
		errs = append(errs, fmt.Errorf("%s: unsupported encoding %q", KeyOutputEncoding, c.Output.Encoding))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("%s: must be at least 1, got %d", KeyParallel, c.Parallel))
	}
	if c.Official.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s: must be positive, got %s", KeyOfficialTimeout, c.Official.Timeout))
	}
	if c.Official.Retries < 1 {
		errs = append(errs, fmt.Errorf("%s: must be at least 1, got %d", KeyOfficialRetries, c.Official.Retries))
	}
	return errors.Join(errs...)
}
