package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Row policies for data rows whose field count differs from the header.
const (
	RowPolicyPad  = "pad"
	RowPolicySkip = "skip"
	RowPolicyFail = "fail"
)

// Config holds the full application configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources" mapstructure:"sources"`
	Loader  LoaderConfig  `yaml:"loader" mapstructure:"loader"`
	Render  RenderConfig  `yaml:"render" mapstructure:"render"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SourcesConfig names the two inputs and the generated page.
type SourcesConfig struct {
	CSV     string `yaml:"csv" mapstructure:"csv"`
	Profile string `yaml:"profile" mapstructure:"profile"`
	Output  string `yaml:"output" mapstructure:"output"`
}

// LoaderConfig controls how the contact log is parsed.
type LoaderConfig struct {
	RowPolicy string `yaml:"row_policy" mapstructure:"row_policy"`
	TrimSpace bool   `yaml:"trim_space" mapstructure:"trim_space"`
	Comma     string `yaml:"comma" mapstructure:"comma"`
}

// RenderConfig controls the generated page.
type RenderConfig struct {
	Organization      string `yaml:"organization" mapstructure:"organization"`
	Lang              string `yaml:"lang" mapstructure:"lang"`
	RowsPerPage       int    `yaml:"rows_per_page" mapstructure:"rows_per_page"`
	PrettifyHeaders   bool   `yaml:"prettify_headers" mapstructure:"prettify_headers"`
	ShowExtraProfile  bool   `yaml:"show_extra_profile" mapstructure:"show_extra_profile"`
	UppercaseCallsign bool   `yaml:"uppercase_callsign" mapstructure:"uppercase_callsign"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks values that cannot be caught by unmarshalling.
func (c *Config) Validate() error {
	switch c.Loader.RowPolicy {
	case RowPolicyPad, RowPolicySkip, RowPolicyFail:
	default:
		return eris.Errorf("config: unknown loader.row_policy %q (want pad, skip or fail)", c.Loader.RowPolicy)
	}
	if len([]rune(c.Loader.Comma)) != 1 {
		return eris.Errorf("config: loader.comma must be a single character, got %q", c.Loader.Comma)
	}
	if c.Render.RowsPerPage < 1 {
		return eris.Errorf("config: render.rows_per_page must be positive, got %d", c.Render.RowsPerPage)
	}
	if c.Sources.CSV == "" || c.Sources.Profile == "" || c.Sources.Output == "" {
		return eris.New("config: sources.csv, sources.profile and sources.output must be set")
	}
	return nil
}

// CommaRune returns the configured field delimiter.
func (c LoaderConfig) CommaRune() rune {
	for _, r := range c.Comma {
		return r
	}
	return ','
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("contactlog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CONTACTLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sources.csv", "data.csv")
	v.SetDefault("sources.profile", "config.json")
	v.SetDefault("sources.output", "index.html")
	v.SetDefault("loader.row_policy", RowPolicyPad)
	v.SetDefault("loader.trim_space", true)
	v.SetDefault("loader.comma", ",")
	v.SetDefault("render.organization", "中国业余无线电台")
	v.SetDefault("render.lang", "zh-CN")
	v.SetDefault("render.rows_per_page", 20)
	v.SetDefault("render.prettify_headers", false)
	v.SetDefault("render.show_extra_profile", true)
	v.SetDefault("render.uppercase_callsign", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
