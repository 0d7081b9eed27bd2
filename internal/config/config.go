// Package config loads tool settings from defaults, an optional config file,
// BRUH_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, e.g. BRUH_LOG_LEVEL.
const EnvPrefix = "BRUH"

// DefaultPreviewOutput is where preview writes its raster when nothing else
// is configured.
const DefaultPreviewOutput = "temp.png"

// Config holds every tunable setting of the tools.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Compile CompileConfig `mapstructure:"compile"`
	Preview PreviewConfig `mapstructure:"preview"`
	Decode  DecodeConfig  `mapstructure:"decode"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// CompileConfig controls raster to BRUH conversion.
type CompileConfig struct {
	// Workers is the number of goroutines encoding rows; <= 1 is sequential,
	// negative uses every CPU.
	Workers int `mapstructure:"workers"`
}

// PreviewConfig controls BRUH to raster conversion.
type PreviewConfig struct {
	// Output is the raster path written by preview. The extension selects
	// the raster format.
	Output string `mapstructure:"output"`

	// Scale is an integer nearest-neighbor upscale factor applied before
	// writing; values <= 1 leave the image unscaled.
	Scale int `mapstructure:"scale"`
}

// DecodeConfig controls how documents are parsed.
type DecodeConfig struct {
	// StrictRows rejects documents whose newlines do not sit on row boundaries.
	StrictRows bool `mapstructure:"strict_rows"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("compile.workers", 1)
	v.SetDefault("preview.output", DefaultPreviewOutput)
	v.SetDefault("preview.scale", 1)
	v.SetDefault("decode.strict_rows", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlag binds a command-line flag to a configuration key so that an
// explicitly set flag overrides the file and environment.
func BindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag for config key %s", key)
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
	}
	return nil
}

// Load reads the optional config file at path (YAML, TOML or JSON, chosen by
// extension) and decodes the merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Preview.Output == "" {
		cfg.Preview.Output = DefaultPreviewOutput
	}
	return &cfg, nil
}
