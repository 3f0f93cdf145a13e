package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/timecode"
)

// Config carries the defaults a user would otherwise repeat on every
// invocation. All fields are optional in the file; absent fields keep the
// built-in defaults.
type Config struct {
	// Conversion
	DefaultFPS float64 `yaml:"default_fps"`

	// Output
	OutputDir       string `yaml:"output_dir"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard"`

	// HTTP server (serve command)
	Server struct {
		Addr         string   `yaml:"addr"`
		MaxBodyBytes int64    `yaml:"max_body_bytes"`
		CORSOrigins  []string `yaml:"cors_origins"`
	} `yaml:"server"`
}

func defaultConfig() *Config {
	c := &Config{}

	c.DefaultFPS = 24
	c.OutputDir = "."
	c.CopyToClipboard = false

	c.Server.Addr = ":8080"
	c.Server.MaxBodyBytes = 4 << 20
	c.Server.CORSOrigins = []string{"*"}

	return c
}

// Load reads the YAML config at path. A missing file is not an error: the
// defaults are returned so the tool works with no setup at all. Fields
// present in the file overwrite the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = "tc2srt.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if err := timecode.ValidateRate(c.DefaultFPS); err != nil {
		return fmt.Errorf("default_fps: %w", err)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}
