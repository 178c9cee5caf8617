package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls the cross-validation driver.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// Trace exports OpenTelemetry spans to stderr.
	Trace bool `yaml:"trace"`
	// K, when positive, also compares the K nearest neighbours of a nearest query.
	K int `yaml:"k"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a yaml config on top of the defaults. An empty path returns the
// defaults; a path that cannot be read is an error.
func Load(path string) (cfg Config, err error) {
	cfg = DefaultConfig()
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "failed to read the config file")
		return
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		err = errors.Wrapf(err, "failed to parse the config file %s", path)
		return
	}
	err = cfg.Validate()
	return
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("config: log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	if c.K < 0 {
		return errors.Errorf("config: k must be >= 0, got %d", c.K)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return level, errors.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
