package loader

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages loader configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Graph parameters; 0 means infer from the input
	v.SetDefault("graph.capacity_a", 0)
	v.SetDefault("graph.capacity_b", 0)
	v.SetDefault("graph.max_inferred_capacity", 1<<26)

	// Loader parameters
	v.SetDefault("loader.compact", true)
	v.SetDefault("loader.comment_prefix", "#")

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.progress_every", 1_000_000)

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Viper exposes the underlying store so callers can bind flags to it.
func (c *Config) Viper() *viper.Viper { return c.v }

func (c *Config) CapacityA() int { return c.v.GetInt("graph.capacity_a") }
func (c *Config) CapacityB() int { return c.v.GetInt("graph.capacity_b") }

// MaxInferredCapacity bounds capacities inferred from the input; <= 0 disables it.
func (c *Config) MaxInferredCapacity() int { return c.v.GetInt("graph.max_inferred_capacity") }

func (c *Config) Compact() bool         { return c.v.GetBool("loader.compact") }
func (c *Config) CommentPrefix() string { return c.v.GetString("loader.comment_prefix") }

func (c *Config) LogLevel() string   { return c.v.GetString("logging.level") }
func (c *Config) ProgressEvery() int { return c.v.GetInt("logging.progress_every") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "bipartite").Logger()
}
