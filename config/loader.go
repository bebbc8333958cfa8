// config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "HCO"

// Load reads config.yaml from the given directories (./configs and . when
// none are given), overlays HCO_* environment variables and validates the
// result. A missing config file is not an error.
func Load(configPaths ...string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"./configs", "."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "healthcare-optimizer")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.trust_proxy", false)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Hour)

	v.SetDefault("memory_cache.max_entries", 10_000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.refill", time.Minute)

	v.SetDefault("simulation.steps", 100)
	v.SetDefault("simulation.step_delay", 10*time.Millisecond)
	v.SetDefault("simulation.settle_delay", 500*time.Millisecond)
}

func validateConfig(cfg *Config) error {
	var errs []string

	if cfg.Server.Address == "" {
		errs = append(errs, "server.address is required")
	}
	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		errs = append(errs, "redis.address is required when redis is enabled")
	}
	if cfg.Redis.TTL < 0 {
		errs = append(errs, "redis.ttl must not be negative")
	}
	if cfg.MemoryCache.MaxEntries <= 0 {
		errs = append(errs, "memory_cache.max_entries must be positive")
	}
	if cfg.RateLimit.Capacity <= 0 {
		errs = append(errs, "rate_limit.capacity must be positive")
	}
	if cfg.RateLimit.Refill <= 0 {
		errs = append(errs, "rate_limit.refill must be positive")
	}
	if cfg.Simulation.Steps <= 0 {
		errs = append(errs, "simulation.steps must be positive")
	}
	if cfg.Simulation.StepDelay < 0 || cfg.Simulation.SettleDelay < 0 {
		errs = append(errs, "simulation delays must not be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
