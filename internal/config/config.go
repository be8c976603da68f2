package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv  string `mapstructure:"APP_ENV"`
	Port    int    `mapstructure:"PORT"`
	LogFile string `mapstructure:"LOG_FILE"`

	DBDriver string `mapstructure:"DB_DRIVER"`
	DBDsn    string `mapstructure:"DB_DSN"`

	CacheBackend  string `mapstructure:"CACHE_BACKEND"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	TickIntervalMs     int     `mapstructure:"TICK_INTERVAL_MS"`
	ArchiveIntervalSec int     `mapstructure:"ARCHIVE_INTERVAL_SEC"`
	StartingCash       float64 `mapstructure:"STARTING_CASH"`
	CompanyName        string  `mapstructure:"COMPANY_NAME"`
	SavePath           string  `mapstructure:"SAVE_PATH"`
}

var defaults = map[string]interface{}{
	"APP_ENV":              "development",
	"PORT":                 8080,
	"LOG_FILE":             "",
	"DB_DRIVER":            "sqlite",
	"DB_DSN":               "skyline.db",
	"CACHE_BACKEND":        "memory",
	"REDIS_HOST":           "localhost",
	"REDIS_PORT":           "6379",
	"REDIS_PASSWORD":       "",
	"TICK_INTERVAL_MS":     100,
	"ARCHIVE_INTERVAL_SEC": 30,
	"STARTING_CASH":        10_000_000.0,
	"COMPANY_NAME":         "",
	"SAVE_PATH":            "data/savegame.msgpack.zst",
}

// Load reads configuration from the environment, optionally overlaid on a
// dotenv file. A missing file is not an error.
func Load(envFile string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	c := Config{}
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.TickIntervalMs <= 0 {
		return Config{}, fmt.Errorf("TICK_INTERVAL_MS must be positive, got %d", c.TickIntervalMs)
	}

	return c, nil
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

func (c Config) ArchiveInterval() time.Duration {
	return time.Duration(c.ArchiveIntervalSec) * time.Second
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
