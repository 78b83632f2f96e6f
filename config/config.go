package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Screener ScreenerConfig `mapstructure:"screener"`
	Log      LogConfig      `mapstructure:"log"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// ScreenerConfig describes the screener page being monitored and how
// often it is polled.
type ScreenerConfig struct {
	URL        string        `mapstructure:"url"`
	UserAgent  string        `mapstructure:"user_agent"`
	Timeout    time.Duration `mapstructure:"timeout"`     // per-fetch HTTP timeout
	Interval   time.Duration `mapstructure:"interval"`    // poll interval
	MinColumns int           `mapstructure:"min_columns"` // rows with fewer cells are skipped
	PageSize   int           `mapstructure:"page_size"`   // rows per screener page (only the first page is fetched)
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Support environment variables with dot notation (e.g., SCREENER_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screener.timeout", 10*time.Second)
	v.SetDefault("screener.interval", 5*time.Minute)
	v.SetDefault("screener.min_columns", 11)
	v.SetDefault("screener.page_size", 20)
	v.SetDefault("screener.user_agent", "screenerwatch/1.0")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.environment", "dev")
}
