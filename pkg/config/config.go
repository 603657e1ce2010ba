package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the process settings. The save file path is fixed and
// deliberately absent here.
type Config struct {
	LogLevel    string `mapstructure:"logLevel"`
	TickRate    int    `mapstructure:"tickRate"`
	Seed        int64  `mapstructure:"seed"`
	Repository  string `mapstructure:"repository"`
	SQLitePath  string `mapstructure:"sqlitePath"`
	DatabaseURL string `mapstructure:"databaseUrl"`
}

// Load reads configuration from an optional JSON file in configDir,
// with GETAWAY_* environment variables taking precedence over file
// values and defaults. A missing config file is not an error.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("tickRate", 60)
	// seed 0 means a time-based seed is chosen at startup
	v.SetDefault("seed", 0)
	// repository is one of: file, sqlite, postgres
	v.SetDefault("repository", "file")
	v.SetDefault("sqlitePath", "getaway.db")
	v.SetDefault("databaseUrl", "")

	v.SetConfigName("getaway.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("GETAWAY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return cfg, nil
}
