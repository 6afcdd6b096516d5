package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultBaseURL   = "http://127.0.0.1:8090"
	defaultLogLevel  = "info"
	defaultEnv       = EnvLocal
	defaultConfigDir = ".cuaderno"
	defaultTTLHours  = 24
	defaultPageSize  = 50
)

type Config struct {
	Env             string `mapstructure:"app_env"`
	BaseURL         string `mapstructure:"base_url"`
	LogLevel        string `mapstructure:"log_level"`
	ConfigDir       string `mapstructure:"config_dir"`
	DataPath        string `mapstructure:"data_path"`
	SessionTTLHours int    `mapstructure:"session_ttl_hours"`
	PageSize        int    `mapstructure:"page_size"`
}

// MustLoad reads the client configuration from the environment,
// optionally seeded from a .env file, and panics on invalid values.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("BASE_URL", defaultBaseURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("SESSION_TTL_HOURS", defaultTTLHours)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "cuaderno.db")
	}

	config := &Config{
		Env:             viper.GetString("APP_ENV"),
		BaseURL:         viper.GetString("BASE_URL"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		ConfigDir:       configDir,
		DataPath:        dataPath,
		SessionTTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		PageSize:        viper.GetInt("PAGE_SIZE"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("session_ttl_hours must be positive")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive")
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
