package types

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DeepL  DeepLConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	AppEnv       string
	LogLevel     string
}

type DeepLConfig struct {
	APIKey string
}

func validateRequiredEnvs(v *viper.Viper, requiredEnvs []string) error {
	for _, env := range requiredEnvs {
		if v.GetString(env) == "" {
			return fmt.Errorf("%s is required", env)
		}
	}
	return nil
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Enable environment variable reading first
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// viper reports an explicitly set file that is absent as a plain
		// path error rather than ConfigFileNotFoundError
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Print("No config file found, falling back to environment variables")
	}

	requiredEnvs := []string{
		"DEEPL_API_KEY",
	}

	if err := validateRequiredEnvs(v, requiredEnvs); err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetString("SERVER_PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			AppEnv:       v.GetString("APP_ENV"),
			LogLevel:     v.GetString("LOG_LEVEL"),
		},
		DeepL: DeepLConfig{
			APIKey: v.GetString("DEEPL_API_KEY"),
		},
	}

	// Set default values for server if not provided
	if config.Server.Port == "" {
		config.Server.Port = "3001"
	}

	return config, nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
