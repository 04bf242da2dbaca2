package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/holmes89/qaa/lib/service/answer"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "QAA"

type Config struct {
	HTTP     HTTPConfig            `mapstructure:"http"`
	Database DatabaseConfig        `mapstructure:"database"`
	Log      LogConfig             `mapstructure:"log"`
	Provider answer.ProviderConfig `mapstructure:"provider"`
	Client   ClientConfig          `mapstructure:"client"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL     string `mapstructure:"url"`
	Migrate bool   `mapstructure:"migrate"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ClientConfig is used by the command line client only.
type ClientConfig struct {
	URL string `mapstructure:"url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("database.url", "postgres:test12345!@localhost/QAA?sslmode=disable")
	v.SetDefault("database.migrate", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("provider.kind", answer.ProviderOpenAI)
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.model", "gpt-4o")
	v.SetDefault("provider.server_url", "")
	v.SetDefault("provider.temperature", 0.0)
	v.SetDefault("provider.timeout", 60*time.Second)
	v.SetDefault("client.url", "http://localhost:8080")
}

// Load reads an optional .env file, an optional config.yaml from the working
// directory or any of paths, and QAA_ prefixed environment variables, in
// increasing order of precedence.
func Load(paths ...string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("unable to read .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}
