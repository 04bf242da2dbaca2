package answer

import (
	"strings"
	"time"

	qaa "github.com/holmes89/qaa/lib"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// ProviderConfig describes the text completion provider. It is supplied by
// the caller; nothing in this package reads the environment.
type ProviderConfig struct {
	Kind        string        `mapstructure:"kind"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	ServerURL   string        `mapstructure:"server_url"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Name is the display name of the configured provider.
func (c ProviderConfig) Name() string {
	if c.Kind == ProviderOllama {
		return "Ollama"
	}
	return "OpenAI"
}

// Validate reports whether the provider can be called at all. It never
// touches the network.
func (c ProviderConfig) Validate() error {
	switch c.Kind {
	case ProviderOpenAI, "":
		if c.APIKey == "" || !strings.HasPrefix(c.APIKey, "sk-") {
			return &qaa.AuthConfigError{Provider: c.Name(), Setting: "API key"}
		}
	case ProviderOllama:
		if c.ServerURL == "" {
			return &qaa.AuthConfigError{Provider: c.Name(), Setting: "server URL"}
		}
	default:
		return &qaa.AuthConfigError{Provider: c.Kind, Setting: "provider kind"}
	}
	return nil
}

// NewModel builds the langchaingo model for the configuration.
func NewModel(c ProviderConfig) (llms.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Kind == ProviderOllama {
		llm, err := ollama.New(ollama.WithModel(c.Model), ollama.WithServerURL(c.ServerURL))
		if err != nil {
			return nil, err
		}
		return llm, nil
	}
	opts := []openai.Option{
		openai.WithToken(c.APIKey),
		openai.WithModel(c.Model),
	}
	if c.ServerURL != "" {
		opts = append(opts, openai.WithBaseURL(c.ServerURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return llm, nil
}
