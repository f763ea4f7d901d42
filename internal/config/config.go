package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every setting the service needs.
type Config struct {
	Server    ServerConfig
	Providers ProviderConfig
	Mail      MailConfig
	DataDir   string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		Providers: loadProviderConfig(),
		Mail:      loadMailConfig(),
		DataDir:   getEnvOrDefault("DATA_DIR", "data"),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ProviderConfig carries the model provider credentials and model names.
type ProviderConfig struct {
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
}

func loadProviderConfig() ProviderConfig {
	return ProviderConfig{
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:  getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
	}
}

// Validate reports a blocking configuration error when either provider
// credential is absent or still a placeholder. Runs must not start in that
// state.
func (c ProviderConfig) Validate() error {
	if IsPlaceholder(c.GeminiAPIKey) {
		return fmt.Errorf("GEMINI_API_KEY is missing or still a placeholder")
	}
	if IsPlaceholder(c.OpenAIAPIKey) {
		return fmt.Errorf("OPENAI_API_KEY is missing or still a placeholder")
	}
	return nil
}

// MailConfig carries the outbound SMTP settings.
type MailConfig struct {
	Sender   string
	Password string
	Host     string
	Port     int
}

func loadMailConfig() MailConfig {
	port := 587
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	return MailConfig{
		Sender:   strings.TrimSpace(os.Getenv("EMAIL_SENDER")),
		Password: strings.TrimSpace(os.Getenv("EMAIL_PASSWORD")),
		Host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
	}
}

// Validate reports a blocking configuration error when the sender
// credential is unusable.
func (c MailConfig) Validate() error {
	if IsPlaceholder(c.Sender) {
		return fmt.Errorf("EMAIL_SENDER is missing or still a placeholder")
	}
	if IsPlaceholder(c.Password) {
		return fmt.Errorf("EMAIL_PASSWORD is missing or still a placeholder")
	}
	return nil
}

// IsPlaceholder reports whether a credential is empty or was never replaced
// in the template configuration (the samples ship with PASTE_YOUR_KEY_HERE
// values).
func IsPlaceholder(value string) bool {
	return value == "" || strings.Contains(value, "PASTE")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
