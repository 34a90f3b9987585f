package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config identifies the Document AI processor version to call and the
// credentials file handed to the client.
type Config struct {
	CredentialsPath  string
	ProjectID        string
	Location         string
	ProcessorID      string
	ProcessorVersion string
}

// Provider resolves a validated Config. EnvProvider is the default;
// StaticProvider covers callers that carry the values inline.
type Provider interface {
	Resolve() (*Config, error)
}

// EnvProvider reads configuration from the environment, loading an
// optional local .env file first.
type EnvProvider struct{}

func (EnvProvider) Resolve() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		CredentialsPath:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		ProjectID:        getEnv("PROJECT_ID", ""),
		Location:         getEnv("LOCATION", "eu"),
		ProcessorID:      getEnv("PROCESSOR_ID", ""),
		ProcessorVersion: getEnv("PROCESSOR_VERSION", "rc"),
	}
	return finish(cfg)
}

// StaticProvider resolves a fixed Config through the same validation
// path as EnvProvider.
type StaticProvider struct {
	Config Config
}

func (p StaticProvider) Resolve() (*Config, error) {
	return finish(p.Config)
}

// finish fills in the optional defaults and validates. A key set to an
// empty string gets the same default as an unset one.
func finish(cfg Config) (*Config, error) {
	if cfg.Location == "" {
		cfg.Location = "eu"
	}
	if cfg.ProcessorVersion == "" {
		cfg.ProcessorVersion = "rc"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required key is set and that the
// credentials file exists on disk. The first missing key is named in
// the error.
func (c *Config) Validate() error {
	required := []struct {
		key, value string
	}{
		{"GOOGLE_APPLICATION_CREDENTIALS", c.CredentialsPath},
		{"PROJECT_ID", c.ProjectID},
		{"PROCESSOR_ID", c.ProcessorID},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s not set", r.key)
		}
	}

	if _, err := os.Stat(c.CredentialsPath); err != nil {
		return fmt.Errorf("credentials file %s: %w", c.CredentialsPath, err)
	}
	return nil
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
