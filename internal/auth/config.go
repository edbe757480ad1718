package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds token validation configuration
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// LoadAuthConfig reads auth configuration from a yaml file. A missing file
// is not an error; the caller falls back to the main config's JWT secret.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	config := &AuthConfig{
		Issuer:   "oneonone-backend",
		TokenTTL: time.Hour,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("error reading auth config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = time.Hour
	}
	return config, nil
}
