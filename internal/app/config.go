package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"shapes/internal/domain"
	"shapes/internal/shapesapi"
)

const (
	// DefaultAPIDomain is the public shapes API.
	DefaultAPIDomain = "shapes.approov.io"
	// ConfigFilename is looked up in the home directory.
	ConfigFilename = "config.yaml"

	defaultTimeout = 30 * time.Second
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-" env:"SHAPES_HOME"`

	Variant     domain.Variant     `yaml:"variant"      env:"SHAPES_VARIANT"`
	APIDomain   string             `yaml:"api_domain"   env:"SHAPES_API_DOMAIN"`
	APIVersion  string             `yaml:"api_version"  env:"SHAPES_API_VERSION"`
	BaseURL     string             `yaml:"base_url"     env:"SHAPES_BASE_URL"` // overrides https://{api_domain}
	ShapeSource domain.ShapeSource `yaml:"shape_source" env:"SHAPES_SHAPE_SOURCE"`
	Timeout     time.Duration      `yaml:"timeout"      env:"SHAPES_TIMEOUT"`

	APIKey           string `yaml:"api_key"            env:"SHAPES_API_KEY"`
	RecaptchaSiteKey string `yaml:"recaptcha_site_key" env:"SHAPES_RECAPTCHA_SITE_KEY"`
	ApproovSiteKey   string `yaml:"approov_site_key"   env:"SHAPES_APPROOV_SITE_KEY"`
	AttesterHost     string `yaml:"attester_host"      env:"SHAPES_ATTESTER_HOST"`

	Challenge ChallengeConfig `yaml:"challenge" envPrefix:"SHAPES_CHALLENGE_"`

	OTelEndpoint string `yaml:"otel_endpoint" env:"SHAPES_OTEL_ENDPOINT"`
}

// ChallengeConfig selects and configures the challenge widget.
type ChallengeConfig struct {
	// Token short-circuits the widget with a fixed solution (dev server).
	Token string `yaml:"token" env:"TOKEN"`
	// PageURL is the page the browser widget runs on; defaults to the API origin.
	PageURL    string `yaml:"page_url"    env:"PAGE_URL"`
	ControlURL string `yaml:"control_url" env:"CONTROL_URL"`
	Headful    bool   `yaml:"headful"     env:"HEADFUL"`
}

// DefaultHome returns ~/.shapes.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".shapes"), nil
}

// LoadConfig reads home/config.yaml (a missing file is not an error) and
// overlays SHAPES_* environment variables.
func LoadConfig(home string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(filepath.Join(home, ConfigFilename))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", ConfigFilename, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		cfg.Home = home
	}
	return cfg, nil
}

// FillSecrets sets every empty secret field from s.
func (c *Config) FillSecrets(s domain.Secrets) {
	if c.APIKey == "" {
		c.APIKey = s.APIKey
	}
	if c.RecaptchaSiteKey == "" {
		c.RecaptchaSiteKey = s.RecaptchaSiteKey
	}
	if c.ApproovSiteKey == "" {
		c.ApproovSiteKey = s.ApproovSiteKey
	}
}

// ApplyDefaults fills the variant-dependent defaults:
//
//	api-key    v1, shape from server
//	recaptcha  v1, shape chosen by the client
//	approov    v2, shape from server
func (c *Config) ApplyDefaults() {
	if c.Variant == "" {
		c.Variant = domain.VariantAPIKey
	}
	if c.APIDomain == "" {
		c.APIDomain = DefaultAPIDomain
	}
	if c.APIVersion == "" {
		c.APIVersion = "v1"
		if c.Variant == domain.VariantApproov {
			c.APIVersion = "v2"
		}
	}
	if c.ShapeSource == "" {
		c.ShapeSource = domain.ShapeFromServer
		if c.Variant == domain.VariantRecaptcha {
			c.ShapeSource = domain.ShapeFromClient
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Challenge.PageURL == "" {
		c.Challenge.PageURL = "https://" + c.APIDomain
	}
}

// Base returns the API base URL.
func (c Config) Base() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return shapesapi.BaseURL(c.APIDomain)
}

// Validate reports every missing setting for the variant at once.
func (c Config) Validate() error {
	if !c.Variant.Valid() {
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	if c.ShapeSource != domain.ShapeFromServer && c.ShapeSource != domain.ShapeFromClient {
		return fmt.Errorf("unknown shape source %q", c.ShapeSource)
	}
	var missing []string
	switch c.Variant {
	case domain.VariantAPIKey:
		if c.APIKey == "" {
			missing = append(missing, "api_key")
		}
	case domain.VariantRecaptcha:
		if c.RecaptchaSiteKey == "" && c.Challenge.Token == "" {
			missing = append(missing, "recaptcha_site_key")
		}
	case domain.VariantApproov:
		if c.APIKey == "" {
			missing = append(missing, "api_key")
		}
		if c.ApproovSiteKey == "" {
			missing = append(missing, "approov_site_key")
		}
		if c.AttesterHost == "" {
			missing = append(missing, "attester_host")
		}
		if c.RecaptchaSiteKey == "" && c.Challenge.Token == "" {
			missing = append(missing, "recaptcha_site_key")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s variant: missing %s", c.Variant, strings.Join(missing, ", "))
	}
	return nil
}
