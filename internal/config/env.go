package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jonathan/harvard-cv/internal/gdocs"
)

// Environment variable names.
const (
	EnvTemplateDir        = "CV_TEMPLATE_DIR"
	EnvPaddingWidth       = "CV_PADDING_WIDTH"
	EnvChromePath         = "CHROME_PATH"
	EnvGoogleClientID     = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvGoogleAccessToken  = "GOOGLE_ACCESS_TOKEN"
	EnvGoogleRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

// FromEnv creates a configuration from environment variables.
// Unset variables leave the matching field empty.
func FromEnv() (*Config, error) {
	cfg := &Config{
		TemplateDir:        os.Getenv(EnvTemplateDir),
		ChromePath:         os.Getenv(EnvChromePath),
		GoogleClientID:     os.Getenv(EnvGoogleClientID),
		GoogleClientSecret: os.Getenv(EnvGoogleClientSecret),
	}

	if widthStr := os.Getenv(EnvPaddingWidth); widthStr != "" {
		width, err := strconv.Atoi(widthStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvPaddingWidth, err)
		}
		cfg.PaddingWidth = width
	}

	return cfg, nil
}

// PDFTimeout returns the rasterization bound as a duration.
func (c *Config) PDFTimeout() time.Duration {
	return time.Duration(c.PDFTimeoutSeconds) * time.Second
}

// GoogleCredentials assembles OAuth credentials from the environment and the
// configured client. An access token is required.
func (c *Config) GoogleCredentials() (gdocs.Credentials, error) {
	access := os.Getenv(EnvGoogleAccessToken)
	if access == "" {
		return gdocs.Credentials{}, fmt.Errorf("%s is required but not set", EnvGoogleAccessToken)
	}
	return gdocs.Credentials{
		AccessToken:  access,
		RefreshToken: os.Getenv(EnvGoogleRefreshToken),
		ClientID:     c.GoogleClientID,
		ClientSecret: c.GoogleClientSecret,
	}, nil
}
