package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides are the FOREZY_* variables recognized on top of the YAML
// file. Only set variables override file values.
type envOverrides struct {
	APIBaseURL      string        `env:"FOREZY_API_URL"`
	APITimeout      time.Duration `env:"FOREZY_API_TIMEOUT"`
	SessionPath     string        `env:"FOREZY_SESSION_PATH"`
	RefreshInterval time.Duration `env:"FOREZY_FEED_REFRESH_INTERVAL"`
	StreamURL       string        `env:"FOREZY_STREAM_URL"`
}

func (c *ClientConfig) applyEnv() error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return err
	}

	if ov.APIBaseURL != "" {
		c.API.BaseURL = ov.APIBaseURL
	}
	if ov.APITimeout != 0 {
		c.API.Timeout = ov.APITimeout
	}
	if ov.SessionPath != "" {
		c.Session.Path = ov.SessionPath
	}
	if ov.RefreshInterval != 0 {
		c.Feed.RefreshInterval = ov.RefreshInterval
	}
	if ov.StreamURL != "" {
		c.Stream.URL = ov.StreamURL
	}

	return nil
}
