package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL            = "https://forezy-backend.vercel.app/v1/api"
	DefaultWSURL              = "wss://forezy-backend.vercel.app/v1/ws"
	DefaultAPITimeout         = 30 * time.Second
	DefaultMaxRetries         = 3
	DefaultRefreshInterval    = 1 * time.Minute
	DefaultStreamPingTimeout  = 60 * time.Second
	DefaultStreamWriteTimeout = 5 * time.Second
	DefaultStreamBufferSize   = 1024
)

func (c *ClientConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultRestURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Feed defaults
	if c.Feed.RefreshInterval == 0 {
		c.Feed.RefreshInterval = DefaultRefreshInterval
	}

	// Stream defaults
	if c.Stream.URL == "" {
		c.Stream.URL = DefaultWSURL
	}
	if c.Stream.PingTimeout == 0 {
		c.Stream.PingTimeout = DefaultStreamPingTimeout
	}
	if c.Stream.WriteTimeout == 0 {
		c.Stream.WriteTimeout = DefaultStreamWriteTimeout
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = DefaultStreamBufferSize
	}
}
