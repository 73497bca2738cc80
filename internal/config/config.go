package config

import "time"

// ClientConfig is the root configuration for the Forezy client.
type ClientConfig struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Feed    FeedConfig    `yaml:"feed"`
	Stream  StreamConfig  `yaml:"stream"`
}

// APIConfig holds REST API settings.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// SessionConfig holds session persistence settings.
type SessionConfig struct {
	// Path to the session file. Empty means $HOME/.forezy/session.json.
	Path string `yaml:"path"`
}

// FeedConfig holds market feed settings.
type FeedConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// StreamConfig holds WebSocket settings.
type StreamConfig struct {
	URL          string        `yaml:"url"`
	PingTimeout  time.Duration `yaml:"ping_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BufferSize   int           `yaml:"buffer_size"`
}
