package youtube

import (
	"fmt"
)

const (
	// webshareGateway is the rotating residential proxy entry point. The
	// "-rotate" username suffix asks the gateway for a fresh exit IP per
	// connection.
	webshareGateway       = "p.webshare.io:80"
	defaultTimeoutSeconds = 30
)

// ProxyConfig holds rotating proxy credentials. Constructed once at startup
// from the environment and immutable afterwards. A nil *ProxyConfig means
// direct-connection mode.
type ProxyConfig struct {
	Username string
	Password string
}

// URL renders the proxy gateway URL with rotating credentials.
func (p *ProxyConfig) URL() string {
	return fmt.Sprintf("http://%s-rotate:%s@%s", p.Username, p.Password, webshareGateway)
}

// Config configures the transcript retriever.
type Config struct {
	// ProxyUsername and ProxyPassword enable the rotating proxy when both are
	// non-empty. Either missing selects direct-connection mode.
	ProxyUsername string `yaml:"proxy_username" mapstructure:"proxy_username"`
	ProxyPassword string `yaml:"proxy_password" mapstructure:"proxy_password"`

	// TimeoutSeconds bounds each outbound fetch. Defaults to 30.
	TimeoutSeconds int `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("youtube.timeout_seconds must be non-negative (got: %d)", c.TimeoutSeconds)
	}
	return nil
}

// Proxy returns the proxy configuration, or nil when credentials are
// incomplete and requests should go out directly.
func (c *Config) Proxy() *ProxyConfig {
	if c.ProxyUsername == "" || c.ProxyPassword == "" {
		return nil
	}
	return &ProxyConfig{Username: c.ProxyUsername, Password: c.ProxyPassword}
}
