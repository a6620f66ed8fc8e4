package main

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

const (
	DefaultListen            = ":8080"
	DefaultLookupTimeout     = 5 * time.Second
	DefaultHealthTimeout     = 3 * time.Second
	DefaultRateLimitInterval = 1400 * time.Millisecond // ~45 requests per minute, the ip-api.com free tier
	DefaultRateLimitBurst    = 5
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type providerConfig struct {
	BaseURL           string   `toml:"base_url"`
	LookupTimeout     duration `toml:"lookup_timeout"`
	HealthTimeout     duration `toml:"health_timeout"`
	RateLimitInterval duration `toml:"rate_limit_interval"`
	RateLimitBurst    int      `toml:"rate_limit_burst"`
}

type config struct {
	Listen      string         `toml:"listen"`
	UserAgent   string         `toml:"user_agent"`
	CORSOrigins []string       `toml:"cors_origins"`
	Provider    providerConfig `toml:"provider"`
}

func (c *config) GetListen() string {
	if c.Listen == "" {
		return DefaultListen
	}

	return c.Listen
}

func (c *config) GetUserAgent() string {
	if c.UserAgent == "" {
		return "gazetteer/" + version
	}

	return c.UserAgent
}

func (c *config) GetCORSOrigins() []string {
	if len(c.CORSOrigins) == 0 {
		return []string{"*"}
	}

	return c.CORSOrigins
}

func (c *config) GetLookupTimeout() time.Duration {
	if c.Provider.LookupTimeout.Duration <= 0 {
		return DefaultLookupTimeout
	}

	return c.Provider.LookupTimeout.Duration
}

func (c *config) GetHealthTimeout() time.Duration {
	if c.Provider.HealthTimeout.Duration <= 0 {
		return DefaultHealthTimeout
	}

	return c.Provider.HealthTimeout.Duration
}

func (c *config) GetRateLimitInterval() time.Duration {
	if c.Provider.RateLimitInterval.Duration <= 0 {
		return DefaultRateLimitInterval
	}

	return c.Provider.RateLimitInterval.Duration
}

func (c *config) GetRateLimitBurst() int {
	if c.Provider.RateLimitBurst <= 0 {
		return DefaultRateLimitBurst
	}

	return c.Provider.RateLimitBurst
}

func parseConfig(reader io.Reader) (*config, error) {
	content, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Annotate(err, "cannot read config")
	}

	conf := &config{}
	if err := toml.Unmarshal(content, conf); err != nil {
		return nil, errors.Annotate(err, "cannot parse config")
	}

	return conf, nil
}
