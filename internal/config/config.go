package config

import (
	"errors"
	"fmt"
	"github.com/goccy/go-json"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/sirrobot01/realdebrid/internal/logger"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	"net/url"
	"os"
	"path/filepath"
)

// EnvPrefix is the prefix of the environment overrides, e.g. RD_TOKEN.
const EnvPrefix = "RD"

type Config struct {
	Token              string `json:"token,omitempty" envconfig:"TOKEN"`
	BaseURL            string `json:"base_url,omitempty" envconfig:"BASE_URL"`
	Proxy              string `json:"proxy,omitempty" envconfig:"PROXY"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify,omitempty" envconfig:"INSECURE_SKIP_VERIFY"`
	LogLevel           string `json:"log_level,omitempty" envconfig:"LOG_LEVEL"`
	LogDir             string `json:"log_dir,omitempty" envconfig:"LOG_DIR"`
	DownloadDir        string `json:"download_dir,omitempty" envconfig:"DOWNLOAD_DIR"`

	Path string `json:"-" ignored:"true"` // Directory holding config.json
}

func (c *Config) JsonFile() string {
	return filepath.Join(c.Path, "config.json")
}

// DefaultPath is the directory used when no --config is given.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rdctl")
	}
	return "."
}

// Load reads config.json from path, if there is one, then applies the
// RD_* environment overrides.
func Load(path string) (*Config, error) {
	c := &Config{Path: path}

	file, err := os.ReadFile(c.JsonFile())
	switch {
	case err == nil:
		if err := json.Unmarshal(file, c); err != nil {
			return nil, fmt.Errorf("error unmarshaling config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid base_url %q", c.BaseURL)
		}
	}
	if c.Proxy != "" {
		u, err := url.Parse(c.Proxy)
		if err != nil || u.Host == "" {
			return fmt.Errorf("invalid proxy %q", c.Proxy)
		}
		switch u.Scheme {
		case "http", "https", "socks5":
		default:
			return fmt.Errorf("invalid proxy %q: scheme must be http, https or socks5", c.Proxy)
		}
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Client builds the API config and options the CLI uses.
func (c *Config) Client(log zerolog.Logger, userAgent string) (realdebrid.Config, []realdebrid.Option) {
	opts := []realdebrid.Option{
		realdebrid.WithLogger(log),
		realdebrid.WithInsecureSkipVerify(c.InsecureSkipVerify),
	}
	if c.Proxy != "" {
		opts = append(opts, realdebrid.WithProxy(c.Proxy))
	}
	if userAgent != "" {
		opts = append(opts, realdebrid.WithUserAgent(userAgent))
	}
	return realdebrid.Config{Token: c.Token, BaseURL: c.BaseURL}, opts
}

func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Path, 0700); err != nil {
		return err
	}
	// The token is a credential.
	return os.WriteFile(c.JsonFile(), data, 0600)
}
