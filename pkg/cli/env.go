package cli

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirrobot01/realdebrid/internal/config"
	"github.com/sirrobot01/realdebrid/internal/logger"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	"github.com/sirrobot01/realdebrid/pkg/version"
	ucli "github.com/urfave/cli/v2"
)

const (
	configFlag   = "config"
	tokenFlag    = "token"
	baseURLFlag  = "base-url"
	logLevelFlag = "log-level"
	jsonFlag     = "json"

	envKey = "rdctl.env"
)

// Env is what every command runs with.
type Env struct {
	Config *config.Config
	Logger zerolog.Logger
	Debrid *realdebrid.Debrid
	Out    *Printer
}

func setup(c *ucli.Context) error {
	path := c.String(configFlag)
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v := c.String(tokenFlag); v != "" {
		cfg.Token = v
	}
	if v := c.String(baseURLFlag); v != "" {
		cfg.BaseURL = v
	}
	if v := c.String(logLevelFlag); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration error")
	}

	log, err := logger.NewLogger(logger.Options{
		Prefix: "rdctl",
		Level:  cfg.LogLevel,
		Output: c.App.ErrWriter,
		Dir:    cfg.LogDir,
	})
	if err != nil {
		return err
	}

	rdConfig, opts := cfg.Client(log, version.UserAgent())
	debrid, err := realdebrid.New(rdConfig, opts...)
	if err != nil {
		return errors.Wrap(err, "creating client")
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[envKey] = &Env{
		Config: cfg,
		Logger: log,
		Debrid: debrid,
		Out:    NewPrinter(c.App.Writer, c.Bool(jsonFlag)),
	}
	return nil
}

// EnvFrom returns the Env built before the command ran.
func EnvFrom(c *ucli.Context) *Env {
	return c.App.Metadata[envKey].(*Env)
}
