package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	ucli "github.com/urfave/cli/v2"
	"io"
	"strings"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "config",
		Usage: "Inspect and persist the configuration",
		Subcommands: []*ucli.Command{
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: executeConfigShow,
			},
			{
				Name:   "save",
				Usage:  "Write the effective configuration to config.json",
				Action: executeConfigSave,
			},
		},
	})
}

// maskToken keeps the last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

func executeConfigShow(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	cfg := *env.Config
	cfg.Token = maskToken(cfg.Token)
	return env.Out.Print(cfg, func(w io.Writer) {
		cli.Row(w, "path", cfg.JsonFile())
		cli.Row(w, "token", cfg.Token)
		cli.Row(w, "base_url", cfg.BaseURL)
		cli.Row(w, "proxy", cfg.Proxy)
		cli.Row(w, "insecure_skip_verify", cfg.InsecureSkipVerify)
		cli.Row(w, "log_level", cfg.LogLevel)
		cli.Row(w, "log_dir", cfg.LogDir)
		cli.Row(w, "download_dir", cfg.DownloadDir)
	})
}

func executeConfigSave(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	if err := env.Config.Save(); err != nil {
		return err
	}
	env.Out.Line("Saved %s", env.Config.JsonFile())
	return nil
}
