package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	"github.com/sirrobot01/realdebrid/pkg/version"
	ucli "github.com/urfave/cli/v2"
	"io"
)

func init() {
	cli.Register(&ucli.Command{
		Name:   "version",
		Usage:  "Print version information",
		Action: executeVersion,
	})
}

func executeVersion(c *ucli.Context) error {
	info := version.GetInfo()
	return cli.EnvFrom(c).Out.Print(info, func(w io.Writer) {
		cli.Row(w, "version", info.Version)
		if info.Channel != "" {
			cli.Row(w, "channel", info.Channel)
		}
	})
}
