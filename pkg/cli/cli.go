package cli

import (
	"context"
	"github.com/pkg/errors"
	"github.com/sirrobot01/realdebrid/pkg/version"
	ucli "github.com/urfave/cli/v2"
	"io"
	"sort"
)

var commands []*ucli.Command

// Register adds a top level command. Commands register themselves from init.
func Register(cmd *ucli.Command) {
	commands = append(commands, cmd)
}

func NewApp(stdout, stderr io.Writer) *ucli.App {
	cmds := make([]*ucli.Command, len(commands))
	copy(cmds, commands)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	return &ucli.App{
		Name:      "rdctl",
		Usage:     "Real-Debrid from the command line",
		Version:   version.GetInfo().String(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:  configFlag,
				Usage: "directory holding config.json",
				Value: "",
			},
			&ucli.StringFlag{
				Name:  tokenFlag,
				Usage: "API token, overrides config and RD_TOKEN",
			},
			&ucli.StringFlag{
				Name:  baseURLFlag,
				Usage: "API base URL",
			},
			&ucli.StringFlag{
				Name:  logLevelFlag,
				Usage: "trace, debug, info, warn, error or disabled",
			},
			&ucli.BoolFlag{
				Name:  jsonFlag,
				Usage: "print results as JSON",
			},
		},
		Commands: cmds,
		Before:   setup,
		Metadata: map[string]interface{}{},
	}
}

// Execute runs rdctl with args, os.Args style.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return NewApp(stdout, stderr).RunContext(ctx, args)
}

// RequireArgs fails with the command usage when fewer than n arguments were given.
func RequireArgs(c *ucli.Context, n int) error {
	if c.NArg() < n {
		return errors.Errorf("%s: expected %d argument(s): %s", c.Command.FullName(), n, c.Command.ArgsUsage)
	}
	return nil
}
