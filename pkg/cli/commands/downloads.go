package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	ucli "github.com/urfave/cli/v2"
	"io"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "downloads",
		Usage: "Manage the downloads history",
		Subcommands: []*ucli.Command{
			{
				Name:   "list",
				Usage:  "List downloads",
				Flags:  listFlags(),
				Action: executeDownloadsList,
			},
			{
				Name:   "len",
				Usage:  "Print the number of downloads",
				Action: executeDownloadsLen,
			},
			{
				Name:      "delete",
				Usage:     "Delete a download from the history",
				ArgsUsage: "ID",
				Action:    executeDownloadsDelete,
			},
		},
	})
}

func executeDownloadsList(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	opts := listOptions(c)
	downloads, err := env.Debrid.Downloads().List(c.Context, &opts)
	if err != nil {
		return err
	}
	return env.Out.Print(downloads, func(w io.Writer) {
		cli.Row(w, "ID", "HOST", "SIZE", "GENERATED", "NAME")
		for _, d := range downloads {
			cli.Row(w, d.ID, d.Host, cli.Bytes(d.Filesize), d.Generated, d.Filename)
		}
	})
}

func executeDownloadsLen(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	n, err := env.Debrid.Downloads().Len(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(map[string]uint64{"downloads": n}, func(w io.Writer) {
		cli.Row(w, n)
	})
}

func executeDownloadsDelete(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	if err := env.Debrid.Downloads().Delete(c.Context, c.Args().First()); err != nil {
		return err
	}
	env.Out.Line("Deleted %s", c.Args().First())
	return nil
}
