package commands

import (
	"github.com/pkg/errors"
	"github.com/sirrobot01/realdebrid/internal/utils"
	"github.com/sirrobot01/realdebrid/pkg/cli"
	"github.com/sirrobot01/realdebrid/pkg/downloaders"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	"github.com/sirrobot01/realdebrid/pkg/version"
	ucli "github.com/urfave/cli/v2"
	"io"
	"os"
	"path/filepath"
	"time"
)

const progressInterval = 2 * time.Second

func init() {
	cli.Register(&ucli.Command{
		Name:  "unrestrict",
		Usage: "Unrestrict hoster links",
		Subcommands: []*ucli.Command{
			{
				Name:      "check",
				Usage:     "Check whether a link can be unrestricted",
				ArgsUsage: "LINK",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "password", Usage: "password of the remote file"},
				},
				Action: executeUnrestrictCheck,
			},
			{
				Name:      "link",
				Usage:     "Unrestrict a link",
				ArgsUsage: "LINK",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "password", Usage: "password of the remote file"},
					&ucli.BoolFlag{Name: "remote", Usage: "use remote traffic"},
					&ucli.BoolFlag{Name: "download", Aliases: []string{"d"}, Usage: "download the file once unrestricted"},
					&ucli.StringFlag{Name: "dir", Usage: "download directory, defaults to download_dir"},
				},
				Action: executeUnrestrictLink,
			},
			{
				Name:      "folder",
				Usage:     "List the links of a folder link",
				ArgsUsage: "LINK",
				Action:    executeUnrestrictFolder,
			},
			{
				Name:      "container-file",
				Usage:     "Decrypt a container file (RSDF, CCF, CCF3, DLC)",
				ArgsUsage: "PATH",
				Action:    executeUnrestrictContainerFile,
			},
			{
				Name:      "container-link",
				Usage:     "Decrypt a container file available at a link",
				ArgsUsage: "LINK",
				Action:    executeUnrestrictContainerLink,
			},
		},
	})
}

func executeUnrestrictCheck(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	check, err := env.Debrid.Unrestrict().Check(c.Context, c.Args().First(), &realdebrid.CheckOptions{
		Password: c.String("password"),
	})
	if err != nil {
		return err
	}
	return env.Out.Print(check, func(w io.Writer) {
		cli.Row(w, "Host", check.Host)
		cli.Row(w, "Filename", check.Filename)
		cli.Row(w, "Size", cli.Bytes(check.Filesize))
		cli.Row(w, "Supported", check.Supported.Bool())
	})
}

func executeUnrestrictLink(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	opts := &realdebrid.LinkOptions{Password: c.String("password")}
	if c.IsSet("remote") {
		remote := c.Bool("remote")
		opts.Remote = &remote
	}
	link, err := env.Debrid.Unrestrict().Link(c.Context, c.Args().First(), opts)
	if err != nil {
		return err
	}

	if err := env.Out.Print(link, func(w io.Writer) {
		cli.Row(w, "ID", link.ID)
		cli.Row(w, "Filename", link.Filename)
		cli.Row(w, "Size", cli.Bytes(link.Filesize))
		cli.Row(w, "Host", link.Host)
		cli.Row(w, "Download", link.Download)
		for _, alt := range link.Alternative {
			cli.Row(w, "Alternative", cli.Deref(alt.Quality), alt.Download)
		}
	}); err != nil {
		return err
	}

	if !c.Bool("download") {
		return nil
	}
	return downloadLink(c, env, link.Download, link.Filename)
}

func downloadLink(c *ucli.Context, env *cli.Env, url, filename string) error {
	dir := c.String("dir")
	if dir == "" {
		dir = env.Config.DownloadDir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating download directory")
	}
	dst := filepath.Join(dir, utils.SafeFilename(filename))

	client := downloaders.NewGrabClient(nil, version.UserAgent())
	path, err := downloaders.Download(c.Context, client, url, dst, progressInterval,
		func(name string, complete, total int64, progress float64) {
			env.Logger.Info().
				Str("file", filepath.Base(name)).
				Int64("complete", complete).
				Int64("total", total).
				Msgf("Downloading %.1f%%", progress*100)
		})
	if err != nil {
		return errors.Wrapf(err, "downloading %s", filename)
	}
	env.Logger.Info().Str("path", path).Msg("Download complete")
	env.Out.Line("Saved %s", path)
	return nil
}

func printLinks(c *ucli.Context, links []string) error {
	return cli.EnvFrom(c).Out.Print(links, func(w io.Writer) {
		for _, l := range links {
			cli.Row(w, l)
		}
	})
}

func executeUnrestrictFolder(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	links, err := cli.EnvFrom(c).Debrid.Unrestrict().Folder(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return printLinks(c, links)
}

func executeUnrestrictContainerFile(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	links, err := cli.EnvFrom(c).Debrid.Unrestrict().ContainerFilePath(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return printLinks(c, links)
}

func executeUnrestrictContainerLink(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	links, err := cli.EnvFrom(c).Debrid.Unrestrict().ContainerLink(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return printLinks(c, links)
}
