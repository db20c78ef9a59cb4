package commands

import (
	"github.com/pkg/errors"
	"github.com/sirrobot01/realdebrid/internal/utils"
	"github.com/sirrobot01/realdebrid/pkg/cli"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	ucli "github.com/urfave/cli/v2"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
)

func listFlags() []ucli.Flag {
	return []ucli.Flag{
		&ucli.Uint64Flag{Name: "offset", Usage: "skip the first N entries"},
		&ucli.Uint64Flag{Name: "page", Usage: "page number"},
		&ucli.Uint64Flag{Name: "limit", Usage: "entries per page (max 5000)"},
	}
}

func listOptions(c *ucli.Context) realdebrid.ListOptions {
	return realdebrid.ListOptions{
		Offset: c.Uint64("offset"),
		Page:   c.Uint64("page"),
		Limit:  c.Uint64("limit"),
	}
}

func init() {
	hostFlag := &ucli.StringFlag{Name: "host", Usage: "hoster domain to use, from 'torrents hosts'"}

	cli.Register(&ucli.Command{
		Name:  "torrents",
		Usage: "Manage torrents",
		Subcommands: []*ucli.Command{
			{
				Name:   "list",
				Usage:  "List torrents",
				Flags:  append(listFlags(), &ucli.StringFlag{Name: "filter", Usage: "'active' lists active torrents only"}),
				Action: executeTorrentsList,
			},
			{
				Name:   "len",
				Usage:  "Print the number of torrents",
				Action: executeTorrentsLen,
			},
			{
				Name:      "info",
				Usage:     "Show a torrent and its files",
				ArgsUsage: "ID",
				Action:    executeTorrentsInfo,
			},
			{
				Name:      "add",
				Usage:     "Upload a .torrent file",
				ArgsUsage: "FILE",
				Flags:     []ucli.Flag{hostFlag},
				Action:    executeTorrentsAdd,
			},
			{
				Name:      "magnet",
				Usage:     "Add a magnet link",
				ArgsUsage: "MAGNET",
				Flags:     []ucli.Flag{hostFlag},
				Action:    executeTorrentsMagnet,
			},
			{
				Name:      "select",
				Usage:     "Select the files to download and start the torrent",
				ArgsUsage: "ID [FILE_ID...]",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{Name: "all", Usage: "select every file"},
					&ucli.BoolFlag{Name: "media", Usage: "select video and audio files, skipping samples"},
				},
				Action: executeTorrentsSelect,
			},
			{
				Name:      "delete",
				Usage:     "Delete a torrent",
				ArgsUsage: "ID",
				Action:    executeTorrentsDelete,
			},
			{
				Name:   "active",
				Usage:  "Show the number of active torrents",
				Action: executeTorrentsActive,
			},
			{
				Name:   "hosts",
				Usage:  "List the hosters torrents can be added to",
				Action: executeTorrentsHosts,
			},
			{
				Name:      "availability",
				Usage:     "Check which torrents are cached",
				ArgsUsage: "HASH|MAGNET...",
				Action:    executeTorrentsAvailability,
			},
		},
	})
}

func executeTorrentsList(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	torrents, err := env.Debrid.Torrents().List(c.Context, &realdebrid.TorrentListOptions{
		ListOptions: listOptions(c),
		Filter:      c.String("filter"),
	})
	if err != nil {
		return err
	}
	return env.Out.Print(torrents, func(w io.Writer) {
		cli.Row(w, "ID", "STATUS", "PROGRESS", "SIZE", "NAME")
		for _, t := range torrents {
			cli.Row(w, t.ID, t.Status, strconv.FormatFloat(t.Progress, 'f', 1, 64)+"%", cli.Bytes(t.Bytes), t.Filename)
		}
	})
}

func executeTorrentsLen(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	n, err := env.Debrid.Torrents().Len(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(map[string]uint64{"torrents": n}, func(w io.Writer) {
		cli.Row(w, n)
	})
}

func executeTorrentsInfo(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	info, err := env.Debrid.Torrents().Info(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return env.Out.Print(info, func(w io.Writer) {
		cli.Row(w, "id", info.ID)
		cli.Row(w, "name", info.Filename)
		cli.Row(w, "hash", info.Hash)
		cli.Row(w, "status", info.Status)
		cli.Row(w, "progress", strconv.FormatFloat(info.Progress, 'f', 1, 64)+"%")
		cli.Row(w, "size", cli.Bytes(info.Bytes))
		cli.Row(w, "added", info.Added)
		cli.Row(w, "ended", cli.Deref(info.Ended))
		cli.Row(w, "")
		cli.Row(w, "FILE", "SELECTED", "SIZE", "PATH")
		for _, f := range info.Files {
			cli.Row(w, f.ID, f.Selected.Bool(), cli.Bytes(f.Bytes), f.Path)
		}
		for _, link := range info.Links {
			cli.Row(w, "link", link)
		}
	})
}

func printAdded(env *cli.Env, added types.AddedTorrent, infoHash string) error {
	return env.Out.Print(added, func(w io.Writer) {
		cli.Row(w, "id", added.ID)
		if infoHash != "" {
			cli.Row(w, "hash", infoHash)
		}
		cli.Row(w, "uri", added.URI)
	})
}

func executeTorrentsAdd(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	path := c.Args().First()

	magnet, err := utils.LoadTorrentFile(path)
	if err != nil {
		return err
	}
	env.Logger.Info().Str("hash", magnet.InfoHash).Msgf("Uploading %s", filepath.Base(path))

	added, err := env.Debrid.Torrents().AddTorrentFile(c.Context, path, &realdebrid.AddTorrentOptions{Host: c.String("host")})
	if err != nil {
		return err
	}
	return printAdded(env, added, magnet.InfoHash)
}

func executeTorrentsMagnet(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	link := c.Args().First()

	magnet, err := utils.ParseMagnet(link)
	if err != nil {
		return err
	}
	added, err := env.Debrid.Torrents().AddMagnet(c.Context, link, &realdebrid.AddMagnetOptions{Host: c.String("host")})
	if err != nil {
		return err
	}
	return printAdded(env, added, magnet.InfoHash)
}

// mediaFileIDs picks the video and audio files of a torrent, skipping samples.
func mediaFileIDs(info types.TorrentInfo) []string {
	ids := make([]string, 0, len(info.Files))
	for _, f := range info.Files {
		name := filepath.Base(f.Path)
		if !utils.IsMediaFile(name) || utils.IsSampleFile(name) {
			continue
		}
		ids = append(ids, strconv.FormatUint(f.ID, 10))
	}
	return ids
}

func executeTorrentsSelect(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	id := c.Args().First()
	files := c.Args().Tail()

	switch {
	case c.Bool("all"):
		files = []string{"all"}
	case c.Bool("media"):
		info, err := env.Debrid.Torrents().Info(c.Context, id)
		if err != nil {
			return err
		}
		files = mediaFileIDs(info)
		if len(files) == 0 {
			return errors.Errorf("torrent %s has no media files", id)
		}
	}
	if len(files) == 0 {
		return errors.New("no files selected: pass file ids, --all or --media")
	}

	if err := env.Debrid.Torrents().SelectFiles(c.Context, id, files...); err != nil {
		return err
	}
	env.Out.Line("Selected %d file(s) of %s", len(files), id)
	return nil
}

func executeTorrentsDelete(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	if err := env.Debrid.Torrents().Delete(c.Context, c.Args().First()); err != nil {
		return err
	}
	env.Out.Line("Deleted %s", c.Args().First())
	return nil
}

func executeTorrentsActive(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	count, err := env.Debrid.Torrents().ActiveCount(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(count, func(w io.Writer) {
		cli.Row(w, "active", count.Nb)
		cli.Row(w, "limit", count.Limit)
	})
}

func executeTorrentsHosts(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	hosts, err := env.Debrid.Torrents().AvailableHosts(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(hosts, func(w io.Writer) {
		cli.Row(w, "HOST", "MAX FILE SIZE (GB)")
		for _, h := range hosts {
			cli.Row(w, h.Host, h.MaxFileSize)
		}
	})
}

func executeTorrentsAvailability(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)

	hashes := make([]string, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		hash, err := utils.InfoHash(arg)
		if err != nil {
			return err
		}
		hashes = append(hashes, hash)
	}

	availability, err := env.Debrid.Torrents().InstantAvailability(c.Context, hashes...)
	if err != nil {
		return err
	}
	return env.Out.Print(availability, func(w io.Writer) {
		cli.Row(w, "HASH", "HOSTER", "VARIANTS")
		for _, hash := range hashes {
			hosters := availability[hash]
			if len(hosters) == 0 {
				cli.Row(w, hash, "-", 0)
				continue
			}
			for _, hoster := range slices.Sorted(maps.Keys(hosters)) {
				cli.Row(w, hash, hoster, len(hosters[hoster]))
			}
		}
	})
}
