package commands

import (
	"github.com/pkg/errors"
	"github.com/sirrobot01/realdebrid/pkg/cli"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	ucli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"io"
	"maps"
	"slices"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "time",
		Usage: "Print the server time",
		Flags: []ucli.Flag{
			&ucli.BoolFlag{Name: "iso", Usage: "ISO 8601 format"},
		},
		Action: executeTime,
	})
	cli.Register(&ucli.Command{
		Name:   "user",
		Usage:  "Show the account",
		Action: executeUser,
	})
	cli.Register(&ucli.Command{
		Name:   "overview",
		Usage:  "Show account, traffic and torrent counts at once",
		Action: executeOverview,
	})
	cli.Register(&ucli.Command{
		Name:  "token",
		Usage: "Manage the API token",
		Subcommands: []*ucli.Command{
			{
				Name:   "disable",
				Usage:  "Disable the current token. It cannot be used afterwards",
				Action: executeDisableToken,
			},
		},
	})
}

func executeTime(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	get := env.Debrid.Time
	if c.Bool("iso") {
		get = env.Debrid.TimeISO
	}
	now, err := get(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(map[string]string{"time": now}, func(w io.Writer) {
		cli.Row(w, now)
	})
}

func printUser(w io.Writer, user types.User) {
	cli.Row(w, "id", user.ID)
	cli.Row(w, "username", user.Username)
	cli.Row(w, "email", user.Email)
	cli.Row(w, "type", user.Type)
	cli.Row(w, "points", user.Points)
	if user.Type == types.UserTypePremium {
		cli.Row(w, "premium", cli.Duration(user.PremiumDuration()))
		cli.Row(w, "expiration", user.Expiration)
	}
}

func executeUser(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	user, err := env.Debrid.User().Get(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(user, func(w io.Writer) {
		printUser(w, user)
	})
}

type overview struct {
	User        types.User               `json:"user"`
	Traffic     map[string]types.Traffic `json:"traffic"`
	ActiveCount types.ActiveCount        `json:"active_count"`
	Torrents    uint64                   `json:"torrents"`
	Downloads   uint64                   `json:"downloads"`
}

func executeOverview(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	var o overview

	g, ctx := errgroup.WithContext(c.Context)
	g.Go(func() error {
		user, err := env.Debrid.User().Get(ctx)
		o.User = user
		return errors.Wrap(err, "user")
	})
	g.Go(func() error {
		traffic, err := env.Debrid.Traffic().Get(ctx)
		o.Traffic = traffic
		return errors.Wrap(err, "traffic")
	})
	g.Go(func() error {
		count, err := env.Debrid.Torrents().ActiveCount(ctx)
		o.ActiveCount = count
		return errors.Wrap(err, "active count")
	})
	g.Go(func() error {
		n, err := env.Debrid.Torrents().Len(ctx)
		o.Torrents = n
		return errors.Wrap(err, "torrents")
	})
	g.Go(func() error {
		n, err := env.Debrid.Downloads().Len(ctx)
		o.Downloads = n
		return errors.Wrap(err, "downloads")
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return env.Out.Print(o, func(w io.Writer) {
		printUser(w, o.User)
		cli.Row(w, "active torrents", o.ActiveCount.Nb, "of", o.ActiveCount.Limit)
		cli.Row(w, "torrents", o.Torrents)
		cli.Row(w, "downloads", o.Downloads)
		for _, host := range slices.Sorted(maps.Keys(o.Traffic)) {
			cli.Row(w, "traffic "+host, formatTrafficLeft(o.Traffic[host]))
		}
	})
}

func formatTrafficLeft(traffic types.Traffic) string {
	// left is in bytes for both "bytes" and "gigabytes" hosters
	if traffic.Kind != types.TrafficLinks {
		return cli.Bytes(traffic.Left())
	}
	if traffic.Left() == 1 {
		return "1 link"
	}
	return cli.Count(traffic.Left()) + " links"
}

func executeDisableToken(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	if err := env.Debrid.DisableAccessToken(c.Context); err != nil {
		return err
	}
	env.Out.Line("Token disabled")
	return nil
}
