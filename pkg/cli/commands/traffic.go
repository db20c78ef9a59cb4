package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	ucli "github.com/urfave/cli/v2"
	"io"
	"maps"
	"slices"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "traffic",
		Usage: "Traffic on limited hosters",
		Subcommands: []*ucli.Command{
			{
				Name:   "get",
				Usage:  "Show the traffic left per hoster",
				Action: executeTrafficGet,
			},
			{
				Name:  "details",
				Usage: "Show the traffic used per day",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "start", Usage: "first day, YYYY-MM-DD"},
					&ucli.StringFlag{Name: "end", Usage: "last day, YYYY-MM-DD"},
				},
				Action: executeTrafficDetails,
			},
		},
	})
}

func executeTrafficGet(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	traffic, err := env.Debrid.Traffic().Get(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(traffic, func(w io.Writer) {
		cli.Row(w, "HOSTER", "TYPE", "LEFT")
		for _, host := range slices.Sorted(maps.Keys(traffic)) {
			cli.Row(w, host, traffic[host].Kind, formatTrafficLeft(traffic[host]))
		}
	})
}

func executeTrafficDetails(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	details, err := env.Debrid.Traffic().Details(c.Context, &realdebrid.TrafficDetailsOptions{
		Start: c.String("start"),
		End:   c.String("end"),
	})
	if err != nil {
		return err
	}
	return env.Out.Print(details, func(w io.Writer) {
		cli.Row(w, "DAY", "HOSTER", "USED")
		for _, day := range slices.Sorted(maps.Keys(details)) {
			d := details[day]
			cli.Row(w, day, "total", cli.Bytes(d.Bytes))
			for _, host := range slices.Sorted(maps.Keys(d.Host)) {
				cli.Row(w, day, host, cli.Bytes(d.Host[host]))
			}
		}
	})
}
