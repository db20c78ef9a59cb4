package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	ucli "github.com/urfave/cli/v2"
	"io"
	"maps"
	"regexp"
	"slices"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "hosts",
		Usage: "Supported hosters",
		Subcommands: []*ucli.Command{
			{
				Name:   "list",
				Usage:  "List supported hosters",
				Action: executeHostsList,
			},
			{
				Name:   "status",
				Usage:  "Show hoster status",
				Action: executeHostsStatus,
			},
			{
				Name:   "regex",
				Usage:  "Print the patterns of supported links",
				Action: executeHostsRegex,
			},
			{
				Name:   "regex-folder",
				Usage:  "Print the patterns of supported folder links",
				Action: executeHostsRegexFolder,
			},
			{
				Name:   "domains",
				Usage:  "List supported domains",
				Action: executeHostsDomains,
			},
			{
				Name:      "match",
				Usage:     "Check whether links can be unrestricted",
				ArgsUsage: "LINK...",
				Action:    executeHostsMatch,
			},
		},
	})
}

func executeHostsList(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	hosts, err := env.Debrid.Hosts().List(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(hosts, func(w io.Writer) {
		cli.Row(w, "DOMAIN", "ID", "NAME")
		for _, domain := range slices.Sorted(maps.Keys(hosts)) {
			cli.Row(w, domain, hosts[domain].ID, hosts[domain].Name)
		}
	})
}

func executeHostsStatus(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	status, err := env.Debrid.Hosts().Status(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(status, func(w io.Writer) {
		cli.Row(w, "DOMAIN", "STATUS", "SUPPORTED", "CHECKED")
		for _, domain := range slices.Sorted(maps.Keys(status)) {
			s := status[domain]
			cli.Row(w, domain, s.Status, s.Supported.Bool(), s.CheckTime)
		}
	})
}

func printPatterns(c *ucli.Context, patterns []*regexp.Regexp) error {
	sources := make([]string, len(patterns))
	for i, re := range patterns {
		sources[i] = re.String()
	}
	return cli.EnvFrom(c).Out.Print(sources, func(w io.Writer) {
		for _, s := range sources {
			cli.Row(w, s)
		}
	})
}

func executeHostsRegex(c *ucli.Context) error {
	patterns, err := cli.EnvFrom(c).Debrid.Hosts().Regex(c.Context)
	if err != nil {
		return err
	}
	return printPatterns(c, patterns)
}

func executeHostsRegexFolder(c *ucli.Context) error {
	patterns, err := cli.EnvFrom(c).Debrid.Hosts().RegexFolder(c.Context)
	if err != nil {
		return err
	}
	return printPatterns(c, patterns)
}

func executeHostsDomains(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	domains, err := env.Debrid.Hosts().Domains(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(domains, func(w io.Writer) {
		for _, d := range domains {
			cli.Row(w, d)
		}
	})
}

func matchAny(patterns []*regexp.Regexp, link string) bool {
	for _, re := range patterns {
		if re.MatchString(link) {
			return true
		}
	}
	return false
}

func executeHostsMatch(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	patterns, err := env.Debrid.Hosts().Regex(c.Context)
	if err != nil {
		return err
	}
	folders, err := env.Debrid.Hosts().RegexFolder(c.Context)
	if err != nil {
		return err
	}

	supported := make(map[string]bool, c.NArg())
	for _, link := range c.Args().Slice() {
		supported[link] = matchAny(patterns, link) || matchAny(folders, link)
	}
	return env.Out.Print(supported, func(w io.Writer) {
		for _, link := range c.Args().Slice() {
			cli.Row(w, link, supported[link])
		}
	})
}
