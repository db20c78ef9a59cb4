package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	ucli "github.com/urfave/cli/v2"
	"io"
	"maps"
	"slices"
	"time"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "streaming",
		Usage: "Streaming links and media details",
		Subcommands: []*ucli.Command{
			{
				Name:      "transcode",
				Usage:     "List the transcoding links of a download",
				ArgsUsage: "ID",
				Action:    executeStreamingTranscode,
			},
			{
				Name:      "media-info",
				Usage:     "Show the media details of a download",
				ArgsUsage: "ID",
				Action:    executeStreamingMediaInfo,
			},
		},
	})
}

func executeStreamingTranscode(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	t, err := env.Debrid.Streaming().Transcode(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return env.Out.Print(t, func(w io.Writer) {
		cli.Row(w, "FORMAT", "QUALITY", "URL")
		for _, f := range []struct {
			name  string
			links map[string]string
		}{
			{"apple", t.Apple},
			{"dash", t.Dash},
			{"liveMP4", t.LiveMP4},
			{"h264WebM", t.H264WebM},
		} {
			for _, quality := range slices.Sorted(maps.Keys(f.links)) {
				cli.Row(w, f.name, quality, f.links[quality])
			}
		}
	})
}

func executeStreamingMediaInfo(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	m, err := env.Debrid.Streaming().MediaInfo(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	return env.Out.Print(m, func(w io.Writer) {
		cli.Row(w, "Filename", m.Filename)
		cli.Row(w, "Type", m.Type)
		cli.Row(w, "Hoster", m.Hoster)
		cli.Row(w, "Size", cli.Bytes(m.Size))
		cli.Row(w, "Duration", (time.Duration(m.Duration) * time.Second).String())
		for _, key := range slices.Sorted(maps.Keys(m.Details.Video)) {
			v := m.Details.Video[key]
			cli.Row(w, "Video", key, v.Codec, v.Width, v.Height)
		}
		for _, key := range slices.Sorted(maps.Keys(m.Details.Audio)) {
			a := m.Details.Audio[key]
			cli.Row(w, "Audio", key, a.Lang, a.Codec, a.Channels)
		}
		for _, key := range slices.Sorted(maps.Keys(m.Details.Subtitles)) {
			s := m.Details.Subtitles[key]
			cli.Row(w, "Subtitles", key, s.Lang, s.Type)
		}
	})
}
