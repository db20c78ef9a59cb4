package commands

import (
	"github.com/sirrobot01/realdebrid/pkg/cli"
	ucli "github.com/urfave/cli/v2"
	"io"
	"strings"
)

func init() {
	cli.Register(&ucli.Command{
		Name:  "settings",
		Usage: "Account settings",
		Subcommands: []*ucli.Command{
			{
				Name:   "get",
				Usage:  "Show the current settings",
				Action: executeSettingsGet,
			},
			{
				Name:      "update",
				Usage:     "Change a setting",
				ArgsUsage: "NAME VALUE",
				Action:    executeSettingsUpdate,
			},
			{
				Name:   "convert-points",
				Usage:  "Convert fidelity points",
				Action: executeSettingsConvertPoints,
			},
			{
				Name:   "change-password",
				Usage:  "Send the password reset email",
				Action: executeSettingsChangePassword,
			},
			{
				Name:      "avatar-set",
				Usage:     "Upload a new avatar",
				ArgsUsage: "PATH",
				Action:    executeSettingsAvatarSet,
			},
			{
				Name:   "avatar-delete",
				Usage:  "Reset the avatar",
				Action: executeSettingsAvatarDelete,
			},
		},
	})
}

func executeSettingsGet(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	s, err := env.Debrid.Settings().Get(c.Context)
	if err != nil {
		return err
	}
	return env.Out.Print(s, func(w io.Writer) {
		cli.Row(w, "download_port", s.DownloadPort, strings.Join(s.DownloadPorts, ","))
		cli.Row(w, "locale", s.Locale)
		cli.Row(w, "streaming_quality", s.StreamingQuality, strings.Join(s.StreamingQualities, ","))
		cli.Row(w, "mobile_streaming_quality", s.MobileStreamingQuality)
		cli.Row(w, "streaming_language_preference", s.StreamingLanguagePreference)
		cli.Row(w, "streaming_cast_audio_preference", s.StreamingCastAudioPreference, strings.Join(s.StreamingCastAudio, ","))
	})
}

func executeSettingsUpdate(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 2); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	name, value := c.Args().Get(0), c.Args().Get(1)
	if err := env.Debrid.Settings().Update(c.Context, name, value); err != nil {
		return err
	}
	env.Out.Line("%s set to %s", name, value)
	return nil
}

func executeSettingsConvertPoints(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	if err := env.Debrid.Settings().ConvertPoints(c.Context); err != nil {
		return err
	}
	env.Out.Line("Points converted")
	return nil
}

func executeSettingsChangePassword(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	if err := env.Debrid.Settings().ChangePassword(c.Context); err != nil {
		return err
	}
	env.Out.Line("Password reset email sent")
	return nil
}

func executeSettingsAvatarSet(c *ucli.Context) error {
	if err := cli.RequireArgs(c, 1); err != nil {
		return err
	}
	env := cli.EnvFrom(c)
	if err := env.Debrid.Settings().SetAvatarFile(c.Context, c.Args().First()); err != nil {
		return err
	}
	env.Out.Line("Avatar updated")
	return nil
}

func executeSettingsAvatarDelete(c *ucli.Context) error {
	env := cli.EnvFrom(c)
	if err := env.Debrid.Settings().DeleteAvatar(c.Context); err != nil {
		return err
	}
	env.Out.Line("Avatar deleted")
	return nil
}
