package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"io"
	"net/url"
)

type SettingsAPI struct {
	c *client
}

func (a SettingsAPI) Get(ctx context.Context) (types.Settings, error) {
	resp, err := a.c.get(ctx, "/settings", nil)
	if err != nil {
		return types.Settings{}, err
	}
	return decode[types.Settings](resp, "settings")
}

// Update changes one setting. name is one of the types.Setting* constants.
func (a SettingsAPI) Update(ctx context.Context, name, value string) error {
	form := url.Values{
		"setting_name":  {name},
		"setting_value": {value},
	}
	resp, err := a.c.post(ctx, "/settings/update", form, nil)
	if err != nil {
		return err
	}
	return discard(resp)
}

// ConvertPoints converts fidelity points to premium days.
func (a SettingsAPI) ConvertPoints(ctx context.Context) error {
	return a.action(ctx, "/settings/convertPoints")
}

// ChangePassword sends the password reset email.
func (a SettingsAPI) ChangePassword(ctx context.Context) error {
	return a.action(ctx, "/settings/changePassword")
}

func (a SettingsAPI) action(ctx context.Context, path string) error {
	resp, err := a.c.post(ctx, path, nil, nil)
	if err != nil {
		return err
	}
	return discard(resp)
}

// SetAvatar uploads a new avatar image. avatar is streamed and not closed.
func (a SettingsAPI) SetAvatar(ctx context.Context, avatar io.Reader) error {
	return a.setAvatar(ctx, avatar, -1)
}

func (a SettingsAPI) SetAvatarFile(ctx context.Context, path string) error {
	f, size, err := openUpload(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return a.setAvatar(ctx, f, size)
}

func (a SettingsAPI) setAvatar(ctx context.Context, avatar io.Reader, size int64) error {
	resp, err := a.c.put(ctx, "/settings/avatarFile", avatar, size, nil)
	if err != nil {
		return err
	}
	return discard(resp)
}

// DeleteAvatar resets the avatar to the default one.
func (a SettingsAPI) DeleteAvatar(ctx context.Context) error {
	resp, err := a.c.delete(ctx, "/settings/avatarDelete", nil)
	if err != nil {
		return err
	}
	return discard(resp)
}
