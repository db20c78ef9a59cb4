package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"io"
	"net/url"
)

type UnrestrictAPI struct {
	c *client
}

// Check tells whether link can be unrestricted, without unrestricting it.
func (a UnrestrictAPI) Check(ctx context.Context, link string, opts *CheckOptions) (types.Check, error) {
	form := url.Values{"link": {link}}
	if opts != nil {
		setString(form, "password", opts.Password)
	}
	resp, err := a.c.post(ctx, "/unrestrict/check", form, nil)
	if err != nil {
		return types.Check{}, err
	}
	return decode[types.Check](resp, "check")
}

func (a UnrestrictAPI) Link(ctx context.Context, link string, opts *LinkOptions) (types.Link, error) {
	form := url.Values{"link": {link}}
	if opts != nil {
		setString(form, "password", opts.Password)
		setBool(form, "remote", opts.Remote)
	}
	resp, err := a.c.post(ctx, "/unrestrict/link", form, nil)
	if err != nil {
		return types.Link{}, err
	}
	return decode[types.Link](resp, "link")
}

// Folder returns the links contained in a folder link.
func (a UnrestrictAPI) Folder(ctx context.Context, link string) ([]string, error) {
	resp, err := a.c.post(ctx, "/unrestrict/folder", url.Values{"link": {link}}, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]string](resp, "folder links")
}

// ContainerFile decrypts a container file (RSDF, CCF, CCF3, DLC). container is streamed and not closed.
func (a UnrestrictAPI) ContainerFile(ctx context.Context, container io.Reader) ([]string, error) {
	return a.containerFile(ctx, container, -1)
}

func (a UnrestrictAPI) ContainerFilePath(ctx context.Context, path string) ([]string, error) {
	f, size, err := openUpload(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return a.containerFile(ctx, f, size)
}

func (a UnrestrictAPI) containerFile(ctx context.Context, container io.Reader, size int64) ([]string, error) {
	resp, err := a.c.put(ctx, "/unrestrict/containerFile", container, size, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]string](resp, "container links")
}

// ContainerLink decrypts a container file available at link.
func (a UnrestrictAPI) ContainerLink(ctx context.Context, link string) ([]string, error) {
	resp, err := a.c.post(ctx, "/unrestrict/containerLink", url.Values{"link": {link}}, nil)
	if err != nil {
		return nil, err
	}
	return decode[[]string](resp, "container links")
}
