package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"net/url"
)

// DownloadsAPI covers the downloads history.
type DownloadsAPI struct {
	c *client
}

func (a DownloadsAPI) List(ctx context.Context, opts *ListOptions) ([]types.Download, error) {
	resp, err := a.c.get(ctx, "/downloads", opts.values())
	if err != nil {
		return nil, err
	}
	return decode[[]types.Download](resp, "downloads")
}

// Len returns the total number of downloads, as reported by X-Total-Count.
func (a DownloadsAPI) Len(ctx context.Context) (uint64, error) {
	resp, err := a.c.get(ctx, "/downloads", nil)
	if err != nil {
		return 0, err
	}
	return totalCount(resp)
}

func (a DownloadsAPI) Delete(ctx context.Context, id string) error {
	resp, err := a.c.delete(ctx, "/downloads/delete/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return discard(resp)
}
