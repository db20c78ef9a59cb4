package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"net/url"
)

type StreamingAPI struct {
	c *client
}

// Transcode returns the streaming links of a download.
func (a StreamingAPI) Transcode(ctx context.Context, id string) (types.Transcode, error) {
	resp, err := a.c.get(ctx, "/streaming/transcode/"+url.PathEscape(id), nil)
	if err != nil {
		return types.Transcode{}, err
	}
	return decode[types.Transcode](resp, "transcode")
}

// MediaInfo returns the detected media information of a download.
func (a StreamingAPI) MediaInfo(ctx context.Context, id string) (types.MediaInfo, error) {
	resp, err := a.c.get(ctx, "/streaming/mediaInfos/"+url.PathEscape(id), nil)
	if err != nil {
		return types.MediaInfo{}, err
	}
	return decode[types.MediaInfo](resp, "media info")
}
