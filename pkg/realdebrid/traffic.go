package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
)

type TrafficAPI struct {
	c *client
}

// Get returns the traffic left on limited hosters, keyed by hoster.
func (a TrafficAPI) Get(ctx context.Context) (map[string]types.Traffic, error) {
	resp, err := a.c.get(ctx, "/traffic", nil)
	if err != nil {
		return nil, err
	}
	return decode[map[string]types.Traffic](resp, "traffic")
}

// Details returns the traffic used per day (YYYY-MM-DD). The service caps the range at 31 days.
func (a TrafficAPI) Details(ctx context.Context, opts *TrafficDetailsOptions) (map[string]types.TrafficDetail, error) {
	resp, err := a.c.get(ctx, "/traffic/details", opts.values())
	if err != nil {
		return nil, err
	}
	return decode[map[string]types.TrafficDetail](resp, "traffic details")
}
