package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"io"
	"net/url"
	"strings"
)

// TorrentsAPI manages the torrents of the account.
type TorrentsAPI struct {
	c *client
}

func (a TorrentsAPI) List(ctx context.Context, opts *TorrentListOptions) ([]types.Torrent, error) {
	resp, err := a.c.get(ctx, "/torrents", opts.values())
	if err != nil {
		return nil, err
	}
	return decode[[]types.Torrent](resp, "torrents")
}

// Len returns the total number of torrents, as reported by X-Total-Count.
func (a TorrentsAPI) Len(ctx context.Context) (uint64, error) {
	resp, err := a.c.get(ctx, "/torrents", nil)
	if err != nil {
		return 0, err
	}
	return totalCount(resp)
}

func (a TorrentsAPI) Info(ctx context.Context, id string) (types.TorrentInfo, error) {
	resp, err := a.c.get(ctx, "/torrents/info/"+url.PathEscape(id), nil)
	if err != nil {
		return types.TorrentInfo{}, err
	}
	return decode[types.TorrentInfo](resp, "torrent info")
}

// InstantAvailability reports the cached variants of each hash. Hashes the
// service knows nothing about come back with an empty availability.
func (a TorrentsAPI) InstantAvailability(ctx context.Context, hashes ...string) (map[string]types.InstantAvailability, error) {
	resp, err := a.c.get(ctx, "/torrents/instantAvailability/"+strings.Join(hashes, ","), nil)
	if err != nil {
		return nil, err
	}
	return decode[map[string]types.InstantAvailability](resp, "instant availability")
}

func (a TorrentsAPI) ActiveCount(ctx context.Context) (types.ActiveCount, error) {
	resp, err := a.c.get(ctx, "/torrents/activeCount", nil)
	if err != nil {
		return types.ActiveCount{}, err
	}
	return decode[types.ActiveCount](resp, "active count")
}

func (a TorrentsAPI) AvailableHosts(ctx context.Context) ([]types.AvailableHost, error) {
	resp, err := a.c.get(ctx, "/torrents/availableHosts", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]types.AvailableHost](resp, "available hosts")
}

// AddTorrent uploads the content of a .torrent file. body is streamed and not closed.
func (a TorrentsAPI) AddTorrent(ctx context.Context, body io.Reader, opts *AddTorrentOptions) (types.AddedTorrent, error) {
	return a.addTorrent(ctx, body, -1, opts)
}

// AddTorrentFile uploads the .torrent file at path.
func (a TorrentsAPI) AddTorrentFile(ctx context.Context, path string, opts *AddTorrentOptions) (types.AddedTorrent, error) {
	f, size, err := openUpload(path)
	if err != nil {
		return types.AddedTorrent{}, err
	}
	defer f.Close()
	return a.addTorrent(ctx, f, size, opts)
}

func (a TorrentsAPI) addTorrent(ctx context.Context, body io.Reader, size int64, opts *AddTorrentOptions) (types.AddedTorrent, error) {
	query := url.Values{}
	if opts != nil {
		setString(query, "host", opts.Host)
	}
	resp, err := a.c.put(ctx, "/torrents/addTorrent", body, size, query)
	if err != nil {
		return types.AddedTorrent{}, err
	}
	return decode[types.AddedTorrent](resp, "added torrent")
}

func (a TorrentsAPI) AddMagnet(ctx context.Context, magnet string, opts *AddMagnetOptions) (types.AddedTorrent, error) {
	form := url.Values{"magnet": {magnet}}
	if opts != nil {
		setString(form, "host", opts.Host)
	}
	resp, err := a.c.post(ctx, "/torrents/addMagnet", form, nil)
	if err != nil {
		return types.AddedTorrent{}, err
	}
	return decode[types.AddedTorrent](resp, "added torrent")
}

// SelectFiles starts the torrent with the given file ids. "all" selects every file.
func (a TorrentsAPI) SelectFiles(ctx context.Context, id string, files ...string) error {
	form := url.Values{"files": {strings.Join(files, ",")}}
	resp, err := a.c.post(ctx, "/torrents/selectFiles/"+url.PathEscape(id), form, nil)
	if err != nil {
		return err
	}
	return discard(resp)
}

func (a TorrentsAPI) Delete(ctx context.Context, id string) error {
	resp, err := a.c.delete(ctx, "/torrents/delete/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return discard(resp)
}
