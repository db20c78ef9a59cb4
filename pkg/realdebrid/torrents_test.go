package realdebrid

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirrobot01/realdebrid/internal/mock"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTorrents_Info(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodGet, "/torrents/info/{id}", mock.Fixture(t, fixture("torrent_info.json")))

	info, err := d.Torrents().Info(context.Background(), "ABCDEFGHIJKLM")
	require.NoError(t, err)

	assert.Equal(t, "ABCDEFGHIJKLM", info.ID)
	assert.Equal(t, types.TorrentStatusDownloaded, info.Status)
	assert.Len(t, info.Files, 3)
	assert.Len(t, info.SelectedFiles(), 2)
	assert.Nil(t, info.Speed)

	req, _ := srv.Last(http.MethodGet, "/torrents/info/{id}")
	assert.Equal(t, "/torrents/info/ABCDEFGHIJKLM", req.Path)
	assert.Equal(t, 1, srv.Hits(http.MethodGet, "/torrents/info/{id}"))
}

func TestTorrents_List(t *testing.T) {
	t.Run("options are sent", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/torrents", mock.Fixture(t, fixture("torrents.json")))

		torrents, err := d.Torrents().List(context.Background(), &TorrentListOptions{
			ListOptions: ListOptions{Page: 2, Limit: 50},
			Filter:      "active",
		})
		require.NoError(t, err)
		require.Len(t, torrents, 2)
		assert.InDelta(t, 42.5, torrents[1].Progress, 0.001)
		require.NotNil(t, torrents[1].Seeders)
		assert.Equal(t, uint64(17), *torrents[1].Seeders)

		req, _ := srv.Last(http.MethodGet, "/torrents")
		assert.Equal(t, "2", req.Query.Get("page"))
		assert.Equal(t, "50", req.Query.Get("limit"))
		assert.Equal(t, "active", req.Query.Get("filter"))
		assert.False(t, req.Query.Has("offset"))
	})

	t.Run("nil options send no query", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/torrents", mock.JSON(http.StatusOK, []any{}))

		torrents, err := d.Torrents().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, torrents)

		req, _ := srv.Last(http.MethodGet, "/torrents")
		assert.Empty(t, req.Query)
	})
}

func TestTorrents_Len(t *testing.T) {
	t.Run("total count header", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/torrents", mock.TotalCount("1234"))

		n, err := d.Torrents().Len(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), n)
	})

	t.Run("missing header", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/torrents", mock.JSON(http.StatusOK, []any{}))

		_, err := d.Torrents().Len(context.Background())
		assert.ErrorIs(t, err, CodeInternalError)
	})

	t.Run("unparsable header", func(t *testing.T) {
		for _, value := range []string{"abc", "-1", "12.5"} {
			d, srv := newTestDebrid(t)
			srv.Handle(http.MethodGet, "/torrents", mock.TotalCount(value))

			_, err := d.Torrents().Len(context.Background())
			var countErr *TotalCountError
			require.ErrorAs(t, err, &countErr, value)
			assert.Equal(t, value, countErr.Value)
		}
	})

	t.Run("service error", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/torrents", mock.Error(http.StatusUnauthorized, 8, "bad_token"))

		_, err := d.Torrents().Len(context.Background())
		assert.ErrorIs(t, err, CodeBadToken)
	})
}

func TestTorrents_InstantAvailability(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodGet, "/torrents/instantAvailability/{hashes}", mock.Fixture(t, fixture("instant_availability.json")))

	availability, err := d.Torrents().InstantAvailability(context.Background(),
		"c39fe3eefbdb62da9c27eb6398ff4a7d2e26e7ab",
		"dd8255ecdc7ca55fb0bbf81323d87062db1f6d1c",
	)
	require.NoError(t, err)

	req, _ := srv.Last(http.MethodGet, "/torrents/instantAvailability/{hashes}")
	assert.Equal(t, "/torrents/instantAvailability/c39fe3eefbdb62da9c27eb6398ff4a7d2e26e7ab,dd8255ecdc7ca55fb0bbf81323d87062db1f6d1c", req.Path)

	cached := availability["c39fe3eefbdb62da9c27eb6398ff4a7d2e26e7ab"]
	require.Len(t, cached["rd"], 2)
	assert.Equal(t, "readme.nfo", cached["rd"][0]["3"].Filename)
	assert.Empty(t, availability["dd8255ecdc7ca55fb0bbf81323d87062db1f6d1c"])
}

func TestTorrents_ActiveCountAndHosts(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodGet, "/torrents/activeCount", mock.Fixture(t, fixture("active_count.json")))
	srv.Handle(http.MethodGet, "/torrents/availableHosts", mock.Fixture(t, fixture("available_hosts.json")))

	count, err := d.Torrents().ActiveCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count.Nb)
	assert.Equal(t, uint64(25), count.Limit)
	assert.Len(t, count.List, 2)

	hosts, err := d.Torrents().AvailableHosts(context.Background())
	require.NoError(t, err)
	require.Len(t, hosts, 2)
	assert.Equal(t, "real-debrid.com", hosts[0].Host)
}

func TestTorrents_AddTorrent(t *testing.T) {
	added := map[string]string{"id": "NEWTORRENT", "uri": "https://api.real-debrid.com/rest/1.0/torrents/info/NEWTORRENT"}

	t.Run("reader", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodPut, "/torrents/addTorrent", mock.JSON(http.StatusCreated, added))

		content := []byte("d8:announce0:4:infod4:name4:testee")
		res, err := d.Torrents().AddTorrent(context.Background(), bytes.NewReader(content), &AddTorrentOptions{Host: "real-debrid.com"})
		require.NoError(t, err)
		assert.Equal(t, "NEWTORRENT", res.ID)

		req, _ := srv.Last(http.MethodPut, "/torrents/addTorrent")
		assert.Equal(t, content, req.Body)
		assert.Equal(t, "real-debrid.com", req.Query.Get("host"))
	})

	t.Run("file", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodPut, "/torrents/addTorrent", mock.JSON(http.StatusCreated, added))

		path := filepath.Join(t.TempDir(), "test.torrent")
		content := bytes.Repeat([]byte("x"), 4096)
		require.NoError(t, os.WriteFile(path, content, 0644))

		_, err := d.Torrents().AddTorrentFile(context.Background(), path, nil)
		require.NoError(t, err)

		req, _ := srv.Last(http.MethodPut, "/torrents/addTorrent")
		assert.Equal(t, content, req.Body)
		assert.Equal(t, int64(4096), req.ContentLength)
		assert.False(t, req.Query.Has("host"))
	})

	t.Run("missing file", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodPut, "/torrents/addTorrent", mock.JSON(http.StatusCreated, added))

		_, err := d.Torrents().AddTorrentFile(context.Background(), filepath.Join(t.TempDir(), "nope.torrent"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Equal(t, 0, srv.Hits(http.MethodPut, "/torrents/addTorrent"))
	})

	t.Run("invalid torrent", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodPut, "/torrents/addTorrent", mock.Error(http.StatusBadRequest, 30, "torrent_file_invalid"))

		_, err := d.Torrents().AddTorrent(context.Background(), bytes.NewReader([]byte("garbage")), nil)
		assert.ErrorIs(t, err, CodeTorrentFileInvalid)
	})
}

func TestTorrents_AddMagnet(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodPost, "/torrents/addMagnet", mock.JSON(http.StatusCreated, map[string]string{"id": "MAGNET", "uri": "u"}))

	magnet := "magnet:?xt=urn:btih:c39fe3eefbdb62da9c27eb6398ff4a7d2e26e7ab&dn=test"
	res, err := d.Torrents().AddMagnet(context.Background(), magnet, &AddMagnetOptions{Host: "real-debrid.com"})
	require.NoError(t, err)
	assert.Equal(t, "MAGNET", res.ID)

	req, _ := srv.Last(http.MethodPost, "/torrents/addMagnet")
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	form := req.Form()
	assert.Equal(t, magnet, form.Get("magnet"))
	assert.Equal(t, "real-debrid.com", form.Get("host"))
}

func TestTorrents_SelectFilesAndDelete(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodPost, "/torrents/selectFiles/{id}", mock.Status(http.StatusNoContent))
	srv.Handle(http.MethodDelete, "/torrents/delete/{id}", mock.Status(http.StatusNoContent))

	require.NoError(t, d.Torrents().SelectFiles(context.Background(), "ABCDEFGHIJKLM", "1", "3"))
	req, _ := srv.Last(http.MethodPost, "/torrents/selectFiles/{id}")
	assert.Equal(t, "/torrents/selectFiles/ABCDEFGHIJKLM", req.Path)
	assert.Equal(t, "1,3", req.Form().Get("files"))

	require.NoError(t, d.Torrents().Delete(context.Background(), "ABCDEFGHIJKLM"))
	assert.Equal(t, 1, srv.Hits(http.MethodDelete, "/torrents/delete/{id}"))
}

func TestTorrents_NotFound(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodDelete, "/torrents/delete/{id}", mock.Error(http.StatusNotFound, 7, "unknown_ressource"))

	err := d.Torrents().Delete(context.Background(), "NOPE")
	assert.ErrorIs(t, err, CodeResourceNotFound)
}
