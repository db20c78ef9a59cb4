package realdebrid

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirrobot01/realdebrid/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloads(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/downloads", mock.Fixture(t, fixture("downloads.json")))

		downloads, err := d.Downloads().List(context.Background(), &ListOptions{Offset: 10})
		require.NoError(t, err)
		require.Len(t, downloads, 2)

		require.NotNil(t, downloads[0].Streamable)
		assert.True(t, downloads[0].Streamable.Bool())
		assert.Nil(t, downloads[1].Streamable)
		assert.Nil(t, downloads[1].HostIcon)

		req, _ := srv.Last(http.MethodGet, "/downloads")
		assert.Equal(t, "10", req.Query.Get("offset"))
		assert.False(t, req.Query.Has("limit"))
	})

	t.Run("len", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/downloads", mock.TotalCount("42"))

		n, err := d.Downloads().Len(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(42), n)
	})

	t.Run("delete", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodDelete, "/downloads/delete/{id}", mock.Status(http.StatusNoContent))

		require.NoError(t, d.Downloads().Delete(context.Background(), "DLAAAAAAAAAAA"))
		req, _ := srv.Last(http.MethodDelete, "/downloads/delete/{id}")
		assert.Equal(t, "/downloads/delete/DLAAAAAAAAAAA", req.Path)
	})

	t.Run("delete unknown", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodDelete, "/downloads/delete/{id}", mock.Error(http.StatusNotFound, 7, "unknown_ressource"))

		err := d.Downloads().Delete(context.Background(), "NOPE")
		assert.ErrorIs(t, err, CodeResourceNotFound)
	})
}
