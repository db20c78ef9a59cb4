package commands

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirrobot01/realdebrid/internal/mock"
	"github.com/sirrobot01/realdebrid/pkg/cli"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "LOREMIPSUM"

func fixture(name string) string {
	return filepath.Join("..", "..", "realdebrid", "testdata", name)
}

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, configDir string, srv *mock.Server, args ...string) result {
	t.Helper()
	if configDir == "" {
		configDir = t.TempDir()
	}
	full := []string{"rdctl", "--config", configDir, "--log-level", "error"}
	if srv != nil {
		full = append(full, "--base-url", srv.URL, "--token", testToken)
	}
	full = append(full, args...)

	var stdout, stderr bytes.Buffer
	err := cli.Execute(context.Background(), full, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestVersion(t *testing.T) {
	res := run(t, "", nil, "--json", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"version"`)
}

func TestTime(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/time", mock.Text(http.StatusOK, "2024-09-27 21:52:18"))
	srv.Handle(http.MethodGet, "/time/iso", mock.Text(http.StatusOK, "2024-09-27T21:52:18+0200"))

	res := run(t, "", srv, "time")
	require.NoError(t, res.err)
	assert.Equal(t, "2024-09-27 21:52:18\n", res.stdout)

	res = run(t, "", srv, "time", "--iso")
	require.NoError(t, res.err)
	assert.Equal(t, "2024-09-27T21:52:18+0200\n", res.stdout)
}

func TestAuthorization(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/user", mock.Fixture(t, fixture("user.json")))

	res := run(t, "", srv, "user")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "loremipsum")

	req, ok := srv.Last(http.MethodGet, "/user")
	require.True(t, ok)
	assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
	assert.Contains(t, req.Header.Get("User-Agent"), "rdctl/")
}

func TestAPIErrorIsReturned(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/user", mock.Error(http.StatusUnauthorized, 8, "bad_token"))

	res := run(t, "", srv, "user")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, realdebrid.CodeBadToken)
}

func TestDownloadsLen(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/downloads", mock.TotalCount("12"))

	res := run(t, "", srv, "--json", "downloads", "len")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{"downloads": 12}`, res.stdout)
}

func TestDownloadsList(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/downloads", mock.Fixture(t, fixture("downloads.json")))

	res := run(t, "", srv, "downloads", "list", "--page", "2", "--limit", "50")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "ID")

	req, ok := srv.Last(http.MethodGet, "/downloads")
	require.True(t, ok)
	assert.Equal(t, "2", req.Query.Get("page"))
	assert.Equal(t, "50", req.Query.Get("limit"))
	assert.False(t, req.Query.Has("offset"))
}

func TestTorrentsInfo(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/torrents/info/{id}", mock.Fixture(t, fixture("torrent_info.json")))

	res := run(t, "", srv, "torrents", "info", "ABCDEFGHIJKLM")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Example.Release.2024.1080p")
	assert.Contains(t, res.stdout, "/Example.Release.2024.1080p/movie.mkv")
}

func TestTorrentsSelectMedia(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/torrents/info/{id}", mock.Fixture(t, fixture("torrent_info.json")))
	srv.Handle(http.MethodPost, "/torrents/selectFiles/{id}", mock.Status(http.StatusNoContent))

	res := run(t, "", srv, "torrents", "select", "--media", "ABCDEFGHIJKLM")
	require.NoError(t, res.err)

	req, ok := srv.Last(http.MethodPost, "/torrents/selectFiles/{id}")
	require.True(t, ok)
	assert.Equal(t, "/torrents/selectFiles/ABCDEFGHIJKLM", req.Path)
	// sample.mkv and readme.nfo are skipped
	assert.Equal(t, "1", req.Form().Get("files"))
}

func TestTorrentsSelectRequiresFiles(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodPost, "/torrents/selectFiles/{id}", mock.Status(http.StatusNoContent))

	res := run(t, "", srv, "torrents", "select", "ABCDEFGHIJKLM")
	require.Error(t, res.err)
	assert.Zero(t, srv.Hits(http.MethodPost, "/torrents/selectFiles/{id}"))

	res = run(t, "", srv, "torrents", "select", "--all", "ABCDEFGHIJKLM")
	require.NoError(t, res.err)
	req, _ := srv.Last(http.MethodPost, "/torrents/selectFiles/{id}")
	assert.Equal(t, "all", req.Form().Get("files"))
}

func TestMissingArgument(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodDelete, "/torrents/delete/{id}", mock.Status(http.StatusNoContent))

	res := run(t, "", srv, "torrents", "delete")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "ID")
	assert.Zero(t, srv.Hits(http.MethodDelete, "/torrents/delete/{id}"))
}

func TestHostsMatch(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/hosts/regex", mock.JSON(http.StatusOK, []string{`/(https?:\/\/)?example\.com\/.+/`}))
	srv.Handle(http.MethodGet, "/hosts/regexFolder", mock.JSON(http.StatusOK, []string{`/(https?:\/\/)?example\.org\/folder\/.+/`}))

	res := run(t, "", srv, "--json", "hosts", "match",
		"https://example.com/f/1", "https://example.org/folder/2", "https://other.net/x")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{
		"https://example.com/f/1": true,
		"https://example.org/folder/2": true,
		"https://other.net/x": false
	}`, res.stdout)
}

func TestUnrestrictLinkRemote(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodPost, "/unrestrict/link", mock.Fixture(t, fixture("unrestrict_link.json")))

	res := run(t, "", srv, "unrestrict", "link", "https://example.com/f/1")
	require.NoError(t, res.err)
	req, _ := srv.Last(http.MethodPost, "/unrestrict/link")
	assert.False(t, req.Form().Has("remote"))

	res = run(t, "", srv, "unrestrict", "link", "--remote", "https://example.com/f/1")
	require.NoError(t, res.err)
	req, _ = srv.Last(http.MethodPost, "/unrestrict/link")
	assert.Equal(t, "1", req.Form().Get("remote"))
	assert.Equal(t, "https://example.com/f/1", req.Form().Get("link"))
}

func TestUnrestrictLinkDownload(t *testing.T) {
	content := "not really a movie"
	srv := mock.New(t)
	srv.Handle(http.MethodPost, "/unrestrict/link", func(w http.ResponseWriter, r *http.Request) {
		mock.JSONResponse(w, http.StatusOK, map[string]any{
			"id":         "AAAAAAAAAAAAA",
			"filename":   "movie.mkv",
			"filesize":   len(content),
			"link":       "https://example.com/f/1",
			"host":       "example.com",
			"chunks":     16,
			"crc":        1,
			"download":   srv.URL + "/d/AAAAAAAAAAAAA/movie.mkv",
			"streamable": 1,
		})
	})
	serve := mock.Raw(http.StatusOK, "video/x-matroska", content)
	srv.Handle(http.MethodHead, "/d/{id}/{name}", serve)
	srv.Handle(http.MethodGet, "/d/{id}/{name}", serve)

	dir := t.TempDir()
	res := run(t, "", srv, "unrestrict", "link", "--download", "--dir", dir, "https://example.com/f/1")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "movie.mkv"))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Contains(t, res.stdout, "Saved")
}

func TestSettingsUpdate(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodPost, "/settings/update", mock.Status(http.StatusNoContent))

	res := run(t, "", srv, "settings", "update", "locale", "fr")
	require.NoError(t, res.err)
	assert.Equal(t, "locale set to fr\n", res.stdout)

	req, _ := srv.Last(http.MethodPost, "/settings/update")
	assert.Equal(t, "locale", req.Form().Get("setting_name"))
	assert.Equal(t, "fr", req.Form().Get("setting_value"))
}

func TestTrafficGet(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/traffic", mock.Fixture(t, fixture("traffic.json")))

	res := run(t, "", srv, "traffic", "get")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "HOSTER")
	assert.Contains(t, res.stdout, "12 links")
	assert.Contains(t, res.stdout, "50 GiB")
}

func TestConfigSaveAndShow(t *testing.T) {
	dir := t.TempDir()
	srv := mock.New(t)

	res := run(t, dir, srv, "config", "save")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, testToken, saved["token"])
	assert.Equal(t, srv.URL, saved["base_url"])

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// The saved file is picked up without flags.
	res = run(t, dir, nil, "--json", "config", "show")
	require.NoError(t, res.err)
	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &shown))
	assert.Equal(t, "******PSUM", shown["token"])
	assert.Equal(t, srv.URL, shown["base_url"])
}

func TestInvalidBaseURL(t *testing.T) {
	res := run(t, "", nil, "--base-url", "ftp://example.com", "user")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "base_url")
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", maskToken(""))
	assert.Equal(t, "***", maskToken("abc"))
	assert.Equal(t, "****cdef", maskToken("abcdcdef"))
}
