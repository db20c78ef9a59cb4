package realdebrid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirrobot01/realdebrid/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("default base url", func(t *testing.T) {
		d, err := New(Config{Token: testToken})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, d.c.baseURL)
	})

	t.Run("trailing slash is dropped", func(t *testing.T) {
		d, err := New(Config{BaseURL: "http://localhost:8080/rest/1.0/"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/rest/1.0", d.c.baseURL)
	})

	t.Run("invalid base url", func(t *testing.T) {
		_, err := New(Config{BaseURL: "ftp://localhost"})
		require.Error(t, err)
	})

	t.Run("token with control characters", func(t *testing.T) {
		_, err := New(Config{Token: "LOREM\nIPSUM"})
		assert.ErrorIs(t, err, ErrInvalidHeaderValue)
	})

	t.Run("token with non ascii characters", func(t *testing.T) {
		_, err := New(Config{Token: "LOREMÏPSUM"})
		assert.ErrorIs(t, err, ErrInvalidHeaderValue)
	})
}

func TestAuthorizationHeader(t *testing.T) {
	t.Run("token is sent as bearer", func(t *testing.T) {
		d, srv := newTestDebrid(t)
		srv.Handle(http.MethodGet, "/user", mock.Fixture(t, fixture("user.json")))

		_, err := d.User().Get(context.Background())
		require.NoError(t, err)

		req, ok := srv.Last(http.MethodGet, "/user")
		require.True(t, ok)
		assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
	})

	t.Run("no token no header", func(t *testing.T) {
		srv := mock.New(t)
		srv.Handle(http.MethodGet, "/time", mock.Text(http.StatusOK, "2024-09-27 21:52:18"))
		d, err := New(Config{BaseURL: srv.URL}, WithUserAgent("rdctl/test"))
		require.NoError(t, err)

		_, err = d.Time(context.Background())
		require.NoError(t, err)

		req, _ := srv.Last(http.MethodGet, "/time")
		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Equal(t, "rdctl/test", req.Header.Get("User-Agent"))
	})
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
		code    ErrorCode
		message string
	}{
		{"bad token", mock.Error(http.StatusUnauthorized, 8, "bad_token"), 401, CodeBadToken, "bad_token"},
		{"account locked", mock.Error(http.StatusForbidden, 14, "account_locked"), 403, CodeAccountLocked, "account_locked"},
		{"too many requests", mock.Error(http.StatusTooManyRequests, 34, "too_many_requests"), 429, CodeTooManyRequests, "too_many_requests"},
		{"unknown code", mock.Error(http.StatusBadRequest, 99, "something_new"), 400, CodeInternalError, "something_new"},
		{"html body", mock.Raw(http.StatusBadGateway, "text/html", "<html>bad gateway</html>"), 502, CodeInternalError, ""},
		{"empty body", mock.Status(http.StatusServiceUnavailable), 503, CodeInternalError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, srv := newTestDebrid(t)
			srv.Handle(http.MethodGet, "/user", tt.handler)

			_, err := d.User().Get(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "got %T", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.ErrorIs(t, err, tt.code)
			assert.Equal(t, 1, srv.Hits(http.MethodGet, "/user"))
		})
	}
}

func TestDecodeError(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodGet, "/user", mock.Raw(http.StatusOK, "application/json", `{"id":"not a number"}`))

	_, err := d.User().Get(context.Background())
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "user", decodeErr.Target)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	d, err := New(Config{Token: testToken, BaseURL: baseURL})
	require.NoError(t, err)

	_, err = d.User().Get(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCanceledContext(t *testing.T) {
	d, srv := newTestDebrid(t)
	srv.Handle(http.MethodGet, "/user", mock.Fixture(t, fixture("user.json")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.User().Get(ctx)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, srv.Hits(http.MethodGet, "/user"))
}

func TestWithHTTPClient(t *testing.T) {
	srv := mock.New(t)
	srv.Handle(http.MethodGet, "/time/iso", mock.Text(http.StatusOK, "2024-09-27T21:52:18+02:00"))

	d, err := New(Config{BaseURL: srv.URL}, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	iso, err := d.TimeISO(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-09-27T21:52:18+02:00", iso)
}
