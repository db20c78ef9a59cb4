package realdebrid

import (
	"path/filepath"
	"testing"

	"github.com/sirrobot01/realdebrid/internal/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "LOREMIPSUM"

func newTestDebrid(t *testing.T) (*Debrid, *mock.Server) {
	t.Helper()
	srv := mock.New(t)
	d, err := New(Config{Token: testToken, BaseURL: srv.URL})
	require.NoError(t, err)
	return d, srv
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}
