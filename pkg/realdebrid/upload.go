package realdebrid

import (
	"github.com/pkg/errors"
	"os"
)

// openUpload opens path for a streamed PUT and returns its size.
func openUpload(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "open %s", path)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, errors.Wrapf(err, "stat %s", path)
	}
	return f, info.Size(), nil
}
