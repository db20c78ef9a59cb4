package downloaders

import (
	"context"
	"github.com/cavaliergopher/grab/v3"
	"net/http"
	"time"
)

// ProgressFunc is called periodically while a download runs.
type ProgressFunc func(filename string, complete, total int64, progress float64)

// NewGrabClient returns a grab client. A nil httpClient means http.DefaultClient.
func NewGrabClient(httpClient *http.Client, userAgent string) *grab.Client {
	client := grab.NewClient()
	if httpClient != nil {
		client.HTTPClient = httpClient
	}
	if userAgent != "" {
		client.UserAgent = userAgent
	}
	return client
}

// Download fetches url into dst, a directory or a file path, and returns the
// path of the downloaded file. Partial files are resumed.
func Download(ctx context.Context, client *grab.Client, url, dst string, interval time.Duration, progress ProgressFunc) (string, error) {
	req, err := grab.NewRequest(dst, url)
	if err != nil {
		return "", err
	}
	req = req.WithContext(ctx)

	resp := client.Do(req)

	if progress != nil && interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
	Loop:
		for {
			select {
			case <-t.C:
				progress(resp.Filename, resp.BytesComplete(), resp.Size(), resp.Progress())
			case <-resp.Done:
				// download is complete
				break Loop
			}
		}
	}

	if err := resp.Err(); err != nil {
		return "", err
	}
	if progress != nil {
		progress(resp.Filename, resp.BytesComplete(), resp.Size(), 1)
	}
	return resp.Filename, nil
}
