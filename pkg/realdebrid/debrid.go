package realdebrid

import (
	"context"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirrobot01/realdebrid/internal/request"
	"net/http"
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://api.real-debrid.com/rest/1.0"

// Config is what New needs to reach the API. An empty Token sends
// unauthenticated requests; an empty BaseURL means DefaultBaseURL.
type Config struct {
	Token   string
	BaseURL string
}

type options struct {
	logger     zerolog.Logger
	httpClient *http.Client
	proxy      string
	insecure   bool
	userAgent  string
}

type Option func(*options)

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient makes requests go through client. Its timeout and transport are used as is.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithProxy routes requests through an http(s):// or socks5:// proxy.
// Ignored when WithHTTPClient is used.
func WithProxy(proxyURL string) Option {
	return func(o *options) {
		o.proxy = proxyURL
	}
}

func WithInsecureSkipVerify(skip bool) Option {
	return func(o *options) {
		o.insecure = skip
	}
}

func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// Debrid is the entry point of the library. It holds no mutable state and is
// safe for concurrent use.
type Debrid struct {
	c *client
}

func New(cfg Config, opts ...Option) (*Debrid, error) {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	headers := map[string]string{}
	if cfg.Token != "" {
		auth := "Bearer " + cfg.Token
		if !request.ValidHeaderValue(auth) {
			return nil, ErrInvalidHeaderValue
		}
		headers["Authorization"] = auth
	}
	if o.userAgent != "" {
		if !request.ValidHeaderValue(o.userAgent) {
			return nil, ErrInvalidHeaderValue
		}
		headers["User-Agent"] = o.userAgent
	}

	clientOpts := []request.ClientOption{
		request.WithHeaders(headers),
		request.WithLogger(o.logger),
		request.WithProxy(o.proxy),
		request.WithInsecureSkipVerify(o.insecure),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, request.WithHTTPClient(o.httpClient))
	}

	return &Debrid{
		c: &client{
			http:    request.New(clientOpts...),
			baseURL: strings.TrimRight(baseURL, "/"),
			logger:  o.logger,
		},
	}, nil
}

func (d *Debrid) Downloads() DownloadsAPI {
	return DownloadsAPI{c: d.c}
}

func (d *Debrid) Torrents() TorrentsAPI {
	return TorrentsAPI{c: d.c}
}

func (d *Debrid) Hosts() HostsAPI {
	return HostsAPI{c: d.c}
}

func (d *Debrid) Settings() SettingsAPI {
	return SettingsAPI{c: d.c}
}

func (d *Debrid) Streaming() StreamingAPI {
	return StreamingAPI{c: d.c}
}

func (d *Debrid) Traffic() TrafficAPI {
	return TrafficAPI{c: d.c}
}

func (d *Debrid) Unrestrict() UnrestrictAPI {
	return UnrestrictAPI{c: d.c}
}

func (d *Debrid) User() UserAPI {
	return UserAPI{c: d.c}
}

// Time returns the server time as "YYYY-MM-DD HH:MM:SS" in the server's timezone.
func (d *Debrid) Time(ctx context.Context) (string, error) {
	resp, err := d.c.get(ctx, "/time", nil)
	if err != nil {
		return "", err
	}
	return text(resp)
}

// TimeISO returns the server time in ISO 8601.
func (d *Debrid) TimeISO(ctx context.Context) (string, error) {
	resp, err := d.c.get(ctx, "/time/iso", nil)
	if err != nil {
		return "", err
	}
	return text(resp)
}

// DisableAccessToken revokes the token the client was built with. Every later
// authenticated call fails with CodeBadToken.
func (d *Debrid) DisableAccessToken(ctx context.Context) error {
	resp, err := d.c.get(ctx, "/disable_access_token", nil)
	if err != nil {
		return err
	}
	return discard(resp)
}
