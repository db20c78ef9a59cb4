package request

import (
	"context"
	"crypto/tls"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
	"golang.org/x/net/proxy"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func JoinURL(base string, paths ...string) (string, error) {
	// Split the last path component to separate query parameters
	lastPath := paths[len(paths)-1]
	parts := strings.Split(lastPath, "?")
	paths[len(paths)-1] = parts[0]

	joined, err := url.JoinPath(base, paths...)
	if err != nil {
		return "", err
	}

	// Add back query parameters if they exist
	if len(parts) > 1 {
		return joined + "?" + parts[1], nil
	}

	return joined, nil
}

// ValidHeaderValue reports whether v can be sent as an HTTP header value.
func ValidHeaderValue(v string) bool {
	if !httpguts.ValidHeaderFieldValue(v) {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] >= 0x80 {
			return false
		}
	}
	return true
}

type ClientOption func(*Client)

// Client is a plain HTTP client with default headers and request logging.
// It never retries and keeps no per-request state, so it is safe for concurrent use.
type Client struct {
	client        *http.Client
	headers       map[string]string
	skipTLSVerify bool
	logger        zerolog.Logger
	proxy         string
	custom        bool
}

func WithRedirectPolicy(policy func(req *http.Request, via []*http.Request) error) ClientOption {
	return func(c *Client) {
		c.client.CheckRedirect = policy
	}
}

// WithHeaders sets default headers
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.client.Transport = transport
	}
}

// WithHTTPClient replaces the underlying client. Its transport is kept as is.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.client = client
			c.custom = true
		}
	}
}

func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxy = proxyURL
	}
}

func WithInsecureSkipVerify(skip bool) ClientOption {
	return func(c *Client) {
		c.skipTLSVerify = skip
	}
}

// Header returns the default value set for key.
func (c *Client) Header(key string) string {
	return c.headers[key]
}

// Do applies the default headers and performs a single HTTP request.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	id := uuid.NewString()
	start := time.Now()
	c.logger.Debug().
		Str("request_id", id).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Msg("Sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("request_id", id).
			Err(err).
			Dur("elapsed", time.Since(start)).
			Msg("Request failed")
		return nil, err
	}

	c.logger.Debug().
		Str("request_id", id).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Received response")
	return resp, nil
}

// New creates a new HTTP client with the specified options
func New(options ...ClientOption) *Client {
	client := &Client{
		headers: make(map[string]string),
		logger:  zerolog.Nop(),
	}

	// default http client, no timeout of its own
	client.client = &http.Client{}

	// Apply options before configuring transport
	for _, option := range options {
		option(client)
	}

	// Check if transport was set by WithTransport or WithHTTPClient
	if !client.custom && client.client.Transport == nil {
		client.client.Transport = client.newTransport()
	}

	return client
}

func (c *Client) newTransport() *http.Transport {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.skipTLSVerify,
		},
		// Connection pooling
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 50,

		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		// TCP keep-alive
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,

		ForceAttemptHTTP2: true,
	}

	if c.proxy == "" {
		transport.Proxy = http.ProxyFromEnvironment
		return transport
	}

	if strings.HasPrefix(c.proxy, "socks5://") {
		socksURL, err := url.Parse(c.proxy)
		if err != nil {
			c.logger.Error().Msgf("Failed to parse SOCKS5 proxy URL: %v", err)
			return transport
		}
		var auth *proxy.Auth
		if socksURL.User != nil {
			password, _ := socksURL.User.Password()
			auth = &proxy.Auth{
				User:     socksURL.User.Username(),
				Password: password,
			}
		}

		dialer, err := proxy.SOCKS5("tcp", socksURL.Host, auth, proxy.Direct)
		if err != nil {
			c.logger.Error().Msgf("Failed to create SOCKS5 dialer: %v", err)
			return transport
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return transport
	}

	proxyURL, err := url.Parse(c.proxy)
	if err != nil {
		c.logger.Error().Msgf("Failed to parse proxy URL: %v", err)
		return transport
	}
	transport.Proxy = http.ProxyURL(proxyURL)
	return transport
}
