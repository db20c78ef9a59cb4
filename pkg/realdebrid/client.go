package realdebrid

import (
	"context"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sirrobot01/realdebrid/internal/request"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const totalCountHeader = "X-Total-Count"

// client performs one authenticated round trip per call and classifies the outcome.
type client struct {
	http    *request.Client
	baseURL string
	logger  zerolog.Logger
}

func (c *client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := request.JoinURL(c.baseURL, path)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, u, body)
}

func (c *client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.Redacted(), Err: err}
	}
	return c.handle(resp)
}

// handle passes 2xx responses through and turns everything else into an *APIError.
func (c *client) handle(resp *http.Response) (*http.Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode, Code: CodeInternalError}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug().Err(err).Int("status", resp.StatusCode).Msg("Failed to read error body")
		return nil, apiErr
	}

	var envelope types.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Debug().Int("status", resp.StatusCode).Msg("Error body is not an error envelope")
		return nil, apiErr
	}
	apiErr.Code = CodeFor(envelope.Code)
	apiErr.Message = envelope.Message
	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("error_code", envelope.Code).
		Str("error", envelope.Message).
		Msg("Request rejected")
	return nil, apiErr
}

func (c *client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return c.send(req)
}

// post sends form as an application/x-www-form-urlencoded body.
func (c *client) post(ctx context.Context, path string, form url.Values, query url.Values) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, query, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req)
}

// put streams body as is. size is sent as Content-Length when positive.
// body is never closed, even when it is an io.Closer.
func (c *client) put(ctx context.Context, path string, body io.Reader, size int64, query url.Values) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPut, path, query, body)
	if err != nil {
		return nil, err
	}
	if _, ok := body.(io.Closer); ok {
		req.Body = io.NopCloser(body)
	}
	if size > 0 {
		req.ContentLength = size
	}
	return c.send(req)
}

func (c *client) delete(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, path, query, nil)
	if err != nil {
		return nil, err
	}
	return c.send(req)
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: resp.Request.Method, URL: resp.Request.URL.Redacted(), Err: err}
	}
	return body, nil
}

// decode reads a JSON body into a T.
func decode[T any](resp *http.Response, target string) (T, error) {
	var v T
	body, err := readBody(resp)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, &DecodeError{Target: target, Err: err}
	}
	return v, nil
}

func text(resp *http.Response) (string, error) {
	body, err := readBody(resp)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// discard drains and closes a body we have no use for.
func discard(resp *http.Response) error {
	_, err := readBody(resp)
	return err
}

// totalCount reads the X-Total-Count header of a listing response.
func totalCount(resp *http.Response) (uint64, error) {
	defer func() {
		_ = discard(resp)
	}()

	values := resp.Header.Values(totalCountHeader)
	if len(values) == 0 {
		return 0, &APIError{StatusCode: resp.StatusCode, Code: CodeInternalError, Message: "missing " + totalCountHeader + " header"}
	}
	n, err := strconv.ParseUint(values[0], 10, 64)
	if err != nil {
		return 0, &TotalCountError{Value: values[0], Err: err}
	}
	return n, nil
}
