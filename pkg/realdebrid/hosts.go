package realdebrid

import (
	"context"
	"github.com/sirrobot01/realdebrid/pkg/realdebrid/types"
	"regexp"
	"strings"
)

// HostsAPI lists the supported hosters.
type HostsAPI struct {
	c *client
}

// List returns the supported hosters keyed by domain.
func (a HostsAPI) List(ctx context.Context) (map[string]types.Host, error) {
	resp, err := a.c.get(ctx, "/hosts", nil)
	if err != nil {
		return nil, err
	}
	return decode[map[string]types.Host](resp, "hosts")
}

// Status returns the status of each hoster, here and at competitors.
func (a HostsAPI) Status(ctx context.Context) (map[string]types.HostInfo, error) {
	resp, err := a.c.get(ctx, "/hosts/status", nil)
	if err != nil {
		return nil, err
	}
	return decode[map[string]types.HostInfo](resp, "hosts status")
}

// Regex returns the patterns of the links the service can unrestrict.
func (a HostsAPI) Regex(ctx context.Context) ([]*regexp.Regexp, error) {
	return a.regex(ctx, "/hosts/regex")
}

// RegexFolder returns the patterns of the folder links the service can unrestrict.
func (a HostsAPI) RegexFolder(ctx context.Context) ([]*regexp.Regexp, error) {
	return a.regex(ctx, "/hosts/regexFolder")
}

func (a HostsAPI) regex(ctx context.Context, path string) ([]*regexp.Regexp, error) {
	resp, err := a.c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	patterns, err := decode[[]string](resp, "hosts regex")
	if err != nil {
		return nil, err
	}
	return compilePatterns(patterns)
}

// compilePatterns turns the JavaScript-style literals sent by the API
// ("/host\\.com\\/.+/") into Go regexps. One bad pattern fails them all.
func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		src := strings.Trim(strings.ReplaceAll(p, `\\`, `\`), "/")
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, &RegexError{Pattern: p, Err: err}
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Domains returns every domain the service supports.
func (a HostsAPI) Domains(ctx context.Context) ([]string, error) {
	resp, err := a.c.get(ctx, "/hosts/domains", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]string](resp, "hosts domains")
}
