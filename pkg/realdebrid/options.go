package realdebrid

import (
	"net/url"
	"strconv"
)

// ListOptions paginates a listing. Zero fields are left out of the query.
type ListOptions struct {
	Offset uint64
	Page   uint64
	Limit  uint64 // max 5000 per page
}

func (o *ListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setUint(v, "offset", o.Offset)
	setUint(v, "page", o.Page)
	setUint(v, "limit", o.Limit)
	return v
}

type TorrentListOptions struct {
	ListOptions
	// Filter "active" lists only active torrents.
	Filter string
}

func (o *TorrentListOptions) values() url.Values {
	if o == nil {
		return url.Values{}
	}
	v := o.ListOptions.values()
	setString(v, "filter", o.Filter)
	return v
}

type AddTorrentOptions struct {
	Host string
}

type AddMagnetOptions struct {
	Host string
}

// TrafficDetailsOptions bounds the traffic history. Dates are YYYY-MM-DD.
type TrafficDetailsOptions struct {
	Start string
	End   string
}

func (o *TrafficDetailsOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "start", o.Start)
	setString(v, "end", o.End)
	return v
}

type CheckOptions struct {
	Password string
}

type LinkOptions struct {
	Password string
	// Remote uses remote traffic. Nil leaves the account default.
	Remote *bool
}

func setUint(v url.Values, key string, n uint64) {
	if n > 0 {
		v.Set(key, strconv.FormatUint(n, 10))
	}
}

func setString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func setBool(v url.Values, key string, b *bool) {
	if b == nil {
		return
	}
	if *b {
		v.Set(key, "1")
	} else {
		v.Set(key, "0")
	}
}
