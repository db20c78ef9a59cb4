package types

import (
	"fmt"
	"github.com/goccy/go-json"
	"github.com/valyala/fastjson"
)

type TrafficKind string

const (
	TrafficLinks     TrafficKind = "links"
	TrafficGigabytes TrafficKind = "gigabytes"
	TrafficBytes     TrafficKind = "bytes"
)

type Reset string

const (
	ResetDaily   Reset = "daily"
	ResetWeekly  Reset = "weekly"
	ResetMonthly Reset = "monthly"
)

func (r *Reset) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "reset", r, []Reset{ResetDaily, ResetWeekly, ResetMonthly})
}

// LinkTraffic is the traffic of a hoster limited by number of links.
type LinkTraffic struct {
	Left  uint64  `json:"left"`
	Links uint64  `json:"links"`
	Limit *uint64 `json:"limit,omitempty"`
	Extra *uint64 `json:"extra,omitempty"`
	Reset *Reset  `json:"reset,omitempty"`
}

// ByteTraffic is the traffic of a hoster limited by bandwidth.
type ByteTraffic struct {
	Left  uint64  `json:"left"`
	Bytes *uint64 `json:"bytes,omitempty"`
	Limit *uint64 `json:"limit,omitempty"`
	Extra *uint64 `json:"extra,omitempty"`
	Reset *Reset  `json:"reset,omitempty"`
}

// Traffic is the remaining traffic on a limited hoster. Kind tells which one of
// Links, Gigabytes or Bytes is set.
type Traffic struct {
	Kind      TrafficKind
	Links     *LinkTraffic
	Gigabytes *ByteTraffic
	Bytes     *ByteTraffic
}

// Left returns the remaining links or bytes, whichever the hoster is limited by.
func (t Traffic) Left() uint64 {
	switch t.Kind {
	case TrafficLinks:
		return t.Links.Left
	case TrafficGigabytes:
		return t.Gigabytes.Left
	case TrafficBytes:
		return t.Bytes.Left
	}
	return 0
}

func (t *Traffic) UnmarshalJSON(data []byte) error {
	kind := TrafficKind(fastjson.GetString(data, "type"))
	decoded := Traffic{Kind: kind}
	switch kind {
	case TrafficLinks:
		decoded.Links = new(LinkTraffic)
		if err := json.Unmarshal(data, decoded.Links); err != nil {
			return err
		}
	case TrafficGigabytes:
		decoded.Gigabytes = new(ByteTraffic)
		if err := json.Unmarshal(data, decoded.Gigabytes); err != nil {
			return err
		}
	case TrafficBytes:
		decoded.Bytes = new(ByteTraffic)
		if err := json.Unmarshal(data, decoded.Bytes); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown traffic type %q", kind)
	}
	*t = decoded
	return nil
}

func (t Traffic) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TrafficLinks:
		return json.Marshal(struct {
			Type TrafficKind `json:"type"`
			*LinkTraffic
		}{t.Kind, t.Links})
	case TrafficGigabytes:
		return json.Marshal(struct {
			Type TrafficKind `json:"type"`
			*ByteTraffic
		}{t.Kind, t.Gigabytes})
	case TrafficBytes:
		return json.Marshal(struct {
			Type TrafficKind `json:"type"`
			*ByteTraffic
		}{t.Kind, t.Bytes})
	}
	return nil, fmt.Errorf("unknown traffic type %q", t.Kind)
}

// TrafficDetail is the traffic used on one day.
type TrafficDetail struct {
	Host  map[string]uint64 `json:"host"` // bytes downloaded per hoster
	Bytes uint64            `json:"bytes"`
}
