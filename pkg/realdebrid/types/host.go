package types

type HostStatus string

const (
	HostStatusUp          HostStatus = "up"
	HostStatusDown        HostStatus = "down"
	HostStatusUnsupported HostStatus = "unsupported"
)

func (s *HostStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "host status", s, []HostStatus{HostStatusUp, HostStatusDown, HostStatusUnsupported})
}

type Host struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`               // 16x16
	ImageBig *string `json:"image_big,omitempty"` // 100x100
}

type HostInfo struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Image             string                    `json:"image"`
	ImageBig          *string                   `json:"image_big,omitempty"`
	Supported         ZeroOrOne                 `json:"supported"`
	Status            HostStatus                `json:"status"`
	CheckTime         string                    `json:"check_time"`
	CompetitorsStatus map[string]CompetitorInfo `json:"competitors_status"`
}

type CompetitorInfo struct {
	Status    HostStatus `json:"status"`
	CheckTime string     `json:"check_time"`
}
