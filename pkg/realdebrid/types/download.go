package types

// Download is an entry of the downloads history.
type Download struct {
	ID         string     `json:"id"`
	Filename   string     `json:"filename"`
	MimeType   string     `json:"mimeType"`
	Filesize   uint64     `json:"filesize"`
	Link       string     `json:"link"`
	Host       string     `json:"host"`
	HostIcon   *string    `json:"host_icon,omitempty"`
	Chunks     uint64     `json:"chunks"`
	Download   string     `json:"download"`
	Streamable *ZeroOrOne `json:"streamable,omitempty"`
	Generated  string     `json:"generated"`
	Type       *string    `json:"type,omitempty"`
}

// Check is the result of checking whether a link can be unrestricted.
type Check struct {
	Host        string    `json:"host"`
	HostIcon    *string   `json:"host_icon,omitempty"`
	HostIconBig *string   `json:"host_icon_big,omitempty"`
	Link        string    `json:"link"`
	Filename    string    `json:"filename"`
	Filesize    uint64    `json:"filesize"`
	Supported   ZeroOrOne `json:"supported"`
}

// Link is an unrestricted link.
type Link struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	MimeType    *string           `json:"mimeType,omitempty"`
	Filesize    uint64            `json:"filesize"`
	Link        string            `json:"link"`
	Host        string            `json:"host"`
	HostIcon    *string           `json:"host_icon,omitempty"`
	Chunks      uint64            `json:"chunks"`
	Crc         ZeroOrOne         `json:"crc"`
	Download    string            `json:"download"`
	Streamable  ZeroOrOne         `json:"streamable"`
	Type        *string           `json:"type,omitempty"`
	Quality     *string           `json:"quality,omitempty"`
	Alternative []AlternativeLink `json:"alternative,omitempty"`
}

type AlternativeLink struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	MimeType *string `json:"mimeType,omitempty"`
	Download string  `json:"download"`
	Type     *string `json:"type,omitempty"`
	Quality  *string `json:"quality,omitempty"`
}
