package types

type TorrentStatus string

const (
	TorrentStatusMagnetError           TorrentStatus = "magnet_error"
	TorrentStatusMagnetConversion      TorrentStatus = "magnet_conversion"
	TorrentStatusWaitingFilesSelection TorrentStatus = "waiting_files_selection"
	TorrentStatusQueued                TorrentStatus = "queued"
	TorrentStatusDownloading           TorrentStatus = "downloading"
	TorrentStatusDownloaded            TorrentStatus = "downloaded"
	TorrentStatusError                 TorrentStatus = "error"
	TorrentStatusVirus                 TorrentStatus = "virus"
	TorrentStatusCompressing           TorrentStatus = "compressing"
	TorrentStatusUploading             TorrentStatus = "uploading"
	TorrentStatusDead                  TorrentStatus = "dead"
)

var torrentStatuses = []TorrentStatus{
	TorrentStatusMagnetError,
	TorrentStatusMagnetConversion,
	TorrentStatusWaitingFilesSelection,
	TorrentStatusQueued,
	TorrentStatusDownloading,
	TorrentStatusDownloaded,
	TorrentStatusError,
	TorrentStatusVirus,
	TorrentStatusCompressing,
	TorrentStatusUploading,
	TorrentStatusDead,
}

func (s *TorrentStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "torrent status", s, torrentStatuses)
}

// IsDownloading reports whether the torrent is still being fetched by the service.
func (s TorrentStatus) IsDownloading() bool {
	switch s {
	case TorrentStatusMagnetConversion, TorrentStatusQueued, TorrentStatusDownloading,
		TorrentStatusCompressing, TorrentStatusUploading:
		return true
	}
	return false
}

// IsFailed reports whether the torrent ended in a state it will not recover from.
func (s TorrentStatus) IsFailed() bool {
	switch s {
	case TorrentStatusMagnetError, TorrentStatusError, TorrentStatusVirus, TorrentStatusDead:
		return true
	}
	return false
}

// Torrent is an entry of the torrents listing.
type Torrent struct {
	ID       string        `json:"id"`
	Filename string        `json:"filename"`
	Hash     string        `json:"hash"`
	Bytes    uint64        `json:"bytes"`
	Host     string        `json:"host"`
	Split    uint64        `json:"split"`
	Progress float64       `json:"progress"`
	Status   TorrentStatus `json:"status"`
	Added    string        `json:"added"`
	Links    []string      `json:"links"`

	// Only present in some statuses
	Ended   *string `json:"ended,omitempty"`
	Speed   *uint64 `json:"speed,omitempty"`
	Seeders *uint64 `json:"seeders,omitempty"`
}

type TorrentInfo struct {
	ID               string        `json:"id"`
	Filename         string        `json:"filename"`
	OriginalFilename string        `json:"original_filename"`
	Hash             string        `json:"hash"`
	Bytes            uint64        `json:"bytes"`
	OriginalBytes    uint64        `json:"original_bytes"`
	Host             string        `json:"host"`
	Split            uint64        `json:"split"`
	Progress         float64       `json:"progress"`
	Status           TorrentStatus `json:"status"`
	Added            string        `json:"added"`
	Files            []TorrentFile `json:"files"`
	Links            []string      `json:"links"`

	Ended   *string `json:"ended,omitempty"`
	Speed   *uint64 `json:"speed,omitempty"`
	Seeders *uint64 `json:"seeders,omitempty"`
}

// SelectedFiles returns the files picked for download, in listing order.
func (t TorrentInfo) SelectedFiles() []TorrentFile {
	files := make([]TorrentFile, 0, len(t.Files))
	for _, f := range t.Files {
		if f.Selected.Bool() {
			files = append(files, f)
		}
	}
	return files
}

type TorrentFile struct {
	ID       uint64    `json:"id"`
	Path     string    `json:"path"`
	Bytes    uint64    `json:"bytes"`
	Selected ZeroOrOne `json:"selected"`
}

// InstantlyAvailableFile is a cached file keyed by its file id inside a variant.
type InstantlyAvailableFile struct {
	Filename string `json:"filename"`
	Filesize uint64 `json:"filesize"`
}

// InstantAvailability maps a hoster ("rd") to the cached file variants of a torrent.
type InstantAvailability = IndexedMap[[]map[string]InstantlyAvailableFile]

type ActiveCount struct {
	Nb    uint64   `json:"nb"`
	Limit uint64   `json:"limit"`
	List  []string `json:"list,omitempty"`
}

type AvailableHost struct {
	Host        string `json:"host"`
	MaxFileSize uint64 `json:"max_file_size"`
}

type AddedTorrent struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}
