package types

// Transcode holds the streaming links of a file, keyed by quality, for each format.
type Transcode struct {
	Apple    map[string]string `json:"apple"`    // M3U8 live streaming
	Dash     map[string]string `json:"dash"`     // MPD live streaming
	LiveMP4  map[string]string `json:"liveMP4"`  // Live MP4
	H264WebM map[string]string `json:"h264WebM"` // Live H264 WebM
}

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeShow  MediaType = "show"
	MediaTypeAudio MediaType = "audio"
)

func (t *MediaType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "media type", t, []MediaType{MediaTypeMovie, MediaTypeShow, MediaTypeAudio})
}

type MediaInfo struct {
	Filename           string            `json:"filename"`
	Hoster             string            `json:"hoster"`
	Link               string            `json:"link"`
	Type               MediaType         `json:"type"`
	Season             *string           `json:"season,omitempty"`
	Episode            *string           `json:"episode,omitempty"`
	Year               *string           `json:"year,omitempty"`
	Duration           float64           `json:"duration"` // seconds
	Bitrate            uint64            `json:"bitrate"`
	Size               uint64            `json:"size"`
	Details            MediaDetails      `json:"details"`
	BackdropPath       *string           `json:"backdrop_path,omitempty"`
	PosterPath         *string           `json:"poster_path,omitempty"`
	AudioImage         *string           `json:"audio_image,omitempty"`
	BaseURL            *string           `json:"baseUrl,omitempty"`
	AvailableFormats   *AvailableFormats `json:"availableFormats,omitempty"`
	AvailableQualities map[string]string `json:"availableQualities,omitempty"`
	ModelURL           *string           `json:"modelUrl,omitempty"`
	Host               *string           `json:"host,omitempty"`
}

// MediaDetails lists the tracks of a file. Each group comes back as an empty
// array when there is no track of that kind.
type MediaDetails struct {
	Video     IndexedMap[VideoTrack]    `json:"video"`
	Audio     IndexedMap[AudioTrack]    `json:"audio"`
	Subtitles IndexedMap[SubtitleTrack] `json:"subtitles"`
}

type VideoTrack struct {
	Stream     string `json:"stream"`
	Lang       string `json:"lang"`
	LangISO    string `json:"lang_iso"`
	Codec      string `json:"codec"`
	Colorspace string `json:"colorspace"`
	Width      uint64 `json:"width"`
	Height     uint64 `json:"height"`
}

type AudioTrack struct {
	Stream   string  `json:"stream"`
	Lang     string  `json:"lang"`
	LangISO  string  `json:"lang_iso"`
	Codec    string  `json:"codec"`
	Sampling uint64  `json:"sampling"`
	Channels float64 `json:"channels"`
}

type SubtitleTrack struct {
	Stream  string `json:"stream"`
	Lang    string `json:"lang"`
	LangISO string `json:"lang_iso"`
	Type    string `json:"type"` // ASS, SRT...
}

type AvailableFormats struct {
	Apple    string `json:"apple"`
	Dash     string `json:"dash"`
	LiveMP4  string `json:"liveMP4"`
	H264WebM string `json:"h264WebM"`
}
