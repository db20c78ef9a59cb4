package types

// Settings holds the current user settings and, for most of them, the values they accept.
type Settings struct {
	DownloadPorts                []string          `json:"download_ports"`
	DownloadPort                 string            `json:"download_port"`
	Locales                      map[string]string `json:"locales"`
	Locale                       string            `json:"locale"`
	StreamingQualities           []string          `json:"streaming_qualities"`
	StreamingQuality             string            `json:"streaming_quality"`
	MobileStreamingQuality       string            `json:"mobile_streaming_quality"`
	StreamingLanguages           map[string]string `json:"streaming_languages"`
	StreamingLanguagePreference  string            `json:"streaming_language_preference"`
	StreamingCastAudio           []string          `json:"streaming_cast_audio"`
	StreamingCastAudioPreference string            `json:"streaming_cast_audio_preference"`
}

// Setting names accepted by the settings update endpoint.
const (
	SettingDownloadPort                 = "download_port"
	SettingLocale                       = "locale"
	SettingStreamingLanguagePreference  = "streaming_language_preference"
	SettingStreamingQuality             = "streaming_quality"
	SettingMobileStreamingQuality       = "mobile_streaming_quality"
	SettingStreamingCastAudioPreference = "streaming_cast_audio_preference"
)
