package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	VIDEOMATCH = "(?i)(\\.)(webm|m4v|3gp|nsv|ty|strm|rm|rmvb|m3u|ifo|mov|qt|divx|xvid|bivx|nrg|pva|wmv|asf|asx|ogm|ogv|m2v|avi|bin|dat|dvr-ms|mpg|mpeg|mp4|avc|vp3|svq3|nuv|viv|dv|fli|flv|wpl|img|iso|vob|mkv|mk3d|ts|wtv|m2ts)$"
	MUSICMATCH = "(?i)(\\.)(mp2|mp3|m4a|m4b|m4p|ogg|oga|opus|wma|wav|wv|flac|ape|aif|aiff|aifc)$"
)

var SAMPLEMATCH = `(?i)(^|[\\/]|\s|[._-])(sample|trailer|thumb|special|extras?)s?(\s|[._-]|$|/)`

var (
	mediaRe  = regexp.MustCompile(VIDEOMATCH + "|" + MUSICMATCH)
	sampleRe = regexp.MustCompile(SAMPLEMATCH)
)

// IsMediaFile reports whether path has a video or audio extension.
func IsMediaFile(path string) bool {
	return mediaRe.MatchString(path)
}

func IsSampleFile(path string) bool {
	return sampleRe.MatchString(path)
}

// RemoveInvalidChars strips characters that are not allowed in a file name.
func RemoveInvalidChars(value string) string {
	return strings.Map(func(r rune) rune {
		if r == filepath.Separator || r == ':' {
			return r
		}
		if r < 32 || strings.ContainsRune(`<>:"/\|?*`, r) {
			return -1
		}
		return r
	}, value)
}

// SafeFilename returns the base name of value with invalid characters removed.
func SafeFilename(value string) string {
	name := RemoveInvalidChars(filepath.Base(value))
	name = strings.Trim(name, string(filepath.Separator)+":. ")
	if name == "" {
		return "download"
	}
	return name
}
