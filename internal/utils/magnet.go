package utils

import (
	"github.com/anacrolix/torrent/metainfo"
	"github.com/pkg/errors"
	"regexp"
	"strings"
)

var hexHashRe = regexp.MustCompile("^[0-9a-fA-F]{40}$")

type Magnet struct {
	Name     string
	InfoHash string
	Size     int64
	Link     string
}

// ParseMagnet reads the info hash and display name out of a magnet link.
func ParseMagnet(link string) (*Magnet, error) {
	m, err := metainfo.ParseMagnetUri(link)
	if err != nil {
		return nil, errors.Wrap(err, "parsing magnet link")
	}
	return &Magnet{
		Name:     m.DisplayName,
		InfoHash: m.InfoHash.HexString(),
		Link:     link,
	}, nil
}

// LoadTorrentFile reads a .torrent file and builds the matching magnet.
func LoadTorrentFile(path string) (*Magnet, error) {
	mi, err := metainfo.LoadFromFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading torrent %s", path)
	}
	hash := mi.HashInfoBytes()
	info, err := mi.UnmarshalInfo()
	if err != nil {
		return nil, errors.Wrapf(err, "reading info of %s", path)
	}
	return &Magnet{
		Name:     info.Name,
		InfoHash: hash.HexString(),
		Size:     info.TotalLength(),
		Link:     mi.Magnet(&hash, &info).String(),
	}, nil
}

// InfoHash accepts a magnet link, a hex info hash or a base32 info hash and
// returns the lowercase hex info hash.
func InfoHash(value string) (string, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "magnet:"):
		m, err := ParseMagnet(value)
		if err != nil {
			return "", err
		}
		return m.InfoHash, nil
	case hexHashRe.MatchString(value):
		return strings.ToLower(value), nil
	case len(value) == 32:
		m, err := ParseMagnet("magnet:?xt=urn:btih:" + value)
		if err != nil {
			return "", err
		}
		return m.InfoHash, nil
	}
	return "", errors.Errorf("invalid info hash %q", value)
}
