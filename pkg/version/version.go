package version

import "fmt"

type Info struct {
	Version string `json:"version"`
	Channel string `json:"channel"`
}

func (i Info) String() string {
	if i.Channel == "" {
		return i.Version
	}
	return fmt.Sprintf("%s-%s", i.Version, i.Channel)
}

// Set with -ldflags "-X github.com/sirrobot01/realdebrid/pkg/version.Version=..."
var (
	Version = "dev"
	Channel = ""
)

func GetInfo() Info {
	return Info{
		Version: Version,
		Channel: Channel,
	}
}

// UserAgent is sent with every API and download request made by rdctl.
func UserAgent() string {
	return "rdctl/" + GetInfo().String()
}
