package app

import "fmt"

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/verbnet-reader/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// VersionInfo is the build identity of the binary.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"buildTime" yaml:"build_time"`
}

// Info returns the ldflags-provided build identity.
func Info() VersionInfo {
	return VersionInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", v.Version, v.Commit, v.BuildTime)
}

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return Info().String()
}
