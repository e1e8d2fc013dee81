// Package version holds build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/mj1618/xraise/internal/version.Version=v0.3.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
