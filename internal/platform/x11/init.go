//go:build linux || freebsd || netbsd || openbsd || dragonfly

package x11

import "github.com/mj1618/xraise/internal/platform"

func init() {
	platform.NewProviderFunc = Open
}
