package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/mj1618/xraise/internal/platform"
)

// ClientList enumerates the windows managed by the window manager, from the
// root's _NET_CLIENT_LIST property.
type ClientList struct {
	xu *xgbutil.XUtil
}

// Windows implements platform.WindowSource.
func (c ClientList) Windows(root platform.Window) ([]platform.Window, error) {
	clients, err := ewmh.ClientListGet(c.xu)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	return convertWindows(clients), nil
}

// Tree enumerates the direct children of the root window in stacking order,
// bottom first. Unlike ClientList it also works without an EWMH window
// manager, and it includes unmanaged windows.
type Tree struct {
	xu *xgbutil.XUtil
}

// Windows implements platform.WindowSource.
func (t Tree) Windows(root platform.Window) ([]platform.Window, error) {
	reply, err := xproto.QueryTree(t.xu.Conn(), xproto.Window(root)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query window tree: %w", classify("QueryTree", err))
	}
	return convertWindows(reply.Children), nil
}

func convertWindows(in []xproto.Window) []platform.Window {
	out := make([]platform.Window, len(in))
	for i, w := range in {
		out[i] = platform.Window(w)
	}
	return out
}

func sourceFor(name string) (func(*xgbutil.XUtil) platform.WindowSource, error) {
	switch name {
	case "", platform.SourceClientList:
		return func(xu *xgbutil.XUtil) platform.WindowSource { return ClientList{xu: xu} }, nil
	case platform.SourceTree:
		return func(xu *xgbutil.XUtil) platform.WindowSource { return Tree{xu: xu} }, nil
	default:
		return nil, fmt.Errorf("unsupported window source %q (use %s or %s)", name, platform.SourceClientList, platform.SourceTree)
	}
}
