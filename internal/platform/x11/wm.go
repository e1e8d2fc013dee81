package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/mj1618/xraise/internal/platform"
)

// EWMH asks an EWMH compliant window manager to activate windows.
type EWMH struct {
	xu *xgbutil.XUtil
}

// SetActiveWindow sends a _NET_ACTIVE_WINDOW request to the root window.
func (e EWMH) SetActiveWindow(s platform.Screen, w platform.Window) error {
	if err := ewmh.ActiveWindowReq(e.xu, xproto.Window(w)); err != nil {
		return fmt.Errorf("failed to request active window %s: %w", w, classify("SendEvent", err))
	}
	return nil
}
