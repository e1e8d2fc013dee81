// Package xwin finds X11 windows matching a condition and activates them
// through EWMH client messages.
//
// Every operation runs against the collaborators held by a Session. The
// Session borrows them: it never opens or closes a connection, and it keeps
// no state between operations apart from interned atom ids.
package xwin

import (
	"fmt"

	"github.com/mj1618/xraise/internal/logger"
	"github.com/mj1618/xraise/internal/platform"
)

// Property and message names used by the resolver and the sequencer.
const (
	atomWMName            = "WM_NAME"
	atomWMClass           = "WM_CLASS"
	atomNetWMName         = "_NET_WM_NAME"
	atomNetWMDesktop      = "_NET_WM_DESKTOP"
	atomNetCurrentDesktop = "_NET_CURRENT_DESKTOP"
)

// Session bundles one display connection's collaborators.
type Session struct {
	Conn   platform.Conn
	Atoms  platform.AtomInterner
	Screen platform.Screen
	Log    *logger.Logger
}

// NewSession builds a Session over the collaborators of p.
func NewSession(p *platform.Provider, log *logger.Logger) *Session {
	return &Session{
		Conn:   p.Conn,
		Atoms:  p.Atoms,
		Screen: p.Screen,
		Log:    log,
	}
}

func (s *Session) atom(name string) (platform.Atom, error) {
	a, err := s.Atoms.InternAtom(name)
	if err != nil {
		return 0, fmt.Errorf("interning %s: %w", name, err)
	}
	return a, nil
}
