package xwin

import (
	"encoding/binary"
	"fmt"

	"github.com/mj1618/xraise/internal/platform"
)

// Step names a stage of the activation sequence.
type Step int

const (
	StepReadDesktop Step = iota
	StepSwitchDesktop
	StepSetActiveWindow
	StepFlush
)

func (s Step) String() string {
	switch s {
	case StepReadDesktop:
		return "read-desktop"
	case StepSwitchDesktop:
		return "switch-desktop"
	case StepSetActiveWindow:
		return "set-active-window"
	case StepFlush:
		return "flush"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ActivationError reports the step at which an activation stopped.
type ActivationError struct {
	Step   Step
	Window platform.Window
	Err    error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("activating %s: %s: %v", e.Window, e.Step, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }

// allDesktops is the _NET_WM_DESKTOP value of a sticky window.
const allDesktops = 0xFFFFFFFF

// Activate brings w to the foreground: it switches to the desktop w lives on
// (when w reports one), asks the window manager to make w active, then
// flushes the connection. Each step runs at most once; the first failure is
// returned as an *ActivationError.
func (s *Session) Activate(wm platform.WindowManager, w platform.Window) error {
	desktop, ok, err := s.windowDesktop(w)
	if err != nil {
		return &ActivationError{Step: StepReadDesktop, Window: w, Err: err}
	}

	if ok {
		if err := s.switchDesktop(desktop); err != nil {
			return &ActivationError{Step: StepSwitchDesktop, Window: w, Err: err}
		}
	} else {
		s.Log.Debug("Window has no desktop, not switching", "window", w.String())
	}

	if err := wm.SetActiveWindow(s.Screen, w); err != nil {
		return &ActivationError{Step: StepSetActiveWindow, Window: w, Err: err}
	}

	if err := s.Conn.Flush(); err != nil {
		return &ActivationError{Step: StepFlush, Window: w, Err: err}
	}
	return nil
}

// windowDesktop reads _NET_WM_DESKTOP. Windows without the property, or
// sticky on every desktop, report false.
func (s *Session) windowDesktop(w platform.Window) (uint32, bool, error) {
	raw, ok, err := s.property(w, atomNetWMDesktop)
	if err != nil || !ok {
		return 0, false, err
	}
	if len(raw) < 4 {
		return 0, false, nil
	}
	desktop := binary.LittleEndian.Uint32(raw)
	if desktop == allDesktops {
		return 0, false, nil
	}
	return desktop, true, nil
}

func (s *Session) switchDesktop(desktop uint32) error {
	typ, err := s.atom(atomNetCurrentDesktop)
	if err != nil {
		return err
	}
	root := s.Screen.Root
	msg := platform.ClientMessage{
		Window: root,
		Type:   typ,
		Data:   [5]uint32{desktop, platform.CurrentTime, 0, 0, 0},
	}
	s.Log.Debug("Switching desktop", "desktop", desktop)
	return s.Conn.SendClientMessage(root,
		platform.EventMaskSubstructureNotify|platform.EventMaskSubstructureRedirect, msg)
}
