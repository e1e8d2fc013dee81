package xwin

import (
	"errors"
	"fmt"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/platform"
)

// ErrNoMatch is returned by Raise when no window matches.
var ErrNoMatch = errors.New("no matching window found")

// Windows enumerates the windows of the session's screen.
func (s *Session) Windows(src platform.WindowSource) ([]platform.Window, error) {
	windows, err := src.Windows(s.Screen.Root)
	if err != nil {
		return nil, fmt.Errorf("listing windows: %w", err)
	}
	return windows, nil
}

// ListNames returns the names of every window on the screen.
func (s *Session) ListNames(src platform.WindowSource) ([]string, error) {
	windows, err := s.Windows(src)
	if err != nil {
		return nil, err
	}
	return s.FindAllNames(windows)
}

// Raise activates the first window on the screen matching cond.
func (s *Session) Raise(src platform.WindowSource, wm platform.WindowManager, cond condition.Condition) (platform.Window, error) {
	windows, err := s.Windows(src)
	if err != nil {
		return 0, err
	}
	w, ok, err := s.FindFirst(windows, cond)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoMatch, cond)
	}
	if err := s.Activate(wm, w); err != nil {
		return 0, err
	}
	s.Log.Info("Raised window", "window", w.String(), "query", cond.String())
	return w, nil
}

// RaiseByClass activates the first window whose class is class.
func (s *Session) RaiseByClass(src platform.WindowSource, wm platform.WindowManager, class string) (platform.Window, error) {
	return s.Raise(src, wm, condition.Eq(condition.Class, class))
}

// RaiseByName activates the first window whose name is name.
func (s *Session) RaiseByName(src platform.WindowSource, wm platform.WindowManager, name string) (platform.Window, error) {
	return s.Raise(src, wm, condition.Eq(condition.Name, name))
}
