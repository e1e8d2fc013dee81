package xwin

import (
	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/model"
	"github.com/mj1618/xraise/internal/platform"
)

// windowAttributes resolves the attributes of one window on demand and
// remembers them until the window has been evaluated. The first connection
// failure is kept in err and stops further lookups.
type windowAttributes struct {
	s      *Session
	window platform.Window
	cache  map[condition.Attribute]resolved
	err    error
}

type resolved struct {
	text string
	ok   bool
}

func (a *windowAttributes) Lookup(attr condition.Attribute) (string, bool) {
	if a.err != nil {
		return "", false
	}
	if r, ok := a.cache[attr]; ok {
		return r.text, r.ok
	}
	text, ok, err := a.s.Resolve(a.window, attr)
	if err != nil {
		a.err = err
		return "", false
	}
	if a.cache == nil {
		a.cache = make(map[condition.Attribute]resolved, 2)
	}
	a.cache[attr] = resolved{text: text, ok: ok}
	return text, ok
}

// matches evaluates cond against w.
func (s *Session) matches(w platform.Window, cond condition.Condition) (bool, error) {
	attrs := &windowAttributes{s: s, window: w}
	ok := cond.Matches(attrs)
	if attrs.err != nil {
		return false, attrs.err
	}
	return ok, nil
}

// FindFirst returns the first window, in the order given, that matches cond.
// No match is reported as false with a nil error.
func (s *Session) FindFirst(windows []platform.Window, cond condition.Condition) (platform.Window, bool, error) {
	for _, w := range windows {
		ok, err := s.matches(w, cond)
		if err != nil {
			return 0, false, err
		}
		if ok {
			s.Log.Debug("Window matched", "window", w.String(), "query", cond.String())
			return w, true, nil
		}
	}
	return 0, false, nil
}

// FindAll returns every window matching cond, in the order given.
func (s *Session) FindAll(windows []platform.Window, cond condition.Condition) ([]platform.Window, error) {
	var out []platform.Window
	for _, w := range windows {
		ok, err := s.matches(w, cond)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// FindAllNames resolves the name of every window and returns the names that
// resolved, in order. Duplicates are kept.
func (s *Session) FindAllNames(windows []platform.Window) ([]string, error) {
	names := make([]string, 0, len(windows))
	for _, w := range windows {
		name, ok, err := s.Resolve(w, condition.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// Describe resolves the id, name and class of each window. Attributes that do
// not resolve are left empty.
func (s *Session) Describe(windows []platform.Window) ([]model.Window, error) {
	infos := make([]model.Window, 0, len(windows))
	for _, w := range windows {
		name, _, err := s.Resolve(w, condition.Name)
		if err != nil {
			return nil, err
		}
		class, _, err := s.Resolve(w, condition.Class)
		if err != nil {
			return nil, err
		}
		infos = append(infos, model.Window{ID: w.String(), Name: name, Class: class})
	}
	return infos, nil
}
