package xwin

import (
	"errors"
	"fmt"
	"math"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/platform"
)

// Resolve returns the decoded value of attr on window w. It reports false,
// without an error, when the property is missing, rejected by the server,
// undecodable or empty. The error is non-nil only when the connection failed.
func (s *Session) Resolve(w platform.Window, attr condition.Attribute) (string, bool, error) {
	switch attr {
	case condition.Class:
		return s.resolveClass(w)
	case condition.Name:
		return s.resolveName(w)
	case condition.ID:
		return w.String(), true, nil
	default:
		return "", false, fmt.Errorf("unsupported attribute %s", attr)
	}
}

func (s *Session) resolveClass(w platform.Window) (string, bool, error) {
	raw, ok, err := s.property(w, atomWMClass)
	if err != nil || !ok {
		return "", false, err
	}
	class, ok := splitClass(raw)
	if !ok {
		return "", false, nil
	}
	text, ok := decodeText(class, legacyDecoders)
	return text, ok, nil
}

func (s *Session) resolveName(w platform.Window) (string, bool, error) {
	raw, ok, err := s.property(w, atomNetWMName)
	if err != nil {
		return "", false, err
	}
	if ok {
		if text, ok := decodeText(raw, netNameDecoders); ok {
			return text, true, nil
		}
	}

	raw, ok, err = s.property(w, atomWMName)
	if err != nil || !ok {
		return "", false, err
	}
	text, ok := decodeText(raw, legacyDecoders)
	return text, ok, nil
}

// property fetches the whole value of a property, whatever its type.
func (s *Session) property(w platform.Window, name string) ([]byte, bool, error) {
	atom, err := s.atom(name)
	if err != nil {
		return nil, false, err
	}
	p, err := s.Conn.GetProperty(w, atom, platform.AnyPropertyType, 0, math.MaxUint32)
	if err != nil {
		var perr *platform.ProtocolError
		switch {
		case errors.Is(err, platform.ErrNoProperty):
			return nil, false, nil
		case errors.As(err, &perr):
			s.Log.Debug("Property request rejected", "window", w.String(), "property", name, "error", err.Error())
			return nil, false, nil
		default:
			return nil, false, fmt.Errorf("reading %s of %s: %w", name, w, err)
		}
	}
	if p == nil || len(p.Value) == 0 {
		return nil, false, nil
	}
	return p.Value, true, nil
}
