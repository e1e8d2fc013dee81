package platform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Window is a server-side window id.
type Window uint32

// String formats the id the way xprop and wmctrl print it.
func (w Window) String() string {
	return fmt.Sprintf("0x%08x", uint32(w))
}

// ParseWindow parses a window id in hex ("0x1c00003") or decimal form.
func ParseWindow(s string) (Window, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return Window(v), nil
}

// Atom is an interned name.
type Atom uint32

// AnyPropertyType matches a property of any type.
const AnyPropertyType Atom = 0

// CurrentTime is the X11 CurrentTime timestamp.
const CurrentTime uint32 = 0

// Event masks used when broadcasting client messages to the root window.
const (
	EventMaskSubstructureNotify   uint32 = 1 << 19
	EventMaskSubstructureRedirect uint32 = 1 << 20
)

// Property is a raw property value as returned by the server.
type Property struct {
	Type   Atom
	Format byte
	Value  []byte
}

// Screen identifies the screen a window lives on.
type Screen struct {
	Root Window
}

// ClientMessage is a 32-bit format client message event.
type ClientMessage struct {
	Window Window
	Type   Atom
	Data   [5]uint32
}

// ErrNoProperty is returned by Conn.GetProperty for a missing property.
var ErrNoProperty = errors.New("property not set")

// ProtocolError is an X error reply for a single request. The connection
// stays usable.
type ProtocolError struct {
	Request string
	Err     error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: protocol error: %v", e.Request, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ConnectionError means the display session itself is unusable.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("display connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// IsConnectionError reports whether err, or anything it wraps, is a
// *ConnectionError.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}
