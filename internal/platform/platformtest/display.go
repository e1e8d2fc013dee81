// Package platformtest provides an in-memory display for tests. It
// implements every platform collaborator and records the requests it serves.
package platformtest

import (
	"errors"
	"fmt"

	"github.com/mj1618/xraise/internal/platform"
)

// Root is the root window of the fake screen.
const Root platform.Window = 0x100

// Atom ids handed out by the fake, in interning order starting at 1.
var predefined = []string{
	"WM_NAME",
	"WM_CLASS",
	"_NET_WM_NAME",
	"_NET_WM_DESKTOP",
	"_NET_CURRENT_DESKTOP",
	"_NET_ACTIVE_WINDOW",
	"UTF8_STRING",
	"STRING",
	"CARDINAL",
}

// PropertyRead records one GetProperty request.
type PropertyRead struct {
	Window platform.Window
	Name   string
}

// SentMessage records one SendClientMessage request.
type SentMessage struct {
	Dest platform.Window
	Mask uint32
	Type string
	Msg  platform.ClientMessage
}

// Display is a fake X server holding windows and their properties.
type Display struct {
	atoms     map[string]platform.Atom
	names     map[platform.Atom]string
	order     []platform.Window
	props     map[platform.Window]map[string]platform.Property
	propErrs  map[platform.Window]map[string]error
	broken    error
	sendErr   error
	activeErr error
	flushErr  error

	Reads     []PropertyRead
	Sent      []SentMessage
	Activated []platform.Window
	Flushes   int
	Interned  []string
}

// New returns an empty display with the usual atoms predefined.
func New() *Display {
	d := &Display{
		atoms:    make(map[string]platform.Atom),
		names:    make(map[platform.Atom]string),
		props:    make(map[platform.Window]map[string]platform.Property),
		propErrs: make(map[platform.Window]map[string]error),
	}
	for _, name := range predefined {
		d.intern(name)
	}
	return d
}

func (d *Display) intern(name string) platform.Atom {
	if a, ok := d.atoms[name]; ok {
		return a
	}
	a := platform.Atom(len(d.atoms) + 1)
	d.atoms[name] = a
	d.names[a] = name
	return a
}

// Atom returns the id the fake assigned to name.
func (d *Display) Atom(name string) platform.Atom {
	return d.intern(name)
}

// Screen returns the fake screen.
func (d *Display) Screen() platform.Screen {
	return platform.Screen{Root: Root}
}

// Provider wraps the display in a platform.Provider.
func (d *Display) Provider() *platform.Provider {
	return platform.NewProviderWith(d, d, d, d, d.Screen(), nil)
}

// AddWindow registers a window. Windows are enumerated in insertion order.
func (d *Display) AddWindow(w platform.Window) *Display {
	if _, ok := d.props[w]; !ok {
		d.order = append(d.order, w)
		d.props[w] = make(map[string]platform.Property)
	}
	return d
}

// SetProperty stores a raw 8-bit property value.
func (d *Display) SetProperty(w platform.Window, name, typ string, value []byte) *Display {
	d.AddWindow(w)
	d.props[w][name] = platform.Property{Type: d.intern(typ), Format: 8, Value: value}
	return d
}

// SetCardinal stores a 32-bit CARDINAL property.
func (d *Display) SetCardinal(w platform.Window, name string, v uint32) *Display {
	d.AddWindow(w)
	buf := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	d.props[w][name] = platform.Property{Type: d.intern("CARDINAL"), Format: 32, Value: buf}
	return d
}

// SetClass stores WM_CLASS as "instance\0class\0".
func (d *Display) SetClass(w platform.Window, instance, class string) *Display {
	return d.SetProperty(w, "WM_CLASS", "STRING", []byte(instance+"\x00"+class+"\x00"))
}

// SetNetName stores a UTF-8 _NET_WM_NAME.
func (d *Display) SetNetName(w platform.Window, name string) *Display {
	return d.SetProperty(w, "_NET_WM_NAME", "UTF8_STRING", []byte(name))
}

// SetName stores a legacy WM_NAME.
func (d *Display) SetName(w platform.Window, name []byte) *Display {
	return d.SetProperty(w, "WM_NAME", "STRING", name)
}

// FailProperty makes reads of name on w fail with a protocol error.
func (d *Display) FailProperty(w platform.Window, name string) *Display {
	d.AddWindow(w)
	if d.propErrs[w] == nil {
		d.propErrs[w] = make(map[string]error)
	}
	d.propErrs[w][name] = &platform.ProtocolError{Request: "GetProperty", Err: fmt.Errorf("BadWindow {BadValue: %d}", uint32(w))}
	return d
}

// Break makes every subsequent request fail with a connection error.
func (d *Display) Break(cause error) *Display {
	d.broken = &platform.ConnectionError{Err: cause}
	return d
}

// FailSend makes client messages fail with err.
func (d *Display) FailSend(err error) *Display {
	d.sendErr = err
	return d
}

// FailActivate makes SetActiveWindow fail with err.
func (d *Display) FailActivate(err error) *Display {
	d.activeErr = err
	return d
}

// FailFlush makes Flush fail with err.
func (d *Display) FailFlush(err error) *Display {
	d.flushErr = err
	return d
}

// ReadsOf returns the property names read from w, in request order.
func (d *Display) ReadsOf(w platform.Window) []string {
	var out []string
	for _, r := range d.Reads {
		if r.Window == w {
			out = append(out, r.Name)
		}
	}
	return out
}

// InternAtom implements platform.AtomInterner.
func (d *Display) InternAtom(name string) (platform.Atom, error) {
	if d.broken != nil {
		return 0, d.broken
	}
	d.Interned = append(d.Interned, name)
	return d.intern(name), nil
}

// GetProperty implements platform.Conn.
func (d *Display) GetProperty(w platform.Window, prop, typ platform.Atom, offset, length uint32) (*platform.Property, error) {
	if d.broken != nil {
		return nil, d.broken
	}
	name, ok := d.names[prop]
	if !ok {
		return nil, &platform.ProtocolError{Request: "GetProperty", Err: fmt.Errorf("BadAtom %d", prop)}
	}
	d.Reads = append(d.Reads, PropertyRead{Window: w, Name: name})

	if err := d.propErrs[w][name]; err != nil {
		return nil, err
	}
	props, ok := d.props[w]
	if !ok {
		return nil, &platform.ProtocolError{Request: "GetProperty", Err: fmt.Errorf("BadWindow %d", uint32(w))}
	}
	p, ok := props[name]
	if !ok {
		return nil, platform.ErrNoProperty
	}
	if typ != platform.AnyPropertyType && typ != p.Type {
		return nil, platform.ErrNoProperty
	}
	value := p.Value
	if int(offset)*4 >= len(value) {
		value = nil
	} else {
		value = value[offset*4:]
	}
	if uint64(length)*4 < uint64(len(value)) {
		value = value[:length*4]
	}
	return &platform.Property{Type: p.Type, Format: p.Format, Value: append([]byte(nil), value...)}, nil
}

// SendClientMessage implements platform.Conn.
func (d *Display) SendClientMessage(dest platform.Window, mask uint32, msg platform.ClientMessage) error {
	if d.broken != nil {
		return d.broken
	}
	if d.sendErr != nil {
		return d.sendErr
	}
	d.Sent = append(d.Sent, SentMessage{Dest: dest, Mask: mask, Type: d.names[msg.Type], Msg: msg})
	return nil
}

// Flush implements platform.Conn.
func (d *Display) Flush() error {
	if d.broken != nil {
		return d.broken
	}
	if d.flushErr != nil {
		return d.flushErr
	}
	d.Flushes++
	return nil
}

// Windows implements platform.WindowSource.
func (d *Display) Windows(root platform.Window) ([]platform.Window, error) {
	if d.broken != nil {
		return nil, d.broken
	}
	if root != Root {
		return nil, errors.New("unknown root window")
	}
	return append([]platform.Window(nil), d.order...), nil
}

// SetActiveWindow implements platform.WindowManager.
func (d *Display) SetActiveWindow(s platform.Screen, w platform.Window) error {
	if d.broken != nil {
		return d.broken
	}
	if d.activeErr != nil {
		return d.activeErr
	}
	d.Activated = append(d.Activated, w)
	return nil
}
