package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/mj1618/xraise/internal/platform"
)

// Conn implements platform.Conn and platform.AtomInterner over one xgbutil
// connection.
type Conn struct {
	xu *xgbutil.XUtil
}

// Open connects to the X display named in opts and returns its collaborators.
func Open(opts platform.Options) (*platform.Provider, error) {
	newSource, err := sourceFor(opts.Source)
	if err != nil {
		return nil, err
	}

	xu, err := xgbutil.NewConnDisplay(opts.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11 display %q: %w", opts.Display, err)
	}

	conn := &Conn{xu: xu}
	screen := platform.Screen{Root: platform.Window(xu.RootWin())}
	closeFn := func() error {
		xu.Conn().Close()
		return nil
	}
	return platform.NewProviderWith(conn, conn, newSource(xu), EWMH{xu: xu}, screen, closeFn), nil
}

// GetProperty implements platform.Conn.
func (c *Conn) GetProperty(w platform.Window, prop, typ platform.Atom, offset, length uint32) (*platform.Property, error) {
	reply, err := xproto.GetProperty(c.xu.Conn(), false, xproto.Window(w), xproto.Atom(prop),
		xproto.Atom(typ), offset, length).Reply()
	if err != nil {
		return nil, classify("GetProperty", err)
	}
	if reply == nil {
		return nil, &platform.ConnectionError{Err: errors.New("GetProperty: no reply from server")}
	}
	if reply.Type == xproto.AtomNone {
		return nil, platform.ErrNoProperty
	}
	return &platform.Property{
		Type:   platform.Atom(reply.Type),
		Format: reply.Format,
		Value:  reply.Value,
	}, nil
}

// SendClientMessage implements platform.Conn.
func (c *Conn) SendClientMessage(dest platform.Window, mask uint32, msg platform.ClientMessage) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(msg.Window),
		Type:   xproto.Atom(msg.Type),
		Data:   xproto.ClientMessageDataUnionData32New(msg.Data[:]),
	}
	err := xproto.SendEventChecked(c.xu.Conn(), false, xproto.Window(dest), mask, string(ev.Bytes())).Check()
	return classify("SendEvent", err)
}

// Flush implements platform.Conn. xgb writes requests as they are made, so a
// GetInputFocus round trip is enough to know the server has processed all of
// them.
func (c *Conn) Flush() error {
	_, err := xproto.GetInputFocus(c.xu.Conn()).Reply()
	return classify("GetInputFocus", err)
}

// InternAtom implements platform.AtomInterner. xgbutil caches the ids for
// the lifetime of the connection.
func (c *Conn) InternAtom(name string) (platform.Atom, error) {
	atom, err := xprop.Atm(c.xu, name)
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, classify("InternAtom", err))
	}
	return platform.Atom(atom), nil
}

// classify separates X error replies, which only concern one request, from
// failures of the connection itself.
func classify(request string, err error) error {
	if err == nil {
		return nil
	}
	var xerr xgb.Error
	if errors.As(err, &xerr) {
		return &platform.ProtocolError{Request: request, Err: err}
	}
	return &platform.ConnectionError{Err: fmt.Errorf("%s: %w", request, err)}
}
