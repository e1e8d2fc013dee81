package platform

import (
	"fmt"
	"runtime"
)

// Source names accepted by Options.Source.
const (
	SourceClientList = "client-list"
	SourceTree       = "tree"
)

// Options selects the display and enumeration strategy of a Provider.
type Options struct {
	Display string // X display name, empty for $DISPLAY
	Source  string // SourceClientList (default) or SourceTree
}

// Provider bundles the collaborators of one display connection.
type Provider struct {
	Conn          Conn
	Atoms         AtomInterner
	Windows       WindowSource
	WindowManager WindowManager
	Screen        Screen

	closeFn func() error
}

// NewProviderWith assembles a Provider. closeFn may be nil.
func NewProviderWith(conn Conn, atoms AtomInterner, windows WindowSource, wm WindowManager, screen Screen, closeFn func() error) *Provider {
	return &Provider{
		Conn:          conn,
		Atoms:         atoms,
		Windows:       windows,
		WindowManager: wm,
		Screen:        screen,
		closeFn:       closeFn,
	}
}

// Close releases the underlying connection.
func (p *Provider) Close() error {
	if p == nil || p.closeFn == nil {
		return nil
	}
	return p.closeFn()
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("xraise is not supported on %s/%s; an X11 platform is required", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
