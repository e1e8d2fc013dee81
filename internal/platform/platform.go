package platform

// Conn is the synchronous request/response surface of one display connection.
type Conn interface {
	// GetProperty reads a window property. It returns ErrNoProperty when the
	// property does not exist on the window, a *ProtocolError when the server
	// rejected this request and a *ConnectionError when the session is gone.
	GetProperty(w Window, prop, typ Atom, offset, length uint32) (*Property, error)

	// SendClientMessage sends msg to dest with the given event mask and waits
	// for the server to acknowledge the request.
	SendClientMessage(dest Window, mask uint32, msg ClientMessage) error

	// Flush blocks until every queued request has reached the server.
	Flush() error
}

// AtomInterner maps property and message names to atom ids.
type AtomInterner interface {
	InternAtom(name string) (Atom, error)
}

// WindowSource enumerates the windows below a screen root, in the order the
// server reports them.
type WindowSource interface {
	Windows(root Window) ([]Window, error)
}

// WindowManager asks the running window manager to focus a window.
type WindowManager interface {
	SetActiveWindow(s Screen, w Window) error
}
