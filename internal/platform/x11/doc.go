// Package x11 implements the platform collaborators on top of the X11 wire
// protocol using BurntSushi/xgb and xgbutil. It is pure Go and needs no cgo.
package x11
