package model

// Window describes one top-level X11 window for listings.
type Window struct {
	ID    string `yaml:"id"              json:"id"`
	Name  string `yaml:"name,omitempty"  json:"name,omitempty"`
	Class string `yaml:"class,omitempty" json:"class,omitempty"`
}
