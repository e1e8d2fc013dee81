package platform

import (
	"errors"
	"testing"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider(Options{})
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_PassesOptions(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	var got Options
	NewProviderFunc = func(opts Options) (*Provider, error) {
		got = opts
		return &Provider{}, nil
	}

	if _, err := NewProvider(Options{Display: ":1", Source: SourceTree}); err != nil {
		t.Fatal(err)
	}
	if got.Display != ":1" || got.Source != SourceTree {
		t.Errorf("got %+v, want display :1 and tree source", got)
	}
}

func TestProviderClose(t *testing.T) {
	closed := 0
	p := NewProviderWith(nil, nil, nil, nil, Screen{}, func() error {
		closed++
		return nil
	})
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if closed != 1 {
		t.Errorf("close called %d times, want 1", closed)
	}

	var nilProvider *Provider
	if err := nilProvider.Close(); err != nil {
		t.Errorf("nil provider Close: %v", err)
	}

	failing := NewProviderWith(nil, nil, nil, nil, Screen{}, func() error {
		return errors.New("boom")
	})
	if err := failing.Close(); err == nil {
		t.Error("expected close error to propagate")
	}
}
