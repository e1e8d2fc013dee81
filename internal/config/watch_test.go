package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsAliases(t *testing.T) {
	path := writeFile(t, "config.yaml", "aliases:\n  chat: class = \"Caprine\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(c *Config) { reloaded <- c })
	}()

	// Keep rewriting until the watcher has picked the change up; the first
	// write may land before the watch is registered.
	update := "aliases:\n  chat: class = \"Slack\"\n"
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case c := <-reloaded:
			if c.Aliases["chat"] == `class = "Slack"` {
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte(update), 0644))
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
}

func TestWatchSkipsInvalidAndOtherFiles(t *testing.T) {
	path := writeFile(t, "config.yaml", "source: tree\n")
	other := filepath.Join(filepath.Dir(path), "notes.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 16)
	go Watch(ctx, path, nil, func(c *Config) { reloaded <- c })
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("source: tree\n"), 0644))
	// Replace the file in one step so no half-written state is observed.
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("source: stacking\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case c := <-reloaded:
		t.Fatalf("unexpected reload: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "config.yaml"), nil, func(*Config) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
