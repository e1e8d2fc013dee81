package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/xraise/internal/config"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/spf13/cobra"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"raise", "find", "list", "wait", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"format", "pretty", "config", "display", "source", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
}

func newOverrideCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("display", "", "")
	c.Flags().String("source", "", "")
	c.Flags().String("log-level", "", "")
	if err := c.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Display = ":1"

	c := newOverrideCmd(t, "--source", "tree", "--log-level", "debug")
	if err := applyFlagOverrides(c, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Display != ":1" {
		t.Errorf("display: got %q, want %q (unset flag must not override)", cfg.Display, ":1")
	}
	if cfg.Source != platform.SourceTree {
		t.Errorf("source: got %q, want %q", cfg.Source, platform.SourceTree)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestApplyFlagOverrides_Invalid(t *testing.T) {
	c := newOverrideCmd(t, "--source", "stacking")
	if err := applyFlagOverrides(c, config.Default()); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	defer func() {
		rootCmd.PersistentFlags().Set("format", "yaml")
		rootCmd.SetArgs(nil)
	}()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	rootCmd.SetArgs([]string{"--format", "xml", "list"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRootCommand_RejectsBadConfig(t *testing.T) {
	defer func() {
		rootCmd.PersistentFlags().Set("config", "")
		rootCmd.SetArgs(nil)
	}()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source: stacking\n"), 0644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs([]string{"--config", path, "list"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestBootstrapLogger_FollowsLogLevelFlag(t *testing.T) {
	defer rootCmd.PersistentFlags().Set("log-level", "")

	if err := rootCmd.PersistentFlags().Set("log-level", "debug"); err != nil {
		t.Fatal(err)
	}
	l, err := bootstrapLogger()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l == nil {
		t.Fatal("expected a logger")
	}

	if err := rootCmd.PersistentFlags().Set("log-level", "loud"); err != nil {
		t.Fatal(err)
	}
	if _, err := bootstrapLogger(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestWatchedConfigPath(t *testing.T) {
	defer rootCmd.PersistentFlags().Set("config", "")

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if _, ok := watchedConfigPath(); ok {
		t.Error("missing default config should not be watched")
	}

	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("source = \"tree\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rootCmd.PersistentFlags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	got, ok := watchedConfigPath()
	if !ok || got != path {
		t.Errorf("got (%q, %v), want (%q, true)", got, ok, path)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	for _, name := range []string{"transport", "port", "reload"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s on serve", name)
		}
	}
}
