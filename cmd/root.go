package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/xraise/internal/config"
	"github.com/mj1618/xraise/internal/logger"
	"github.com/mj1618/xraise/internal/output"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/mj1618/xraise/internal/version"
	"github.com/mj1618/xraise/internal/xwin"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xraise",
	Short: "Find and activate X11 windows",
	Long: `Find X11 windows by class or name and bring them to the front, switching
to their virtual desktop first. Works with any EWMH compliant window manager.

Queries compare window attributes for exact equality:
  class = "Caprine"
  name = "Mozilla Firefox" or class = "firefox"
  (class = "URxvt" or class = "XTerm") and name = "mutt"`,
	SilenceUsage: true,
}

var (
	// appConfig and appLog are set by the root PersistentPreRunE.
	appConfig = config.Default()
	appLog    *logger.Logger
)

func Execute() {
	err := rootCmd.Execute()
	appLog.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/xraise/config.yaml)")
	rootCmd.PersistentFlags().String("display", "", "X display to connect to (default $DISPLAY)")
	rootCmd.PersistentFlags().String("source", "", "Window enumeration: client-list or tree")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		bootLog, err := bootstrapLogger()
		if err != nil {
			return err
		}
		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(path, bootLog)
		if err != nil {
			return err
		}
		if err := applyFlagOverrides(cmd, cfg); err != nil {
			return err
		}
		appConfig = cfg

		appLog, err = logger.NewLogger(
			logger.WithConsole(),
			logger.WithLevelName(cfg.Log.Level),
			logger.WithFile(cfg.Log.File),
		)
		if err != nil {
			return err
		}
		appLog.Debug("Configuration loaded", "display", cfg.Display, "source", cfg.Source)
		return nil
	}
}

// bootstrapLogger logs to stderr at the --log-level given on the command
// line. It covers messages emitted before the config file is read.
func bootstrapLogger() (*logger.Logger, error) {
	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	return logger.NewLogger(logger.WithConsole(), logger.WithLevelName(level))
}

// applyFlagOverrides copies explicitly set persistent flags over cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("display") {
		cfg.Display, _ = flags.GetString("display")
	}
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	return cfg.Validate()
}

// openSession connects to the configured display. The caller must close the
// returned provider.
func openSession() (*platform.Provider, *xwin.Session, error) {
	provider, err := platform.NewProvider(platform.Options{
		Display: appConfig.Display,
		Source:  appConfig.Source,
	})
	if err != nil {
		return nil, nil, err
	}
	return provider, xwin.NewSession(provider, appLog), nil
}
