package cmd

import (
	"context"
	"os"

	"github.com/mj1618/xraise/internal/config"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/mj1618/xraise/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing xraise tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes window listing,
lookup and activation as tools (list_windows, find_window, raise_window).

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)`,
	Example: `  xraise serve
  xraise serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Bool("reload", true, "Reload aliases when the config file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	reload, _ := cmd.Flags().GetBool("reload")

	provider, err := platform.NewProvider(platform.Options{
		Display: appConfig.Display,
		Source:  appConfig.Source,
	})
	if err != nil {
		return err
	}

	srv := server.New(provider, appConfig, appLog)
	defer srv.Close()

	if path, ok := watchedConfigPath(); reload && ok {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := config.Watch(ctx, path, appLog, srv.UpdateAliases); err != nil {
				appLog.Error("Config reload disabled", err, "path", path)
			}
		}()
	}

	return srv.Serve(server.Options{Transport: transport, Port: port})
}

// watchedConfigPath returns the config file in use, if there is one on disk.
func watchedConfigPath() (string, bool) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return "", false
		}
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
