// Package server exposes window lookup and activation as MCP tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/xraise/internal/config"
	"github.com/mj1618/xraise/internal/logger"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/mj1618/xraise/internal/version"
	"github.com/mj1618/xraise/internal/xwin"
)

// Server wraps the MCP server with one display connection. Tool calls are
// serialized on providerMu because a Session is not safe for concurrent use.
type Server struct {
	provider   *platform.Provider
	session    *xwin.Session
	log        *logger.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer

	cfgMu sync.RWMutex
	cfg   *config.Config
}

// Options holds MCP transport configuration.
type Options struct {
	Transport string
	Port      int
}

// New creates an MCP server over p. The server takes ownership of p.
func New(p *platform.Provider, cfg *config.Config, log *logger.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		provider: p,
		session:  xwin.NewSession(p, log),
		cfg:      cfg,
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer("xraise", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport and blocks.
func (s *Server) Serve(opts Options) error {
	s.log.Info("Starting MCP server", "transport", opts.Transport, "port", opts.Port)
	switch opts.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", opts.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", opts.Transport)
	}
}

// UpdateAliases replaces the query aliases with those of cfg. Display and
// source settings need a new connection and are left alone.
func (s *Server) UpdateAliases(cfg *config.Config) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	next := *s.cfg
	next.Aliases = cfg.Aliases
	s.cfg = &next
	s.log.Info("Aliases updated", "aliases", len(next.Aliases))
}

func (s *Server) currentConfig() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// Close releases the display connection.
func (s *Server) Close() error {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	return s.provider.Close()
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List the top-level windows on the X display with their id, name and class"),
			mcp.WithBoolean("names", mcp.Description("Return only the window names")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_window",
			mcp.WithDescription(`Find windows matching a query such as class = "firefox" or name = "Messenger". Does not change focus.`),
			mcp.WithString("query", mcp.Description("Window query"), mcp.Required()),
			mcp.WithBoolean("all", mcp.Description("Return every match instead of the first")),
		),
		s.handleFindWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("raise_window",
			mcp.WithDescription("Switch to the desktop of the first matching window and activate it. Give exactly one of query, class, name, id or alias."),
			mcp.WithString("query", mcp.Description("Window query")),
			mcp.WithString("class", mcp.Description("Exact WM_CLASS class")),
			mcp.WithString("name", mcp.Description("Exact window name")),
			mcp.WithString("id", mcp.Description("Window id in hex (0x1c00003) or decimal")),
			mcp.WithString("alias", mcp.Description("Query alias from the config file")),
		),
		s.handleRaiseWindow,
	)
}
