package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/output"
	"github.com/mj1618/xraise/internal/platform"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("yaml encode: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := request.GetBool("names", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if names {
		list, err := s.session.ListNames(s.provider.Windows)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toText(output.NamesResult{Names: list}), nil
	}

	windows, err := s.session.Windows(s.provider.Windows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	infos, err := s.session.Describe(windows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(output.ListResult{Windows: infos}), nil
}

func (s *Server) handleFindWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	all := request.GetBool("all", false)

	cond, err := condition.Parse(query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	windows, err := s.session.Windows(s.provider.Windows)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var matched []platform.Window
	if all {
		matched, err = s.session.FindAll(windows, cond)
	} else {
		var w platform.Window
		var ok bool
		w, ok, err = s.session.FindFirst(windows, cond)
		if ok {
			matched = []platform.Window{w}
		}
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	infos, err := s.session.Describe(matched)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(output.FindResult{Query: cond.String(), Windows: infos}), nil
}

func (s *Server) handleRaiseWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cond, err := s.raiseCondition(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	w, err := s.session.Raise(s.provider.Windows, s.provider.WindowManager, cond)
	if err != nil {
		s.log.Error("raise_window failed", err, "query", cond.String())
		res := toText(output.RaiseResult{Query: cond.String(), Error: err.Error()})
		res.IsError = true
		return res, nil
	}

	infos, err := s.session.Describe([]platform.Window{w})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(output.RaiseResult{OK: true, Query: cond.String(), Window: infos[0]}), nil
}

// raiseCondition builds the condition from exactly one of query, class,
// name, id and alias.
func (s *Server) raiseCondition(request mcp.CallToolRequest) (condition.Condition, error) {
	query := request.GetString("query", "")
	class := request.GetString("class", "")
	name := request.GetString("name", "")
	id := request.GetString("id", "")
	alias := request.GetString("alias", "")

	set := 0
	for _, v := range []string{query, class, name, id, alias} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of query, class, name, id or alias is required")
	}

	switch {
	case query != "":
		return condition.Parse(query)
	case class != "":
		return condition.Eq(condition.Class, class), nil
	case name != "":
		return condition.Eq(condition.Name, name), nil
	case id != "":
		w, err := platform.ParseWindow(id)
		if err != nil {
			return nil, err
		}
		return condition.Eq(condition.ID, w.String()), nil
	default:
		return s.currentConfig().Alias(alias)
	}
}
