package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/xraise/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use yaml or json)", s)
	}
}

// ListResult is the output of `list`.
type ListResult struct {
	Display string         `yaml:"display,omitempty" json:"display,omitempty"`
	Windows []model.Window `yaml:"windows"           json:"windows"`
}

// NamesResult is the output of `list --names`.
type NamesResult struct {
	Names []string `yaml:"names" json:"names"`
}

// FindResult is the output of `find`.
type FindResult struct {
	Query   string         `yaml:"query"   json:"query"`
	Windows []model.Window `yaml:"windows" json:"windows"`
}

// RaiseResult is the output of `raise`.
type RaiseResult struct {
	OK     bool         `yaml:"ok"              json:"ok"`
	Query  string       `yaml:"query"           json:"query"`
	Window model.Window `yaml:"window"          json:"window"`
	Error  string       `yaml:"error,omitempty" json:"error,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return writeJSON(w, v, PrettyOutput)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
