package cmd

import (
	"errors"

	"github.com/mj1618/xraise/internal/condition"
	"github.com/mj1618/xraise/internal/config"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/spf13/cobra"
)

// addQueryFlags registers the flags accepted by conditionFromFlags.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("query", "", `Window query, e.g. 'class = "firefox" or name = "Messenger"'`)
	cmd.Flags().String("class", "", "Match windows whose WM_CLASS class is exactly this")
	cmd.Flags().String("name", "", "Match windows whose name is exactly this")
	cmd.Flags().String("alias", "", "Use a named query from the config file")
	cmd.Flags().String("id", "", "Match the window with this id, in hex (0x1c00003) or decimal")
}

// conditionFromFlags builds the condition from exactly one of --query,
// --class, --name, --id and --alias.
func conditionFromFlags(cmd *cobra.Command, cfg *config.Config) (condition.Condition, error) {
	query, _ := cmd.Flags().GetString("query")
	class, _ := cmd.Flags().GetString("class")
	name, _ := cmd.Flags().GetString("name")
	alias, _ := cmd.Flags().GetString("alias")

	set := 0
	for _, f := range []string{"query", "class", "name", "id", "alias"} {
		if cmd.Flags().Changed(f) {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("specify exactly one of --query, --class, --name, --id, or --alias")
	}

	switch {
	case cmd.Flags().Changed("query"):
		return condition.Parse(query)
	case cmd.Flags().Changed("class"):
		return condition.Eq(condition.Class, class), nil
	case cmd.Flags().Changed("name"):
		return condition.Eq(condition.Name, name), nil
	case cmd.Flags().Changed("id"):
		id, _ := cmd.Flags().GetString("id")
		w, err := platform.ParseWindow(id)
		if err != nil {
			return nil, err
		}
		// Resolved ids are zero padded, so match on the canonical form.
		return condition.Eq(condition.ID, w.String()), nil
	default:
		return cfg.Alias(alias)
	}
}
