package cmd

import (
	"fmt"

	"github.com/mj1618/xraise/internal/output"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/mj1618/xraise/internal/xwin"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Print windows matching a query without activating them",
	Long: `Print the first window matching a query, or every match with --all, in
enumeration order. Exits non-zero when nothing matches.`,
	Example: `  xraise find --class XTerm --all
  xraise find --query 'name = "Messenger"' --format json`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	addQueryFlags(findCmd)
	findCmd.Flags().Bool("all", false, "Print every matching window")
}

func runFind(cmd *cobra.Command, args []string) error {
	cond, err := conditionFromFlags(cmd, appConfig)
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")

	provider, session, err := openSession()
	if err != nil {
		return err
	}
	defer provider.Close()

	windows, err := session.Windows(provider.Windows)
	if err != nil {
		return err
	}

	var matched []platform.Window
	if all {
		matched, err = session.FindAll(windows, cond)
	} else {
		w, ok, ferr := session.FindFirst(windows, cond)
		if ok {
			matched = append(matched, w)
		}
		err = ferr
	}
	if err != nil {
		return err
	}

	infos, err := session.Describe(matched)
	if err != nil {
		return err
	}
	if err := output.Print(output.FindResult{Query: cond.String(), Windows: infos}); err != nil {
		return err
	}
	if len(infos) == 0 {
		return fmt.Errorf("%w: %s", xwin.ErrNoMatch, cond)
	}
	return nil
}
