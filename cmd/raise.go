package cmd

import (
	"github.com/mj1618/xraise/internal/output"
	"github.com/mj1618/xraise/internal/platform"
	"github.com/spf13/cobra"
)

var raiseCmd = &cobra.Command{
	Use:   "raise",
	Short: "Activate the first window matching a query",
	Long: `Find the first matching window, switch to its desktop and ask the window
manager to activate it. Exits non-zero when no window matches.`,
	Example: `  xraise raise --class Caprine
  xraise raise --name "Mozilla Firefox"
  xraise raise --query 'class = "URxvt" and name = "mutt"'
  xraise raise --alias chat`,
	Args: cobra.NoArgs,
	RunE: runRaise,
}

func init() {
	rootCmd.AddCommand(raiseCmd)
	addQueryFlags(raiseCmd)
}

func runRaise(cmd *cobra.Command, args []string) error {
	cond, err := conditionFromFlags(cmd, appConfig)
	if err != nil {
		return err
	}

	provider, session, err := openSession()
	if err != nil {
		return err
	}
	defer provider.Close()

	w, err := session.Raise(provider.Windows, provider.WindowManager, cond)
	if err != nil {
		return err
	}

	infos, err := session.Describe([]platform.Window{w})
	if err != nil {
		return err
	}
	return output.Print(output.RaiseResult{
		OK:     true,
		Query:  cond.String(),
		Window: infos[0],
	})
}
