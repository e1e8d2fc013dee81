package cmd

import (
	"github.com/mj1618/xraise/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows",
	Long:  "List the windows of the display in enumeration order with their id, name, and class.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("names", false, "Print only window names, skipping windows without one")
}

func runList(cmd *cobra.Command, args []string) error {
	names, _ := cmd.Flags().GetBool("names")

	provider, session, err := openSession()
	if err != nil {
		return err
	}
	defer provider.Close()

	if names {
		list, err := session.ListNames(provider.Windows)
		if err != nil {
			return err
		}
		return output.Print(output.NamesResult{Names: list})
	}

	windows, err := session.Windows(provider.Windows)
	if err != nil {
		return err
	}
	infos, err := session.Describe(windows)
	if err != nil {
		return err
	}
	return output.Print(output.ListResult{Display: appConfig.Display, Windows: infos})
}
