package cmd

import (
	"fmt"
	"strings"

	"github.com/ThatOtherAndrew/portalfx/internal/demo"
	"github.com/spf13/cobra"
)

var verbose bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Args:  cobra.NoArgs,
	RunE:  listDemos,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show each demo's controls")
}

func listDemos(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available demos:")
	for _, name := range demo.Names() {
		fmt.Fprintln(out, "  ", name)
		if !verbose {
			continue
		}
		d, err := demo.Lookup(name)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(d.Usage(), "\n") {
			fmt.Fprintln(out, "      ", line)
		}
	}
	return nil
}
