package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcvillada/givelit/internal/journal"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "List the built-in journal registry",
	Long: `Journals prints the built-in journal keys and names that --journal accepts.
Unknown labels passed to radar are queried as ad-hoc journals; "all" expands
to every entry below.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "%-22s  %s\n", "Key", "Journal")
		for _, j := range journal.Defaults {
			fmt.Fprintf(os.Stdout, "%-22s  %s\n", j.Key, j.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(journalsCmd)
}
