package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the eras and events in the catalogue.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "ERA\tCATEGORIES\tEVENTS\t")

		var totalCategories, totalEvents int
		for _, s := range cat.Stats() {
			fmt.Fprintf(w, "%s\t%d\t%d\t\n", s.Era, s.Categories, s.Events)
			totalCategories += s.Categories
			totalEvents += s.Events
		}

		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t\n", totalCategories, totalEvents)

		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
