package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search events by keyword in title or description",
	Long: `Case-insensitive substring search over event titles and descriptions.
Results keep the catalogue's era/category/source order; they are never
relevance-ranked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		long, _ := cmd.Flags().GetBool("long")
		keyword := strings.Join(args, " ")

		cat, err := openCatalog()
		if err != nil {
			return err
		}
		results, err := cat.Search(keyword)
		if err != nil {
			return err
		}

		fmt.Printf("%d event(s) matching %q\n", len(results), strings.TrimSpace(keyword))
		printEvents(results, long)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("long", "L", false, "Include descriptions and weekdays")
}
