package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/percal/percal/pkg/calendar"
)

// famousDates are the quick-jump shortcuts: well-known dates rendered
// with a single command instead of year/month/highlight flags.
var famousDates = []struct {
	Key  string
	Name string
	Date calendar.Date
}{
	{"moon-landing", "Moon Landing", calendar.Date{Year: 1969, Month: 7, Day: 20}},
	{"first-computer", "ENIAC Unveiled", calendar.Date{Year: 1946, Month: 2, Day: 14}},
	{"us-independence", "US Independence", calendar.Date{Year: 1776, Month: 7, Day: 4}},
	{"india-independence", "India Independence", calendar.Date{Year: 1947, Month: 8, Day: 15}},
	{"www-launch", "World Wide Web Live", calendar.Date{Year: 1991, Month: 8, Day: 6}},
	{"iphone-launch", "iPhone Launch", calendar.Date{Year: 2007, Month: 6, Day: 29}},
}

var jumpCmd = &cobra.Command{
	Use:   "jump [shortcut]",
	Short: "Jump to a famous date and show its month",
	Long: `Renders the month of a well-known date with the date highlighted, and lists
the catalogue events on it. Run without arguments to list the shortcuts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, f := range famousDates {
				fmt.Printf("%-20s %s (%s)\n", f.Key, f.Name, f.Date)
			}
			return nil
		}

		for _, f := range famousDates {
			if f.Key != args[0] {
				continue
			}
			now := calendar.DateOf(time.Now())
			target := f.Date
			grid := calendar.RenderMonthWith(target.Year, target.Month, &now, &target)
			fmt.Printf("%s - %s, %s\n\n", f.Name, target.Weekday(), target)
			fmt.Print(formatMonth(grid))

			cat, err := openCatalog()
			if err != nil {
				return err
			}
			if events := cat.EventsOn(target); len(events) > 0 {
				fmt.Println()
				printEvents(events, true)
			}
			return nil
		}
		return fmt.Errorf("unknown shortcut %q (run 'percal jump' to list them)", args[0])
	},
}

func init() {
	rootCmd.AddCommand(jumpCmd)
}
