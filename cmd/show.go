package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/percal/percal/pkg/calendar"
)

// showCmd renders the month grid, the terminal counterpart of the
// calendar view: [ N] marks the highlighted date, (N) marks today.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the calendar grid for a month",
	Long: `Renders the Monday-first calendar grid for any month between 1500 and 9999.
A date highlighted with --highlight is marked [ N], today is marked (N), and
events on the highlighted date are listed below the grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		highlight, _ := cmd.Flags().GetString("highlight")

		now := calendar.DateOf(time.Now())
		if year == 0 {
			year = now.Year
		}
		if month == 0 {
			month = now.Month
		}

		if err := calendar.ValidateYear(year); err != nil {
			return err
		}
		if err := calendar.ValidateDay(year, month, 1); err != nil {
			return err
		}

		var highlighted *calendar.Date
		if highlight != "" {
			d, err := calendar.ParseDate(highlight)
			if err != nil {
				return err
			}
			highlighted = &d
		}

		grid := calendar.RenderMonthWith(year, month, &now, highlighted)
		fmt.Print(formatMonth(grid))

		if highlighted != nil {
			cat, err := openCatalog()
			if err != nil {
				return err
			}
			if events := cat.EventsOn(*highlighted); len(events) > 0 {
				fmt.Println()
				printEvents(events, true)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntP("year", "y", 0, "Year to render, 1500-9999 (default: current year)")
	showCmd.Flags().IntP("month", "m", 0, "Month to render, 1-12 (default: current month)")
	showCmd.Flags().StringP("highlight", "H", "", "Date to highlight (YYYY-MM-DD)")
}

// formatMonth lays the grid out in fixed six-column cells so the
// marker brackets never shift the alignment.
func formatMonth(g calendar.MonthGrid) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d\n", time.Month(g.Month), g.Year)
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		fmt.Fprintf(&b, "%5s ", day)
	}
	b.WriteString("\n")

	for _, week := range g.Weeks {
		for _, cell := range week {
			switch {
			case cell.Day == 0:
				b.WriteString("      ")
			case cell.Highlighted && cell.Today:
				fmt.Fprintf(&b, "([%2d])", cell.Day)
			case cell.Highlighted:
				fmt.Fprintf(&b, " [%2d] ", cell.Day)
			case cell.Today:
				fmt.Fprintf(&b, " (%2d) ", cell.Day)
			default:
				fmt.Fprintf(&b, "  %2d  ", cell.Day)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n[N] Highlighted  (N) Today\n")
	return b.String()
}
