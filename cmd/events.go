package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/percal/percal/pkg/calendar"
	"github.com/percal/percal/pkg/catalog"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List catalogue events, optionally filtered by era, category or date",
	RunE: func(cmd *cobra.Command, args []string) error {
		eraLabel, _ := cmd.Flags().GetString("era")
		category, _ := cmd.Flags().GetString("category")
		on, _ := cmd.Flags().GetString("on")
		long, _ := cmd.Flags().GetBool("long")

		cat, err := openCatalog()
		if err != nil {
			return err
		}

		if on != "" {
			d, err := calendar.ParseDate(on)
			if err != nil {
				return err
			}
			printEvents(cat.EventsOn(d), long)
			return nil
		}

		if eraLabel == "" {
			if category != "" {
				return fmt.Errorf("--category requires --era")
			}
			printEvents(cat.AllEvents(), long)
			return nil
		}

		era, err := catalog.ParseEra(eraLabel)
		if err != nil {
			return err
		}
		if category != "" {
			events, err := cat.EventsIn(era, category)
			if err != nil {
				return err
			}
			printEvents(events, long)
			return nil
		}

		events, err := cat.EventsInEra(era)
		if err != nil {
			return err
		}
		printEvents(events, long)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().StringP("era", "e", "", "Era to list (Past, Present or Future)")
	eventsCmd.Flags().StringP("category", "c", "", "Category within the era")
	eventsCmd.Flags().String("on", "", "List only events on this date (YYYY-MM-DD)")
	eventsCmd.Flags().BoolP("long", "L", false, "Include descriptions and weekdays")
}

// printEvents prints events in the order they were handed over; that
// order is significant and must not be re-sorted here.
func printEvents(events []catalog.Event, long bool) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}
	for _, ev := range events {
		if long {
			fmt.Printf("%s (%s)  %s\n", ev.Date, ev.Date.Weekday(), ev.Title)
			fmt.Printf("    %s / %s\n", ev.Era, ev.Category)
			fmt.Printf("    %s\n", ev.Description)
		} else {
			fmt.Printf("%s  %s\n", ev.Date, ev.Title)
		}
	}
}
