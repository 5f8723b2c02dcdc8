package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/percal/percal/internal/utils"
	"github.com/percal/percal/pkg/export"
)

// exportCmd represents the parent `export` command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the event catalogue to other formats",
}

var exportICSCmd = &cobra.Command{
	Use:   "ics <path>",
	Short: "Write the catalogue as an iCalendar file of all-day events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		if err := export.WriteICS(cat, args[0]); err != nil {
			return err
		}
		utils.Log.Info("Wrote ", cat.TotalEventCount(), " events to ", args[0])
		return nil
	},
}

var exportSQLiteCmd = &cobra.Command{
	Use:   "sqlite <path>",
	Short: "Snapshot the catalogue into a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		if err := export.SQLite(context.Background(), cat, args[0]); err != nil {
			return err
		}
		utils.Log.Info("Wrote ", cat.TotalEventCount(), " events to ", args[0])
		return nil
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json <path>",
	Short: "Write the catalogue as a JSON data file loadable with --data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		if err := export.WriteJSON(cat, args[0]); err != nil {
			return err
		}
		utils.Log.Info("Wrote ", cat.TotalEventCount(), " events to ", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportICSCmd)
	exportCmd.AddCommand(exportSQLiteCmd)
	exportCmd.AddCommand(exportJSONCmd)
}
