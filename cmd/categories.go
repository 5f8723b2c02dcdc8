package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/percal/percal/pkg/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories <era>",
	Short: "List the event categories of an era",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		era, err := catalog.ParseEra(args[0])
		if err != nil {
			return err
		}
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		categories, err := cat.Categories(era)
		if err != nil {
			return err
		}
		for _, name := range categories {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
