package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var erasCmd = &cobra.Command{
	Use:   "eras",
	Short: "List the event catalogue eras",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		for _, era := range cat.Eras() {
			fmt.Println(era)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(erasCmd)
}
