package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/percal/percal/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the percal JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}

		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = viper.GetString("listen")
		}

		srv := server.New(cat, viper.GetString("auth.username"), viper.GetString("auth.password"))
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config, :8080)")
}
