package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/percal/percal/internal/fetch"
	"github.com/percal/percal/internal/utils"
	"github.com/percal/percal/pkg/catalog"
	"github.com/percal/percal/pkg/catalog/dataset"
)

var cfgFile string

const (
	LOGO = `
	 _ __   ___ _ __ ___ __ _ | |
	| '_ \ / _ \ '__/ __/ _. || |
	| |_) |  __/ | | (_| (_| || |
	| .__/ \___|_|  \___\__,_||_|
	|_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "percal",
	Short: "A perpetual calendar and historical events explorer for your terminal.",
	Long: LOGO + `percal renders any month between 1500 and 9999 on a proleptic Gregorian
calendar and cross-references dates with a curated catalogue of past events,
present-era milestones, and future predictions.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.percal.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("data", "D", "", "Catalogue data file or URL (JSON or YAML; builtin dataset if empty)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".percal")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.percal.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("data", "")
	viper.SetDefault("listen", ":8080")
	viper.SetDefault("auth.username", "")
	viper.SetDefault("auth.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// openCatalog builds the event catalogue from --data (falling back to
// the config file's data key), or from the builtin dataset when no
// source is configured. Construction fails fast on malformed data.
func openCatalog() (*catalog.Catalog, error) {
	source, _ := rootCmd.PersistentFlags().GetString("data")
	if source == "" {
		source = viper.GetString("data")
	}
	if source == "" {
		return dataset.New()
	}

	var (
		raw catalog.RawData
		err error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, ferr := fetch.Get(source)
		if ferr != nil {
			return nil, ferr
		}
		raw, err = catalog.LoadBytes(source, body)
	} else {
		raw, err = catalog.LoadFile(source)
	}
	if err != nil {
		return nil, err
	}
	return catalog.New(raw)
}
