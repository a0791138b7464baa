package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moyu-x/filehasher/internal"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   internal.AppName,
	Short: "Find duplicate files by their content hash",
	Long: heredoc.Doc(`
		FileHasher scans one or more folders, hashes every regular file and
		groups files with identical content.

		The oldest file of each group is kept as the original, the others are
		listed as duplicates in a report (.xlsx, .db or .json). Nothing is
		deleted or moved.
	`),
	SilenceUsage: true,
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.filehasher/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "also append log lines to this file")

	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}
