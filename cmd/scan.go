package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moyu-x/filehasher/app"
	"github.com/moyu-x/filehasher/config"
	"github.com/moyu-x/filehasher/internal"
	"github.com/moyu-x/filehasher/pkg/hasher"
	"github.com/moyu-x/filehasher/pkg/locale"
	"github.com/moyu-x/filehasher/pkg/logger"
	"github.com/moyu-x/filehasher/pkg/result"
)

var scanCmd = &cobra.Command{
	Use:   "scan <folders...>",
	Short: "Scan folders for duplicate files and write a report",
	Example: heredoc.Doc(`
		# scan a folder with the default sha1 algorithm
		filehasher scan ~/Pictures

		# use md5 and name the report; an unsupported extension becomes .xlsx
		filehasher scan /data -a md5 -r result.csv

		# detect file types and show progress every 100 files
		filehasher scan /mnt/share -i 100 -t

		# two folders at once, report saved as folder1_folder2.xlsx
		filehasher scan /data/folder1 /mnt/folder2 -w 4

		# store the report in SQLite with russian captions
		filehasher scan /data -r scan.db -l ru
	`),
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := logger.Init(viper.GetString("logging.level"), viper.GetString("logging.file")); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	_, err = app.RunScan(&app.ScanOptions{
		Roots:      args,
		Algorithm:  cfg.Hash.Algorithm,
		DetectType: cfg.Hash.DetectType,
		Workers:    cfg.Scan.Workers,
		Iters:      cfg.Scan.Iters,
		Report:     cfg.Report.Path,
		Language:   cfg.Report.Language,
		LogLevel:   cfg.Logging.Level,
		LogFile:    cfg.Logging.File,
		Out:        cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}

func algorithmNames() string {
	names := make([]string, 0, len(hasher.Algorithms))
	for _, alg := range hasher.Algorithms {
		names = append(names, string(alg))
	}
	return strings.Join(names, ", ")
}

func init() {
	flags := scanCmd.Flags()
	flags.StringP("algorithm", "a", string(hasher.DefaultAlgorithm), "hash algorithm: "+algorithmNames())
	flags.BoolP("detect-type", "t", false, "detect file types from their content")
	flags.IntP("workers", "w", internal.DefaultWorkers, "number of hashing workers")
	flags.IntP("iters", "i", result.DefaultIters,
		fmt.Sprintf("show intermediate results every N files (%d-%d)", result.MinIters, result.MaxIters))
	flags.StringP("report", "r", "", "report file (.xlsx, .db or .json), named after the folders by default")
	flags.StringP("lang", "l", internal.DefaultLanguage, "console and report language: "+strings.Join(locale.Languages(), ", "))

	viper.BindPFlag("hash.algorithm", flags.Lookup("algorithm"))
	viper.BindPFlag("hash.detect_type", flags.Lookup("detect-type"))
	viper.BindPFlag("scan.workers", flags.Lookup("workers"))
	viper.BindPFlag("scan.iters", flags.Lookup("iters"))
	viper.BindPFlag("report.path", flags.Lookup("report"))
	viper.BindPFlag("report.language", flags.Lookup("lang"))

	rootCmd.AddCommand(scanCmd)
}
