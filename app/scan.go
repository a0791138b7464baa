package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/internal"
	"github.com/moyu-x/filehasher/pkg/deduplicator"
	"github.com/moyu-x/filehasher/pkg/hasher"
	"github.com/moyu-x/filehasher/pkg/locale"
	"github.com/moyu-x/filehasher/pkg/logger"
	"github.com/moyu-x/filehasher/pkg/progress"
	"github.com/moyu-x/filehasher/pkg/report"
	"github.com/moyu-x/filehasher/pkg/result"
)

type ScanOptions struct {
	Roots      []string
	Algorithm  string
	DetectType bool
	Workers    int
	Iters      int
	Report     string
	Language   string
	LogLevel   string
	LogFile    string

	// Out receives the progress table, os.Stdout when nil.
	Out io.Writer
	// Fs is scanned and receives the report, the OS filesystem when nil.
	Fs  afero.Fs
}

type ScanSummary struct {
	Snapshot   result.Snapshot
	Stats      *internal.ProcessStats
	ReportPath string
}

var ErrNoRoots = errors.New("no folders to scan")

func RunScan(opts *ScanOptions) (*ScanSummary, error) {
	if err := logger.Init(opts.LogLevel, opts.LogFile); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if len(opts.Roots) == 0 {
		return nil, ErrNoRoots
	}

	alg, err := hasher.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	for i, root := range opts.Roots {
		logger.Get().Info().Msgf("  [%d] %s", i+1, root)
		if ok, err := afero.IsDir(fs, root); err != nil || !ok {
			logger.Get().Warn().Msgf("not a readable directory, nothing will be found in it: %s", root)
		}
	}

	reportPath, err := report.Filename(fs, opts.Roots, opts.Report)
	if err != nil {
		return nil, err
	}

	text := locale.Lookup(opts.Language)
	printer := progress.NewPrinter(out, text)
	res := result.New(opts.Iters, printer.Notify)

	printer.Notify(res.Snapshot())
	printer.Start()

	dedup := deduplicator.NewDeduplicator(fs, res, deduplicator.Options{
		Workers:    opts.Workers,
		Algorithm:  alg,
		DetectType: opts.DetectType,
	})

	stats, err := dedup.ProcessDirs(opts.Roots)
	printer.Close()
	if err != nil {
		return nil, err
	}

	err = report.Write(fs, reportPath, res, text, report.Options{
		Roots:      opts.Roots,
		Algorithm:  string(alg),
		DetectType: opts.DetectType,
	})
	if err != nil {
		return nil, err
	}

	snap := res.Snapshot()
	printer.Render(snap)
	printer.Done(reportPath)

	logger.Get().Info().
		Int64("files", snap.TotalFiles).
		Int("duplicates", snap.RedundancyFiles).
		Int64("skipped", stats.Skipped).
		Msgf("scan finished in %s", snap.HRElapsed())

	return &ScanSummary{
		Snapshot:   snap,
		Stats:      stats,
		ReportPath: reportPath,
	}, nil
}
