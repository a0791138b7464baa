package deduplicator

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/internal"
	"github.com/moyu-x/filehasher/pkg/file"
	"github.com/moyu-x/filehasher/pkg/hasher"
	"github.com/moyu-x/filehasher/pkg/logger"
	"github.com/moyu-x/filehasher/pkg/result"
	"github.com/moyu-x/filehasher/pkg/scanner"
)

type Options struct {
	Workers    int
	Algorithm  hasher.Algorithm
	DetectType bool
}

// Deduplicator hashes files on a bounded goroutine pool and feeds them into a shared result.
type Deduplicator struct {
	fs        afero.Fs
	workers   int
	processor *hasher.Processor
	result    *result.Result

	added   atomic.Int64
	skipped atomic.Int64
}

func NewDeduplicator(fs afero.Fs, res *result.Result, opts Options) *Deduplicator {
	workers := opts.Workers
	if workers <= 0 {
		workers = internal.DefaultWorkers
	}

	logger.Get().Info().Msgf("creating deduplicator: %d workers, %s", workers, opts.Algorithm)
	return &Deduplicator{
		fs:        fs,
		workers:   workers,
		processor: hasher.NewProcessor(opts.Algorithm, opts.DetectType),
		result:    res,
	}
}

// Process hashes every path and adds the readable, non-empty ones to the result.
// It returns once all paths are done. Files that cannot be read are dropped.
func (d *Deduplicator) Process(paths []string) (*internal.ProcessStats, error) {
	stats := &internal.ProcessStats{StartTime: time.Now()}
	d.added.Store(0)
	d.skipped.Store(0)

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(d.workers, func(arg any) {
		defer wg.Done()
		d.processFile(arg.(string))
	})
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	for _, path := range paths {
		wg.Add(1)
		if err := pool.Invoke(path); err != nil {
			wg.Done()
			d.skipped.Add(1)
			logger.Get().Debug().Err(err).Str("path", path).Msg("submit failed")
			continue
		}
		stats.Submitted++
	}

	wg.Wait()

	stats.Added = d.added.Load()
	stats.Skipped = d.skipped.Load()
	stats.EndTime = time.Now()

	logger.Get().Debug().
		Int64("submitted", stats.Submitted).
		Int64("added", stats.Added).
		Int64("skipped", stats.Skipped).
		Dur("duration", stats.Duration()).
		Msg("dispatch finished")
	return stats, nil
}

// ProcessDirs walks dirs and processes every file found.
func (d *Deduplicator) ProcessDirs(dirs []string) (*internal.ProcessStats, error) {
	paths := scanner.NewFileWalker(d.fs).Collect(dirs)
	logger.Get().Info().Msgf("found %d files in %d directories", len(paths), len(dirs))
	return d.Process(paths)
}

func (d *Deduplicator) processFile(path string) {
	f := file.New(d.fs, path)
	if f.Size == 0 {
		d.skipped.Add(1)
		return
	}

	if err := f.Populate(d.processor); err != nil {
		d.skipped.Add(1)
		logger.Get().Trace().Err(err).Msg("dropping unreadable file")
		return
	}

	d.result.AddFile(f)
	d.added.Add(1)
}
