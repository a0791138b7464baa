package report

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/pkg/database"
)

var ErrDBNeedsOsFs = errors.New("sqlite reports can only be written to the OS filesystem")

func writeDB(fs afero.Fs, path string, src Source, opts Options) error {
	if _, ok := fs.(*afero.OsFs); !ok {
		return ErrDBNeedsOsFs
	}

	db, err := database.NewDatabase(path)
	if err != nil {
		return err
	}
	defer db.Close()

	snap := src.Snapshot()
	run := database.NewRun(opts.Roots, opts.Algorithm, opts.DetectType)
	run.TotalFiles = snap.TotalFiles
	run.TotalSize = snap.TotalSize
	run.RedundancyFiles = int64(snap.RedundancyFiles)
	run.RedundancySize = snap.RedundancySize
	run.ElapsedMillis = snap.Elapsed.Milliseconds()

	es := entries(src, opts.DetectType)
	dups := make([]database.DuplicateRecord, 0, len(es))
	for _, e := range es {
		dups = append(dups, database.DuplicateRecord{
			Hash:          e.Hash,
			OriginalPath:  e.Original,
			DuplicatePath: e.Duplicate,
			Size:          e.Size,
			FileType:      e.FileType,
		})
	}

	return db.SaveRun(run, dups)
}
