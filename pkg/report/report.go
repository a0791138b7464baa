// Package report writes the duplicate listing and scan summary to a file.
// The format follows the file extension: .xlsx, .db or .json.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/pkg/file"
	"github.com/moyu-x/filehasher/pkg/locale"
	"github.com/moyu-x/filehasher/pkg/logger"
	"github.com/moyu-x/filehasher/pkg/result"
)

const (
	ExtXLSX = ".xlsx"
	ExtDB   = ".db"
	ExtJSON = ".json"
)

// DefaultExt is forced onto names with an unsupported extension.
const DefaultExt = ExtXLSX

var supported = map[string]bool{ExtXLSX: true, ExtDB: true, ExtJSON: true}

// Supported reports whether ext (with the dot) selects a report format.
func Supported(ext string) bool {
	return supported[strings.ToLower(ext)]
}

// Source is the read side of a finished scan.
type Source interface {
	Snapshot() result.Snapshot
	Duplicates() []*file.File
	OriginalPath(hash string) (string, bool)
	TopDuplicates(n int) []*file.File
	TopSize(n int) string
	FileTypes() []result.TypeCount
}

type Options struct {
	Roots      []string
	Algorithm  string
	DetectType bool
	// TopN is the length of the biggest duplicates list, result.DefaultTopN when zero.
	TopN int
}

func (o Options) topN() int {
	if o.TopN <= 0 {
		return result.DefaultTopN
	}
	return o.TopN
}

// Entry is one original/duplicate pair.
type Entry struct {
	Original  string `json:"original"`
	Duplicate string `json:"duplicate"`
	Size      int64  `json:"size"`
	HRSize    string `json:"hr_size"`
	Hash      string `json:"hash"`
	FileType  string `json:"file_type,omitempty"`
}

func entries(src Source, detectType bool) []Entry {
	dups := src.Duplicates()
	out := make([]Entry, 0, len(dups))
	for _, dup := range dups {
		orig, _ := src.OriginalPath(dup.Hash)
		e := Entry{
			Original:  orig,
			Duplicate: dup.Path,
			Size:      dup.Size,
			HRSize:    dup.HRSize(),
			Hash:      dup.Hash,
		}
		if detectType {
			e.FileType = dup.FileType
		}
		out = append(out, e)
	}
	return out
}

// Write renders src into path on fs using the format selected by its extension.
// SQLite reports can only be written to the OS filesystem.
func Write(fs afero.Fs, path string, src Source, text locale.Text, opts Options) error {
	ext := strings.ToLower(filepath.Ext(path))

	var err error
	switch ext {
	case ExtXLSX:
		err = writeXLSX(fs, path, src, text, opts)
	case ExtDB:
		err = writeDB(fs, path, src, opts)
	case ExtJSON:
		err = writeJSON(fs, path, src, opts)
	default:
		return fmt.Errorf("unsupported report format: %q", ext)
	}
	if err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	logger.Get().Info().Msgf("report written: %s", path)
	return nil
}
