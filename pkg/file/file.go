// Package file holds the per-path record built by the scan workers.
package file

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/pkg/hasher"
	"github.com/moyu-x/filehasher/pkg/units"
)

// File describes one regular file: size and creation time from a stat,
// hash and optional type from a single content read.
type File struct {
	Path     string
	Size     int64
	CTime    time.Time
	HasCTime bool
	Hash     string
	FileType string

	fs afero.Fs
}

// New stats path on fs. A failed stat leaves Size at 0 and the creation time unknown.
func New(fs afero.Fs, path string) *File {
	f := &File{Path: path, fs: fs}

	info, err := fs.Stat(path)
	if err != nil {
		return f
	}

	f.Size = info.Size()
	f.CTime, f.HasCTime = creationTime(fs, path)
	return f
}

// Populate computes the hash and, when the processor asks for it, the file type.
// On error the hash stays empty and the file must not be aggregated.
func (f *File) Populate(p *hasher.Processor) error {
	sum, err := p.Process(f.fs, f.Path)
	if err != nil {
		f.Hash = ""
		f.FileType = ""
		return fmt.Errorf("populate %s: %w", f.Path, err)
	}

	f.Hash = sum.Hash
	f.FileType = sum.FileType
	return nil
}

// Processable reports whether the file has content and a hash.
func (f *File) Processable() bool {
	return f.Size > 0 && f.Hash != ""
}

// OlderThan reports whether both creation times are known and f was created strictly before other.
func (f *File) OlderThan(other *File) bool {
	return f.HasCTime && other.HasCTime && f.CTime.Before(other.CTime)
}

// HRSize is the human readable size.
func (f *File) HRSize() string {
	return units.HumanSize(f.Size)
}

func (f *File) String() string {
	return f.Path
}
