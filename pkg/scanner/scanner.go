package scanner

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/pkg/logger"
)

type FileWalker struct {
	fs afero.Fs
}

func NewFileWalker(fs afero.Fs) *FileWalker {
	return &FileWalker{fs: fs}
}

// Files lazily yields the regular files below root, depth first in name order.
// Symbolic links are neither followed nor yielded. A directory that cannot be
// read contributes nothing.
func (w *FileWalker) Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		w.walk(root, yield)
	}
}

// FilesFrom concatenates Files for every root. A path reachable from two roots
// is yielded twice.
func (w *FileWalker) FilesFrom(roots []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, root := range roots {
			if !w.walk(root, yield) {
				return
			}
		}
	}
}

func (w *FileWalker) walk(dir string, yield func(string) bool) bool {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		logger.Get().Debug().Err(err).Str("path", dir).Msg("skipping unreadable directory")
		return true
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		mode := entry.Mode()

		switch {
		case mode&os.ModeSymlink != 0:
			continue
		case entry.IsDir():
			if !w.walk(path, yield) {
				return false
			}
		case mode.IsRegular():
			if !yield(path) {
				return false
			}
		}
	}

	return true
}

// Collect gathers every file from roots into a slice.
func (w *FileWalker) Collect(roots []string) []string {
	var paths []string
	for path := range w.FilesFrom(roots) {
		paths = append(paths, path)
	}
	return paths
}
