package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/moyu-x/filehasher/pkg/logger"
)

const mtimeLayout = "2006-01-02_150405"

// Filename resolves the report path.
//
// Without a requested name the report is named after the basenames of the roots
// joined by "_" and placed in the working directory. A requested name keeps its
// directory only when that directory exists. An unsupported extension is replaced
// with DefaultExt. An existing file at the resulting path is renamed out of the
// way with its modification time appended.
func Filename(fs afero.Fs, roots []string, requested string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var target string
	if requested == "" {
		names := make([]string, 0, len(roots))
		for _, root := range roots {
			names = append(names, rootName(root))
		}
		target = filepath.Join(cwd, strings.Join(names, "_")+DefaultExt)
	} else {
		dir := filepath.Dir(requested)
		if dir == "." || !isDir(fs, dir) {
			dir = cwd
		}
		name := filepath.Base(requested)
		if ext := filepath.Ext(name); !Supported(ext) {
			name = strings.TrimSuffix(name, ext) + DefaultExt
		}
		target = filepath.Join(dir, name)
	}

	if err := rotate(fs, target); err != nil {
		return "", err
	}
	return target, nil
}

func rootName(root string) string {
	name := filepath.Base(strings.TrimRight(root, `/\`))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "root"
	}
	return name
}

func isDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}

// rotate renames an existing regular file at path to <stem>_<mtime><ext>.
func rotate(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s_%s%s", strings.TrimSuffix(path, ext), info.ModTime().Format(mtimeLayout), ext)
	if err := fs.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate old report %s: %w", path, err)
	}

	logger.Get().Info().Msgf("previous report moved to %s", rotated)
	return nil
}
