// Package glob provides batch adapters for file path matching and
// inspection.
package glob

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lguimbarda/min-batch/batch/core"
)

// FileInfo contains information about a file or directory.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	Mode    fs.FileMode
	IsDir   bool
	ModTime int64
}

// ExpandEach expands every pattern with filepath.Glob and returns one match
// list per pattern, in order. A malformed pattern fails the whole batch.
func ExpandEach(patterns []string, opts ...core.Option[[]string]) ([][]string, error) {
	return core.Try(patterns, filepath.Glob, opts...)
}

// StatEach retrieves file info for every path. A missing path fails the
// whole batch.
func StatEach(paths []string, opts ...core.Option[FileInfo]) ([]FileInfo, error) {
	return core.Try(paths, statPath, opts...)
}

// ListEach lists the immediate children of every directory and returns one
// path list per directory, in order.
func ListEach(dirs []string, opts ...core.Option[[]string]) ([][]string, error) {
	return core.Try(dirs, func(dir string) ([]string, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		paths := make([]string, len(entries))
		for i, entry := range entries {
			paths[i] = filepath.Join(dir, entry.Name())
		}
		return paths, nil
	}, opts...)
}

func statPath(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		Mode:    info.Mode(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime().Unix(),
	}, nil
}
