// Package io provides batch adapters for file operations. Acquiring a batch
// of files is all-or-nothing: if any open or create fails, every handle
// acquired before it is released.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/min-batch/batch/batcherrors"
	"github.com/lguimbarda/min-batch/batch/core"
)

// OpenFiles opens every path for reading. If any open fails, the files
// opened before it are closed and the error is returned. On success the
// caller owns all the handles.
func OpenFiles(paths []string, opts ...core.Option[*os.File]) ([]*os.File, error) {
	opts = append([]core.Option[*os.File]{core.WithDrop(closeFile)}, opts...)
	return core.Try(paths, os.Open, opts...)
}

// CreateFiles creates every path. If any create fails, the files created
// before it are closed and removed, leaving the filesystem as it was.
func CreateFiles(paths []string, opts ...core.Option[*os.File]) ([]*os.File, error) {
	opts = append([]core.Option[*os.File]{core.WithDrop(removeFile)}, opts...)
	return core.Try(paths, os.Create, opts...)
}

// ReadFiles reads every path into memory. Contents need no teardown, so a
// mid-list failure simply discards the prefix.
func ReadFiles(paths []string, opts ...core.Option[[]byte]) ([][]byte, error) {
	return core.Try(paths, os.ReadFile, opts...)
}

// CloseAll closes every file and returns the first error encountered.
func CloseAll(files []*os.File) error {
	var first error
	for _, f := range files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ReadLinesBatch fills dst with exactly len(dst) lines from the reader,
// without their trailing newlines. It returns batcherrors.ErrShortBatch if
// the input ends first.
func ReadLinesBatch(r io.Reader, dst []string, opts ...core.Option[string]) error {
	b := core.NewBuilder(dst, opts...)
	defer b.Rollback()

	scanner := bufio.NewScanner(r)
	for b.Len() < b.Cap() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return batcherrors.ErrShortBatch
		}
		b.Put(scanner.Text())
	}
	b.Commit()
	return nil
}

// ReadFileLines opens a file and fills dst with its first len(dst) lines.
func ReadFileLines(path string, dst []string, opts ...core.Option[string]) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ReadLinesBatch(file, dst, opts...)
}

func closeFile(f *os.File) {
	f.Close()
}

// removeFile undoes a create: the handle is closed and the file deleted.
func removeFile(f *os.File) {
	name := f.Name()
	f.Close()
	os.Remove(name)
}
