// Package csv provides batch adapters for CSV decoding. A batch fill is
// all-or-nothing: a malformed record or a short file discards everything
// read before it.
package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/lguimbarda/min-batch/batch/batcherrors"
	"github.com/lguimbarda/min-batch/batch/core"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// RecordFunc converts one CSV record into a value.
type RecordFunc[T any] func(record []string) (T, error)

// ReadBatch fills dst with exactly len(dst) converted records from the
// reader, leaving any further records unread. It returns
// batcherrors.ErrShortBatch if the input ends first. Values converted
// before a failure are destroyed per the build options.
func ReadBatch[T any](r *csv.Reader, dst []T, conv RecordFunc[T], opts ...core.Option[T]) error {
	b := core.NewBuilder(dst, opts...)
	defer b.Rollback()
	for b.Len() < b.Cap() {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return batcherrors.ErrShortBatch
			}
			return err
		}
		value, err := conv(record)
		if err != nil {
			return err
		}
		b.Put(value)
	}
	b.Commit()
	return nil
}

// ReadRecordBatch is ReadBatch for callers who want the raw fields.
func ReadRecordBatch(r *csv.Reader, dst [][]string, opts ...core.Option[[]string]) error {
	return ReadBatch(r, dst, func(record []string) ([]string, error) {
		return record, nil
	}, opts...)
}

// ReadFileBatch opens a CSV file, applies the reader options, and fills dst
// with its first len(dst) converted records.
func ReadFileBatch[T any](path string, dst []T, conv RecordFunc[T], opts ...ReaderOption) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	r := csv.NewReader(file)
	for _, opt := range opts {
		opt(r)
	}
	return ReadBatch(r, dst, conv)
}
