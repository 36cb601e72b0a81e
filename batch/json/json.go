// Package json provides batch adapters for JSON encoding and decoding.
// Decoding a batch is all-or-nothing: one malformed document discards
// everything decoded before it.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/lguimbarda/min-batch/batch/batcherrors"
	"github.com/lguimbarda/min-batch/batch/core"
)

// UnmarshalEach decodes one JSON document per input, producing a batch of
// typed values of the same length.
func UnmarshalEach[T any](docs [][]byte, opts ...core.Option[T]) ([]T, error) {
	return core.Try(docs, func(doc []byte) (T, error) {
		var value T
		if err := json.Unmarshal(doc, &value); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}, opts...)
}

// UnmarshalEachString is UnmarshalEach for documents held as strings.
func UnmarshalEachString[T any](docs []string, opts ...core.Option[T]) ([]T, error) {
	return core.Try(docs, func(doc string) (T, error) {
		var value T
		if err := json.Unmarshal([]byte(doc), &value); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}, opts...)
}

// MarshalEach encodes each value into its own JSON document.
func MarshalEach[T any](values []T, opts ...core.Option[[]byte]) ([][]byte, error) {
	return core.Try(values, func(v T) ([]byte, error) {
		return json.Marshal(v)
	}, opts...)
}

// DecodeBatch fills dst with exactly len(dst) top-level JSON values read
// from the decoder. It returns batcherrors.ErrShortBatch if the stream ends
// first; values past the batch capacity are left in the decoder.
func DecodeBatch[T any](dec *json.Decoder, dst []T, opts ...core.Option[T]) error {
	b := core.NewBuilder(dst, opts...)
	defer b.Rollback()
	for b.Len() < b.Cap() {
		var value T
		if err := dec.Decode(&value); err != nil {
			if errors.Is(err, io.EOF) {
				return batcherrors.ErrShortBatch
			}
			return err
		}
		b.Put(value)
	}
	b.Commit()
	return nil
}

// DecodeArray decodes a JSON array holding exactly len(dst) elements into
// dst. A shorter array fails with batcherrors.ErrShortBatch, a longer one
// with batcherrors.ErrLongBatch.
func DecodeArray[T any](dec *json.Decoder, dst []T, opts ...core.Option[T]) error {
	if err := expectDelim(dec, '['); err != nil {
		return err
	}

	b := core.NewBuilder(dst, opts...)
	defer b.Rollback()
	for b.Len() < b.Cap() {
		if !dec.More() {
			return batcherrors.ErrShortBatch
		}
		var value T
		if err := dec.Decode(&value); err != nil {
			return err
		}
		b.Put(value)
	}
	if dec.More() {
		return batcherrors.ErrLongBatch
	}

	if err := expectDelim(dec, ']'); err != nil {
		return err
	}
	b.Commit()
	return nil
}

// expectDelim consumes one token and checks it is the wanted delimiter.
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("json: expected %q, got %v", want, tok)
	}
	return nil
}
