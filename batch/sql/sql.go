// Package sql provides batch adapters for database operations using
// database/sql. Filling a batch from a query is all-or-nothing: either
// every slot holds a scanned row, or the error comes back with nothing
// retained.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lguimbarda/min-batch/batch/batcherrors"
	"github.com/lguimbarda/min-batch/batch/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// ScanInto fills the builder's remaining slots from rows, one scanned value
// per row. It stops once the builder is full, leaving any further rows
// unread, and returns batcherrors.ErrShortBatch if rows run out first. The
// caller owns rows and the builder's Commit or Rollback.
func ScanInto[T any](b *core.Builder[T], rows *sql.Rows, scanner Scanner[T]) error {
	for b.Len() < b.Cap() {
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return batcherrors.ErrShortBatch
		}
		value, err := scanner(rows)
		if err != nil {
			return err
		}
		b.Put(value)
	}
	return nil
}

// QueryBatch executes a query and fills dst with the first len(dst) rows,
// one scanned value per slot. Rows past the batch capacity are left unread.
// On any failure (query, scan, or too few rows) the values scanned so far
// are destroyed per the builder defaults and dst holds nothing.
func QueryBatch[T any](ctx context.Context, db *sql.DB, dst []T, query string, scanner Scanner[T], args ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	b := core.NewBuilder(dst)
	defer b.Rollback()
	if err := ScanInto(b, rows, scanner); err != nil {
		return err
	}
	b.Commit()
	return nil
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// ExecEach executes a statement once per argument list, all inside a single
// transaction. Either every execution succeeds and the batch of results is
// returned, or the transaction is rolled back and nothing has happened. The
// database transaction and the batch build disarm together on success.
func ExecEach(ctx context.Context, db *sql.DB, query string, argLists [][]any) ([]ExecResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	results, err := core.Try(argLists, func(args []any) (ExecResult, error) {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return ExecResult{}, err
		}
		lastID, _ := result.LastInsertId()
		rowsAffected, _ := result.RowsAffected()
		return ExecResult{
			LastInsertId: lastID,
			RowsAffected: rowsAffected,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return results, nil
}

// Transaction executes a function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// Otherwise, it is committed.
func Transaction[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()

	value, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return value, nil
}

// ScanStrings is a Scanner that reads every column of a row as a string.
func ScanStrings(rows *sql.Rows) ([]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	valuePtrs := make([]any, len(cols))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, err
	}
	result := make([]string, len(cols))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			result[i] = ""
		case []byte:
			result[i] = string(val)
		case string:
			result[i] = val
		case int64:
			result[i] = fmt.Sprintf("%d", val)
		case float64:
			result[i] = fmt.Sprintf("%g", val)
		case bool:
			result[i] = fmt.Sprintf("%t", val)
		default:
			result[i] = fmt.Sprintf("%v", val)
		}
	}
	return result, nil
}

// ScanMaps is a Scanner that reads a row into a map keyed by column name.
func ScanMaps(rows *sql.Rows) (map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	valuePtrs := make([]any, len(cols))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, err
	}
	result := make(map[string]any, len(cols))
	for i, col := range cols {
		result[col] = values[i]
	}
	return result, nil
}
