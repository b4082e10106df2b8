package sqlite

import "context"

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}
