// Package storage provides the blob store the plan gateway persists into:
// a handful of named JSON blobs in a single-table key-value schema, backed
// by local SQLite, Postgres, or memory.
package storage

import "context"

// Store reads and writes named blobs. Load reports found=false for a
// missing key without an error; Save overwrites unconditionally.
type Store interface {
	Load(ctx context.Context, key string) (blob []byte, found bool, err error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
