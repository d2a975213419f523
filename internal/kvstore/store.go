package kvstore

import (
	"context"
	"errors"
)

// Store: kontrak penyimpanan record bernama per sesi. Nilai selalu
// JSON-encoded string; caller yang menentukan schema-nya.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("kvstore: record not found")
