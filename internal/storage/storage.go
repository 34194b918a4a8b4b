package storage

import (
	"context"
	"io"
)

// ObjectStore is the images bucket. Keys are write-once: every upload gets a
// fresh key, objects are never overwritten, and retrieval URLs are public.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	PublicURL(key string) string
}
