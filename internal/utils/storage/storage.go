package storage

import "context"

// Storage persists uploaded document files. Keys are namespaced by the
// owning document id ("documents/{id}/{filename}") so a second upload with
// the same filename never clobbers the first one's bytes.
type Storage interface {
	Save(ctx context.Context, key string, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
}
