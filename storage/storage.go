package storage

import (
	"context"
	"io"
)

// Backend is the object-storage collaborator media uploads go through. It
// accepts binaries and hands back stable public URLs; everything else about
// the store is opaque to this layer.
type Backend interface {
	Upload(ctx context.Context, objectKey, contentType string, reader io.Reader) error
	Delete(ctx context.Context, objectKey string) error
	PublicURL(objectKey string) string
}
