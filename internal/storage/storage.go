package storage

import (
	"context"
	"io"
)

// Uploader is the document store write path. Implementations return the
// stored reference path for the object, which is what gets persisted on
// the application row.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

// Remover deletes a previously uploaded object. Used only to compensate
// a record insert that failed after the file was already written.
type Remover interface {
	Remove(ctx context.Context, objectName string) error
}

// Store is what the intake service needs from a document backend.
type Store interface {
	Uploader
	Remover
}
