package store

import (
	"context"
	"errors"

	"spleux/api/models"
)

var (
	// ErrNotConfigured means the remote storage target or its token is
	// missing from the environment.
	ErrNotConfigured = errors.New("remote content storage is not configured")

	// ErrNotFound means the remote document does not exist yet.
	ErrNotFound = errors.New("content document not found")

	// ErrConflict means the expected version was stale: someone else
	// committed between our read and our write. The caller must re-fetch
	// and retry manually; nothing retries automatically.
	ErrConflict = errors.New("content document version conflict")
)

// DocumentStore is a single-document store with optimistic concurrency.
// Get returns the document along with its current version token; Put
// writes a whole replacement document and fails with ErrConflict when
// expectedVersion no longer matches the stored one.
type DocumentStore interface {
	Get(ctx context.Context) (*models.ContentDocument, string, error)
	Put(ctx context.Context, doc *models.ContentDocument, expectedVersion string) (string, error)
}
