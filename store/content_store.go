package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"spleux/api/models"
)

// contentCache holds the last parsed local document keyed by the file's
// modification time. Invalidate drops the entry so the next read hits
// the file again.
type contentCache struct {
	mu      sync.Mutex
	doc     *models.ContentDocument
	modTime time.Time
}

func (c *contentCache) get(modTime time.Time) (*models.ContentDocument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.doc == nil || modTime.After(c.modTime) {
		return nil, false
	}
	return c.doc, true
}

func (c *contentCache) set(doc *models.ContentDocument, modTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = doc
	c.modTime = modTime
}

func (c *contentCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.doc = nil
	c.modTime = time.Time{}
}

// ContentStore serves the content document remote-first with an
// unconditional local fallback: any remote failure (missing config,
// network error, bad payload) degrades to the seed file on disk, logged
// but never surfaced to the reader.
type ContentStore struct {
	remote    DocumentStore // nil when GitHub is not configured
	localPath string
	cache     contentCache
	log       *zap.Logger
}

func NewContentStore(remote DocumentStore, localPath string, log *zap.Logger) *ContentStore {
	return &ContentStore{
		remote:    remote,
		localPath: localPath,
		log:       log,
	}
}

// Get returns the current content document. It only errors when the
// remote path failed AND the local seed file is unreadable, which means
// the deployment is broken beyond this process.
func (s *ContentStore) Get(ctx context.Context) (*models.ContentDocument, error) {
	if s.remote != nil {
		doc, _, err := s.remote.Get(ctx)
		if err == nil {
			return doc, nil
		}
		s.log.Warn("remote content fetch failed, serving local fallback", zap.Error(err))
	}
	return s.local()
}

// Update writes a whole replacement document through the remote store.
// It re-reads the current version first; a concurrent writer that commits
// between that read and our write makes the remote reject us with a
// conflict, and the admin has to re-fetch and save again.
//
// A successful write is a commit, not a cache update: the remote content
// may keep serving the old document for a short while, so callers should
// re-fetch after a delay to observe the change.
func (s *ContentStore) Update(ctx context.Context, doc *models.ContentDocument) error {
	if s.remote == nil {
		return ErrNotConfigured
	}

	_, version, err := s.remote.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			version = ""
		} else {
			return fmt.Errorf("failed to read current document version: %w", err)
		}
	}

	if _, err := s.remote.Put(ctx, doc, version); err != nil {
		return err
	}

	s.cache.invalidate()
	return nil
}

// Invalidate drops the cached local document. Exposed for the refresh
// endpoint.
func (s *ContentStore) Invalidate() {
	s.cache.invalidate()
}

func (s *ContentStore) local() (*models.ContentDocument, error) {
	info, err := os.Stat(s.localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat local content file: %w", err)
	}

	if doc, ok := s.cache.get(info.ModTime()); ok {
		return doc, nil
	}

	raw, err := os.ReadFile(s.localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read local content file: %w", err)
	}

	var doc models.ContentDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse local content file: %w", err)
	}

	s.cache.set(&doc, info.ModTime())
	return &doc, nil
}
