package exporter

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Download is one prepared export file awaiting pickup.
type Download struct {
	FilePath  string
	Filename  string
	ExpiresAt time.Time
}

// DownloadStore hands out expiring tokens for prepared export files so the
// download link can be fetched without re-running the export.
type DownloadStore struct {
	mu    sync.Mutex
	items map[string]Download
}

// NewDownloadStore creates an empty token store.
func NewDownloadStore() *DownloadStore {
	return &DownloadStore{items: make(map[string]Download)}
}

// Put registers a file and returns its token.
func (s *DownloadStore) Put(filePath, filename string, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token := uuid.NewString()
	s.items[token] = Download{
		FilePath:  filePath,
		Filename:  filename,
		ExpiresAt: time.Now().Add(ttl),
	}
	return token
}

// Get resolves a token; expired or unknown tokens fail.
func (s *DownloadStore) Get(token string) (Download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	d, ok := s.items[token]
	if !ok {
		return Download{}, false
	}
	if time.Now().After(d.ExpiresAt) {
		delete(s.items, token)
		return Download{}, false
	}
	return d, true
}

// Delete drops a token after a completed download.
func (s *DownloadStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *DownloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.ExpiresAt) {
			delete(s.items, k)
		}
	}
}
