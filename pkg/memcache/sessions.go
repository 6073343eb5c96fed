package mem

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var ErrSessionMissing = errors.New("session missing or expired")

// SessionStore keeps serialized conversation sessions. Entries expire ttl
// after their last write.
type SessionStore interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
}

type MemorySessions struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewMemorySessions(ttl time.Duration) *MemorySessions {
	return &MemorySessions{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *MemorySessions) Get(_ context.Context, id string) ([]byte, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionMissing
	}
	data := v.([]byte)
	// callers may hold on to the slice; hand out a copy
	return append([]byte(nil), data...), nil
}

func (s *MemorySessions) Set(_ context.Context, id string, data []byte) error {
	s.cache.Set(id, append([]byte(nil), data...), s.ttl)
	return nil
}

func (s *MemorySessions) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}
