package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 10000
	DefaultTTL  = 30 * time.Minute
)

// LRUStore keeps sessions in process memory with per-entry expiry.
type LRUStore struct {
	cache *expirable.LRU[string, Session]
}

var _ Store = (*LRUStore)(nil)

// NewLRUStore creates an in-memory store holding at most size sessions for ttl.
func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRUStore{cache: expirable.NewLRU[string, Session](size, nil, ttl)}
}

func (s *LRUStore) Load(_ context.Context, key string) (Session, error) {
	if sess, ok := s.cache.Get(key); ok {
		return sess, nil
	}
	return Session{Key: key}, nil
}

func (s *LRUStore) Save(_ context.Context, sess Session) error {
	sess.UpdatedAt = time.Now()
	s.cache.Add(sess.Key, sess)
	return nil
}

func (s *LRUStore) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}
