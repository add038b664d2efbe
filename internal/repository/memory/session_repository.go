package memory

import (
	"time"

	"digital-sales-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds live conversation sessions. Sessions idle past the
// TTL are purged automatically; persistent history lives in Postgres.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	r := &SessionRepository{
		cache: c,
	}
	// Evicted sessions are torn down so their late timer callbacks become
	// no-ops instead of mutating dead state.
	c.OnEvicted(func(_ string, x interface{}) {
		if s, ok := x.(*store.Session); ok {
			s.Teardown()
		}
	})
	return r
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// Delete tears the session down before discarding it.
func (r *SessionRepository) Delete(sessionID string) {
	if s, ok := r.Get(sessionID); ok {
		s.Teardown()
	}
	r.cache.Delete(sessionID)
}

// All returns a snapshot list of live sessions.
func (r *SessionRepository) All() []*store.Session {
	items := r.cache.Items()
	sessions := make([]*store.Session, 0, len(items))
	for _, item := range items {
		if s, ok := item.Object.(*store.Session); ok {
			sessions = append(sessions, s)
		}
	}
	return sessions
}
