package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TokenRepository tracks bearer tokens issued for the current session so
// logout can invalidate them before their JWT expiry.
type TokenRepository struct {
	cache *cache.Cache
}

func NewTokenRepository(ttl time.Duration) *TokenRepository {
	// Purge expired tokens every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &TokenRepository{cache: c}
}

func (r *TokenRepository) Save(token string, userId uuid.UUID) {
	r.cache.Set(token, userId, cache.DefaultExpiration)
}

func (r *TokenRepository) Get(token string) (uuid.UUID, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(uuid.UUID), true
	}
	return uuid.Nil, false
}

func (r *TokenRepository) Delete(token string) {
	r.cache.Delete(token)
}

// Flush removes every issued token; used on logout since the app holds a
// single session.
func (r *TokenRepository) Flush() {
	r.cache.Flush()
}
