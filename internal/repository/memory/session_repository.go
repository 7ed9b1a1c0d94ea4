package memory

import (
	"time"

	"voicemart-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// Session state lives only in memory: a conversation that goes quiet for an
// hour is gone, which matches the lifetime of a voice call.

type ShoppingSessionRepository struct {
	cache *cache.Cache
}

func NewShoppingSessionRepository() *ShoppingSessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ShoppingSessionRepository{cache: c}
}

func (r *ShoppingSessionRepository) Save(session *entity.ShoppingSession) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *ShoppingSessionRepository) Get(sessionId string) (*entity.ShoppingSession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.ShoppingSession), true
	}
	return nil, false
}

func (r *ShoppingSessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

type FraudSessionRepository struct {
	cache *cache.Cache
}

func NewFraudSessionRepository() *FraudSessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &FraudSessionRepository{cache: c}
}

func (r *FraudSessionRepository) Save(session *entity.FraudCallSession) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *FraudSessionRepository) Get(sessionId string) (*entity.FraudCallSession, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.FraudCallSession), true
	}
	return nil, false
}

func (r *FraudSessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
