// Package cache implements the read-aside cache used by the resource services.
//
// Values are stored as JSON under "<resource>:<key>" with a fixed expiry. Reads
// check the store first and fall back to the loader on a miss; writes invalidate
// the key after the relational change commits. Cache infrastructure failures are
// logged and never fail the caller.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
)

const DefaultTTL = 5 * time.Minute

// Store is the byte-level key-value backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// FetchFn loads a value from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

type Cache struct {
	store  Store
	ttl    time.Duration
	hits   *prometheus.CounterVec
	misses *prometheus.CounterVec
}

// New builds a Cache over store. Counters are registered on reg when it is not nil.
func New(store Store, ttl time.Duration, reg prometheus.Registerer) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		store: store,
		ttl:   ttl,
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reciclame_cache_hits_total",
			Help: "Cache hits per resource.",
		}, []string{"resource"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reciclame_cache_misses_total",
			Help: "Cache misses per resource.",
		}, []string{"resource"}),
	}

	if reg != nil {
		reg.MustRegister(c.hits, c.misses)
	}

	return c
}

func Key(resource string, id any) string {
	return fmt.Sprintf("%s:%v", resource, id)
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Invalidate removes key from the store. Failures are only logged.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil {
		log.Warnf("cache: failed to invalidate %s: %v", key, err)
	}
}

// GetOrFetch returns the cached value for key or loads it with fetch and stores it for the cache TTL.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetch FetchFn[T]) (T, error) {
	return GetOrFetchTTL(ctx, c, key, c.ttl, fetch)
}

// GetOrFetchTTL is GetOrFetch with an explicit expiry.
// Concurrent misses on the same key may both call fetch; the last write wins.
func GetOrFetchTTL[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch FetchFn[T]) (T, error) {
	resource := resourceOf(key)

	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warnf("cache: read of %s failed, falling back to database: %v", key, err)
	}
	if ok {
		var cached T
		err := json.Unmarshal(data, &cached)
		if err == nil {
			c.hits.WithLabelValues(resource).Inc()
			log.Debugf("cache hit %s", key)
			return cached, nil
		}
		log.Warnf("cache: dropping undecodable entry %s: %v", key, err)
	}

	c.misses.WithLabelValues(resource).Inc()
	log.Debugf("cache miss %s", key)

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		log.Warnf("cache: cannot encode %s: %v", key, err)
		return value, nil
	}
	if err := c.store.Set(ctx, key, payload, ttl); err != nil {
		log.Warnf("cache: failed to store %s: %v", key, err)
	}

	return value, nil
}

func resourceOf(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
