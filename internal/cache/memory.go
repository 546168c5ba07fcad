package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/viccon/sturdyc"
)

// LRUStore is a per-process store with a fixed TTL set at construction.
// The ttl passed to Set is ignored.
type LRUStore struct {
	lru *expirable.LRU[string, []byte]
}

func NewLRUStore(capacity int, ttl time.Duration) *LRUStore {
	return &LRUStore{lru: expirable.NewLRU[string, []byte](capacity, nil, ttl)}
}

func (s *LRUStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.lru.Get(key)
	return v, ok, nil
}

func (s *LRUStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.lru.Add(key, value)
	return nil
}

func (s *LRUStore) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}

func (s *LRUStore) Ping(context.Context) error {
	return nil
}

const (
	sturdycShards             = 8
	sturdycEvictionPercentage = 10
)

// SturdycStore is a sharded per-process store. Like LRUStore its TTL is fixed.
type SturdycStore struct {
	client *sturdyc.Client[[]byte]
}

func NewSturdycStore(capacity int, ttl time.Duration) *SturdycStore {
	return &SturdycStore{
		client: sturdyc.New[[]byte](capacity, sturdycShards, ttl, sturdycEvictionPercentage),
	}
}

func (s *SturdycStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.client.Get(key)
	return v, ok, nil
}

func (s *SturdycStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.client.Set(key, value)
	return nil
}

func (s *SturdycStore) Delete(_ context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

func (s *SturdycStore) Ping(context.Context) error {
	return nil
}
