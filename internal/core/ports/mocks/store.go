package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "github.com/SanketKumarKar/FeelBack/internal/core/errors"
)

// KeyValueStore is a thread-safe in-memory implementation of ports.KeyValueStore.
type KeyValueStore struct {
	mu      sync.RWMutex
	entries map[string]kvEntry

	// GetFn allows overriding Get behavior.
	GetFn func(ctx context.Context, key string) ([]byte, error)

	// SetWithTTLFn allows overriding SetWithTTL behavior.
	SetWithTTLFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// KeysByPrefixFn allows overriding KeysByPrefix behavior.
	KeysByPrefixFn func(ctx context.Context, prefix string) ([]string, error)

	// DeleteManyFn allows overriding DeleteMany behavior.
	DeleteManyFn func(ctx context.Context, keys []string) (int64, error)

	// PingFn allows overriding Ping behavior.
	PingFn func(ctx context.Context) error
}

type kvEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewKeyValueStore creates a new mock key-value store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		entries: make(map[string]kvEntry),
	}
}

// Get retrieves a value by key.
func (s *KeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, key)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, apperrors.ErrCacheNotFound
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)

	return value, nil
}

// SetWithTTL stores a value with an expiry.
func (s *KeyValueStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.SetWithTTLFn != nil {
		return s.SetWithTTLFn(ctx, key, value, ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)

	s.entries[key] = kvEntry{value: stored, expiresAt: time.Now().Add(ttl)}

	return nil
}

// KeysByPrefix returns live keys with the given prefix in ascending order.
func (s *KeyValueStore) KeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	if s.KeysByPrefixFn != nil {
		return s.KeysByPrefixFn(ctx, prefix)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()

	keys := make([]string, 0)

	for key, entry := range s.entries {
		if strings.HasPrefix(key, prefix) && now.Before(entry.expiresAt) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys, nil
}

// DeleteMany removes keys and returns the number removed.
func (s *KeyValueStore) DeleteMany(ctx context.Context, keys []string) (int64, error) {
	if s.DeleteManyFn != nil {
		return s.DeleteManyFn(ctx, keys)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64

	for _, key := range keys {
		if _, ok := s.entries[key]; ok {
			delete(s.entries, key)

			count++
		}
	}

	return count, nil
}

// Ping reports the store as reachable.
func (s *KeyValueStore) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}

	return nil
}

// Len returns the number of stored entries, including expired ones.
func (s *KeyValueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Clear removes all entries.
func (s *KeyValueStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]kvEntry)
}
