// Package querycache is an in-memory key-value store for client query results.
//
// Values are kept JSON-encoded so a Snapshot is an exact copy that later writes
// cannot alias. Entries are addressed by tuple keys such as
// Key{"grower-stock", growerID, productID} and can be marked stale by prefix.
package querycache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"market/internal/errors"
)

// Key identifies a cached query. Elements are compared by their JSON encoding.
type Key []any

const keySeparator = "\x1f"

type encodedKey []string

func (k encodedKey) String() string {
	return strings.Join(k, keySeparator)
}

func (k encodedKey) hasPrefix(prefix encodedKey) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}

	return true
}

func encode(key Key) (encodedKey, error) {
	parts := make(encodedKey, 0, len(key))
	for _, elem := range key {
		b, err := json.Marshal(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "encode key element %v", elem)
		}
		parts = append(parts, string(b))
	}

	return parts, nil
}

type entry struct {
	key       encodedKey
	value     []byte
	stale     bool
	updatedAt time.Time
}

// Snapshot is a point-in-time copy of every entry.
type Snapshot struct {
	entries map[string]entry
}

// Len returns the number of entries in the snapshot.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Cache is safe for concurrent use. Each operation is atomic.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	staleTime time.Duration
	now       func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleTime makes entries stale once they are older than d. Zero keeps them fresh until invalidated.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) { c.staleTime = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Set stores value under key as a fresh entry.
func (c *Cache) Set(key Key, value any) error {
	ek, err := encode(key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encode cache value")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ek.String()] = entry{key: ek, value: raw, updatedAt: c.now()}

	return nil
}

// Get decodes the value under key into out. It reports false when the key is absent;
// stale entries are still returned.
func (c *Cache) Get(key Key, out any) (bool, error) {
	ek, err := encode(key)
	if err != nil {
		return false, err
	}

	c.mu.RLock()
	e, ok := c.entries[ek.String()]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}

	return true, errors.Wrap(json.Unmarshal(e.value, out), "decode cache value")
}

// Update rewrites the value under key in place. fn receives the decoded value and
// must return the new one. A missing key is left untouched and reported as false.
func (c *Cache) Update(key Key, fn func(raw json.RawMessage) (any, error)) (bool, error) {
	ek, err := encode(key)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ek.String()]
	if !ok {
		return false, nil
	}

	next, err := fn(json.RawMessage(e.value))
	if err != nil {
		return true, err
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return true, errors.Wrap(err, "encode cache value")
	}

	e.value = raw
	e.updatedAt = c.now()
	c.entries[ek.String()] = e

	return true, nil
}

// Snapshot copies every entry.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{entries: copyEntries(c.entries)}
}

// Restore replaces the whole cache content with snap. Entries written after the
// snapshot was taken are dropped.
func (c *Cache) Restore(snap Snapshot) {
	entries := copyEntries(snap.entries)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
}

func copyEntries(src map[string]entry) map[string]entry {
	dst := make(map[string]entry, len(src))
	for k, e := range src {
		e.value = append([]byte(nil), e.value...)
		dst[k] = e
	}

	return dst
}

// Invalidate marks every entry whose key starts with prefix as stale and returns how many matched.
// An empty prefix matches everything.
func (c *Cache) Invalidate(prefix Key) (int, error) {
	ep, err := encode(prefix)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if !e.key.hasPrefix(ep) {
			continue
		}
		e.stale = true
		c.entries[k] = e
		n++
	}

	return n, nil
}

// Remove deletes the entry under key.
func (c *Cache) Remove(key Key) error {
	ek, err := encode(key)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, ek.String())

	return nil
}

// IsStale reports whether key must be refetched: it is absent, invalidated or older than the stale time.
func (c *Cache) IsStale(key Key) bool {
	ek, err := encode(key)
	if err != nil {
		return true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[ek.String()]
	if !ok || e.stale {
		return true
	}

	return c.staleTime > 0 && c.now().Sub(e.updatedAt) >= c.staleTime
}

// Fetch returns the cached value under key when it is fresh and otherwise calls load,
// stores its result and returns it.
func Fetch[T any](ctx context.Context, c *Cache, key Key, load func(ctx context.Context) (T, error)) (T, error) {
	var value T
	if !c.IsStale(key) {
		found, err := c.Get(key, &value)
		if err == nil && found {
			return value, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	if err := c.Set(key, value); err != nil {
		return value, err
	}

	return value, nil
}

// UpdateAs is Update with a typed value.
func UpdateAs[T any](c *Cache, key Key, fn func(value *T) error) (bool, error) {
	return c.Update(key, func(raw json.RawMessage) (any, error) {
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, errors.Wrap(err, "decode cache value")
		}
		if err := fn(&value); err != nil {
			return nil, err
		}

		return value, nil
	})
}
