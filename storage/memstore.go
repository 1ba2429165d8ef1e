package storage

import (
	"sort"
	"strings"
	"sync"
)

// MemStore is an in-memory implementation of Store for testing.
// Each Update works on a copy of the data that replaces the live
// copy only when fn succeeds.
type MemStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
	closed  bool
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates a new in-memory store with the given buckets.
func NewMemStore(buckets ...[]byte) *MemStore {
	s := &MemStore{buckets: make(map[string]map[string][]byte)}
	for _, name := range buckets {
		s.buckets[string(name)] = make(map[string][]byte)
	}
	return s
}

// Close marks the store closed. Later transactions fail with ErrClosed.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Update runs fn against a private copy of the data and commits it on success.
func (s *MemStore) Update(fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	staged := make(map[string]map[string][]byte, len(s.buckets))
	for name, b := range s.buckets {
		cp := make(map[string][]byte, len(b))
		for k, v := range b {
			cp[k] = v
		}
		staged[name] = cp
	}

	if err := fn(&memTx{buckets: staged, writable: true}); err != nil {
		return err
	}
	s.buckets = staged
	return nil
}

// View runs fn against the committed data.
func (s *MemStore) View(fn func(tx Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return fn(&memTx{buckets: s.buckets})
}

type memTx struct {
	buckets  map[string]map[string][]byte
	writable bool
}

func (t *memTx) bucket(name []byte) (map[string][]byte, error) {
	b, ok := t.buckets[string(name)]
	if !ok {
		return nil, ErrBucketNotFound
	}
	return b, nil
}

func (t *memTx) Get(bucket, key []byte) ([]byte, error) {
	b, err := t.bucket(bucket)
	if err != nil {
		return nil, err
	}
	v, ok := b[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (t *memTx) Put(bucket, key, value []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}
	b, err := t.bucket(bucket)
	if err != nil {
		return err
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	b[string(key)] = cp
	return nil
}

func (t *memTx) Delete(bucket, key []byte) error {
	if !t.writable {
		return ErrReadOnly
	}
	b, err := t.bucket(bucket)
	if err != nil {
		return err
	}
	delete(b, string(key))
	return nil
}

func (t *memTx) Scan(bucket, prefix []byte, fn func(key, value []byte) error) error {
	b, err := t.bucket(bucket)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(b))
	for k := range b {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn([]byte(k), b[k]); err != nil {
			return err
		}
	}
	return nil
}
