// Package memory holds the in-memory repositories behind the stand-in
// backend. Data lives for the lifetime of the process.
package memory

import (
	"sort"
	"sync"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// table is an auto-incrementing row set keyed by int64 ID.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[int64]T
	next int64
	id   func(*T) *int64
}

func newTable[T any](id func(*T) *int64) *table[T] {
	return &table[T]{rows: make(map[int64]T), id: id}
}

func (t *table[T]) insert(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	*t.id(&v) = t.next
	t.rows[t.next] = v
	return v
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

// find is get returning domain.ErrNotFound for a missing row.
func (t *table[T]) find(id int64) (*T, error) {
	v, ok := t.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

// save replaces an existing row and reports whether it was there.
func (t *table[T]) save(v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := *t.id(&v)
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// all returns the rows ordered by ascending ID.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return *t.id(&out[i]) < *t.id(&out[j])
	})
	return out
}
