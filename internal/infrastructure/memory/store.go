// Package memory is a process-local key-value backend. It serves
// STORAGE_DRIVER=memory and the tests.
package memory

import "sync"

// table is a mutex-guarded map that keeps insertion order for listing.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// snapshot copies the ids and rows in insertion order.
func (t *table[T]) snapshot() ([]string, []T) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, len(t.order))
	copy(ids, t.order)
	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, t.rows[id])
	}
	return ids, rows
}

// replace swaps the whole content, keeping the order of rows.
func (t *table[T]) replace(ids []string, rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[string]T, len(rows))
	t.order = make([]string, 0, len(rows))
	for i, id := range ids {
		if _, ok := t.rows[id]; !ok {
			t.order = append(t.order, id)
		}
		t.rows[id] = rows[i]
	}
}

// update applies fn to the rows whose ids are in ids; unknown ids are skipped.
func (t *table[T]) update(ids []string, fn func(i int, row T) T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, id := range ids {
		if row, ok := t.rows[id]; ok {
			t.rows[id] = fn(i, row)
		}
	}
}
