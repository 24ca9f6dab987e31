// Copyright (c) 2026 Filmorate. All rights reserved.

/*
Package memstore provides a generic, map-backed keyed-record store.

It is the in-process counterpart of the relational repositories: the same
add/update/get/get-all contract over an RWMutex-guarded map, with ids assigned
by the store itself. GetAll preserves insertion order so that ranking ties
resolve the same way as a primary-key ordered SQL scan.

# Concurrency

A single RWMutex guards each store. Compound writes that must be observed
atomically (both sides of a friendship edge, a like set together with its
derived rate) go through [Store.Mutate] and [Store.UpdatePair], which run the
caller's function inside the write lock — readers see either the pre- or the
post-state of a compound update, never an intermediate one.
*/
package memstore

import (
	"sync"

	"github.com/filmorate/filmorate/internal/platform/apperr"
)

// Store is a generic keyed-record store backed by an in-process map.
//
// Records are keyed by a server-assigned int id, monotonically increasing
// from 1 and never reused. The id accessor pair is supplied at construction
// so the store stays agnostic of the record type.
type Store[V any] struct {
	mu       sync.RWMutex
	records  map[int]V
	order    []int
	nextID   int
	resource string
	id       func(V) int
	withID   func(V, int) V
}

// New constructs an empty store.
//
// # Parameters
//   - resource: Name used in NotFound errors (e.g. "User", "Film").
//   - id: Extracts the record's id.
//   - withID: Returns a copy of the record with the id set.
func New[V any](resource string, id func(V) int, withID func(V, int) V) *Store[V] {
	return &Store[V]{
		records:  make(map[int]V),
		nextID:   1,
		resource: resource,
		id:       id,
		withID:   withID,
	}
}

// Add stores a new record under a freshly assigned id and returns it.
//
// Ids are always server-assigned: any id already present on the record is
// overwritten, so a duplicate-id collision cannot occur through this path.
func (store *Store[V]) Add(record V) V {
	store.mu.Lock()
	defer store.mu.Unlock()

	assigned := store.nextID
	store.nextID++

	record = store.withID(record, assigned)
	store.records[assigned] = record
	store.order = append(store.order, assigned)

	return record
}

// Update replaces an existing record. Missing ids yield a NotFound error.
func (store *Store[V]) Update(record V) (V, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	key := store.id(record)
	if _, ok := store.records[key]; !ok {
		var zero V
		return zero, apperr.NotFound(store.resource)
	}

	store.records[key] = record
	return record, nil
}

// Get returns the record stored under id, or a NotFound error.
func (store *Store[V]) Get(id int) (V, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	record, ok := store.records[id]
	if !ok {
		var zero V
		return zero, apperr.NotFound(store.resource)
	}

	return record, nil
}

// Has reports whether a record exists under id.
func (store *Store[V]) Has(id int) bool {
	store.mu.RLock()
	defer store.mu.RUnlock()

	_, ok := store.records[id]
	return ok
}

// GetAll returns every record in insertion order.
func (store *Store[V]) GetAll() []V {
	store.mu.RLock()
	defer store.mu.RUnlock()

	all := make([]V, 0, len(store.order))
	for _, id := range store.order {
		all = append(all, store.records[id])
	}

	return all
}

// Len returns the number of stored records.
func (store *Store[V]) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(store.records)
}

// Mutate atomically applies fn to the record stored under id and persists the
// result. If fn returns an error, the store is left unchanged.
//
// This is the single-record compound-write primitive: a like set and its
// derived rate change together inside one critical section.
func (store *Store[V]) Mutate(id int, fn func(V) (V, error)) (V, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	record, ok := store.records[id]
	if !ok {
		var zero V
		return zero, apperr.NotFound(store.resource)
	}

	updated, err := fn(record)
	if err != nil {
		var zero V
		return zero, err
	}

	store.records[id] = updated
	return updated, nil
}

// UpdatePair atomically applies fn to the records stored under a and b and
// persists both results, or neither if fn fails.
//
// This is the "apply both sides or neither" primitive used for symmetric
// friendship edges: a partial application (one side updated, the other
// failing) cannot be observed.
func (store *Store[V]) UpdatePair(a, b int, fn func(av, bv V) (V, V, error)) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	recordA, ok := store.records[a]
	if !ok {
		return apperr.NotFound(store.resource)
	}

	recordB, ok := store.records[b]
	if !ok {
		return apperr.NotFound(store.resource)
	}

	updatedA, updatedB, err := fn(recordA, recordB)
	if err != nil {
		return err
	}

	store.records[a] = updatedA
	store.records[b] = updatedB
	return nil
}
