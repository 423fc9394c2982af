// Package resourcetest provides an in-memory resource.Repository for tests.
package resourcetest

import (
	"context"
	"sync"

	"miranda/internal/resource"
)

// MemoryRepository keeps records in insertion order. Fields maps the document
// field names accepted by FindOne to accessors. Setting Err makes every call fail.
type MemoryRepository[T any, K comparable] struct {
	mu      sync.Mutex
	keyOf   func(*T) K
	fields  map[string]func(*T) any
	order   []K
	records map[K]T

	Err error
}

func NewMemoryRepository[T any, K comparable](keyOf func(*T) K, fields map[string]func(*T) any) *MemoryRepository[T, K] {
	return &MemoryRepository[T, K]{
		keyOf:   keyOf,
		fields:  fields,
		records: make(map[K]T),
	}
}

func (m *MemoryRepository[T, K]) FindAll(ctx context.Context) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]*T, 0, len(m.order))
	for _, k := range m.order {
		rec := m.records[k]
		out = append(out, &rec)
	}
	return out, nil
}

func (m *MemoryRepository[T, K]) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.records)), nil
}

func (m *MemoryRepository[T, K]) FindByKey(ctx context.Context, key K) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	rec, ok := m.records[key]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return &rec, nil
}

func (m *MemoryRepository[T, K]) FindOne(ctx context.Context, field string, value any) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	get, ok := m.fields[field]
	if !ok {
		return nil, resource.ErrNotFound
	}
	for _, k := range m.order {
		rec := m.records[k]
		if get(&rec) == value {
			return &rec, nil
		}
	}
	return nil, resource.ErrNotFound
}

func (m *MemoryRepository[T, K]) Insert(ctx context.Context, record *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	key := m.keyOf(record)
	if _, exists := m.records[key]; exists {
		return resource.ErrDuplicateKey
	}
	m.records[key] = *record
	m.order = append(m.order, key)
	return nil
}

func (m *MemoryRepository[T, K]) Replace(ctx context.Context, key K, record *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, exists := m.records[key]; !exists {
		return resource.ErrNotFound
	}
	m.records[key] = *record
	return nil
}

func (m *MemoryRepository[T, K]) Delete(ctx context.Context, key K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, exists := m.records[key]; !exists {
		return resource.ErrNotFound
	}
	delete(m.records, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// RecordingPublisher collects published events.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []resource.Event
	Err    error
}

func (p *RecordingPublisher) Publish(ctx context.Context, event resource.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return p.Err
}
