package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-chat-nosql/internal/domain"
)

// Memory is the reference Store implementation: a process-local table with
// the same contract as the DynamoDB adapter. Used for local development
// (STORAGE_DRIVER=memory) and by tests. Safe for concurrent use.
type Memory struct {
	mu         sync.RWMutex
	partitions map[string]map[string]Record
}

func NewMemory() *Memory {
	return &Memory{partitions: make(map[string]map[string]Record)}
}

func (m *Memory) Get(ctx context.Context, pk, sk string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.partitions[pk][sk]
	if !ok {
		return nil, fmt.Errorf("record %s/%s: %w", pk, sk, domain.ErrNotFound)
	}
	return &rec, nil
}

func (m *Memory) Put(ctx context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.partitions[rec.PK]
	if !ok {
		p = make(map[string]Record)
		m.partitions[rec.PK] = p
	}
	p[rec.SK] = *rec
	return nil
}

func (m *Memory) QueryPartition(ctx context.Context, pk string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := m.partitions[pk]
	recs := make([]Record, 0, len(p))
	for _, rec := range p {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].SK < recs[j].SK })
	return recs, nil
}

func (m *Memory) QueryType(ctx context.Context, gsiType string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var recs []Record
	for _, p := range m.partitions {
		for _, rec := range p {
			if rec.GSIType == gsiType {
				recs = append(recs, rec)
			}
		}
	}
	return recs, nil
}
