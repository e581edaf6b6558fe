package archive

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps reports in process memory. It backs tests and
// single-run CLI sessions where persistence is not needed.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]Report
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]Report)}
}

// Save stores a report, overwriting any existing one with the same ID.
func (s *MemoryStore) Save(ctx context.Context, report Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	return nil
}

// Load fetches a report by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return report, nil
}

// Recent lists reports for a repository, newest first.
func (s *MemoryStore) Recent(ctx context.Context, repository string, limit int) ([]Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Report
	for _, r := range s.reports {
		if r.Repository == repository {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
