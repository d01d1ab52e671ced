package memory

import (
	"context"
	"strings"
	"sync"
)

// HistoryRepository implements domain.HistoryRepository in memory
type HistoryRepository struct {
	mu    sync.RWMutex
	lines []string
}

// NewHistoryRepository creates an empty memory history repository
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) AppendBatch(ctx context.Context, codes []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = append(r.lines, strings.Join(codes, ","))
	return nil
}

func (r *HistoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = nil
	return nil
}

func (r *HistoryRepository) RecentBatches(ctx context.Context, limit int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, limit)
	for i := len(r.lines) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.lines[i])
	}
	return out, nil
}
