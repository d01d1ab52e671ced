package engine

import (
	"context"
	"sync"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/pkg/logger"
)

// flushSize is the batch size at which the buffer is flushed to
// durable storage. Fixed by the game rules, not configurable.
const flushSize = 6

// HistoryLog is the bounded in-memory buffer of recent round outcome
// codes. When the buffer reaches exactly flushSize entries it is
// flushed to the repository as one batch and cleared. Append, flush and
// clear form a single critical section: two rounds finishing at the
// same time can neither double-flush nor lose an entry.
type HistoryLog struct {
	mu      sync.Mutex
	entries []string
	repo    domain.HistoryRepository
}

// NewHistoryLog creates an empty history log over the given repository
func NewHistoryLog(repo domain.HistoryRepository) *HistoryLog {
	return &HistoryLog{
		entries: make([]string, 0, flushSize),
		repo:    repo,
	}
}

// Append adds one outcome code, flushing the batch when it fills.
// A storage failure on flush is logged and the buffer cleared anyway;
// the round that triggered the append is already resolved and must not
// fail because of the history sink.
func (h *HistoryLog) Append(ctx context.Context, code string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, code)
	if len(h.entries) < flushSize {
		return
	}

	batch := make([]string, len(h.entries))
	copy(batch, h.entries)
	h.entries = h.entries[:0]

	if err := h.repo.AppendBatch(ctx, batch); err != nil {
		logger.Error(ctx).Err(err).Strs("batch", batch).Msg("Failed to flush history batch")
	}
}

// Size returns the current buffer length, always in [0,6)
func (h *HistoryLog) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Snapshot returns a copy of the pending, not yet flushed entries
func (h *HistoryLog) Snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
