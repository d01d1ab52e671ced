package domain

import "context"

// HistoryRepository is the durable append-only sink for flushed
// outcome batches
type HistoryRepository interface {
	// AppendBatch appends one batch of outcome codes as a single line
	AppendBatch(ctx context.Context, codes []string) error

	// Reset clears all persisted history (server restart semantics)
	Reset(ctx context.Context) error

	// RecentBatches returns up to limit batches, newest first
	RecentBatches(ctx context.Context, limit int) ([]string, error)
}
