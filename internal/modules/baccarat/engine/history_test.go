package engine

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/repository/memory"
	"github.com/stretchr/testify/assert"
)

func TestHistoryFlushOnSix(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHistoryRepository()
	history := NewHistoryLog(repo)

	codes := []string{"B", "P", "D", "B", "B", "P"}
	for i, code := range codes {
		history.Append(ctx, code)
		if history.Size() >= 6 {
			t.Fatalf("Buffer reached %d after append %d; flush-on-6 must be immediate", history.Size(), i+1)
		}
	}

	// Sixth append flushed the whole batch as one line
	assert.Equal(t, 0, history.Size())
	batches, err := repo.RecentBatches(ctx, 10)
	assert.NoError(t, err)
	if assert.Len(t, batches, 1) {
		assert.Equal(t, "B,P,D,B,B,P", batches[0])
	}

	history.Append(ctx, "P")
	assert.Equal(t, 1, history.Size())
	assert.Equal(t, []string{"P"}, history.Snapshot())
}

func TestHistoryConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHistoryRepository()
	history := NewHistoryLog(repo)

	const goroutines = 6
	const perGoroutine = 10

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				history.Append(ctx, "B")
			}
		}()
	}
	wg.Wait()

	batches, err := repo.RecentBatches(ctx, 100)
	assert.NoError(t, err)

	// No entry lost, no double flush: every flushed batch holds exactly
	// 6 codes and flushed + pending accounts for every append
	flushed := 0
	for _, b := range batches {
		codes := strings.Split(b, ",")
		assert.Len(t, codes, 6)
		flushed += len(codes)
	}
	assert.Equal(t, goroutines*perGoroutine, flushed+history.Size())
}
