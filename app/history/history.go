// Package history keeps each agent's append-only activity log. The log is
// the source of truth for summaries and statistics; an optional storage
// archive mirrors entries for inspection across runs.
package history

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ContentCrewAI/app/storage"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Entry records one task invocation. Entries are immutable once appended.
type Entry struct {
	ID         uuid.UUID
	Agent      string
	Operation  string
	Params     map[string]string
	Strictness int
	WordCount  int
	Status     Status
	CreatedAt  time.Time
}

type History struct {
	mu      sync.Mutex
	entries []Entry
	archive storage.Interface
}

// New builds an empty log. archive may be nil; when set, every append is
// mirrored into it on a best-effort basis.
func New(archive storage.Interface) *History {
	return &History{archive: archive}
}

// Append records an entry, assigning its ID and timestamp when unset.
// Insertion order is chronological order. Archive failures are logged and
// never surface to the task that produced the entry.
func (h *History) Append(ctx context.Context, entry Entry) Entry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()

	if h.archive != nil {
		params, _ := json.Marshal(entry.Params)
		if err := h.archive.SaveEntry(ctx, storage.Record{
			Agent:      entry.Agent,
			Operation:  entry.Operation,
			Parameters: string(params),
			WordCount:  entry.WordCount,
			Strictness: entry.Strictness,
			Status:     string(entry.Status),
			CreatedAt:  entry.CreatedAt,
		}); err != nil {
			log.Printf("⚠️ Error archiving history entry for %s: %v", entry.Agent, err)
		}
	}
	return entry
}

// Snapshot returns a copy of all entries in insertion order.
func (h *History) Snapshot() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// RecentCompleted returns up to n of the most recent completed entries,
// oldest first.
func (h *History) RecentCompleted(n int) []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	var completed []Entry
	for _, e := range h.entries {
		if e.Status == StatusCompleted {
			completed = append(completed, e)
		}
	}
	if len(completed) > n {
		completed = completed[len(completed)-n:]
	}
	return completed
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
