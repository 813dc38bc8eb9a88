package history

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	h := New(nil)
	e := h.Append(context.Background(), Entry{Agent: "a", Operation: "op", Status: StatusCompleted})
	if e.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("ID not assigned")
	}
	if e.CreatedAt.IsZero() {
		t.Fatal("timestamp not assigned")
	}
}

func TestInsertionOrderIsChronological(t *testing.T) {
	h := New(nil)
	base := time.Now()
	for i := 0; i < 5; i++ {
		h.Append(context.Background(), Entry{
			Operation: "op",
			Params:    map[string]string{"n": string(rune('a' + i))},
			Status:    StatusCompleted,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	snap := h.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i].CreatedAt.Before(snap[i-1].CreatedAt) {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestRecentCompletedFiltersAndLimits(t *testing.T) {
	h := New(nil)
	for i := 0; i < 4; i++ {
		h.Append(context.Background(), Entry{Operation: "ok", Params: map[string]string{"i": string(rune('0' + i))}, Status: StatusCompleted})
		h.Append(context.Background(), Entry{Operation: "bad", Status: StatusFailed})
	}
	recent := h.RecentCompleted(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	for _, e := range recent {
		if e.Status != StatusCompleted {
			t.Fatalf("failed entry leaked into summary: %+v", e)
		}
	}
	// oldest first: the 3 most recent completed are i=1,2,3
	if recent[0].Params["i"] != "1" || recent[2].Params["i"] != "3" {
		t.Fatalf("unexpected window: %+v", recent)
	}
}

func TestConcurrentAppends(t *testing.T) {
	h := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Append(context.Background(), Entry{Operation: "op", Status: StatusCompleted})
		}()
	}
	wg.Wait()
	if h.Len() != 50 {
		t.Fatalf("expected 50 entries, got %d", h.Len())
	}
}
