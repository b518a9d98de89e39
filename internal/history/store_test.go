package history

import (
	"context"
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsertAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	runs := []Run{
		{Solution: "later", Status: "won", Attempts: 3, ElapsedMs: 12, CreatedAt: base},
		{Solution: "eater", Status: "lost", Attempts: 6, ElapsedMs: 40, CreatedAt: base.Add(time.Minute)},
		{Solution: "crane", Status: "won", Attempts: 4, ElapsedMs: 9, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatalf("Insert(%+v): %v", r, err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d rows", len(got))
	}
	if got[0].Solution != "crane" || got[1].Solution != "eater" {
		t.Errorf("unexpected order: %q, %q", got[0].Solution, got[1].Solution)
	}
	if got[0].ID == "" {
		t.Error("inserted run did not get an ID")
	}
	if !got[1].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("CreatedAt round-trip: got %v", got[1].CreatedAt)
	}
}

func TestAggregate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	empty, err := s.Aggregate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Runs != 0 || empty.WinRate != 0 {
		t.Errorf("empty table stats: %+v", empty)
	}

	for _, r := range []Run{
		{Solution: "later", Status: "won", Attempts: 2},
		{Solution: "eater", Status: "won", Attempts: 4},
		{Solution: "crane", Status: "lost", Attempts: 6},
		{Solution: "slate", Status: "lost", Attempts: 6},
	} {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	st, err := s.Aggregate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Runs != 4 || st.Wins != 2 {
		t.Errorf("Runs/Wins = %d/%d, want 4/2", st.Runs, st.Wins)
	}
	if st.WinRate != 0.5 {
		t.Errorf("WinRate = %v, want 0.5", st.WinRate)
	}
	if st.MeanWin != 3 {
		t.Errorf("MeanWin = %v, want 3", st.MeanWin)
	}
	if st.BestAttempt != 2 {
		t.Errorf("BestAttempt = %d, want 2", st.BestAttempt)
	}
}

func TestInMemoryStoreSharesSchemaAcrossGoroutines(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r := Run{Solution: "later", Status: "won", Attempts: n%6 + 1}
			if err := s.Insert(ctx, r); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Insert: %v", err)
	}

	st, err := s.Aggregate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Runs != 8 {
		t.Errorf("Runs = %d, want 8", st.Runs)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	if err := migrate(s.db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
