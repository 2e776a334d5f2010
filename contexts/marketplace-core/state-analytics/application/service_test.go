package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"vyaparkendra/contexts/marketplace-core/state-analytics/adapters/memory"
	domainerrors "vyaparkendra/contexts/marketplace-core/state-analytics/domain/errors"
)

func TestBumpCreatesStateLazilyThenAdds(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if _, err := service.Get(ctx, "MH"); !errors.Is(err, domainerrors.ErrStateNotTracked) {
		t.Fatalf("expected untracked state before first bump, got %v", err)
	}

	if err := service.Bump(ctx, "MH", 200, 1); err != nil {
		t.Fatalf("first bump failed: %v", err)
	}
	if err := service.Bump(ctx, "MH", 200, 1); err != nil {
		t.Fatalf("second bump failed: %v", err)
	}

	record, err := service.Get(ctx, "MH")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.TotalRevenue != 400 || record.TotalRequests != 2 {
		t.Fatalf("bumps did not sum: %+v", record)
	}
}

func TestConcurrentBumpsAllLand(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := service.Bump(ctx, "DL", 100, 1); err != nil {
				t.Errorf("bump failed: %v", err)
			}
		}()
	}
	wg.Wait()

	record, err := service.Get(ctx, "DL")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.TotalRevenue != float64(workers)*100 || record.TotalRequests != workers {
		t.Fatalf("lost increments under concurrency: %+v", record)
	}
}

func TestListAllPreservesFirstActivityOrder(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	for _, state := range []string{"MH", "DL", "KA"} {
		if err := service.Bump(ctx, state, 10, 1); err != nil {
			t.Fatalf("bump %s failed: %v", state, err)
		}
	}
	if err := service.Bump(ctx, "MH", 5, 0); err != nil {
		t.Fatalf("repeat bump failed: %v", err)
	}

	items, err := service.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 states, got %d", len(items))
	}
	for i, want := range []string{"MH", "DL", "KA"} {
		if items[i].State != want {
			t.Fatalf("unexpected order at %d: got %s want %s", i, items[i].State, want)
		}
	}
}

func TestBumpRejectsDecrements(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	if err := service.Bump(ctx, "MH", -1, 0); !errors.Is(err, domainerrors.ErrInvalidBumpInput) {
		t.Fatalf("expected rejection of negative revenue delta, got %v", err)
	}
	if err := service.Bump(ctx, "MH", 0, -1); !errors.Is(err, domainerrors.ErrInvalidBumpInput) {
		t.Fatalf("expected rejection of negative request delta, got %v", err)
	}
	if err := service.Bump(ctx, "  ", 1, 1); !errors.Is(err, domainerrors.ErrInvalidBumpInput) {
		t.Fatalf("expected rejection of blank state, got %v", err)
	}
}
