package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	ledgermemory "vyaparkendra/contexts/marketplace-core/commission-ledger/adapters/memory"
	ledgerapp "vyaparkendra/contexts/marketplace-core/commission-ledger/application"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/adapters/memory"
	domainerrors "vyaparkendra/contexts/marketplace-core/request-lifecycle/domain/errors"
	"vyaparkendra/contexts/marketplace-core/request-lifecycle/ports"
	analyticsmemory "vyaparkendra/contexts/marketplace-core/state-analytics/adapters/memory"
	analyticsapp "vyaparkendra/contexts/marketplace-core/state-analytics/application"
)

type stubCatalog struct {
	mu       sync.Mutex
	services map[string]ports.PricedService
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{services: make(map[string]ports.PricedService)}
}

func (c *stubCatalog) add(service ports.PricedService) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[service.ServiceID] = service
}

func (c *stubCatalog) remove(serviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, serviceID)
}

func (c *stubCatalog) PricedService(_ context.Context, serviceID string) (ports.PricedService, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	service, ok := c.services[serviceID]
	if !ok {
		return ports.PricedService{}, domainerrors.ErrServiceMissing
	}
	return service, nil
}

type failingBumper struct{}

func (failingBumper) Bump(context.Context, string, float64, int64) error {
	return errors.New("analytics unavailable")
}

type fixture struct {
	service       *Service
	requests      *memory.Store
	ledgerStore   *ledgermemory.Store
	ledger        ledgerapp.Service
	analyticsRepo *analyticsmemory.Store
	analytics     analyticsapp.Service
	catalog       *stubCatalog
}

func newFixture(analyticsOverride ports.AnalyticsBumper) fixture {
	requests := memory.NewStore()
	ledgerStore := ledgermemory.NewStore()
	ledger := ledgerapp.Service{Repo: ledgerStore}
	analyticsRepo := analyticsmemory.NewStore()
	analytics := analyticsapp.Service{Repo: analyticsRepo}
	catalog := newStubCatalog()

	var bumper ports.AnalyticsBumper = analytics
	if analyticsOverride != nil {
		bumper = analyticsOverride
	}

	service := &Service{
		Requests:  requests,
		Catalog:   catalog,
		Ledger:    ledger,
		Analytics: bumper,
		UoW:       memory.NewUnitOfWork(requests, ledgerStore, analyticsRepo),
		Clock:     memory.SystemClock{},
		IDGen:     memory.UUIDGenerator{},
	}

	return fixture{
		service:       service,
		requests:      requests,
		ledgerStore:   ledgerStore,
		ledger:        ledger,
		analyticsRepo: analyticsRepo,
		analytics:     analytics,
		catalog:       catalog,
	}
}

func (f fixture) createRequest(t *testing.T, serviceID string) string {
	t.Helper()

	request, err := f.service.CreateRequest(context.Background(), ports.CreateRequestInput{
		CitizenName: "Asha Kumari",
		MSMEID:      "msme-1",
		ServiceID:   serviceID,
		AgentID:     "mitra-1",
		Tenant:      "MH",
	})
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	return request.RequestID
}

func TestCompletionSettlesCommissionWalletAndAnalytics(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	requestID := f.createRequest(t, "svc-1")

	result, err := f.service.CompleteRequest(ctx, requestID, "mitra-1")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if result.CommissionEarned != 50 {
		t.Fatalf("expected commission 50, got %v", result.CommissionEarned)
	}

	wallet, err := f.ledger.Wallet(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("wallet lookup failed: %v", err)
	}
	if wallet.Balance != 50 || wallet.TotalEarned != 50 {
		t.Fatalf("expected wallet {50, 50}, got {%v, %v}", wallet.Balance, wallet.TotalEarned)
	}

	stats, err := f.analytics.Get(ctx, "MH")
	if err != nil {
		t.Fatalf("analytics lookup failed: %v", err)
	}
	if stats.TotalRevenue != 500 {
		t.Fatalf("expected revenue 500, got %v", stats.TotalRevenue)
	}
	if stats.TotalRequests != 1 {
		t.Fatalf("expected 1 request counted at creation, got %d", stats.TotalRequests)
	}

	requests, err := f.service.ListByAgent(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 1 || string(requests[0].Status) != "completed" || requests[0].CompletedAt == nil {
		t.Fatalf("expected one completed request with timestamp, got %+v", requests)
	}
}

func TestZeroCommissionCompletionStillWritesLedgerEntry(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-free", Price: 200, MitraCommission: 0, Tenant: "MH"})
	requestID := f.createRequest(t, "svc-free")

	result, err := f.service.CompleteRequest(ctx, requestID, "mitra-1")
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if result.CommissionEarned != 0 {
		t.Fatalf("expected zero commission, got %v", result.CommissionEarned)
	}

	entries, err := f.ledger.ListEntries(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("ledger list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Amount != 0 || entries[0].ReferenceID != requestID {
		t.Fatalf("expected exactly one zero credit referencing the request, got %+v", entries)
	}

	wallet, err := f.ledger.Wallet(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("wallet lookup failed: %v", err)
	}
	if wallet.Balance != 0 || wallet.TotalEarned != 0 {
		t.Fatalf("zero commission moved the wallet: %+v", wallet)
	}

	stats, err := f.analytics.Get(ctx, "MH")
	if err != nil {
		t.Fatalf("analytics lookup failed: %v", err)
	}
	if stats.TotalRevenue != 200 {
		t.Fatalf("expected revenue 200, got %v", stats.TotalRevenue)
	}
}

func TestCreationBumpsRequestCounterWithoutRevenue(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	f.createRequest(t, "svc-1")
	f.createRequest(t, "svc-1")

	stats, err := f.analytics.Get(ctx, "MH")
	if err != nil {
		t.Fatalf("analytics lookup failed: %v", err)
	}
	if stats.TotalRequests != 2 || stats.TotalRevenue != 0 {
		t.Fatalf("expected {requests: 2, revenue: 0}, got {%d, %v}", stats.TotalRequests, stats.TotalRevenue)
	}
}

func TestCompletionIsIdempotencyGuarded(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	requestID := f.createRequest(t, "svc-1")

	if _, err := f.service.CompleteRequest(ctx, requestID, "mitra-1"); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := f.service.CompleteRequest(ctx, requestID, "mitra-1"); !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected second completion rejected, got %v", err)
	}

	if entries := f.ledgerStore.EntriesByReference(requestID); len(entries) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(entries))
	}
}

func TestConcurrentCompletersExactlyOneWins(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	requestID := f.createRequest(t, "svc-1")

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.CompleteRequest(ctx, requestID, "mitra-1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, rejections int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domainerrors.ErrRequestNotFound):
			rejections++
		default:
			t.Fatalf("unexpected completion error: %v", err)
		}
	}
	if wins != 1 || rejections != workers-1 {
		t.Fatalf("expected 1 win and %d rejections, got %d and %d", workers-1, wins, rejections)
	}

	if entries := f.ledgerStore.EntriesByReference(requestID); len(entries) != 1 {
		t.Fatalf("expected exactly one ledger entry after race, got %d", len(entries))
	}
}

func TestCompletionRejectsForeignAgent(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	requestID := f.createRequest(t, "svc-1")

	if _, err := f.service.CompleteRequest(ctx, requestID, "mitra-2"); !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected foreign agent rejected as not found, got %v", err)
	}
}

func TestCompletionWithVanishedServiceLeavesRequestOpen(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	requestID := f.createRequest(t, "svc-1")
	f.catalog.remove("svc-1")

	if _, err := f.service.CompleteRequest(ctx, requestID, "mitra-1"); !errors.Is(err, domainerrors.ErrServiceMissing) {
		t.Fatalf("expected missing service error, got %v", err)
	}

	requests, err := f.service.ListByAgent(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 1 || string(requests[0].Status) != "in_progress" {
		t.Fatalf("expected request to stay in_progress, got %+v", requests)
	}

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	if _, err := f.service.CompleteRequest(ctx, requestID, "mitra-1"); err != nil {
		t.Fatalf("retry after catalog restore failed: %v", err)
	}
}

func TestFailedSettlementRollsBackEveryStore(t *testing.T) {
	f := newFixture(failingBumper{})
	ctx := context.Background()

	f.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})

	seeded, createErr := f.service.CreateRequest(ctx, ports.CreateRequestInput{
		CitizenName: "Asha Kumari",
		ServiceID:   "svc-1",
		AgentID:     "mitra-1",
		Tenant:      "MH",
	})
	if createErr == nil {
		t.Fatalf("expected creation to fail with broken analytics, got request %s", seeded.RequestID)
	}

	requests, err := f.service.ListByAgent(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 0 {
		t.Fatalf("expected creation rolled back, found %d requests", len(requests))
	}
}

func TestFailedCompletionRollsBackLedgerCredit(t *testing.T) {
	healthy := newFixture(nil)
	ctx := context.Background()

	healthy.catalog.add(ports.PricedService{ServiceID: "svc-1", Price: 500, MitraCommission: 50, Tenant: "MH"})
	requestID := healthy.createRequest(t, "svc-1")

	// Swap in a failing analytics sink after creation so only the
	// completion settlement trips.
	healthy.service.Analytics = failingBumper{}

	if _, err := healthy.service.CompleteRequest(ctx, requestID, "mitra-1"); err == nil {
		t.Fatal("expected completion to fail with broken analytics")
	}

	if entries := healthy.ledgerStore.EntriesByReference(requestID); len(entries) != 0 {
		t.Fatalf("expected ledger credit rolled back, found %d entries", len(entries))
	}

	requests, err := healthy.service.ListByAgent(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 1 || string(requests[0].Status) != "in_progress" {
		t.Fatalf("expected request back in_progress, got %+v", requests)
	}

	wallet, err := healthy.ledger.Wallet(ctx, "mitra-1")
	if err != nil {
		t.Fatalf("wallet lookup failed: %v", err)
	}
	if wallet.Balance != 0 {
		t.Fatalf("expected empty wallet after rollback, got %v", wallet.Balance)
	}
}

func TestCreateRequestValidatesInput(t *testing.T) {
	f := newFixture(nil)

	_, err := f.service.CreateRequest(context.Background(), ports.CreateRequestInput{
		CitizenName: "Asha Kumari",
		AgentID:     "mitra-1",
		Tenant:      "MH",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequestInput) {
		t.Fatalf("expected invalid input for blank service id, got %v", err)
	}
}
