package application

import (
	"context"
	"errors"
	"testing"

	"vyaparkendra/contexts/marketplace-core/service-catalog/adapters/memory"
	domainerrors "vyaparkendra/contexts/marketplace-core/service-catalog/domain/errors"
	"vyaparkendra/contexts/marketplace-core/service-catalog/ports"
)

func TestAddServiceAssignsIDAndTrimsFields(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	created, err := service.AddService(ctx, ports.AddServiceInput{
		Name:            "  PAN Card Application ",
		Category:        " government ",
		Price:           500,
		MitraCommission: 50,
		Tenant:          " MH ",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if created.ServiceID == "" {
		t.Fatal("expected a generated service id")
	}
	if created.Name != "PAN Card Application" || created.Category != "government" || created.Tenant != "MH" {
		t.Fatalf("fields not trimmed: %+v", created)
	}

	fetched, err := service.GetService(ctx, created.ServiceID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched != created {
		t.Fatalf("stored service differs: %+v vs %+v", fetched, created)
	}
}

func TestAddServiceRejectsInvalidInput(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	cases := map[string]ports.AddServiceInput{
		"blank name":          {Name: "  ", Tenant: "MH", Price: 100, MitraCommission: 10},
		"blank tenant":        {Name: "GST Filing", Tenant: "", Price: 100, MitraCommission: 10},
		"negative price":      {Name: "GST Filing", Tenant: "MH", Price: -1, MitraCommission: 10},
		"negative commission": {Name: "GST Filing", Tenant: "MH", Price: 100, MitraCommission: -1},
	}
	for name, input := range cases {
		if _, err := service.AddService(ctx, input); !errors.Is(err, domainerrors.ErrInvalidServiceInput) {
			t.Errorf("%s: expected invalid input error, got %v", name, err)
		}
	}
}

func TestGetServiceMissing(t *testing.T) {
	service := Service{Repo: memory.NewStore()}

	if _, err := service.GetService(context.Background(), "no-such-service"); !errors.Is(err, domainerrors.ErrServiceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByTenantFiltersAndKeepsInsertionOrder(t *testing.T) {
	service := Service{Repo: memory.NewStore()}
	ctx := context.Background()

	first, err := service.AddService(ctx, ports.AddServiceInput{Name: "PAN Card", Tenant: "MH", Price: 500, MitraCommission: 50})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := service.AddService(ctx, ports.AddServiceInput{Name: "Ration Card", Tenant: "DL", Price: 300, MitraCommission: 30}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	second, err := service.AddService(ctx, ports.AddServiceInput{Name: "GST Filing", Tenant: "MH", Price: 1000, MitraCommission: 100})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	listed, err := service.ListByTenant(ctx, "MH")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 || listed[0].ServiceID != first.ServiceID || listed[1].ServiceID != second.ServiceID {
		t.Fatalf("unexpected tenant listing: %+v", listed)
	}
}
