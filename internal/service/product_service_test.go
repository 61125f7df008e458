package service

import (
	"testing"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/repository"
	"github.com/brewnext/internal/seed"
)

func setupProductServiceTest(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(repository.NewMemoryProductRepository(seed.Products()), 4)
}

func TestProductQueryFiltersSeedCatalog(t *testing.T) {
	svc := setupProductServiceTest(t)

	all := svc.Query(repository.ProductQuery{Category: constants.CategoryAll})
	if len(all) != 12 {
		t.Fatalf("expected 12 seed products, got %d", len(all))
	}

	espresso := svc.Query(repository.ProductQuery{Category: "espresso"})
	for _, product := range espresso {
		if product.Category != "espresso" {
			t.Fatalf("category filter leaked: %s", product.ID)
		}
	}

	sorted := svc.Query(repository.ProductQuery{Sort: constants.SortPriceAsc})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Price.LessThan(sorted[i-1].Price.Decimal) {
			t.Fatalf("price ascending order broken at %d", i)
		}
	}
}

func TestProductGetByID(t *testing.T) {
	svc := setupProductServiceTest(t)

	product, err := svc.GetByID("ethiopia-yirgacheffe")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if product.Name == "" {
		t.Fatalf("unexpected product: %+v", product)
	}

	if _, err := svc.GetByID("no-such-product"); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestProductFeaturedLimit(t *testing.T) {
	svc := setupProductServiceTest(t)

	featured := svc.Featured(0)
	if len(featured) != 4 {
		t.Fatalf("expected default limit 4, got %d", len(featured))
	}
	for i := 1; i < len(featured); i++ {
		if featured[i].Rating > featured[i-1].Rating {
			t.Fatalf("featured not sorted by rating at %d", i)
		}
	}

	if len(svc.Featured(2)) != 2 {
		t.Fatalf("explicit limit not honored")
	}
}

func TestProductCreate(t *testing.T) {
	svc := setupProductServiceTest(t)

	product, err := svc.Create(CreateProductInput{
		ID:       "new-roast",
		Name:     "New Roast",
		Price:    12.50,
		Category: "blend",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if product.Price.String() != "12.50" {
		t.Fatalf("unexpected price: %s", product.Price.String())
	}

	if _, err := svc.Create(CreateProductInput{ID: "new-roast", Name: "Dup", Price: 1, Category: "blend"}); err != ErrProductExists {
		t.Fatalf("expected ErrProductExists, got: %v", err)
	}
}

func TestOrderStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.OrderStatusProcessing, constants.OrderStatusShipped, true},
		{constants.OrderStatusProcessing, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusProcessing, false},
		{constants.OrderStatusDelivered, constants.OrderStatusShipped, false},
		{constants.OrderStatusProcessing, constants.OrderStatusProcessing, false},
		{constants.OrderStatusProcessing, constants.OrderStatusCancelled, true},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled, true},
		{constants.OrderStatusDelivered, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCancelled, constants.OrderStatusProcessing, false},
		{constants.OrderStatusCancelled, constants.OrderStatusCancelled, false},
		{constants.OrderStatusProcessing, "unknown", false},
		{"unknown", constants.OrderStatusShipped, false},
	}
	for _, c := range cases {
		if got := CanTransitOrderStatus(c.from, c.to); got != c.want {
			t.Fatalf("CanTransitOrderStatus(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
