package repository

import (
	"testing"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
)

func TestOrderRepositoryFallsBackToSeedData(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewOrderRepository(store)

	orders := repo.List()
	if len(orders) != 3 || orders[0].ID != "ORD-1001" {
		t.Fatalf("expected seeded orders on empty store, got %d", len(orders))
	}

	// 损坏文档同样回退
	_ = store.Set(constants.StoreKeyOrders, []byte(`{broken`))
	orders = repo.List()
	if len(orders) != 3 {
		t.Fatalf("expected seed fallback on malformed document, got %d", len(orders))
	}
}

func TestOrderRepositoryReplaceRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewOrderRepository(store)

	orders := repo.List()
	orders = append(orders, models.Order{ID: "ORD-1004", UserID: "3", Status: constants.OrderStatusProcessing})
	if err := repo.Replace(orders); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	reloaded := repo.List()
	if len(reloaded) != 4 || reloaded[3].ID != "ORD-1004" {
		t.Fatalf("expected stored collection after replace, got %d", len(reloaded))
	}
}

func TestReviewRepositoryFallsBackToSeedData(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewReviewRepository(store)

	reviews := repo.List()
	if len(reviews) != 14 {
		t.Fatalf("expected 14 seeded reviews, got %d", len(reviews))
	}

	if err := repo.Replace(reviews[:2]); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if got := repo.List(); len(got) != 2 {
		t.Fatalf("expected stored collection after replace, got %d", len(got))
	}
}
