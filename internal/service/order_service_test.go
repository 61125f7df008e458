package service

import (
	"testing"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
)

func setupOrderServiceTest(t *testing.T) *OrderService {
	t.Helper()
	orderRepo := repository.NewOrderRepository(kvstore.NewMemoryStore())
	// 清空内置示例数据，从空集合开始
	if err := orderRepo.Replace([]models.Order{}); err != nil {
		t.Fatalf("reset orders failed: %v", err)
	}
	return NewOrderService(orderRepo, nil)
}

func orderTestItems() []models.CartLineItem {
	return []models.CartLineItem{
		{
			Product:  models.Product{ID: "ethiopia-yirgacheffe", Name: "Ethiopia Yirgacheffe", Price: models.NewMoneyFromFloat(18.99)},
			Quantity: 2,
		},
		{
			Product:  models.Product{ID: "house-blend", Name: "House Blend", Price: models.NewMoneyFromFloat(14.50)},
			Quantity: 1,
		},
	}
}

func TestCreateOrderComputesTotalAndSequence(t *testing.T) {
	svc := setupOrderServiceTest(t)

	order, err := svc.CreateOrder("5", orderTestItems(), models.Address{City: "Seattle"}, models.Address{City: "Seattle"}, models.PaymentMethod{Type: "card"})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if order.ID != "ORD-1001" {
		t.Fatalf("expected ORD-1001, got %s", order.ID)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected processing, got %s", order.Status)
	}
	if order.Total.String() != "52.48" {
		t.Fatalf("expected total 52.48, got %s", order.Total.String())
	}
	if len(order.Items) != 2 || order.Items[0].UnitPrice.String() != "18.99" {
		t.Fatalf("unexpected items: %+v", order.Items)
	}

	second, err := svc.CreateOrder("5", orderTestItems()[:1], models.Address{}, models.Address{}, models.PaymentMethod{})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if second.ID != "ORD-1002" {
		t.Fatalf("expected ORD-1002, got %s", second.ID)
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := setupOrderServiceTest(t)
	if _, err := svc.CreateOrder("5", nil, models.Address{}, models.Address{}, models.PaymentMethod{}); err != ErrOrderEmpty {
		t.Fatalf("expected ErrOrderEmpty, got: %v", err)
	}
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	svc := setupOrderServiceTest(t)
	order, err := svc.CreateOrder("5", orderTestItems(), models.Address{}, models.Address{}, models.PaymentMethod{})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	shipped, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if shipped.ShippedAt == nil {
		t.Fatalf("shippedAt not stamped")
	}
	if shipped.DeliveredAt != nil {
		t.Fatalf("deliveredAt stamped too early")
	}

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusProcessing); err != ErrOrderStatusInvalid {
		t.Fatalf("expected ErrOrderStatusInvalid for backward move, got: %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped); err != ErrOrderStatusInvalid {
		t.Fatalf("expected ErrOrderStatusInvalid for same status, got: %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, "unknown"); err != ErrOrderStatusInvalid {
		t.Fatalf("expected ErrOrderStatusInvalid for unknown status, got: %v", err)
	}

	delivered, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if delivered.DeliveredAt == nil {
		t.Fatalf("deliveredAt not stamped")
	}
}

func TestUpdateStatusAllowsStageSkip(t *testing.T) {
	svc := setupOrderServiceTest(t)
	order, err := svc.CreateOrder("5", orderTestItems(), models.Address{}, models.Address{}, models.PaymentMethod{})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	delivered, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if delivered.DeliveredAt == nil {
		t.Fatalf("deliveredAt not stamped")
	}
	if delivered.ShippedAt != nil {
		t.Fatalf("shippedAt stamped on skipped stage")
	}
}

func TestCancelOrder(t *testing.T) {
	svc := setupOrderServiceTest(t)
	order, err := svc.CreateOrder("5", orderTestItems(), models.Address{}, models.Address{}, models.PaymentMethod{})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	cancelled, err := svc.Cancel(order.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}

	// 重复取消幂等
	again, err := svc.Cancel(order.ID)
	if err != nil {
		t.Fatalf("repeat Cancel error: %v", err)
	}
	if again.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", again.Status)
	}

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped); err != ErrOrderStatusInvalid {
		t.Fatalf("cancelled order must not move forward, got: %v", err)
	}
}

func TestCancelDeliveredOrderFails(t *testing.T) {
	svc := setupOrderServiceTest(t)
	order, err := svc.CreateOrder("5", orderTestItems(), models.Address{}, models.Address{}, models.PaymentMethod{})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	if _, err := svc.Cancel(order.ID); err != ErrOrderDelivered {
		t.Fatalf("expected ErrOrderDelivered, got: %v", err)
	}
	current, err := svc.GetByID(order.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if current.Status != constants.OrderStatusDelivered {
		t.Fatalf("status changed after rejected cancel: %s", current.Status)
	}
}

func TestReorderClonesOrder(t *testing.T) {
	svc := setupOrderServiceTest(t)
	order, err := svc.CreateOrder("5", orderTestItems(), models.Address{City: "Seattle"}, models.Address{City: "Seattle"}, models.PaymentMethod{Type: "card"})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	clone, err := svc.Reorder(order.ID, "5")
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if clone.ID == order.ID {
		t.Fatalf("clone reused order id %s", clone.ID)
	}
	if clone.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected processing, got %s", clone.Status)
	}
	if clone.ShippedAt != nil || clone.DeliveredAt != nil {
		t.Fatalf("clone carried fulfillment timestamps: %+v", clone)
	}
	if clone.Total.String() != order.Total.String() || len(clone.Items) != len(order.Items) {
		t.Fatalf("clone mismatch: %+v", clone)
	}
}

func TestListByUserAndRecent(t *testing.T) {
	svc := setupOrderServiceTest(t)
	for i := 0; i < 3; i++ {
		if _, err := svc.CreateOrder("5", orderTestItems(), models.Address{}, models.Address{}, models.PaymentMethod{}); err != nil {
			t.Fatalf("CreateOrder error: %v", err)
		}
	}
	if _, err := svc.CreateOrder("6", orderTestItems(), models.Address{}, models.Address{}, models.PaymentMethod{}); err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	mine := svc.ListByUser("5")
	if len(mine) != 3 {
		t.Fatalf("expected 3 orders for user 5, got %d", len(mine))
	}
	recent := svc.Recent("5", 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent orders, got %d", len(recent))
	}
	if recent[0].CreatedAt.Before(recent[1].CreatedAt) {
		t.Fatalf("recent orders not sorted by creation time")
	}
}
