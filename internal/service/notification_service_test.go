package service

import (
	"strings"
	"testing"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/repository"
)

func TestRecordOrderStatusAppends(t *testing.T) {
	svc := NewNotificationService(repository.NewNotificationRepository(kvstore.NewMemoryStore()))

	first, err := svc.RecordOrderStatus("ORD-1001", "5", constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("RecordOrderStatus error: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("notification id missing")
	}
	if !strings.Contains(first.Message, "ORD-1001") || !strings.Contains(first.Message, "shipped") {
		t.Fatalf("unexpected message: %q", first.Message)
	}

	if _, err := svc.RecordOrderStatus("ORD-1002", "6", constants.OrderStatusDelivered); err != nil {
		t.Fatalf("RecordOrderStatus error: %v", err)
	}

	mine := svc.ListByUser("5")
	if len(mine) != 1 || mine[0].OrderID != "ORD-1001" {
		t.Fatalf("unexpected notifications for user 5: %+v", mine)
	}
	if len(svc.ListByUser("7")) != 0 {
		t.Fatalf("expected no notifications for user 7")
	}
}
