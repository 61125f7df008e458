package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"

	"github.com/google/uuid"
)

// NotificationService 订单状态通知服务，由队列消费侧驱动
type NotificationService struct {
	notificationRepo repository.NotificationRepository

	mu sync.Mutex
}

// NewNotificationService 创建通知服务
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// RecordOrderStatus 追加一条订单状态通知
func (s *NotificationService) RecordOrderStatus(orderID, userID, status string) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := models.Notification{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		UserID:    userID,
		Status:    status,
		Message:   orderStatusMessage(orderID, status),
		CreatedAt: time.Now(),
	}

	notifications := append(s.notificationRepo.List(), notification)
	if err := s.notificationRepo.Replace(notifications); err != nil {
		return nil, err
	}

	logger.Infow("order_notification_recorded",
		"notification_id", notification.ID,
		"order_id", orderID,
		"status", status,
	)
	return &notification, nil
}

// ListByUser 返回指定用户的通知
func (s *NotificationService) ListByUser(userID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.Notification{}
	for _, n := range s.notificationRepo.List() {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result
}

func orderStatusMessage(orderID, status string) string {
	switch status {
	case constants.OrderStatusProcessing:
		return fmt.Sprintf("Order %s has been placed and is being processed.", orderID)
	case constants.OrderStatusShipped:
		return fmt.Sprintf("Order %s has shipped.", orderID)
	case constants.OrderStatusDelivered:
		return fmt.Sprintf("Order %s has been delivered.", orderID)
	case constants.OrderStatusCancelled:
		return fmt.Sprintf("Order %s has been cancelled.", orderID)
	default:
		return fmt.Sprintf("Order %s status changed to %s.", orderID, status)
	}
}
