package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/provider"
	"github.com/brewnext/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
}

func (c *Consumer) handleOrderStatusNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.OrderID) == "" || strings.TrimSpace(payload.UserID) == "" {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload",
			"order_id", payload.OrderID, "user_id", payload.UserID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_order_status_notify_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if _, err := c.NotificationService.RecordOrderStatus(payload.OrderID, payload.UserID, payload.Status); err != nil {
		logger.Warnw("worker_order_status_notify_failed",
			"order_id", payload.OrderID,
			"user_id", payload.UserID,
			"status", payload.Status,
			"error", err,
		)
		return err
	}
	return nil
}
