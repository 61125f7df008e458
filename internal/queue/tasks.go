package queue

import (
	"encoding/json"

	"github.com/brewnext/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskOrderStatusNotify 订单状态变更通知任务
const TaskOrderStatusNotify = constants.TaskOrderStatusNotify

// OrderStatusNotifyPayload 订单状态变更通知任务载荷
type OrderStatusNotifyPayload struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
}

// NewOrderStatusNotifyTask 创建订单状态变更通知任务
func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}
