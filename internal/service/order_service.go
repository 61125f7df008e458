package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/queue"
	"github.com/brewnext/internal/repository"
)

// OrderService 订单服务。订单集合整体读改写，由互斥锁串行化；
// 状态变更通知经队列异步落盘（队列未启用时静默跳过）。
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client

	mu sync.Mutex
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{orderRepo: orderRepo, queueClient: queueClient}
}

// CreateOrder 由购物车行项目生成订单：冻结商品快照，总价重新累加
func (s *OrderService) CreateOrder(userID string, items []models.CartLineItem, shipping, billing models.Address, payment models.PaymentMethod) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderEmpty
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	total := models.Money{}
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			ImageURL:  item.Product.ImageURL,
		})
		total = total.AddMoney(item.Product.Price.MulInt(item.Quantity))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orderRepo.List()
	now := time.Now()
	order := models.Order{
		ID:              nextOrderID(orders),
		UserID:          userID,
		Items:           orderItems,
		Status:          constants.OrderStatusProcessing,
		Total:           total,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		PaymentMethod:   payment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	orders = append(orders, order)
	if err := s.orderRepo.Replace(orders); err != nil {
		return nil, err
	}

	logger.Infow("order_created", "order_id", order.ID, "user_id", userID, "total", order.Total.String())
	s.notifyStatusChange(&order)
	return &order, nil
}

// ListAll 返回全部订单（后台能力）
func (s *OrderService) ListAll() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderRepo.List()
}

// ListByUser 返回指定用户的订单
func (s *OrderService) ListByUser(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.Order{}
	for _, order := range s.orderRepo.List() {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result
}

// GetByID 返回单个订单
func (s *OrderService) GetByID(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findOrder(orderID)
}

// Recent 返回用户最近的订单（按创建时间倒序取前 limit 条）
func (s *OrderService) Recent(userID string, limit int) []models.Order {
	orders := s.ListByUser(userID)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

// UpdateStatus 更新订单状态。只允许沿阶段序前进或取消；
// 首次到达 shipped/delivered 时落对应时间戳，且只落一次。
func (s *OrderService) UpdateStatus(orderID, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orderRepo.List()
	index := indexOfOrder(orders, orderID)
	if index < 0 {
		return nil, ErrOrderNotFound
	}
	order := &orders[index]
	if !CanTransitOrderStatus(order.Status, status) {
		return nil, ErrOrderStatusInvalid
	}

	previous := order.Status
	now := time.Now()
	order.Status = status
	order.UpdatedAt = now
	if status == constants.OrderStatusShipped && order.ShippedAt == nil {
		order.ShippedAt = &now
	}
	if status == constants.OrderStatusDelivered && order.DeliveredAt == nil {
		order.DeliveredAt = &now
	}

	if err := s.orderRepo.Replace(orders); err != nil {
		return nil, err
	}

	logger.Infow("order_status_updated", "order_id", orderID, "from", previous, "to", status)
	updated := orders[index]
	s.notifyStatusChange(&updated)
	return &updated, nil
}

// Cancel 取消订单。已送达的订单拒绝取消；已取消的订单保持原样。
func (s *OrderService) Cancel(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orderRepo.List()
	index := indexOfOrder(orders, orderID)
	if index < 0 {
		return nil, ErrOrderNotFound
	}
	order := &orders[index]
	if order.Status == constants.OrderStatusDelivered {
		return nil, ErrOrderDelivered
	}
	if order.Status == constants.OrderStatusCancelled {
		cancelled := *order
		return &cancelled, nil
	}

	order.Status = constants.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	if err := s.orderRepo.Replace(orders); err != nil {
		return nil, err
	}

	logger.Infow("order_cancelled", "order_id", orderID)
	cancelled := orders[index]
	s.notifyStatusChange(&cancelled)
	return &cancelled, nil
}

// Reorder 以历史订单克隆新订单：新编号、processing 状态、清空物流时间戳
func (s *OrderService) Reorder(orderID, userID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orderRepo.List()
	index := indexOfOrder(orders, orderID)
	if index < 0 {
		return nil, ErrOrderNotFound
	}
	source := orders[index]

	now := time.Now()
	clone := models.Order{
		ID:              nextOrderID(orders),
		UserID:          userID,
		Items:           append([]models.OrderItem{}, source.Items...),
		Status:          constants.OrderStatusProcessing,
		Total:           source.Total,
		ShippingAddress: source.ShippingAddress,
		BillingAddress:  source.BillingAddress,
		PaymentMethod:   source.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	orders = append(orders, clone)
	if err := s.orderRepo.Replace(orders); err != nil {
		return nil, err
	}

	logger.Infow("order_reordered", "source_order_id", orderID, "order_id", clone.ID)
	s.notifyStatusChange(&clone)
	return &clone, nil
}

// findOrder 查找订单，调用方需持有 s.mu
func (s *OrderService) findOrder(orderID string) (*models.Order, error) {
	orders := s.orderRepo.List()
	index := indexOfOrder(orders, orderID)
	if index < 0 {
		return nil, ErrOrderNotFound
	}
	order := orders[index]
	return &order, nil
}

func indexOfOrder(orders []models.Order, orderID string) int {
	for i := range orders {
		if orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

// nextOrderID 取集合末条编号递增；空集合或编号无法解析时从 1000 起步
func nextOrderID(orders []models.Order) string {
	last := 1000
	if len(orders) > 0 {
		parts := strings.Split(orders[len(orders)-1].ID, "-")
		if len(parts) == 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				last = n
			}
		}
	}
	return fmt.Sprintf("ORD-%d", last+1)
}

// notifyStatusChange 异步记录状态通知，入队失败只记日志
func (s *OrderService) notifyStatusChange(order *models.Order) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
	})
	if err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", order.ID, "error", err)
	}
}
