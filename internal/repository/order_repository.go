package repository

import (
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/seed"
)

// OrderRepository 订单集合数据访问接口
type OrderRepository interface {
	List() []models.Order
	Replace(orders []models.Order) error
}

// KVOrderRepository 键值存储实现：orders 键下保存整个集合
type KVOrderRepository struct {
	store kvstore.Store
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(store kvstore.Store) *KVOrderRepository {
	return &KVOrderRepository{store: store}
}

// List 读取订单集合。存储未命中或文档损坏时回退到内置示例数据。
func (r *KVOrderRepository) List() []models.Order {
	orders, ok := kvstore.LoadJSON(r.store, constants.StoreKeyOrders, func(list *[]models.Order) bool {
		return *list != nil
	})
	if !ok {
		return seed.Orders()
	}
	return orders
}

// Replace 覆盖写入订单集合
func (r *KVOrderRepository) Replace(orders []models.Order) error {
	return kvstore.SaveJSON(r.store, constants.StoreKeyOrders, orders)
}
